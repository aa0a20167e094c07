package scenario

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CB2Moon/InhabitantHunter/entity"
	"github.com/CB2Moon/InhabitantHunter/grid"
)

// ErrBadSave reports that save data violates the scenario text format.
// Decode errors wrap it; callers match with errors.Is.
var ErrBadSave = errors.New("bad save data")

// defaultDimension replaces a literal -1 in a Width, Height or Seed line.
const defaultDimension = grid.MinSize

// Decode reads one scenario from its text encoding. The format is, line by
// line: the scenario name, "Width:n", "Height:n", "Seed:n", a separator of
// width '=' characters, height map rows of terrain codes, another
// separator, then one line per entity until the end of input.
//
// A header value of -1 is substituted with the default of 5. Any grammar
// or placement violation fails the whole decode with an error wrapping
// ErrBadSave; no partial scenario is returned.
func Decode(r io.Reader) (*Scenario, error) {
	sc := bufio.NewScanner(r)

	name, err := readLine(sc)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: blank scenario name", ErrBadSave)
	}
	width, err := readField(sc, "Width")
	if err != nil {
		return nil, err
	}
	height, err := readField(sc, "Height")
	if err != nil {
		return nil, err
	}
	seed, err := readField(sc, "Seed")
	if err != nil {
		return nil, err
	}

	s, err := New(name, width, height, seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSave, err)
	}

	if err := readSeparator(sc, width); err != nil {
		return nil, err
	}
	terrain := make([]grid.TileType, 0, width*height)
	for row := 0; row < height; row++ {
		line, err := readLine(sc)
		if err != nil {
			return nil, err
		}
		if len(line) != width {
			return nil, fmt.Errorf("%w: map row %q is not %d characters", ErrBadSave, line, width)
		}
		for i := 0; i < len(line); i++ {
			t, err := grid.DecodeTileType(line[i])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadSave, err)
			}
			terrain = append(terrain, t)
		}
	}
	if err := s.grid.SetTerrain(terrain); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSave, err)
	}
	if err := readSeparator(sc, width); err != nil {
		return nil, err
	}

	for sc.Scan() {
		e, err := decodeEntity(sc.Text())
		if err != nil {
			return nil, err
		}
		if err := s.Place(e); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSave, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read save data: %w", err)
	}
	return s, nil
}

// readLine returns the next line, failing if the input has run out.
func readLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("failed to read save data: %w", err)
		}
		return "", fmt.Errorf("%w: unexpected end of input", ErrBadSave)
	}
	return sc.Text(), nil
}

// readField parses a "Key:value" header line. The line must contain exactly
// one colon, the expected key, and an integer value no smaller than -1; a
// literal -1 is substituted with the default of 5.
func readField(sc *bufio.Scanner, key string) (int, error) {
	line, err := readLine(sc)
	if err != nil {
		return 0, err
	}
	if strings.Count(line, ":") != 1 {
		return 0, fmt.Errorf("%w: header line %q must contain exactly one colon", ErrBadSave, line)
	}
	parts := strings.SplitN(line, ":", 2)
	if parts[0] != key {
		return 0, fmt.Errorf("%w: expected %q header, got %q", ErrBadSave, key, line)
	}
	v, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %s value %q is not an integer", ErrBadSave, key, parts[1])
	}
	if v < -1 {
		return 0, fmt.Errorf("%w: %s value %d out of range", ErrBadSave, key, v)
	}
	if v == -1 {
		v = defaultDimension
	}
	return v, nil
}

// readSeparator consumes a line of exactly width '=' characters.
func readSeparator(sc *bufio.Scanner, width int) error {
	line, err := readLine(sc)
	if err != nil {
		return err
	}
	if line != strings.Repeat("=", width) {
		return fmt.Errorf("%w: expected separator of %d '=' characters, got %q", ErrBadSave, width, line)
	}
	return nil
}

// decodeEntity parses one entity line. The leading token selects the
// variant and fixes the expected hyphen count: User-x,y-name,
// Flora-SIZE-x,y, or Fauna-SIZE-x,y-HABITAT.
func decodeEntity(line string) (entity.Entity, error) {
	parts := strings.Split(line, "-")
	hyphens := strings.Count(line, "-")
	switch parts[0] {
	case "User":
		if hyphens != 2 || len(parts) != 3 {
			return nil, fmt.Errorf("%w: malformed user line %q", ErrBadSave, line)
		}
		c, err := grid.DecodeCoordinate(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSave, err)
		}
		if strings.TrimSpace(parts[2]) == "" {
			return nil, fmt.Errorf("%w: blank user name in %q", ErrBadSave, line)
		}
		return entity.NewUser(c, parts[2]), nil
	case "Fauna":
		if hyphens != 3 || len(parts) != 4 {
			return nil, fmt.Errorf("%w: malformed animal line %q", ErrBadSave, line)
		}
		size, err := entity.ParseSize(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSave, err)
		}
		c, err := grid.DecodeCoordinate(parts[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSave, err)
		}
		habitat, err := grid.ParseTileType(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSave, err)
		}
		f, err := entity.NewFauna(size, c, habitat)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSave, err)
		}
		return f, nil
	case "Flora":
		if hyphens != 2 || len(parts) != 3 {
			return nil, fmt.Errorf("%w: malformed plant line %q", ErrBadSave, line)
		}
		size, err := entity.ParseSize(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSave, err)
		}
		c, err := grid.DecodeCoordinate(parts[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSave, err)
		}
		return entity.NewFlora(size, c), nil
	default:
		return nil, fmt.Errorf("%w: unrecognized entity line %q", ErrBadSave, line)
	}
}

// Encode returns the text encoding of the scenario, the exact inverse of
// Decode: header lines, separator, map rows, separator, then one line per
// occupied tile in row-major order, newline-joined with no trailing
// newline.
func (s *Scenario) Encode() string {
	width, height := s.grid.Width(), s.grid.Height()
	lines := []string{
		s.name,
		fmt.Sprintf("Width:%d", width),
		fmt.Sprintf("Height:%d", height),
		fmt.Sprintf("Seed:%d", s.seed),
		strings.Repeat("=", width),
	}
	tiles := s.grid.Tiles()
	var row strings.Builder
	for y := 0; y < height; y++ {
		row.Reset()
		for x := 0; x < width; x++ {
			row.WriteString(tiles[y*width+x].Terrain().Encode())
		}
		lines = append(lines, row.String())
	}
	lines = append(lines, strings.Repeat("=", width))
	for _, e := range s.Entities() {
		lines = append(lines, e.Encode())
	}
	return strings.Join(lines, "\n")
}
