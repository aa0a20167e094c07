package scenario

import (
	"errors"
	"strings"
	"testing"

	"github.com/CB2Moon/InhabitantHunter/entity"
	"github.com/CB2Moon/InhabitantHunter/grid"
)

func buildSaveScenario(t *testing.T) *Scenario {
	t.Helper()
	s, err := New("Scenario X", 5, 5, 0)
	if err != nil {
		t.Fatalf("Failed to create scenario: %v", err)
	}
	terrain := make([]grid.TileType, 0, 25)
	for _, row := range []string{
		"LLLLS",
		"LLSSO",
		"LLSOO",
		"LLSSS",
		"LLLLL",
	} {
		for i := 0; i < len(row); i++ {
			tt, err := grid.DecodeTileType(row[i])
			if err != nil {
				t.Fatalf("Failed to decode terrain: %v", err)
			}
			terrain = append(terrain, tt)
		}
	}
	if err := s.Grid().SetTerrain(terrain); err != nil {
		t.Fatalf("Failed to set terrain: %v", err)
	}
	mouse, err := entity.NewFauna(entity.Small, grid.Coordinate{X: 1, Y: 1}, grid.Land)
	if err != nil {
		t.Fatalf("Failed to create fauna: %v", err)
	}
	if err := s.Place(mouse); err != nil {
		t.Fatalf("Failed to place fauna: %v", err)
	}
	return s
}

func TestEncode(t *testing.T) {
	s := buildSaveScenario(t)
	want := strings.Join([]string{
		"Scenario X",
		"Width:5",
		"Height:5",
		"Seed:0",
		"=====",
		"LLLLS",
		"LLSSO",
		"LLSOO",
		"LLSSS",
		"LLLLL",
		"=====",
		"Fauna-SMALL-1,1-LAND",
	}, "\n")
	if s.Encode() != want {
		t.Errorf("Unexpected encoding:\n%s\nwant:\n%s", s.Encode(), want)
	}
}

func TestEncodeEntityOrder(t *testing.T) {
	s, err := New("order", 5, 5, 0)
	if err != nil {
		t.Fatalf("Failed to create scenario: %v", err)
	}
	// Placed out of tile order; encoding must be row-major.
	for _, e := range []entity.Entity{
		entity.NewFlora(entity.Giant, grid.Coordinate{X: 2, Y: 3}),
		entity.NewUser(grid.Coordinate{X: 4, Y: 0}, "u"),
		entity.NewFlora(entity.Small, grid.Coordinate{X: 0, Y: 0}),
	} {
		if err := s.Place(e); err != nil {
			t.Fatalf("Failed to place %s: %v", e, err)
		}
	}
	lines := strings.Split(s.Encode(), "\n")
	tail := lines[len(lines)-3:]
	want := []string{
		"Flora-SMALL-0,0",
		"User-4,0-u",
		"Flora-GIANT-2,3",
	}
	for i := range want {
		if tail[i] != want[i] {
			t.Errorf("Expected entity line %d to be %q, got %q", i, want[i], tail[i])
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	s := buildSaveScenario(t)

	decoded, err := Decode(strings.NewReader(s.Encode()))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if !decoded.Equal(s) {
		t.Error("Expected decoded scenario to equal the original")
	}
	if decoded.Seed() != s.Seed() {
		t.Errorf("Expected seed %d, got %d", s.Seed(), decoded.Seed())
	}
	if decoded.Encode() != s.Encode() {
		t.Error("Expected re-encoding to be identical")
	}
	if len(decoded.Animals().Animals()) != 1 {
		t.Errorf("Expected 1 registered animal, got %d", len(decoded.Animals().Animals()))
	}
}

func TestDecodeDefaultDimensions(t *testing.T) {
	// A -1 header value is replaced with the default of 5, so these
	// 5-wide rows are valid.
	save := strings.Join([]string{
		"Example File",
		"Width:-1",
		"Height:6",
		"Seed:20",
		"=====",
		"LLLLS",
		"LLSSO",
		"LLSOO",
		"LLSSS",
		"LLLLL",
		"LLLLL",
		"=====",
		"Fauna-SMALL-1,1-LAND",
		"Flora-LARGE-2,5",
	}, "\n")

	s, err := Decode(strings.NewReader(save))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if s.Grid().Width() != 5 || s.Grid().Height() != 6 {
		t.Errorf("Expected 5x6 grid, got %dx%d", s.Grid().Width(), s.Grid().Height())
	}
	if s.Seed() != 20 {
		t.Errorf("Expected seed 20, got %d", s.Seed())
	}
	if len(s.Entities()) != 2 {
		t.Errorf("Expected 2 entities, got %d", len(s.Entities()))
	}
}

func TestDecodeRejectsMalformedSaves(t *testing.T) {
	valid := []string{
		"name",
		"Width:5",
		"Height:5",
		"Seed:5",
		"=====",
		"LLLLL",
		"LLLLL",
		"LLLLL",
		"LLLLL",
		"LLLLL",
		"=====",
	}
	mutate := func(line int, replacement string) string {
		lines := make([]string, len(valid))
		copy(lines, valid)
		lines[line] = replacement
		return strings.Join(lines, "\n")
	}

	cases := map[string]string{
		"non-integer width":     mutate(1, "Width:abc"),
		"two colons":            mutate(1, "Width:5:"),
		"wrong key":             mutate(1, "Wdith:5"),
		"width below -1":        mutate(1, "Width:-2"),
		"width above maximum":   mutate(1, "Width:16"),
		"negative seed":         mutate(3, "Seed:-5"),
		"short map row":         mutate(5, "LLLL"),
		"long map row":          mutate(5, "LLLLLL"),
		"unknown terrain":       mutate(5, "LLXLL"),
		"bad first separator":   mutate(4, "===="),
		"bad second separator":  mutate(10, "=-==="),
		"blank name":            mutate(0, "   "),
		"truncated input":       strings.Join(valid[:8], "\n"),
		"unknown entity token":  strings.Join(append(append([]string{}, valid...), "Rock-SMALL-1,1"), "\n"),
		"malformed entity line": strings.Join(append(append([]string{}, valid...), "User-1,1"), "\n"),
		"bad entity size":       strings.Join(append(append([]string{}, valid...), "Flora-HUGE-1,1"), "\n"),
		"bad entity habitat":    strings.Join(append(append([]string{}, valid...), "Fauna-SMALL-1,1-SAND"), "\n"),
		"entity out of bounds":  strings.Join(append(append([]string{}, valid...), "Flora-SMALL-9,9"), "\n"),
		"duplicate coordinate": strings.Join(append(append([]string{}, valid...),
			"Flora-SMALL-1,1", "Fauna-SMALL-1,1-LAND"), "\n"),
	}

	for name, save := range cases {
		if _, err := Decode(strings.NewReader(save)); !errors.Is(err, ErrBadSave) {
			t.Errorf("%s: expected ErrBadSave, got %v", name, err)
		}
	}
}

func TestDecodeRejectsEntityOnWrongTerrain(t *testing.T) {
	save := strings.Join([]string{
		"name",
		"Width:5",
		"Height:5",
		"Seed:5",
		"=====",
		"OLLLL",
		"LLLLL",
		"LLLLL",
		"LLLLL",
		"LLLLL",
		"=====",
		"User-0,0-u",
	}, "\n")
	if _, err := Decode(strings.NewReader(save)); !errors.Is(err, ErrBadSave) {
		t.Errorf("Expected ErrBadSave for a user on ocean, got %v", err)
	}
}
