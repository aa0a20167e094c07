package saves

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CB2Moon/InhabitantHunter/scenario"
)

// Extension is the file extension of on-disk scenario saves.
const Extension = ".scenario"

// Entry is a discoverable save file in a saves directory.
type Entry struct {
	Name string // Display name (file name without extension)
	Path string // Full path to the save file
}

// ScanDir scans a directory for scenario save files. Subdirectories and
// hidden files are skipped. A missing directory yields an empty list, not
// an error, so a fresh installation starts cleanly.
func ScanDir(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read saves directory: %w", err)
	}

	var saves []Entry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(name), Extension) {
			continue
		}
		saves = append(saves, Entry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}
	return saves, nil
}

// ReadFile decodes a scenario from an on-disk save file.
func ReadFile(path string) (*scenario.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open save file: %w", err)
	}
	defer f.Close()

	s, err := scenario.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// WriteFile writes the scenario's text encoding to path, creating the
// parent directory if needed.
func WriteFile(path string, s *scenario.Scenario) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create saves directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(s.Encode()), 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	return nil
}
