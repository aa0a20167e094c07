// Package saves persists scenarios. Slot saves go through the gdata
// cross-platform storage manager; file saves use plain .scenario text files
// that can be edited by hand and discovered with ScanDir.
package saves

import (
	"fmt"
	"strings"

	"github.com/quasilyte/gdata/v2"

	"github.com/CB2Moon/InhabitantHunter/scenario"
)

// saveObject is the gdata object all scenario slots are stored under.
const saveObject = "scenarios"

// Store persists scenarios into named slots.
type Store struct {
	manager *gdata.Manager
}

// NewStore opens the platform storage for the given application name.
func NewStore(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open save storage: %w", err)
	}
	return &Store{manager: manager}, nil
}

// NewStoreWithManager wraps an already opened storage manager.
func NewStoreWithManager(manager *gdata.Manager) *Store {
	return &Store{manager: manager}
}

// Save writes the scenario's text encoding into the slot, replacing any
// previous content.
func (st *Store) Save(slot string, s *scenario.Scenario) error {
	if strings.TrimSpace(slot) == "" {
		return fmt.Errorf("save slot must not be empty")
	}
	if err := st.manager.SaveObjectProp(saveObject, slot, []byte(s.Encode())); err != nil {
		return fmt.Errorf("failed to save scenario to slot %q: %w", slot, err)
	}
	return nil
}

// Load decodes the scenario stored in the slot.
func (st *Store) Load(slot string) (*scenario.Scenario, error) {
	if !st.manager.ObjectPropExists(saveObject, slot) {
		return nil, fmt.Errorf("no scenario saved in slot %q", slot)
	}
	data, err := st.manager.LoadObjectProp(saveObject, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %q: %w", slot, err)
	}
	s, err := scenario.Decode(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("slot %q: %w", slot, err)
	}
	return s, nil
}

// Exists reports whether the slot holds a saved scenario.
func (st *Store) Exists(slot string) bool {
	return st.manager.ObjectPropExists(saveObject, slot)
}
