package scenario

import "fmt"

// Manager holds a set of named scenarios and tracks which one is active.
// It is a plain value owned by the caller, not process-wide state; code
// that needs the active scenario receives the manager (or the scenario
// itself) explicitly.
type Manager struct {
	order     []string
	scenarios map[string]*Scenario
	active    string
}

// NewManager creates an empty manager with no active scenario.
func NewManager() *Manager {
	return &Manager{scenarios: make(map[string]*Scenario)}
}

// Register adds a scenario under its name. The first registered scenario
// becomes active. Registering a second scenario with an existing name is
// an error.
func (m *Manager) Register(s *Scenario) error {
	if _, ok := m.scenarios[s.Name()]; ok {
		return fmt.Errorf("scenario %q is already registered", s.Name())
	}
	m.scenarios[s.Name()] = s
	m.order = append(m.order, s.Name())
	if len(m.order) == 1 {
		m.active = s.Name()
	}
	return nil
}

// SetActive makes the named scenario the active one.
func (m *Manager) SetActive(name string) error {
	if _, ok := m.scenarios[name]; !ok {
		return fmt.Errorf("no scenario registered as %q", name)
	}
	m.active = name
	return nil
}

// Active returns the active scenario, or nil when none is registered.
func (m *Manager) Active() *Scenario {
	return m.scenarios[m.active]
}

// Scenario returns the scenario registered under name, or nil.
func (m *Manager) Scenario(name string) *Scenario {
	return m.scenarios[name]
}

// Names returns the registered scenario names in registration order.
func (m *Manager) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
