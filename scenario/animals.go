package scenario

import "github.com/CB2Moon/InhabitantHunter/entity"

// AnimalRegistry tracks the animals currently alive in a scenario. Animals
// are registered when placed and removed when collected.
type AnimalRegistry struct {
	animals []*entity.Fauna
}

// NewAnimalRegistry creates an empty registry.
func NewAnimalRegistry() *AnimalRegistry {
	return &AnimalRegistry{}
}

// Add registers an animal. Adding the same animal twice is a no-op.
func (r *AnimalRegistry) Add(f *entity.Fauna) {
	if r.Contains(f) {
		return
	}
	r.animals = append(r.animals, f)
}

// Remove unregisters an animal. Removing an unknown animal is a no-op.
func (r *AnimalRegistry) Remove(f *entity.Fauna) {
	for i, a := range r.animals {
		if a == f {
			r.animals = append(r.animals[:i], r.animals[i+1:]...)
			return
		}
	}
}

// Contains reports whether the animal is registered.
func (r *AnimalRegistry) Contains(f *entity.Fauna) bool {
	for _, a := range r.animals {
		if a == f {
			return true
		}
	}
	return false
}

// Animals returns a copy of the registered animals in registration order.
func (r *AnimalRegistry) Animals() []*entity.Fauna {
	out := make([]*entity.Fauna, len(r.animals))
	copy(out, r.animals)
	return out
}
