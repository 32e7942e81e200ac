package feature

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidArchetype is returned when an archetype is built from parameters
// that cannot describe a tree.
var ErrInvalidArchetype = errors.New("invalid archetype")

// Builder assembles an Archetype. The zero value is not usable; use
// NewBuilder.
type Builder struct {
	a Archetype
}

// NewBuilder returns a Builder holding the parts every archetype needs.
func NewBuilder(trunk BlockProvider, trunkPlacer TrunkPlacer, foliage BlockProvider, foliagePlacer FoliagePlacer, size FeatureSize) *Builder {
	return &Builder{a: Archetype{
		trunk:         trunk,
		trunkPlacer:   trunkPlacer,
		foliage:       foliage,
		foliagePlacer: foliagePlacer,
		size:          size,
	}}
}

// Decorators replaces the decorators of the archetype.
func (b *Builder) Decorators(d ...Decorator) *Builder {
	b.a.decorators = slices.Clone(d)
	return b
}

// Dead marks the archetype as a leafless variant. Dead archetypes must use Air
// as foliage.
func (b *Builder) Dead() *Builder {
	b.a.dead = true
	return b
}

// Build validates the parameters and returns the Archetype. The Builder may be
// used again afterwards without affecting the returned value.
func (b *Builder) Build() (Archetype, error) {
	a := b.a
	a.decorators = slices.Clone(a.decorators)
	if err := validate(a); err != nil {
		return Archetype{}, fmt.Errorf("%w: %w", ErrInvalidArchetype, err)
	}
	return a, nil
}

// MustBuild calls Build and panics if the archetype is invalid.
func (b *Builder) MustBuild() Archetype {
	a, err := b.Build()
	if err != nil {
		panic(err)
	}
	return a
}

func validate(a Archetype) error {
	switch {
	case a.trunk == nil:
		return errors.New("trunk block is not set")
	case a.trunkPlacer == nil:
		return errors.New("trunk placer is not set")
	case a.foliage == nil:
		return errors.New("foliage block is not set")
	case a.foliagePlacer == nil:
		return errors.New("foliage placer is not set")
	case a.size == nil:
		return errors.New("size is not set")
	}
	trunks := a.trunk.Candidates()
	if len(trunks) == 0 {
		return errors.New("trunk block has no candidates")
	}
	for _, b := range trunks {
		if b.Air() {
			return errors.New("trunk block must not be air")
		}
	}
	leaves := a.foliage.Candidates()
	if len(leaves) == 0 {
		return errors.New("foliage block has no candidates")
	}
	for _, b := range leaves {
		if b.Air() && !a.dead {
			return errors.New("foliage block may only be air for dead archetypes")
		}
		if !b.Air() && a.dead {
			return fmt.Errorf("dead archetype has foliage block %v", b)
		}
	}
	if err := a.trunkPlacer.validate(); err != nil {
		return err
	}
	if err := a.foliagePlacer.validate(); err != nil {
		return err
	}
	if err := a.size.validate(); err != nil {
		return err
	}
	for i, d := range a.decorators {
		if d == nil {
			return fmt.Errorf("decorator %d is nil", i)
		}
		if err := d.validate(); err != nil {
			return err
		}
	}
	return nil
}
