package feature

import (
	"fmt"

	"github.com/df-mc/spaghettitrees/server/world"
)

// Spec holds the parameters of an Archetype in a form that can be serialised.
// FromSpec(a.Spec()) returns an archetype equal to a.
type Spec struct {
	Trunk         []string        `json:"trunk" yaml:"trunk"`
	TrunkPlacer   TrunkSpec       `json:"trunk_placer" yaml:"trunk_placer"`
	Foliage       []string        `json:"foliage" yaml:"foliage"`
	FoliagePlacer FoliageSpec     `json:"foliage_placer" yaml:"foliage_placer"`
	Size          SizeSpec        `json:"size" yaml:"size"`
	Decorators    []DecoratorSpec `json:"decorators,omitempty" yaml:"decorators,omitempty"`
	Dead          bool            `json:"dead,omitempty" yaml:"dead,omitempty"`
}

// TrunkSpec holds the parameters of a TrunkPlacer. Type is one of straight,
// better and dead_log.
type TrunkSpec struct {
	Type            string  `json:"type" yaml:"type"`
	Base            int     `json:"base" yaml:"base"`
	RandA           int     `json:"rand_a" yaml:"rand_a"`
	RandB           int     `json:"rand_b" yaml:"rand_b"`
	MinWidth        float64 `json:"min_width,omitempty" yaml:"min_width,omitempty"`
	MaxWidth        float64 `json:"max_width,omitempty" yaml:"max_width,omitempty"`
	BranchStart     int     `json:"branch_start,omitempty" yaml:"branch_start,omitempty"`
	MaxBranchLength int     `json:"max_branch_length,omitempty" yaml:"max_branch_length,omitempty"`
	MinNarrowChance float64 `json:"min_narrow_chance,omitempty" yaml:"min_narrow_chance,omitempty"`
	MaxNarrowChance float64 `json:"max_narrow_chance,omitempty" yaml:"max_narrow_chance,omitempty"`
	MinBranchChance float64 `json:"min_branch_chance,omitempty" yaml:"min_branch_chance,omitempty"`
	MaxBranchChance float64 `json:"max_branch_chance,omitempty" yaml:"max_branch_chance,omitempty"`
}

// IntSpec holds the parameters of an IntProvider. Type is constant or
// biased_to_bottom. Constants store their value in both Min and Max.
type IntSpec struct {
	Type string `json:"type" yaml:"type"`
	Min  int    `json:"min" yaml:"min"`
	Max  int    `json:"max" yaml:"max"`
}

// FoliageSpec holds the parameters of a FoliagePlacer. Type is one of blob,
// bush and large_oak.
type FoliageSpec struct {
	Type   string  `json:"type" yaml:"type"`
	Radius IntSpec `json:"radius" yaml:"radius"`
	Offset IntSpec `json:"offset" yaml:"offset"`
	Height int     `json:"height" yaml:"height"`
}

// SizeSpec holds the parameters of a FeatureSize. Type is two_layers.
type SizeSpec struct {
	Type      string `json:"type" yaml:"type"`
	Limit     int    `json:"limit" yaml:"limit"`
	LowerSize int    `json:"lower_size" yaml:"lower_size"`
	UpperSize int    `json:"upper_size" yaml:"upper_size"`
}

// DecoratorSpec holds the parameters of a Decorator. Type is one of
// trunk_vine, leaves_vine and beehive.
type DecoratorSpec struct {
	Type        string  `json:"type" yaml:"type"`
	Probability float64 `json:"probability,omitempty" yaml:"probability,omitempty"`
}

// Spec returns the parameters of the archetype.
func (a Archetype) Spec() Spec {
	s := Spec{
		Trunk:   blockNames(a.trunk.Candidates()),
		Foliage: blockNames(a.foliage.Candidates()),
		Dead:    a.dead,
	}
	switch t := a.trunkPlacer.(type) {
	case StraightTrunk:
		s.TrunkPlacer = TrunkSpec{Type: "straight", Base: t.Base, RandA: t.RandA, RandB: t.RandB}
	case BetterTrunk:
		s.TrunkPlacer = TrunkSpec{
			Type: "better", Base: t.Base, RandA: t.RandA, RandB: t.RandB,
			MinWidth: t.MinWidth, MaxWidth: t.MaxWidth,
			BranchStart: t.BranchStart, MaxBranchLength: t.MaxBranchLength,
			MinNarrowChance: t.MinNarrowChance, MaxNarrowChance: t.MaxNarrowChance,
			MinBranchChance: t.MinBranchChance, MaxBranchChance: t.MaxBranchChance,
		}
	case DeadLogTrunk:
		s.TrunkPlacer = TrunkSpec{Type: "dead_log", Base: t.Base, RandA: t.RandA, RandB: t.RandB}
	}
	switch f := a.foliagePlacer.(type) {
	case BlobFoliage:
		s.FoliagePlacer = FoliageSpec{Type: "blob", Radius: intSpec(f.Radius), Offset: intSpec(f.Offset), Height: f.Height}
	case BushFoliage:
		s.FoliagePlacer = FoliageSpec{Type: "bush", Radius: intSpec(f.Radius), Offset: intSpec(f.Offset), Height: f.Height}
	case LargeOakFoliage:
		s.FoliagePlacer = FoliageSpec{Type: "large_oak", Radius: intSpec(f.Radius), Offset: intSpec(f.Offset), Height: f.Height}
	}
	if size, ok := a.size.(TwoLayers); ok {
		s.Size = SizeSpec{Type: "two_layers", Limit: size.Limit, LowerSize: size.LowerSize, UpperSize: size.UpperSize}
	}
	for _, d := range a.decorators {
		switch d := d.(type) {
		case TrunkVine:
			s.Decorators = append(s.Decorators, DecoratorSpec{Type: "trunk_vine"})
		case LeavesVine:
			s.Decorators = append(s.Decorators, DecoratorSpec{Type: "leaves_vine", Probability: d.Probability})
		case Beehive:
			s.Decorators = append(s.Decorators, DecoratorSpec{Type: "beehive", Probability: d.Probability})
		}
	}
	return s
}

// FromSpec builds an Archetype from its parameters. Block names are resolved
// using the lookup passed.
func FromSpec(s Spec, blocks world.BlockLookup) (Archetype, error) {
	trunk, err := provider(s.Trunk, blocks)
	if err != nil {
		return Archetype{}, fmt.Errorf("%w: trunk: %w", ErrInvalidArchetype, err)
	}
	foliage, err := provider(s.Foliage, blocks)
	if err != nil {
		return Archetype{}, fmt.Errorf("%w: foliage: %w", ErrInvalidArchetype, err)
	}

	var trunkPlacer TrunkPlacer
	t := s.TrunkPlacer
	switch t.Type {
	case "straight":
		trunkPlacer = StraightTrunk{Base: t.Base, RandA: t.RandA, RandB: t.RandB}
	case "better":
		trunkPlacer = BetterTrunk{
			Base: t.Base, RandA: t.RandA, RandB: t.RandB,
			MinWidth: t.MinWidth, MaxWidth: t.MaxWidth,
			BranchStart: t.BranchStart, MaxBranchLength: t.MaxBranchLength,
			MinNarrowChance: t.MinNarrowChance, MaxNarrowChance: t.MaxNarrowChance,
			MinBranchChance: t.MinBranchChance, MaxBranchChance: t.MaxBranchChance,
		}
	case "dead_log":
		trunkPlacer = DeadLogTrunk{Base: t.Base, RandA: t.RandA, RandB: t.RandB}
	default:
		return Archetype{}, fmt.Errorf("%w: unknown trunk placer %q", ErrInvalidArchetype, t.Type)
	}

	radius, err := intProvider(s.FoliagePlacer.Radius)
	if err != nil {
		return Archetype{}, fmt.Errorf("%w: foliage radius: %w", ErrInvalidArchetype, err)
	}
	offset, err := intProvider(s.FoliagePlacer.Offset)
	if err != nil {
		return Archetype{}, fmt.Errorf("%w: foliage offset: %w", ErrInvalidArchetype, err)
	}
	var foliagePlacer FoliagePlacer
	switch s.FoliagePlacer.Type {
	case "blob":
		foliagePlacer = BlobFoliage{Radius: radius, Offset: offset, Height: s.FoliagePlacer.Height}
	case "bush":
		foliagePlacer = BushFoliage{Radius: radius, Offset: offset, Height: s.FoliagePlacer.Height}
	case "large_oak":
		foliagePlacer = LargeOakFoliage{Radius: radius, Offset: offset, Height: s.FoliagePlacer.Height}
	default:
		return Archetype{}, fmt.Errorf("%w: unknown foliage placer %q", ErrInvalidArchetype, s.FoliagePlacer.Type)
	}

	if s.Size.Type != "two_layers" {
		return Archetype{}, fmt.Errorf("%w: unknown size %q", ErrInvalidArchetype, s.Size.Type)
	}
	size := TwoLayers{Limit: s.Size.Limit, LowerSize: s.Size.LowerSize, UpperSize: s.Size.UpperSize}

	var decorators []Decorator
	for _, d := range s.Decorators {
		switch d.Type {
		case "trunk_vine":
			decorators = append(decorators, TrunkVine{})
		case "leaves_vine":
			decorators = append(decorators, LeavesVine{Probability: d.Probability})
		case "beehive":
			decorators = append(decorators, Beehive{Probability: d.Probability})
		default:
			return Archetype{}, fmt.Errorf("%w: unknown decorator %q", ErrInvalidArchetype, d.Type)
		}
	}

	b := NewBuilder(trunk, trunkPlacer, foliage, foliagePlacer, size)
	if len(decorators) > 0 {
		b.Decorators(decorators...)
	}
	if s.Dead {
		b.Dead()
	}
	return b.Build()
}

func provider(names []string, blocks world.BlockLookup) (BlockProvider, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no blocks")
	}
	candidates := make([]world.Block, 0, len(names))
	for _, name := range names {
		b, ok := blocks.Block(name)
		if !ok {
			return nil, fmt.Errorf("unknown block %q", name)
		}
		candidates = append(candidates, b)
	}
	return UniformOf(candidates...), nil
}

func intSpec(p IntProvider) IntSpec {
	lo, hi := p.Bounds()
	if _, ok := p.(Constant); ok {
		return IntSpec{Type: "constant", Min: lo, Max: hi}
	}
	return IntSpec{Type: "biased_to_bottom", Min: lo, Max: hi}
}

func intProvider(s IntSpec) (IntProvider, error) {
	switch s.Type {
	case "constant":
		return Constant(s.Min), nil
	case "biased_to_bottom":
		return BiasedToBottom{Min: s.Min, Max: s.Max}, nil
	}
	return nil, fmt.Errorf("unknown int provider %q", s.Type)
}

func blockNames(blocks []world.Block) []string {
	names := make([]string, len(blocks))
	for i, b := range blocks {
		names[i] = b.Name
	}
	return names
}
