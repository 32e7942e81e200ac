package feature

import (
	"fmt"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// nbtArchetype is the NBT layout of an archetype.
type nbtArchetype struct {
	Trunk         []string       `nbt:"trunk"`
	TrunkPlacer   nbtTrunk       `nbt:"trunk_placer"`
	Foliage       []string       `nbt:"foliage"`
	FoliagePlacer nbtFoliage     `nbt:"foliage_placer"`
	Size          nbtSize        `nbt:"size"`
	Decorators    []nbtDecorator `nbt:"decorators"`
	Dead          uint8          `nbt:"dead"`
}

type nbtTrunk struct {
	Type            string  `nbt:"type"`
	Base            int32   `nbt:"base"`
	RandA           int32   `nbt:"rand_a"`
	RandB           int32   `nbt:"rand_b"`
	MinWidth        float64 `nbt:"min_width"`
	MaxWidth        float64 `nbt:"max_width"`
	BranchStart     int32   `nbt:"branch_start"`
	MaxBranchLength int32   `nbt:"max_branch_length"`
	MinNarrowChance float64 `nbt:"min_narrow_chance"`
	MaxNarrowChance float64 `nbt:"max_narrow_chance"`
	MinBranchChance float64 `nbt:"min_branch_chance"`
	MaxBranchChance float64 `nbt:"max_branch_chance"`
}

type nbtInt struct {
	Type string `nbt:"type"`
	Min  int32  `nbt:"min"`
	Max  int32  `nbt:"max"`
}

type nbtFoliage struct {
	Type   string `nbt:"type"`
	Radius nbtInt `nbt:"radius"`
	Offset nbtInt `nbt:"offset"`
	Height int32  `nbt:"height"`
}

type nbtSize struct {
	Type      string `nbt:"type"`
	Limit     int32  `nbt:"limit"`
	LowerSize int32  `nbt:"lower_size"`
	UpperSize int32  `nbt:"upper_size"`
}

type nbtDecorator struct {
	Type        string  `nbt:"type"`
	Probability float64 `nbt:"probability"`
}

// Encode encodes the parameters of the archetype into little endian NBT, the
// format used by Bedrock Edition for block and feature data on disk.
func Encode(a Archetype) ([]byte, error) {
	s := a.Spec()
	t, f := s.TrunkPlacer, s.FoliagePlacer
	data := nbtArchetype{
		Trunk: s.Trunk,
		TrunkPlacer: nbtTrunk{
			Type: t.Type, Base: int32(t.Base), RandA: int32(t.RandA), RandB: int32(t.RandB),
			MinWidth: t.MinWidth, MaxWidth: t.MaxWidth,
			BranchStart: int32(t.BranchStart), MaxBranchLength: int32(t.MaxBranchLength),
			MinNarrowChance: t.MinNarrowChance, MaxNarrowChance: t.MaxNarrowChance,
			MinBranchChance: t.MinBranchChance, MaxBranchChance: t.MaxBranchChance,
		},
		Foliage: s.Foliage,
		FoliagePlacer: nbtFoliage{
			Type:   f.Type,
			Radius: nbtInt{Type: f.Radius.Type, Min: int32(f.Radius.Min), Max: int32(f.Radius.Max)},
			Offset: nbtInt{Type: f.Offset.Type, Min: int32(f.Offset.Min), Max: int32(f.Offset.Max)},
			Height: int32(f.Height),
		},
		Size:       nbtSize{Type: s.Size.Type, Limit: int32(s.Size.Limit), LowerSize: int32(s.Size.LowerSize), UpperSize: int32(s.Size.UpperSize)},
		Decorators: make([]nbtDecorator, len(s.Decorators)),
	}
	for i, d := range s.Decorators {
		data.Decorators[i] = nbtDecorator{Type: d.Type, Probability: d.Probability}
	}
	if s.Dead {
		data.Dead = 1
	}
	b, err := nbt.MarshalEncoding(data, nbt.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("encode archetype: %w", err)
	}
	return b, nil
}

// Decode decodes an archetype encoded using Encode. Block names are resolved
// using the lookup passed.
func Decode(b []byte, blocks world.BlockLookup) (Archetype, error) {
	var data nbtArchetype
	if err := nbt.UnmarshalEncoding(b, &data, nbt.LittleEndian); err != nil {
		return Archetype{}, fmt.Errorf("decode archetype: %w", err)
	}
	t, f := data.TrunkPlacer, data.FoliagePlacer
	s := Spec{
		Trunk: data.Trunk,
		TrunkPlacer: TrunkSpec{
			Type: t.Type, Base: int(t.Base), RandA: int(t.RandA), RandB: int(t.RandB),
			MinWidth: t.MinWidth, MaxWidth: t.MaxWidth,
			BranchStart: int(t.BranchStart), MaxBranchLength: int(t.MaxBranchLength),
			MinNarrowChance: t.MinNarrowChance, MaxNarrowChance: t.MaxNarrowChance,
			MinBranchChance: t.MinBranchChance, MaxBranchChance: t.MaxBranchChance,
		},
		Foliage: data.Foliage,
		FoliagePlacer: FoliageSpec{
			Type:   f.Type,
			Radius: IntSpec{Type: f.Radius.Type, Min: int(f.Radius.Min), Max: int(f.Radius.Max)},
			Offset: IntSpec{Type: f.Offset.Type, Min: int(f.Offset.Min), Max: int(f.Offset.Max)},
			Height: int(f.Height),
		},
		Size: SizeSpec{Type: data.Size.Type, Limit: int(data.Size.Limit), LowerSize: int(data.Size.LowerSize), UpperSize: int(data.Size.UpperSize)},
		Dead: data.Dead != 0,
	}
	for _, d := range data.Decorators {
		s.Decorators = append(s.Decorators, DecoratorSpec{Type: d.Type, Probability: d.Probability})
	}
	a, err := FromSpec(s, blocks)
	if err != nil {
		return Archetype{}, fmt.Errorf("decode archetype: %w", err)
	}
	return a, nil
}
