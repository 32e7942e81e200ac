package bettertrees

import (
	"fmt"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
)

// Identifiers of the archetypes registered by Register. They are registered in
// the namespace of the registry.
const (
	DeadOakLog                  = "dead_oak_log"
	DeadBirchLog                = "dead_birch_log"
	OakStump                    = "oak_stump"
	BirchStump                  = "birch_stump"
	TreeBetterOak               = "tree_better_oak"
	TreeDeadOak                 = "tree_dead_oak"
	TreeBetterSwampOak          = "tree_better_swamp_oak"
	TreeBetterOakRareBees       = "tree_better_oak_rare_bees"
	TreeBetterOakBees           = "tree_better_oak_bees"
	TreeBetterOakMoreBees       = "tree_better_oak_more_bees"
	TreeBetterBirch             = "tree_better_birch"
	TreeDeadBirch               = "tree_dead_birch"
	TreeTallDeadBirch           = "tree_tall_dead_birch"
	TreeBetterBirchRareBees     = "tree_better_birch_rare_bees"
	TreeBetterBirchBees         = "tree_better_birch_bees"
	TreeTallBetterBirchRareBees = "tree_tall_better_birch_rare_bees"
	TreeBetterBirchMoreBees     = "tree_better_birch_more_bees"
)

// Beehive chances of the bee variants.
var (
	beesRare   = feature.Beehive{Probability: 0.002}
	beesCommon = feature.Beehive{Probability: 0.05}
	beesAlways = feature.Beehive{Probability: 1}
)

// archetype is an archetype waiting to be registered.
type archetype struct {
	name    string
	builder *feature.Builder
}

// archetypes returns every fixed archetype in registration order. Undergrowth
// bushes depend on the options and are built separately.
func archetypes(blocks *blockResolver) []archetype {
	oakWood, birchWood := blocks.block("oak_wood"), blocks.block("birch_wood")
	return []archetype{
		{DeadOakLog, deadLogBuilder(oakWood).Decorators(feature.TrunkVine{})},
		{DeadBirchLog, deadLogBuilder(birchWood).Decorators(feature.TrunkVine{})},
		{OakStump, stumpBuilder(oakWood)},
		{BirchStump, stumpBuilder(birchWood)},
		{TreeBetterOak, oakBuilder(blocks, false)},
		{TreeDeadOak, oakBuilder(blocks, true).Decorators(feature.TrunkVine{})},
		{TreeBetterSwampOak, oakBuilder(blocks, false).Decorators(feature.LeavesVine{Probability: 0.25})},
		{TreeBetterOakRareBees, oakBuilder(blocks, false).Decorators(beesRare)},
		{TreeBetterOakBees, oakBuilder(blocks, false).Decorators(beesAlways)},
		{TreeBetterOakMoreBees, oakBuilder(blocks, false).Decorators(beesCommon)},
		{TreeBetterBirch, birchBuilder(blocks, false, false)},
		{TreeDeadBirch, birchBuilder(blocks, false, true).Decorators(feature.TrunkVine{})},
		{TreeTallDeadBirch, birchBuilder(blocks, true, true).Decorators(feature.TrunkVine{})},
		{TreeBetterBirchRareBees, birchBuilder(blocks, false, false).Decorators(beesRare)},
		{TreeBetterBirchBees, birchBuilder(blocks, false, false).Decorators(beesAlways)},
		{TreeTallBetterBirchRareBees, birchBuilder(blocks, true, false).Decorators(beesRare)},
		{TreeBetterBirchMoreBees, birchBuilder(blocks, false, false).Decorators(beesCommon)},
	}
}

func oakBuilder(blocks *blockResolver, dead bool) *feature.Builder {
	leaves := blocks.block("oak_leaves")
	if dead {
		leaves = world.Air
	}
	b := feature.NewBuilder(
		feature.Simple{State: blocks.block("oak_log")},
		feature.BetterTrunk{
			Base: 6, RandA: 6, RandB: 0,
			MinWidth: 0.85, MaxWidth: 1.25,
			BranchStart: 0, MaxBranchLength: 5,
			MinNarrowChance: 0, MaxNarrowChance: 1,
			MinBranchChance: 0.3, MaxBranchChance: 0.95,
		},
		feature.Simple{State: leaves},
		feature.LargeOakFoliage{Radius: feature.BiasedToBottom{Min: 1, Max: 2}, Offset: feature.Constant(0), Height: 2},
		feature.TwoLayers{Limit: 5, LowerSize: 0, UpperSize: 10},
	)
	if dead {
		b.Dead()
	}
	return b
}

func birchBuilder(blocks *blockResolver, tall, dead bool) *feature.Builder {
	leaves := blocks.block("birch_leaves")
	if dead {
		leaves = world.Air
	}
	base, randA := 5, 3
	if tall {
		base, randA = 10, 10
	}
	b := feature.NewBuilder(
		feature.Simple{State: blocks.block("birch_log")},
		feature.BetterTrunk{
			Base: base, RandA: randA, RandB: 0,
			MinWidth: 0.75, MaxWidth: 2,
			BranchStart: 2, MaxBranchLength: 5,
			MinNarrowChance: 0, MaxNarrowChance: 1,
			MinBranchChance: 0.45, MaxBranchChance: 1,
		},
		feature.Simple{State: leaves},
		feature.LargeOakFoliage{Radius: feature.BiasedToBottom{Min: 1, Max: 2}, Offset: feature.Constant(0), Height: 2},
		feature.TwoLayers{Limit: 5, LowerSize: 0, UpperSize: 10},
	)
	if dead {
		b.Dead()
	}
	return b
}

func deadLogBuilder(wood world.Block) *feature.Builder {
	return feature.NewBuilder(
		feature.Simple{State: wood},
		feature.DeadLogTrunk{Base: 4, RandA: 6, RandB: 0},
		feature.Simple{State: world.Air},
		feature.BlobFoliage{Radius: feature.Constant(0), Offset: feature.Constant(0), Height: 0},
		feature.TwoLayers{Limit: 1, LowerSize: 10, UpperSize: 10},
	).Dead()
}

func stumpBuilder(wood world.Block) *feature.Builder {
	return feature.NewBuilder(
		feature.Simple{State: wood},
		feature.Better(1, 2, 0),
		feature.Simple{State: world.Air},
		feature.BlobFoliage{Radius: feature.Constant(0), Offset: feature.Constant(0), Height: 0},
		feature.TwoLayers{Limit: 1, LowerSize: 2, UpperSize: 1},
	).Dead()
}

// blockResolver looks up blocks and keeps the first lookup that failed.
type blockResolver struct {
	blocks world.BlockLookup
	err    error
}

func (r *blockResolver) block(name string) world.Block {
	b, ok := r.blocks.Block(name)
	if !ok && r.err == nil {
		r.err = fmt.Errorf("%w: %v", ErrUnknownBlock, name)
	}
	return b
}
