package bettertrees

import (
	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/populate"
)

// Slots of the vegetation tables registered by Register.
const (
	ForestTrees            = "better_forest_trees"
	BirchForestTrees       = "better_birch_forest_trees"
	TallBirchForestTrees   = "better_tall_birch_forest_trees"
	DarkForestVegetation   = "better_dark_forest_vegetation"
	BambooJungleVegetation = "better_bamboo_jungle_vegetation"
	JungleTrees            = "better_jungle_trees"
	SparseJungleTrees      = "better_sparse_jungle_trees"
	SavannaTrees           = "better_savannah_trees"
	MountainTrees          = "better_mountain_trees"
	MeadowTrees            = "better_meadow_trees"
)

// Identifiers of the host features the vegetation tables refer to.
const (
	HugeBrownMushroom     = "minecraft:huge_brown_mushroom"
	HugeRedMushroom       = "minecraft:huge_red_mushroom"
	DarkOakChecked        = "minecraft:dark_oak_checked"
	JungleBush            = "minecraft:jungle_bush"
	MegaJungleTreeChecked = "minecraft:mega_jungle_tree_checked"
	PatchGrassJungle      = "minecraft:patch_grass_jungle"
	JungleTree            = "minecraft:jungle_tree"
	AcaciaChecked         = "minecraft:acacia_checked"
	SpruceChecked         = "minecraft:spruce_checked"
)

// Identifiers of the plain vanilla trees that the better variants replace.
// They are registered for comparison and are not referred to by any table.
const (
	OakTree        = "minecraft:oak_tree"
	BirchTree      = "minecraft:birch_tree"
	SuperBirchTree = "minecraft:super_birch_tree"
)

// HostFeatures returns the vanilla features the vegetation tables refer to,
// together with the plain vanilla trees, implemented by the populate package.
func HostFeatures() map[string]feature.Feature {
	return map[string]feature.Feature{
		OakTree:               populate.OakTree{},
		BirchTree:             populate.BirchTree{},
		SuperBirchTree:        populate.BirchTree{Super: true},
		HugeBrownMushroom:     populate.HugeMushroom{},
		HugeRedMushroom:       populate.HugeMushroom{Red: true},
		DarkOakChecked:        populate.DarkOakTree{},
		JungleBush:            populate.JungleBush{},
		MegaJungleTreeChecked: populate.JungleTree{Mega: true},
		PatchGrassJungle:      populate.GrassPatch{Block: world.Fern},
		JungleTree:            populate.JungleTree{},
		AcaciaChecked:         populate.AcaciaTree{},
		SpruceChecked:         populate.SpruceTree{},
	}
}

// Undergrowth shares of the forest tables. The share is split evenly among
// the bush variants that a table uses.
const (
	forestUndergrowth    = 0.21
	birchUndergrowth     = 0.1
	tallBirchUndergrowth = 0.1
	maxBirchBushVariants = 2
	maxTallBushVariants  = 1
	maxBushVariants      = 8
	defaultBushVariants  = 3
)

var bushNames = [maxBushVariants]string{
	"undergrowth_bush_one", "undergrowth_bush_two", "undergrowth_bush_three", "undergrowth_bush_four",
	"undergrowth_bush_five", "undergrowth_bush_six", "undergrowth_bush_seven", "undergrowth_bush_eight",
}

type entry struct {
	feature string
	chance  float64
}

type table struct {
	slot     string
	entries  []entry
	fallback string
}

// bushes returns the entries of the first n undergrowth bushes, sharing the
// chance passed evenly.
func bushes(n int, share float64) []entry {
	entries := make([]entry, n)
	for i := range entries {
		entries[i] = entry{feature: bushNames[i], chance: share / float64(n)}
	}
	return entries
}

func concat(parts ...[]entry) []entry {
	var entries []entry
	for _, p := range parts {
		entries = append(entries, p...)
	}
	return entries
}

// tables returns the vegetation tables in registration order, for the amount
// of bush variants passed.
func tables(bushVariants int) []table {
	return []table{
		{
			slot: ForestTrees,
			entries: concat([]entry{
				{TreeBetterBirchRareBees, 0.1},
				{DeadOakLog, 0.25},
				{DeadBirchLog, 0.1},
				{TreeDeadOak, 0.024},
				{TreeDeadBirch, 0.006},
			}, bushes(bushVariants, forestUndergrowth), []entry{
				{OakStump, 0.032},
				{BirchStump, 0.008},
			}),
			fallback: TreeBetterOakRareBees,
		},
		{
			slot: BirchForestTrees,
			entries: concat([]entry{
				{DeadBirchLog, 0.22},
				{TreeDeadBirch, 0.03},
			}, bushes(min(bushVariants, maxBirchBushVariants), birchUndergrowth), []entry{
				{BirchStump, 0.04},
			}),
			fallback: TreeBetterBirchRareBees,
		},
		{
			slot: TallBirchForestTrees,
			entries: concat([]entry{
				{DeadBirchLog, 0.22},
				{TreeTallDeadBirch, 0.03},
			}, bushes(min(bushVariants, maxTallBushVariants), tallBirchUndergrowth), []entry{
				{BirchStump, 0.04},
			}),
			fallback: TreeTallBetterBirchRareBees,
		},
		{
			slot: DarkForestVegetation,
			entries: []entry{
				{HugeBrownMushroom, 0.025},
				{HugeRedMushroom, 0.05},
				{DarkOakChecked, 2.0 / 3.0},
				{TreeBetterBirch, 0.2},
			},
			fallback: TreeBetterOak,
		},
		{
			slot: BambooJungleVegetation,
			entries: []entry{
				{TreeBetterOak, 0.05},
				{JungleBush, 0.15},
				{MegaJungleTreeChecked, 0.7},
			},
			fallback: PatchGrassJungle,
		},
		{
			slot: JungleTrees,
			entries: []entry{
				{TreeBetterOak, 0.1},
				{JungleBush, 0.5},
				{MegaJungleTreeChecked, 1.0 / 3.0},
			},
			fallback: JungleTree,
		},
		{
			slot: SparseJungleTrees,
			entries: []entry{
				{TreeBetterOak, 0.1},
				{JungleBush, 0.5},
			},
			fallback: JungleTree,
		},
		{
			slot:     SavannaTrees,
			entries:  []entry{{AcaciaChecked, 0.8}},
			fallback: TreeBetterOak,
		},
		{
			slot:     MountainTrees,
			entries:  []entry{{SpruceChecked, 2.0 / 3.0}},
			fallback: TreeBetterOak,
		},
		{
			slot:     MeadowTrees,
			entries:  []entry{{TreeBetterOakBees, 0.5}},
			fallback: TreeBetterBirchBees,
		},
	}
}
