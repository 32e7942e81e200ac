package biome

import (
	"github.com/df-mc/spaghettitrees/server/world/generator/bettertrees"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/populate"
)

type BirchForest struct{}

func (BirchForest) Populators(reg *feature.Registry) []populate.Populator {
	return vegetation(reg, BirchForest{}.Slot(), 10, 2)
}

func (BirchForest) ID() uint8 {
	return IDBirchForest
}

func (BirchForest) Name() string {
	return "birch_forest"
}

func (BirchForest) Slot() string {
	return bettertrees.BirchForestTrees
}

func (BirchForest) Elevation() (min, max int) {
	return 60, 70
}

func (BirchForest) Temperature() float64 {
	return 0.6
}

func (BirchForest) Rainfall() float64 {
	return 0.6
}

// OldGrowthBirchForest is a birch forest of tall birch trees.
type OldGrowthBirchForest struct{}

func (OldGrowthBirchForest) Populators(reg *feature.Registry) []populate.Populator {
	return vegetation(reg, OldGrowthBirchForest{}.Slot(), 10, 2)
}

func (OldGrowthBirchForest) ID() uint8 {
	return IDOldGrowthBirchForest
}

func (OldGrowthBirchForest) Name() string {
	return "old_growth_birch_forest"
}

func (OldGrowthBirchForest) Slot() string {
	return bettertrees.TallBirchForestTrees
}

func (OldGrowthBirchForest) Elevation() (min, max int) {
	return 60, 72
}

func (OldGrowthBirchForest) Temperature() float64 {
	return 0.6
}

func (OldGrowthBirchForest) Rainfall() float64 {
	return 0.6
}
