package biome

import (
	"github.com/df-mc/spaghettitrees/server/world/generator/bettertrees"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/populate"
)

type Forest struct{}

func (Forest) Populators(reg *feature.Registry) []populate.Populator {
	return vegetation(reg, Forest{}.Slot(), 10, 3)
}

func (Forest) ID() uint8 {
	return IDForest
}

func (Forest) Name() string {
	return "forest"
}

func (Forest) Slot() string {
	return bettertrees.ForestTrees
}

func (Forest) Elevation() (min, max int) {
	return 63, 81
}

func (Forest) Temperature() float64 {
	return 0.7
}

func (Forest) Rainfall() float64 {
	return 0.8
}

// FlowerForest is a forest with fewer trees. It shares its vegetation table
// with Forest.
type FlowerForest struct{}

func (FlowerForest) Populators(reg *feature.Registry) []populate.Populator {
	return vegetation(reg, FlowerForest{}.Slot(), 6, 2)
}

func (FlowerForest) ID() uint8 {
	return IDFlowerForest
}

func (FlowerForest) Name() string {
	return "flower_forest"
}

func (FlowerForest) Slot() string {
	return bettertrees.ForestTrees
}

func (FlowerForest) Elevation() (min, max int) {
	return 63, 75
}

func (FlowerForest) Temperature() float64 {
	return 0.7
}

func (FlowerForest) Rainfall() float64 {
	return 0.8
}

type DarkForest struct{}

func (DarkForest) Populators(reg *feature.Registry) []populate.Populator {
	return vegetation(reg, DarkForest{}.Slot(), 16, 1)
}

func (DarkForest) ID() uint8 {
	return IDDarkForest
}

func (DarkForest) Name() string {
	return "dark_forest"
}

func (DarkForest) Slot() string {
	return bettertrees.DarkForestVegetation
}

func (DarkForest) Elevation() (min, max int) {
	return 63, 78
}

func (DarkForest) Temperature() float64 {
	return 0.7
}

func (DarkForest) Rainfall() float64 {
	return 0.8
}
