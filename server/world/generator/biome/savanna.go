package biome

import (
	"github.com/df-mc/spaghettitrees/server/world/generator/bettertrees"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/populate"
)

type Savanna struct{}

func (Savanna) Populators(reg *feature.Registry) []populate.Populator {
	return vegetation(reg, Savanna{}.Slot(), 1, 12)
}

func (Savanna) ID() uint8 {
	return IDSavanna
}

func (Savanna) Name() string {
	return "savanna"
}

func (Savanna) Slot() string {
	return bettertrees.SavannaTrees
}

func (Savanna) Elevation() (min, max int) {
	return 63, 68
}

func (Savanna) Temperature() float64 {
	return 1.2
}

func (Savanna) Rainfall() float64 {
	return 0
}
