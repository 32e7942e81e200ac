package biome

import (
	"github.com/df-mc/spaghettitrees/server/world/generator/bettertrees"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/populate"
)

type WindsweptHills struct{}

func (WindsweptHills) Populators(reg *feature.Registry) []populate.Populator {
	return vegetation(reg, WindsweptHills{}.Slot(), 0, 1)
}

func (WindsweptHills) ID() uint8 {
	return IDWindsweptHills
}

func (WindsweptHills) Name() string {
	return "windswept_hills"
}

func (WindsweptHills) Slot() string {
	return bettertrees.MountainTrees
}

func (WindsweptHills) Elevation() (min, max int) {
	return 63, 127
}

func (WindsweptHills) Temperature() float64 {
	return 0.4
}

func (WindsweptHills) Rainfall() float64 {
	return 0.5
}

// Meadow only occasionally grows a tree, most of which carry a beehive.
type Meadow struct{}

func (Meadow) Populators(reg *feature.Registry) []populate.Populator {
	return vegetation(reg, Meadow{}.Slot(), 0, 12)
}

func (Meadow) ID() uint8 {
	return IDMeadow
}

func (Meadow) Name() string {
	return "meadow"
}

func (Meadow) Slot() string {
	return bettertrees.MeadowTrees
}

func (Meadow) Elevation() (min, max int) {
	return 90, 110
}

func (Meadow) Temperature() float64 {
	return 0.5
}

func (Meadow) Rainfall() float64 {
	return 0.8
}
