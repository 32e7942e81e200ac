package biome

import (
	"github.com/df-mc/spaghettitrees/server/world/generator/bettertrees"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/populate"
)

type Jungle struct{}

func (Jungle) Populators(reg *feature.Registry) []populate.Populator {
	return vegetation(reg, Jungle{}.Slot(), 12, 8)
}

func (Jungle) ID() uint8 {
	return IDJungle
}

func (Jungle) Name() string {
	return "jungle"
}

func (Jungle) Slot() string {
	return bettertrees.JungleTrees
}

func (Jungle) Elevation() (min, max int) {
	return 63, 80
}

func (Jungle) Temperature() float64 {
	return 0.95
}

func (Jungle) Rainfall() float64 {
	return 0.9
}

type SparseJungle struct{}

func (SparseJungle) Populators(reg *feature.Registry) []populate.Populator {
	return vegetation(reg, SparseJungle{}.Slot(), 2, 8)
}

func (SparseJungle) ID() uint8 {
	return IDSparseJungle
}

func (SparseJungle) Name() string {
	return "sparse_jungle"
}

func (SparseJungle) Slot() string {
	return bettertrees.SparseJungleTrees
}

func (SparseJungle) Elevation() (min, max int) {
	return 63, 72
}

func (SparseJungle) Temperature() float64 {
	return 0.95
}

func (SparseJungle) Rainfall() float64 {
	return 0.8
}

// BambooJungle falls back to ferns rather than trees, so most of its slot
// resolutions grow undergrowth.
type BambooJungle struct{}

func (BambooJungle) Populators(reg *feature.Registry) []populate.Populator {
	return vegetation(reg, BambooJungle{}.Slot(), 12, 4)
}

func (BambooJungle) ID() uint8 {
	return IDBambooJungle
}

func (BambooJungle) Name() string {
	return "bamboo_jungle"
}

func (BambooJungle) Slot() string {
	return bettertrees.BambooJungleVegetation
}

func (BambooJungle) Elevation() (min, max int) {
	return 63, 78
}

func (BambooJungle) Temperature() float64 {
	return 0.95
}

func (BambooJungle) Rainfall() float64 {
	return 0.9
}
