// Package biome implements the biomes whose vegetation is replaced by the tree
// tables. Every biome names the vegetation slot it resolves and the populators
// that run when one of its chunks is decorated.
package biome

import (
	"strings"

	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/populate"
)

// Biome is a biome that decorates its chunks with vegetation.
type Biome interface {
	// ID returns the Bedrock Edition ID of the biome.
	ID() uint8
	// Name returns the identifier of the biome, such as "forest".
	Name() string
	// Slot returns the vegetation slot that the biome resolves features from.
	Slot() string
	// Elevation returns the range that the surface of the biome lies in.
	Elevation() (min, max int)
	Temperature() float64
	Rainfall() float64
	// Populators returns the populators that decorate a chunk of the biome,
	// resolving features from the Registry passed.
	Populators(reg *feature.Registry) []populate.Populator
}

// Bedrock Edition biome IDs.
const (
	IDWindsweptHills       = 3
	IDForest               = 4
	IDJungle               = 21
	IDSparseJungle         = 23
	IDBirchForest          = 27
	IDDarkForest           = 29
	IDSavanna              = 35
	IDBambooJungle         = 48
	IDFlowerForest         = 132
	IDOldGrowthBirchForest = 155
	IDMeadow               = 186
)

// All returns every biome, ordered by ID.
func All() []Biome {
	return []Biome{
		WindsweptHills{},
		Forest{},
		Jungle{},
		SparseJungle{},
		BirchForest{},
		DarkForest{},
		Savanna{},
		BambooJungle{},
		FlowerForest{},
		OldGrowthBirchForest{},
		Meadow{},
	}
}

// ByName looks up a biome by its name. The "minecraft:" prefix is optional.
func ByName(name string) (Biome, bool) {
	name = strings.TrimPrefix(strings.ToLower(name), "minecraft:")
	for _, b := range All() {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

// vegetation returns the populators shared by every biome: the trees resolved
// from the slot passed, followed by tall grass.
func vegetation(reg *feature.Registry, slot string, trees, grass int) []populate.Populator {
	return []populate.Populator{
		populate.Vegetation{Registry: reg, Slot: slot, BaseAmount: trees},
		populate.TallGrass{Amount: grass},
	}
}
