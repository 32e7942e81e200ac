package populate

import (
	"log/slog"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

// Vegetation grows features selected from the vegetation table of a slot. It
// is the populator through which the trees of a biome are placed.
type Vegetation struct {
	Registry *feature.Registry
	// Slot is the identifier of the vegetation table to resolve.
	Slot string
	// BaseAmount is the least amount of columns tried per chunk. One more
	// column is tried half of the time.
	BaseAmount int
	// Log is used to report slots that cannot be resolved. If nil,
	// slog.Default() is used.
	Log *slog.Logger
}

// Populate ...
func (v Vegetation) Populate(c *world.Canvas, chunk world.ChunkPos, r rand.Source) {
	amount := r.Intn(2) + v.BaseAmount
	for i := 0; i < amount; i++ {
		x, z := column(chunk, r)
		y, ok := highestWorkableBlock(c, x, z)
		if !ok {
			continue
		}
		f, _, err := v.Registry.Resolve(v.Slot, r)
		if err != nil {
			log := v.Log
			if log == nil {
				log = slog.Default()
			}
			log.Error("Could not resolve vegetation.", "chunk", chunk, "err", err)
			return
		}
		f.Grow(c, world.Pos{x, y, z}, r)
	}
}
