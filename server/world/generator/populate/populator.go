package populate

import (
	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
	"github.com/segmentio/fasthash/fnv1a"
)

// Populator decorates a chunk of the canvas after its terrain was generated.
type Populator interface {
	Populate(c *world.Canvas, chunk world.ChunkPos, r rand.Source)
}

// ChunkRandom returns the Random used to populate a chunk of a world with the
// seed passed. The same seed and chunk always produce the same sequence,
// independent of the order in which chunks are populated.
func ChunkRandom(seed int64, chunk world.ChunkPos) *rand.Random {
	h := fnv1a.HashUint64(uint64(seed))
	h = fnv1a.AddUint64(h, uint64(uint32(chunk[0])))
	h = fnv1a.AddUint64(h, uint64(uint32(chunk[1])))
	return rand.NewRandom(int64(h))
}
