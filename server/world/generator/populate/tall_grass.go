package populate

import (
	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

// TallGrass scatters short grass over the grass blocks of a chunk.
type TallGrass struct {
	Amount int
}

// Populate ...
func (t TallGrass) Populate(c *world.Canvas, chunk world.ChunkPos, r rand.Source) {
	amount := r.Intn(2) + t.Amount
	for i := 0; i < amount; i++ {
		x, z := column(chunk, r)
		if y, ok := highestWorkableBlock(c, x, z); ok && c.Block(world.Pos{x, y - 1, z}) == world.GrassBlock {
			c.SetBlock(world.Pos{x, y, z}, world.ShortGrass)
		}
	}
}

// GrassPatch is a host feature scattering a plant around its position, such
// as the grass patches of bamboo jungles.
type GrassPatch struct {
	Block world.Block
}

// Grow ...
func (g GrassPatch) Grow(c *world.Canvas, pos world.Pos, r rand.Source) bool {
	placed := false
	for i := 0; i < 32; i++ {
		p := pos.Add(world.Pos{r.Intn(8) - r.Intn(8), r.Intn(4) - r.Intn(4), r.Intn(8) - r.Intn(8)})
		if c.Block(p).Air() && c.Block(p.Sub(world.Pos{0, 1, 0})).Soil() {
			c.SetBlock(p, g.Block)
			placed = true
		}
	}
	return placed
}
