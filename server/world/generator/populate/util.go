package populate

import (
	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

// maxHeight is the highest y searched for the surface of a column.
const maxHeight = 127

// column returns a random column within the chunk.
func column(chunk world.ChunkPos, r rand.Source) (x, z int) {
	return int(chunk[0])<<4 + r.Intn(16), int(chunk[1])<<4 + r.Intn(16)
}

// highestWorkableBlock returns the y of the lowest air block above the soil of
// the column. It returns false if the top of the column is not soil.
func highestWorkableBlock(c *world.Canvas, x, z int) (int, bool) {
	for y := maxHeight; y > 0; y-- {
		b := c.Block(world.Pos{x, y - 1, z})
		if b.Soil() {
			return y, true
		} else if !b.Air() {
			return 0, false
		}
	}
	return 0, false
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
