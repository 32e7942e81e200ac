package populate

import (
	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

var (
	mushroomStem       = world.Block{Name: "minecraft:mushroom_stem"}
	brownMushroomBlock = world.Block{Name: "minecraft:brown_mushroom_block"}
	redMushroomBlock   = world.Block{Name: "minecraft:red_mushroom_block"}
)

// HugeMushroom is a vanilla huge mushroom. Red mushrooms have a tall, rounded
// cap while brown mushrooms have a flat and wide one.
type HugeMushroom struct {
	Red bool
}

// Grow ...
func (m HugeMushroom) Grow(c *world.Canvas, pos world.Pos, r rand.Source) bool {
	height := 4 + r.Intn(3)
	if r.Intn(12) == 0 {
		height *= 2
	}
	if !canGrow(c, pos, height, 1) {
		return false
	}
	for y := 0; y < height; y++ {
		c.SetBlock(pos.Add(world.Pos{0, y, 0}), mushroomStem)
	}
	top := pos.Add(world.Pos{0, height, 0})
	if !m.Red {
		m.disc(c, top, brownMushroomBlock, 3, false)
		return true
	}
	m.disc(c, top, redMushroomBlock, 1, false)
	for y := 1; y <= 3; y++ {
		m.disc(c, top.Sub(world.Pos{0, y, 0}), redMushroomBlock, 2, true)
	}
	return true
}

// disc places a square of cap blocks without its corners. If ring is true,
// only the outer edge of the square is placed.
func (HugeMushroom) disc(c *world.Canvas, centre world.Pos, b world.Block, radius int, ring bool) {
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			ax, az := abs(dx), abs(dz)
			if radius > 1 && ax == radius && az == radius {
				continue
			}
			if ring && ax != radius && az != radius {
				continue
			}
			setLeaves(c, centre.Add(world.Pos{dx, 0, dz}), b)
		}
	}
}
