package populate

import (
	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

// AcaciaTree is the vanilla acacia tree, bending to one side before ending in
// a flat canopy.
type AcaciaTree struct{}

// Grow ...
func (AcaciaTree) Grow(c *world.Canvas, pos world.Pos, r rand.Source) bool {
	treeHeight := 5 + r.Intn(3) + r.Intn(3)
	if !canGrow(c, pos, treeHeight, 1) {
		return false
	}
	d := world.Directions()[r.Intn(4)]
	bend := treeHeight - r.Intn(4) - 1
	steps := 3 - r.Intn(3)

	if base := pos.Sub(world.Pos{0, 1, 0}); c.Block(base) == world.GrassBlock {
		c.SetBlock(base, world.Dirt)
	}
	top := pos
	for y := 0; y < treeHeight; y++ {
		if y >= bend && steps > 0 {
			top = top.Side(d)
			steps--
		}
		p := world.Pos{top[0], pos[1] + y, top[2]}
		if b := c.Block(p); b.Air() || b.Leaves() {
			c.SetBlock(p, acaciaLog)
		}
	}
	top[1] = pos[1] + treeHeight - 1

	for y, radius := range []int{3, 1} {
		for dx := -radius; dx <= radius; dx++ {
			for dz := -radius; dz <= radius; dz++ {
				if radius > 1 && abs(dx) == radius && abs(dz) == radius {
					continue
				}
				setLeaves(c, top.Add(world.Pos{dx, y + 1, dz}), acaciaLeaves)
			}
		}
	}
	return true
}

// DarkOakTree is the vanilla dark oak tree with its 2x2 trunk and wide,
// flat crown.
type DarkOakTree struct{}

// Grow ...
func (DarkOakTree) Grow(c *world.Canvas, pos world.Pos, r rand.Source) bool {
	treeHeight := 6 + r.Intn(3) + r.Intn(2)
	if !canGrow(c, pos, treeHeight, 2) {
		return false
	}
	trunk(c, pos, darkOakLog, treeHeight, 2)

	for y, radius := range []int{3, 3, 2} {
		for dx := -radius; dx <= radius+1; dx++ {
			for dz := -radius; dz <= radius+1; dz++ {
				edgeX, edgeZ := dx == -radius || dx == radius+1, dz == -radius || dz == radius+1
				if edgeX && edgeZ {
					continue
				}
				if (edgeX || edgeZ) && r.Intn(3) == 0 {
					continue
				}
				setLeaves(c, pos.Add(world.Pos{dx, treeHeight - 1 + y, dz}), darkOakLeaves)
			}
		}
	}
	return true
}
