package populate

import (
	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

var (
	oakLog        = world.Block{Name: "minecraft:oak_log"}
	oakLeaves     = world.Block{Name: "minecraft:oak_leaves"}
	birchLog      = world.Block{Name: "minecraft:birch_log"}
	birchLeaves   = world.Block{Name: "minecraft:birch_leaves"}
	spruceLog     = world.Block{Name: "minecraft:spruce_log"}
	spruceLeaves  = world.Block{Name: "minecraft:spruce_leaves"}
	jungleLog     = world.Block{Name: "minecraft:jungle_log"}
	jungleLeaves  = world.Block{Name: "minecraft:jungle_leaves"}
	acaciaLog     = world.Block{Name: "minecraft:acacia_log"}
	acaciaLeaves  = world.Block{Name: "minecraft:acacia_leaves"}
	darkOakLog    = world.Block{Name: "minecraft:dark_oak_log"}
	darkOakLeaves = world.Block{Name: "minecraft:dark_oak_leaves"}
)

// OakTree is the small vanilla oak tree.
type OakTree struct{}

// Grow ...
func (OakTree) Grow(c *world.Canvas, pos world.Pos, r rand.Source) bool {
	if !canGrow(c, pos, 7, 1) {
		return false
	}
	treeHeight := r.Intn(3) + 4
	basicTop(c, pos, r, oakLeaves, treeHeight)
	trunk(c, pos, oakLog, treeHeight-1, 1)
	return true
}

// BirchTree is the vanilla birch tree. Super birch trees are five blocks
// taller.
type BirchTree struct {
	Super bool
}

// Grow ...
func (b BirchTree) Grow(c *world.Canvas, pos world.Pos, r rand.Source) bool {
	if !canGrow(c, pos, 7, 1) {
		return false
	}
	treeHeight := r.Intn(3) + 5
	if b.Super {
		treeHeight += 5
	}
	basicTop(c, pos, r, birchLeaves, treeHeight)
	trunk(c, pos, birchLog, treeHeight-1, 1)
	return true
}

// SpruceTree is the vanilla spruce tree with its layered cone of leaves.
type SpruceTree struct{}

// Grow ...
func (SpruceTree) Grow(c *world.Canvas, pos world.Pos, r rand.Source) bool {
	if !canGrow(c, pos, 10, 1) {
		return false
	}
	treeHeight := r.Intn(4) + 6

	topSize := treeHeight - (1 + r.Intn(2))
	lr := 2 + r.Intn(2)

	trunk(c, pos, spruceLog, treeHeight-r.Intn(3), 1)

	radius := r.Intn(2)
	minR, maxR := 0, 1

	for y := 0; y <= topSize; y++ {
		yy := pos[1] + treeHeight - y
		for x := pos[0] - radius; x <= pos[0]+radius; x++ {
			xOff := abs(x - pos[0])
			for z := pos[2] - radius; z <= pos[2]+radius; z++ {
				if xOff == radius && abs(z-pos[2]) == radius && radius > 0 {
					continue
				}
				setLeaves(c, world.Pos{x, yy, z}, spruceLeaves)
			}
		}

		if radius >= maxR {
			radius = minR
			minR = 1
			if maxR++; maxR > lr {
				maxR = lr
			}
		} else {
			radius++
		}
	}
	return true
}

// basicTop places the rounded top of oak and birch trees.
func basicTop(c *world.Canvas, pos world.Pos, r rand.Source, leaves world.Block, treeHeight int) {
	for yy := pos[1] - 3 + treeHeight; yy <= pos[1]+treeHeight; yy++ {
		yOff := yy - (pos[1] + treeHeight)
		mid := 1 - yOff/2
		for xx := pos[0] - mid; xx <= pos[0]+mid; xx++ {
			xOff := abs(xx - pos[0])
			for zz := pos[2] - mid; zz <= pos[2]+mid; zz++ {
				zOff := abs(zz - pos[2])
				if xOff == mid && zOff == mid && (yOff == 0 || r.Intn(2) == 0) {
					continue
				}
				setLeaves(c, world.Pos{xx, yy, zz}, leaves)
			}
		}
	}
}

// trunk places a square trunk of the width passed with its north-west corner
// at pos and turns the ground below it into dirt.
func trunk(c *world.Canvas, pos world.Pos, log world.Block, trunkHeight, width int) {
	for dx := 0; dx < width; dx++ {
		for dz := 0; dz < width; dz++ {
			base := pos.Add(world.Pos{dx, -1, dz})
			if c.Block(base) == world.GrassBlock {
				c.SetBlock(base, world.Dirt)
			}
			for y := 0; y < trunkHeight; y++ {
				p := pos.Add(world.Pos{dx, y, dz})
				if b := c.Block(p); b.Air() || b.Leaves() {
					c.SetBlock(p, log)
				}
			}
		}
	}
}

func setLeaves(c *world.Canvas, p world.Pos, leaves world.Block) {
	if c.Block(p).Replaceable() {
		c.SetBlock(p, leaves)
	}
}

// canGrow checks if a tree of the height and trunk width passed has room to
// grow at pos. The checked radius widens above the first layer and again at
// the top of the tree.
func canGrow(c *world.Canvas, pos world.Pos, treeHeight, width int) bool {
	radiusToCheck := 0
	for yy := 0; yy < treeHeight+3; yy++ {
		if yy == 1 || yy == treeHeight {
			radiusToCheck++
		}
		for xx := -radiusToCheck; xx < radiusToCheck+width; xx++ {
			for zz := -radiusToCheck; zz < radiusToCheck+width; zz++ {
				if b := c.Block(pos.Add(world.Pos{xx, yy, zz})); !b.Air() && !b.Leaves() {
					return false
				}
			}
		}
	}
	return true
}
