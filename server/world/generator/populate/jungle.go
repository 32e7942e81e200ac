package populate

import (
	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

// JungleTree is the vanilla jungle tree. Mega jungle trees have a 2x2 trunk
// and grow a lot taller.
type JungleTree struct {
	Mega bool
}

// Grow ...
func (j JungleTree) Grow(c *world.Canvas, pos world.Pos, r rand.Source) bool {
	if j.Mega {
		return j.growMega(c, pos, r)
	}
	treeHeight := r.Intn(7) + 4
	if !canGrow(c, pos, treeHeight, 1) {
		return false
	}
	basicTop(c, pos, r, jungleLeaves, treeHeight)
	trunk(c, pos, jungleLog, treeHeight-1, 1)
	vines(c, pos, treeHeight-1, 1, r)
	return true
}

func (j JungleTree) growMega(c *world.Canvas, pos world.Pos, r rand.Source) bool {
	treeHeight := 10 + r.Intn(3) + r.Intn(20)
	if !canGrow(c, pos, treeHeight, 2) {
		return false
	}
	trunk(c, pos, jungleLog, treeHeight, 2)
	vines(c, pos, treeHeight, 2, r)

	// Side canopies grow from the trunk every few blocks below the top.
	for y := treeHeight - 2 - r.Intn(4); y > treeHeight/2; y -= 2 + r.Intn(4) {
		d := world.Directions()[r.Intn(4)]
		end := pos.Add(world.Pos{0, y, 0})
		for i := 0; i < 4; i++ {
			end = end.Side(d)
		}
		canopy(c, end, jungleLeaves, 1)
	}
	canopy(c, pos.Add(world.Pos{0, treeHeight, 0}), jungleLeaves, 2)
	return true
}

// JungleBush is the single log bush covering jungle floors.
type JungleBush struct{}

// Grow ...
func (JungleBush) Grow(c *world.Canvas, pos world.Pos, r rand.Source) bool {
	if b := c.Block(pos); !b.Air() && !b.Leaves() {
		return false
	}
	trunk(c, pos, jungleLog, 1, 1)
	for y := 0; y <= 2; y++ {
		radius := 2 - y
		for dx := -radius; dx <= radius; dx++ {
			for dz := -radius; dz <= radius; dz++ {
				if abs(dx) == radius && abs(dz) == radius && radius > 0 && r.Intn(2) == 0 {
					continue
				}
				setLeaves(c, pos.Add(world.Pos{dx, y, dz}), oakLeaves)
			}
		}
	}
	return true
}

// canopy places a flat, rounded disc of leaves with a smaller disc on top. The
// disc is centred on the north-west corner of the block at pos.
func canopy(c *world.Canvas, pos world.Pos, leaves world.Block, radius int) {
	for y := -1; y <= 0; y++ {
		rad := radius + 1 + y
		for dx := -rad; dx <= rad+1; dx++ {
			for dz := -rad; dz <= rad+1; dz++ {
				fx, fz := float64(dx)-0.5, float64(dz)-0.5
				if fx*fx+fz*fz > float64(rad*rad)+1 {
					continue
				}
				setLeaves(c, pos.Add(world.Pos{dx, y, dz}), leaves)
			}
		}
	}
}

// vines hangs vines on the outer sides of a trunk.
func vines(c *world.Canvas, pos world.Pos, trunkHeight, width int, r rand.Source) {
	for y := 0; y < trunkHeight; y++ {
		for dx := 0; dx < width; dx++ {
			for dz := 0; dz < width; dz++ {
				log := pos.Add(world.Pos{dx, y, dz})
				for _, d := range world.Directions() {
					if side := log.Side(d); r.Intn(3) > 0 && c.Block(side).Air() {
						c.SetBlock(side, world.Vine)
					}
				}
			}
		}
	}
}
