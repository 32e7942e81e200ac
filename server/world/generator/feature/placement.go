package feature

import (
	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

// Attachment is a point on a trunk or branch that foliage is grown around.
type Attachment struct {
	Pos world.Pos
	// RadiusOffset is added to the foliage radius for this attachment.
	RadiusOffset int
}

// placement holds the state of a single tree being placed on a canvas.
type placement struct {
	canvas *world.Canvas
	r      rand.Source

	trunk, foliage world.Block

	logs, leaves []world.Pos
}

func (p *placement) setLog(pos world.Pos) bool {
	if !p.canvas.Block(pos).Replaceable() {
		return false
	}
	p.canvas.SetBlock(pos, p.trunk)
	p.logs = append(p.logs, pos)
	return true
}

func (p *placement) setLeaves(pos world.Pos) bool {
	if p.foliage.Air() {
		return false
	}
	if b := p.canvas.Block(pos); !b.Air() && b != world.ShortGrass && b != world.Fern {
		return false
	}
	p.canvas.SetBlock(pos, p.foliage)
	p.leaves = append(p.leaves, pos)
	return true
}

// square places leaves in a square layer of the radius passed, centred on
// centre and raised by y. skip is called with the absolute x and z offsets
// and may exclude positions from the layer.
func (p *placement) square(centre world.Pos, radius, y int, skip func(dx, y, dz, radius int) bool) {
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			if skip(abs(dx), y, abs(dz), radius) {
				continue
			}
			p.setLeaves(centre.Add(world.Pos{dx, y, dz}))
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
