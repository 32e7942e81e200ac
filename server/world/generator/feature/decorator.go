package feature

import (
	"fmt"
	"math"
	"slices"

	"github.com/df-mc/spaghettitrees/server/world"
)

// Decorator changes a tree after its trunk and foliage were placed.
type Decorator interface {
	decorate(p *placement)
	validate() error
}

// TrunkVine attaches vines to the sides of the logs of a tree. Every free side
// of a log gets a vine with a chance of 2/3.
type TrunkVine struct{}

func (TrunkVine) decorate(p *placement) {
	for _, log := range p.logs {
		for _, d := range []world.Direction{world.West, world.East, world.North, world.South} {
			if p.r.Intn(3) == 0 {
				continue
			}
			if side := log.Side(d); p.canvas.Block(side).Air() {
				p.canvas.SetBlock(side, world.Vine)
			}
		}
	}
}

func (TrunkVine) validate() error { return nil }

// LeavesVine hangs vines from the sides of the leaves of a tree. Each free
// side gets a vine with the chance Probability. The vine hangs down for up to
// four blocks.
type LeavesVine struct {
	Probability float64
}

func (v LeavesVine) decorate(p *placement) {
	for _, leaf := range p.leaves {
		for _, d := range []world.Direction{world.West, world.East, world.North, world.South} {
			if p.r.Float64() >= v.Probability {
				continue
			}
			pos := leaf.Side(d)
			for i := 0; i < 4 && p.canvas.Block(pos).Air(); i++ {
				p.canvas.SetBlock(pos, world.Vine)
				pos = pos.Sub(world.Pos{0, 1, 0})
			}
		}
	}
}

func (v LeavesVine) validate() error {
	return validateProbability("leaves vine", v.Probability)
}

// Beehive places a bee nest on the side of the trunk with the chance
// Probability. The nest hangs just below the lowest leaves, or low on the
// trunk if the tree has no leaves.
type Beehive struct {
	Probability float64
}

func (b Beehive) decorate(p *placement) {
	if len(p.logs) == 0 || p.r.Float64() >= b.Probability {
		return
	}
	lowestLog, highestLog := p.logs[0][1], p.logs[0][1]
	for _, log := range p.logs {
		lowestLog, highestLog = min(lowestLog, log[1]), max(highestLog, log[1])
	}
	var y int
	if len(p.leaves) > 0 {
		lowestLeaf := p.leaves[0][1]
		for _, leaf := range p.leaves {
			lowestLeaf = min(lowestLeaf, leaf[1])
		}
		y = max(lowestLeaf-1, lowestLog+1)
	} else {
		y = min(lowestLog+1+p.r.Intn(3), highestLog)
	}

	var candidates []world.Pos
	for _, log := range p.logs {
		if log[1] != y {
			continue
		}
		// The nest faces south, so it is never placed on the north side.
		for _, d := range []world.Direction{world.East, world.South, world.West} {
			if side := log.Side(d); p.canvas.Block(side).Air() && !slices.Contains(candidates, side) {
				candidates = append(candidates, side)
			}
		}
	}
	if len(candidates) == 0 {
		return
	}
	p.canvas.SetBlock(candidates[p.r.Intn(len(candidates))], world.BeeNest)
}

func (b Beehive) validate() error {
	return validateProbability("beehive", b.Probability)
}

func validateProbability(kind string, v float64) error {
	if math.IsNaN(v) || v <= 0 || v > 1 {
		return fmt.Errorf("%v decorator: probability %v is not in (0, 1]", kind, v)
	}
	return nil
}
