package feature

import (
	"slices"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

// Feature is anything a vegetation table may select: tree archetypes as well
// as features supplied by the host.
type Feature interface {
	// Grow places the feature with its base at pos. It returns false if the
	// feature did not fit and nothing was placed.
	Grow(c *world.Canvas, pos world.Pos, r rand.Source) bool
}

// Archetype is an immutable template describing the shape of one tree, bush,
// stump or log. Archetypes are created using a Builder.
type Archetype struct {
	trunk         BlockProvider
	trunkPlacer   TrunkPlacer
	foliage       BlockProvider
	foliagePlacer FoliagePlacer
	size          FeatureSize
	decorators    []Decorator
	dead          bool
}

// Trunk returns the provider of the trunk block.
func (a Archetype) Trunk() BlockProvider { return a.trunk }

// TrunkPlacer ...
func (a Archetype) TrunkPlacer() TrunkPlacer { return a.trunkPlacer }

// Foliage returns the provider of the leaf block. It provides Air for dead
// archetypes.
func (a Archetype) Foliage() BlockProvider { return a.foliage }

// FoliagePlacer ...
func (a Archetype) FoliagePlacer() FoliagePlacer { return a.foliagePlacer }

// Size returns the size envelope of the archetype.
func (a Archetype) Size() FeatureSize { return a.size }

// Decorators returns the decorators applied after placement, in order.
func (a Archetype) Decorators() []Decorator { return slices.Clone(a.decorators) }

// Dead reports if the archetype is a leafless variant.
func (a Archetype) Dead() bool { return a.dead }

// Grow places the archetype on the canvas. The trunk and foliage blocks are
// drawn from their providers once per call.
func (a Archetype) Grow(c *world.Canvas, pos world.Pos, r rand.Source) bool {
	height := a.trunkPlacer.Height(r)
	if !fits(a.size, c, pos, height) {
		return false
	}
	p := &placement{canvas: c, r: r, trunk: a.trunk.Block(r), foliage: a.foliage.Block(r)}

	if below := pos.Sub(world.Pos{0, 1, 0}); c.Block(below) == world.GrassBlock {
		c.SetBlock(below, world.Dirt)
	}
	attachments := a.trunkPlacer.place(p, pos, height)
	a.foliagePlacer.place(p, attachments)
	for _, d := range a.decorators {
		d.decorate(p)
	}
	return true
}
