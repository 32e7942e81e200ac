package feature

import (
	"slices"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

// IntProvider produces an integer each time a tree is placed.
type IntProvider interface {
	// Int returns the next value of the provider.
	Int(r rand.Source) int
	// Bounds returns the smallest and largest value the provider may return.
	Bounds() (min, max int)
}

// Constant is an IntProvider that always returns the same value.
type Constant int

// Int ...
func (c Constant) Int(rand.Source) int {
	return int(c)
}

// Bounds ...
func (c Constant) Bounds() (min, max int) {
	return int(c), int(c)
}

// BiasedToBottom is an IntProvider returning values in [Min, Max] where lower
// values are more likely.
type BiasedToBottom struct {
	Min, Max int
}

// Int ...
func (b BiasedToBottom) Int(r rand.Source) int {
	return b.Min + r.Intn(r.Intn(b.Max-b.Min+1)+1)
}

// Bounds ...
func (b BiasedToBottom) Bounds() (min, max int) {
	return b.Min, b.Max
}

// BlockProvider selects the block that a trunk or foliage placer uses for a
// single placement.
type BlockProvider interface {
	// Block returns the block to use for the next placement.
	Block(r rand.Source) world.Block
	// Candidates returns every block the provider may return.
	Candidates() []world.Block
}

// Simple is a BlockProvider that always returns the same block. No random
// value is drawn.
type Simple struct {
	State world.Block
}

// Block ...
func (s Simple) Block(rand.Source) world.Block {
	return s.State
}

// Candidates ...
func (s Simple) Candidates() []world.Block {
	return []world.Block{s.State}
}

// Uniform is a BlockProvider that draws one of its candidates with equal
// chance every time a tree is placed.
type Uniform struct {
	blocks []world.Block
}

// UniformOf returns a BlockProvider drawing uniformly from the blocks passed.
// A single block results in a Simple provider.
func UniformOf(blocks ...world.Block) BlockProvider {
	if len(blocks) == 1 {
		return Simple{State: blocks[0]}
	}
	return Uniform{blocks: slices.Clone(blocks)}
}

// Block ...
func (u Uniform) Block(r rand.Source) world.Block {
	return u.blocks[r.Intn(len(u.blocks))]
}

// Candidates ...
func (u Uniform) Candidates() []world.Block {
	return slices.Clone(u.blocks)
}
