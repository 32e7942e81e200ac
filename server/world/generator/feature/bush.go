package feature

import (
	"fmt"
	"strings"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

// DrawMode controls when the blocks of a randomised archetype are drawn.
type DrawMode int

const (
	// DrawPerRegistration draws the blocks once, when the archetype is built.
	// Every placement of the archetype uses the same blocks, so variety within
	// a world requires registering several archetypes.
	DrawPerRegistration DrawMode = iota
	// DrawPerPlacement draws the blocks every time the archetype is placed.
	DrawPerPlacement
)

// String ...
func (m DrawMode) String() string {
	switch m {
	case DrawPerRegistration:
		return "registration"
	case DrawPerPlacement:
		return "placement"
	}
	return fmt.Sprintf("DrawMode(%d)", int(m))
}

// ParseDrawMode parses the names returned by DrawMode.String.
func ParseDrawMode(s string) (DrawMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "registration":
		return DrawPerRegistration, nil
	case "placement":
		return DrawPerPlacement, nil
	}
	return 0, fmt.Errorf("unknown draw mode %q", s)
}

var (
	bushStumps = []string{"minecraft:dead_bush", "minecraft:jungle_log", "minecraft:acacia_log"}
	bushLeaves = []string{"minecraft:azalea_leaves", "minecraft:flowering_azalea_leaves", "minecraft:jungle_leaves"}
)

// BushBlocks holds the candidate blocks of undergrowth bushes, in the order
// in which they are indexed by draws.
type BushBlocks struct {
	Stumps []world.Block
	Leaves []world.Block
}

// LookupBushBlocks resolves the candidate blocks of undergrowth bushes
// through the BlockLookup passed. The name of the first block that could not
// be resolved is returned if any are missing.
func LookupBushBlocks(blocks world.BlockLookup) (BushBlocks, string, bool) {
	var bb BushBlocks
	for _, name := range bushStumps {
		b, ok := blocks.Block(name)
		if !ok {
			return BushBlocks{}, name, false
		}
		bb.Stumps = append(bb.Stumps, b)
	}
	for _, name := range bushLeaves {
		b, ok := blocks.Block(name)
		if !ok {
			return BushBlocks{}, name, false
		}
		bb.Leaves = append(bb.Leaves, b)
	}
	return bb, "", true
}

// BushBuilder returns a Builder for an undergrowth bush made of the blocks
// passed. With DrawPerRegistration, exactly two values are drawn from r: the
// stump index first and the leaf index second. With DrawPerPlacement nothing
// is drawn and the archetype draws its blocks whenever it grows.
func BushBuilder(blocks BushBlocks, r rand.Source, mode DrawMode) *Builder {
	var stump, leaves BlockProvider
	switch mode {
	case DrawPerPlacement:
		stump, leaves = UniformOf(blocks.Stumps...), UniformOf(blocks.Leaves...)
	default:
		stump = Simple{State: blocks.Stumps[r.Intn(len(blocks.Stumps))]}
		leaves = Simple{State: blocks.Leaves[r.Intn(len(blocks.Leaves))]}
	}
	return NewBuilder(
		stump,
		StraightTrunk{Base: 1, RandA: 1},
		leaves,
		BushFoliage{Radius: BiasedToBottom{Min: 1, Max: 2}, Offset: Constant(1), Height: 2},
		TwoLayers{Limit: 1, LowerSize: 2, UpperSize: 2},
	)
}
