package world

import (
	"fmt"
	"strings"
)

// Block is a handle to a block type known to the host. Blocks are compared by
// value, so two handles with the same name refer to the same block.
type Block struct {
	// Name is the namespaced identifier of the block, such as minecraft:oak_log.
	Name string
}

// Air is the block used to represent the absence of a block. Archetypes that
// carry no leaves use Air as their foliage block.
var Air = Block{Name: "minecraft:air"}

// Blocks that tree placement checks against or places by itself.
var (
	Dirt       = Block{Name: "minecraft:dirt"}
	GrassBlock = Block{Name: "minecraft:grass_block"}
	ShortGrass = Block{Name: "minecraft:short_grass"}
	Fern       = Block{Name: "minecraft:fern"}
	Vine       = Block{Name: "minecraft:vine"}
	BeeNest    = Block{Name: "minecraft:bee_nest"}
)

// String ...
func (b Block) String() string {
	return b.Name
}

// Air reports if the block is the air marker.
func (b Block) Air() bool {
	return b == Air || b.Name == ""
}

// Leaves reports if the block is a leaf block. Leaves may be overwritten by
// growing trees.
func (b Block) Leaves() bool {
	return strings.HasSuffix(b.Name, "_leaves")
}

// Replaceable reports if a growing tree may replace the block.
func (b Block) Replaceable() bool {
	return b.Air() || b.Leaves() || b == Vine || b == ShortGrass || b == Fern
}

// Soil reports if trees may grow on top of the block.
func (b Block) Soil() bool {
	return b == Dirt || b == GrassBlock
}

// BlockLookup resolves block names into handles. It is the port through which
// registration code reaches the block registry of the host.
type BlockLookup interface {
	// Block looks up a block by its name. Names without a namespace are
	// resolved in the minecraft namespace.
	Block(name string) (Block, bool)
}

// Palette is a BlockLookup backed by a fixed set of block names.
type Palette struct {
	names map[string]struct{}
}

// NewPalette creates a Palette holding the names passed. Names without a
// namespace are stored in the minecraft namespace.
func NewPalette(names ...string) *Palette {
	p := &Palette{names: make(map[string]struct{}, len(names)+1)}
	p.names[Air.Name] = struct{}{}
	for _, name := range names {
		p.names[qualify(name)] = struct{}{}
	}
	return p
}

// DefaultPalette returns a Palette with every vanilla block that the tree
// features of this repository place or check against.
func DefaultPalette() *Palette {
	return NewPalette(vanillaBlocks...)
}

// Block ...
func (p *Palette) Block(name string) (Block, bool) {
	name = qualify(name)
	if _, ok := p.names[name]; !ok {
		return Block{}, false
	}
	return Block{Name: name}, true
}

// MustBlock looks up a block by its name and panics if the palette does not
// hold it. It is meant for startup code where a missing block is a programming
// error.
func (p *Palette) MustBlock(name string) Block {
	b, ok := p.Block(name)
	if !ok {
		panic(fmt.Sprintf("world: unknown block %q", name))
	}
	return b
}

func qualify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.Contains(name, ":") {
		return "minecraft:" + name
	}
	return name
}

var vanillaBlocks = []string{
	"stone", "dirt", "grass_block", "short_grass", "fern", "water", "bedrock", "sand",
	"oak_log", "oak_wood", "oak_leaves",
	"birch_log", "birch_wood", "birch_leaves",
	"spruce_log", "spruce_leaves",
	"jungle_log", "jungle_leaves",
	"acacia_log", "acacia_leaves",
	"dark_oak_log", "dark_oak_leaves",
	"azalea_leaves", "flowering_azalea_leaves",
	"dead_bush", "vine", "bee_nest",
	"mushroom_stem", "brown_mushroom_block", "red_mushroom_block",
}
