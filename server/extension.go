package server

import (
	"slices"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator"
	"github.com/df-mc/spaghettitrees/server/world/generator/biome"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/populate"
)

// Extension holds the frozen tree registry together with the biomes it
// decorates. It is created through Config.New and is safe for concurrent use
// as long as canvases are not shared between goroutines.
type Extension struct {
	reg    *feature.Registry
	biomes []biome.Biome
	gen    *generator.Generator
}

// Registry returns the frozen Registry holding every tree feature.
func (ext *Extension) Registry() *feature.Registry {
	return ext.reg
}

// Biomes returns the biomes that are enabled.
func (ext *Extension) Biomes() []biome.Biome {
	return slices.Clone(ext.biomes)
}

// Biome looks up an enabled biome by its name.
func (ext *Extension) Biome(name string) (biome.Biome, bool) {
	b, ok := biome.ByName(name)
	if !ok || !slices.ContainsFunc(ext.biomes, func(e biome.Biome) bool { return e.ID() == b.ID() }) {
		return nil, false
	}
	return b, true
}

// Generator returns the Generator that lays terrain and vegetation for the
// enabled biomes, using the seed of the Config.
func (ext *Extension) Generator() *generator.Generator {
	return ext.gen
}

// Populate decorates a chunk of the canvas with the vegetation of the biome
// passed, using a random derived from the seed and the chunk position.
func (ext *Extension) Populate(c *world.Canvas, b biome.Biome, chunk world.ChunkPos, seed int64) {
	r := populate.ChunkRandom(seed, chunk)
	for _, p := range b.Populators(ext.reg) {
		p.Populate(c, chunk, r)
	}
}
