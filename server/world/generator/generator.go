// Package generator generates chunks of terrain on a world.Canvas and
// decorates them with the vegetation of their biomes.
package generator

import (
	"log/slog"
	"math"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/biome"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/populate"
	"github.com/segmentio/fasthash/fnv1a"
)

// SmoothSize is the radius of the kernel that smooths the surface height
// between biomes.
const SmoothSize = 2

// cellShift is the log2 of the width of the square cells that share a biome.
const cellShift = 6

var gaussianKernel = [5][5]float64{
	{1.4715177646858, 2.141045714076, 2.4261226388505, 2.141045714076, 1.4715177646858},
	{2.141045714076, 3.1152031322856, 3.5299876103384, 3.1152031322856, 2.141045714076},
	{2.4261226388505, 3.5299876103384, 4, 3.5299876103384, 2.4261226388505},
	{2.141045714076, 3.1152031322856, 3.5299876103384, 3.1152031322856, 2.141045714076},
	{1.4715177646858, 2.141045714076, 2.4261226388505, 2.141045714076, 1.4715177646858},
}

var (
	bedrock = world.Block{Name: "minecraft:bedrock"}
	stone   = world.Block{Name: "minecraft:stone"}
)

// Config holds the settings of a Generator.
type Config struct {
	// Seed is the seed of the world generated.
	Seed int64
	// Registry is the frozen Registry that biomes resolve their vegetation
	// from.
	Registry *feature.Registry
	// Biomes holds the biomes that may be generated. If empty, biome.All() is
	// used.
	Biomes []biome.Biome
	// Log is the Logger used to report population. If nil, slog.Default() is
	// used.
	Log *slog.Logger
}

// Generator generates flat terrain, smoothed between biomes, and populates it
// with vegetation. A Generator is safe for concurrent use as long as the
// canvases passed are not shared.
type Generator struct {
	conf Config
}

// New creates a Generator using the settings of the Config.
func (conf Config) New() *Generator {
	if len(conf.Biomes) == 0 {
		conf.Biomes = biome.All()
	}
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	return &Generator{conf: conf}
}

// Seed returns the seed of the Generator.
func (g *Generator) Seed() int64 {
	return g.conf.Seed
}

// GenerateChunk lays the terrain of the chunk passed on the canvas and
// populates it with the vegetation of the biome at the centre of the chunk.
// Trees close to the edge of the chunk may extend into neighbouring chunks.
func (g *Generator) GenerateChunk(c *world.Canvas, pos world.ChunkPos) {
	g.Terrain(c, pos)
	g.Populate(c, pos)
}

// Terrain lays the terrain of a chunk: bedrock at y=0, followed by stone, three
// layers of dirt and a layer of grass at the smoothed elevation of the biome.
func (g *Generator) Terrain(c *world.Canvas, pos world.ChunkPos) {
	biomeCache := make(map[[2]int64]biome.Biome)
	baseX, baseZ := int64(pos[0])*16, int64(pos[1])*16
	for x := int64(0); x < 16; x++ {
		for z := int64(0); z < 16; z++ {
			var sum, weightSum float64
			for sx := int64(-SmoothSize); sx <= SmoothSize; sx++ {
				for sz := int64(-SmoothSize); sz <= SmoothSize; sz++ {
					weight := gaussianKernel[sx+SmoothSize][sz+SmoothSize]

					i := [2]int64{baseX + x + sx, baseZ + z + sz}
					adjacent, ok := biomeCache[i]
					if !ok {
						adjacent = g.pickBiome(i[0], i[1])
						biomeCache[i] = adjacent
					}
					low, _ := adjacent.Elevation()
					sum += float64(low) * weight
					weightSum += weight
				}
			}
			height := int(math.Round(sum / weightSum))
			column(c, int(baseX+x), int(baseZ+z), height)
		}
	}
}

func column(c *world.Canvas, x, z, height int) {
	c.SetBlock(world.Pos{x, 0, z}, bedrock)
	for y := 1; y < height; y++ {
		b := stone
		if y >= height-3 {
			b = world.Dirt
		}
		c.SetBlock(world.Pos{x, y, z}, b)
	}
	c.SetBlock(world.Pos{x, height, z}, world.GrassBlock)
}

// Populate runs the populators of the biome at the centre of the chunk. The
// chunk is populated with a random derived from the seed and the chunk
// position, so that the result does not depend on the order of population.
func (g *Generator) Populate(c *world.Canvas, pos world.ChunkPos) {
	b := g.Biome(int(pos[0])*16+7, int(pos[1])*16+7)
	r := populate.ChunkRandom(g.conf.Seed, pos)
	for _, p := range b.Populators(g.conf.Registry) {
		p.Populate(c, pos, r)
	}
	g.conf.Log.Debug("Populated chunk.", "chunk", pos, "biome", b.Name())
}

// Biome returns the biome of the column at the x and z passed.
func (g *Generator) Biome(x, z int) biome.Biome {
	return g.pickBiome(int64(x), int64(z))
}

func (g *Generator) pickBiome(x, z int64) biome.Biome {
	hash := x*2345803 ^ z*9236449 ^ g.conf.Seed
	hash *= hash + 223
	xNoise := hash >> 20 & 3
	zNoise := hash >> 22 & 3
	if xNoise == 3 {
		xNoise = 1
	}
	if zNoise == 3 {
		zNoise = 1
	}
	return g.cell((x+xNoise-1)>>cellShift, (z+zNoise-1)>>cellShift)
}

// cell returns the biome of a biome cell.
func (g *Generator) cell(x, z int64) biome.Biome {
	h := fnv1a.HashUint64(uint64(g.conf.Seed))
	h = fnv1a.AddUint64(h, uint64(x))
	h = fnv1a.AddUint64(h, uint64(z))
	return g.conf.Biomes[h%uint64(len(g.conf.Biomes))]
}
