package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator"
	"github.com/google/subcommands"
)

type generateCMD struct {
	radius int
	seed   int64
}

func (*generateCMD) Name() string     { return "generate" }
func (*generateCMD) Synopsis() string { return "generate an area of chunks and print the vegetation placed" }

func (c *generateCMD) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.radius, "radius", 2, "radius of the square of chunks generated")
	f.Int64Var(&c.seed, "seed", 0, "seed of the world, taken from the configuration if 0")
}

func (c *generateCMD) Usage() string {
	return c.Name() + " [-radius r] [-seed s]: " + c.Synopsis() + "\n"
}

func (c *generateCMD) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger()
	if c.radius < 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	ext, err := loadExtension(log, c.seed)
	if err != nil {
		return fail(log, "Could not load features.", err)
	}
	canvas, biomes := generate(ext.Generator(), c.radius)
	for name, n := range biomes {
		fmt.Printf("%-24s %d chunks\n", name, n)
	}
	printCounts(os.Stdout, canvas)
	return subcommands.ExitSuccess
}

// generate generates the terrain of every chunk within the radius before
// populating them, so that trees growing over chunk borders are not
// overwritten. It returns the canvas and the amount of chunks per biome.
func generate(g *generator.Generator, radius int) (*world.Canvas, map[string]int) {
	c := world.NewCanvas()
	var chunks []world.ChunkPos
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			pos := world.ChunkPos{int32(x), int32(z)}
			chunks = append(chunks, pos)
			g.Terrain(c, pos)
		}
	}
	biomes := make(map[string]int)
	for _, pos := range chunks {
		g.Populate(c, pos)
		biomes[g.Biome(int(pos[0])*16+7, int(pos[1])*16+7).Name()]++
	}
	return c, biomes
}
