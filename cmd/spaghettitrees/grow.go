package main

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
	"github.com/fatih/color"
	"github.com/google/subcommands"
)

type growCMD struct {
	id   string
	seed int64
}

func (*growCMD) Name() string     { return "grow" }
func (*growCMD) Synopsis() string { return "grow a single feature on flat grass and print the blocks placed" }

func (c *growCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "tree_better_oak", "identifier of the feature to grow")
	f.Int64Var(&c.seed, "seed", 0, "seed of the tree, random if 0")
}

func (c *growCMD) Usage() string {
	return c.Name() + " [-id feature] [-seed s]: " + c.Synopsis() + "\n"
}

func (c *growCMD) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger()
	ext, err := loadExtension(log, 0)
	if err != nil {
		return fail(log, "Could not load features.", err)
	}
	canvas, ok, err := grow(ext.Registry(), c.id, rand.Seeded(c.seed))
	if err != nil {
		return fail(log, "Could not grow feature.", err)
	}
	if !ok {
		color.New(color.FgYellow).Fprintf(os.Stdout, "%v did not fit.\n", c.id)
		return subcommands.ExitFailure
	}
	printCounts(os.Stdout, canvas)
	return subcommands.ExitSuccess
}

// growRadius is the half width of the grass floor that features are grown on.
const growRadius = 24

// grow grows the feature with the identifier passed at the centre of a layer of
// grass blocks at y=63.
func grow(reg *feature.Registry, id string, r rand.Source) (*world.Canvas, bool, error) {
	ref, ok := reg.Lookup(id)
	if !ok {
		return nil, false, fmt.Errorf("%w: %v", feature.ErrUnknownFeature, id)
	}
	f, _ := reg.Feature(ref)
	c := world.NewCanvas()
	for x := -growRadius; x <= growRadius; x++ {
		for z := -growRadius; z <= growRadius; z++ {
			c.SetBlock(world.Pos{x, 63, z}, world.GrassBlock)
		}
	}
	return c, f.Grow(c, world.Pos{0, 64, 0}, r), nil
}

func printCounts(w io.Writer, c *world.Canvas) {
	counts := c.Counts()
	blocks := slices.SortedFunc(maps.Keys(counts), func(a, b world.Block) int {
		return cmp.Compare(a.Name, b.Name)
	})
	for _, b := range blocks {
		if b == world.GrassBlock {
			continue
		}
		fmt.Fprintf(w, "%-40s %d\n", b.Name, counts[b])
	}
	if lo, hi, ok := c.Bounds(); ok {
		fmt.Fprintf(w, "bounds %v to %v\n", lo, hi)
	}
}
