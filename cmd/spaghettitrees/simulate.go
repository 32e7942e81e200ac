package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
	"github.com/fatih/color"
	"github.com/google/subcommands"
)

type simulateCMD struct {
	slot   string
	trials int
	seed   int64
}

func (*simulateCMD) Name() string     { return "simulate" }
func (*simulateCMD) Synopsis() string { return "resolve a vegetation table many times and compare the frequencies" }

func (c *simulateCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.slot, "slot", "better_forest_trees", "slot of the vegetation table to resolve")
	f.IntVar(&c.trials, "trials", 100000, "amount of resolutions")
	f.Int64Var(&c.seed, "seed", 0, "seed of the resolutions, random if 0")
}

func (c *simulateCMD) Usage() string {
	return c.Name() + " [-slot table] [-trials n] [-seed s]: " + c.Synopsis() + "\n"
}

func (c *simulateCMD) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger()
	if c.trials <= 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	ext, err := loadExtension(log, 0)
	if err != nil {
		return fail(log, "Could not load features.", err)
	}
	t, ok := ext.Registry().Table(c.slot)
	if !ok {
		return fail(log, "Could not simulate table.", fmt.Errorf("%w: %v", feature.ErrUnknownTable, c.slot))
	}
	report(os.Stdout, t, simulate(t, rand.Seeded(c.seed), c.trials), c.trials)
	return subcommands.ExitSuccess
}

// outcome is the result of simulating a single feature of a table.
type outcome struct {
	ref      feature.Ref
	fallback bool
	expected float64
	count    int
}

// simulate resolves the table the amount of times passed and returns an
// outcome for every distinct feature the table refers to, in order of first
// appearance. The expected probabilities of a feature listed more than once
// are summed.
func simulate(t feature.Table, r rand.Source, trials int) []outcome {
	refs := t.References()
	probs := t.Probabilities()
	outcomes := make([]outcome, 0, len(refs))
	index := make(map[feature.Ref]int, len(refs))
	for i, ref := range refs {
		j, ok := index[ref]
		if !ok {
			j = len(outcomes)
			index[ref] = j
			outcomes = append(outcomes, outcome{ref: ref})
		}
		outcomes[j].expected += probs[i]
	}
	outcomes[index[t.Fallback()]].fallback = true
	for i := 0; i < trials; i++ {
		outcomes[index[t.Resolve(r)]].count++
	}
	return outcomes
}

// deviates reports if the observed frequency lies more than four standard
// deviations from the expected probability.
func (o outcome) deviates(trials int) bool {
	sd := math.Sqrt(o.expected * (1 - o.expected) / float64(trials))
	return math.Abs(float64(o.count)/float64(trials)-o.expected) > 4*sd+1e-12
}

func report(w io.Writer, t feature.Table, outcomes []outcome, trials int) {
	ok, off := color.New(color.FgGreen), color.New(color.FgRed)
	for _, o := range outcomes {
		name := o.ref.ID.String()
		if o.fallback {
			name += " (fallback)"
		}
		c := ok
		if o.deviates(trials) {
			c = off
		}
		c.Fprintf(w, "%-56s expected %.4f observed %.4f (%d)\n", name, o.expected, float64(o.count)/float64(trials), o.count)
	}
}
