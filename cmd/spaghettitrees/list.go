package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/google/subcommands"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type listCMD struct {
	tables bool
}

func (*listCMD) Name() string     { return "list" }
func (*listCMD) Synopsis() string { return "list the registered archetypes and vegetation tables" }

func (c *listCMD) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.tables, "tables", true, "also list the vegetation tables with their probabilities")
}

func (c *listCMD) Usage() string {
	return c.Name() + ": " + c.Synopsis() + "\n"
}

func (c *listCMD) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger()
	ext, err := loadExtension(log, 0)
	if err != nil {
		return fail(log, "Could not load features.", err)
	}
	list(os.Stdout, ext.Registry(), c.tables)
	return subcommands.ExitSuccess
}

var title = cases.Title(language.English)

// displayName turns an identifier such as "spaghettitrees:tree_better_oak" into
// a name such as "Tree Better Oak".
func displayName(id feature.Identifier) string {
	return title.String(strings.ReplaceAll(id.Path, "_", " "))
}

func list(w io.Writer, reg *feature.Registry, tables bool) {
	fmt.Fprintf(w, "Archetypes (%d):\n", len(reg.Archetypes()))
	for _, ref := range reg.Archetypes() {
		a, _ := reg.Archetype(ref.ID.String())
		lo, hi := a.TrunkPlacer().HeightRange()
		state := ""
		if a.Dead() {
			state = " dead"
		}
		fmt.Fprintf(w, "\t%-36s %-34s height %d-%d%s\n", ref.ID, displayName(ref.ID), lo, hi, state)
	}
	if !tables {
		return
	}
	fmt.Fprintf(w, "Tables (%d):\n", len(reg.Tables()))
	for _, ref := range reg.Tables() {
		t, _ := reg.Table(ref.ID.String())
		fmt.Fprintf(w, "\t%v (%v)\n", ref.ID, displayName(ref.ID))
		probs := t.Probabilities()
		for i, e := range t.Entries() {
			fmt.Fprintf(w, "\t\t%-44s chance %-8.4g overall %.4f\n", e.Feature.ID, e.Chance, probs[i])
		}
		fmt.Fprintf(w, "\t\t%-44s fallback        overall %.4f\n", t.Fallback().ID, probs[len(probs)-1])
	}
}
