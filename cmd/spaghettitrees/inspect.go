package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/google/subcommands"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

type inspectCMD struct{}

func (*inspectCMD) Name() string     { return "inspect" }
func (*inspectCMD) Synopsis() string { return "decode an nbt dump and print its archetypes" }

func (*inspectCMD) SetFlags(*flag.FlagSet) {}

func (c *inspectCMD) Usage() string {
	return c.Name() + " <file>: " + c.Synopsis() + "\n"
}

func (c *inspectCMD) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger()
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(log, "Could not open dump.", err)
	}
	defer file.Close()
	if err := inspect(os.Stdout, bufio.NewReader(file)); err != nil {
		return fail(log, "Could not inspect dump.", err)
	}
	return subcommands.ExitSuccess
}

// inspect decodes every record of an NBT dump and prints a summary of each.
// The dump must end right after its last record.
func inspect(w io.Writer, r io.Reader) error {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	dec := nbt.NewDecoderWithEncoding(br, nbt.LittleEndian)
	blocks := world.DefaultPalette()
	for {
		if _, err := br.Peek(1); errors.Is(err, io.EOF) {
			return nil
		}
		var rec record
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("decode record: %w", err)
		}
		a, err := feature.Decode(rec.Archetype, blocks)
		if err != nil {
			return fmt.Errorf("decode %v: %w", rec.ID, err)
		}
		s := a.Spec()
		decorators := make([]string, len(s.Decorators))
		for i, d := range s.Decorators {
			decorators[i] = d.Type
		}
		fmt.Fprintf(w, "%v trunk=%v placer=%v foliage=%v decorators=[%v]\n",
			rec.ID, strings.Join(s.Trunk, "|"), s.TrunkPlacer.Type, strings.Join(s.Foliage, "|"), strings.Join(decorators, " "))
	}
}
