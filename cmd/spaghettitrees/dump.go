package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/google/subcommands"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"gopkg.in/yaml.v3"
)

type dumpCMD struct {
	format string
	out    string
}

func (*dumpCMD) Name() string     { return "dump" }
func (*dumpCMD) Synopsis() string { return "export the registry as json, yaml or nbt" }

func (c *dumpCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "output format: json, yaml or nbt")
	f.StringVar(&c.out, "o", "", "file to write to, standard output if empty")
}

func (c *dumpCMD) Usage() string {
	return c.Name() + " [-format json|yaml|nbt] [-o file]: " + c.Synopsis() + "\n"
}

func (c *dumpCMD) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger()
	ext, err := loadExtension(log, 0)
	if err != nil {
		return fail(log, "Could not load features.", err)
	}
	if c.out == "" {
		err = dump(os.Stdout, ext.Registry(), c.format)
	} else {
		err = dumpFile(c.out, ext.Registry(), c.format)
	}
	if err != nil {
		return fail(log, "Could not dump registry.", err)
	}
	return subcommands.ExitSuccess
}

// dumpFile writes the dump to the file at path. The file is created or
// truncated, and an error closing it is returned like a write error.
func dumpFile(path string, reg *feature.Registry, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close dump file: %w", cerr)
		}
	}()
	return dump(f, reg, format)
}

var errUnknownFormat = errors.New("unknown format")

// record is a single archetype in an NBT dump. Dumps are a stream of records.
type record struct {
	ID        string `nbt:"id"`
	UUID      string `nbt:"uuid"`
	Archetype []byte `nbt:"archetype"`
}

func dump(w io.Writer, reg *feature.Registry, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reg.Export())
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reg.Export()); err != nil {
			return err
		}
		return enc.Close()
	case "nbt":
		enc := nbt.NewEncoderWithEncoding(w, nbt.LittleEndian)
		for _, ref := range reg.Archetypes() {
			a, _ := reg.Archetype(ref.ID.String())
			b, err := feature.Encode(a)
			if err != nil {
				return fmt.Errorf("dump %v: %w", ref.ID, err)
			}
			if err := enc.Encode(record{ID: ref.ID.String(), UUID: ref.UUID.String(), Archetype: b}); err != nil {
				return fmt.Errorf("dump %v: %w", ref.ID, err)
			}
		}
		return nil
	}
	return fmt.Errorf("%w %q", errUnknownFormat, format)
}
