package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator"
	"github.com/df-mc/spaghettitrees/server/world/generator/bettertrees"
	"github.com/df-mc/spaghettitrees/server/world/generator/biome"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
	"gopkg.in/yaml.v3"
)

var discard = slog.New(slog.DiscardHandler)

func testRegistry(t *testing.T) *feature.Registry {
	t.Helper()
	reg, err := bettertrees.New(bettertrees.Options{Random: rand.NewRandom(1), Log: discard})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return reg
}

func TestDisplayName(t *testing.T) {
	id := feature.Identifier{Namespace: "spaghettitrees", Path: "tree_better_oak_rare_bees"}
	if got := displayName(id); got != "Tree Better Oak Rare Bees" {
		t.Fatalf("unexpected display name %q", got)
	}
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	list(&buf, testRegistry(t), true)
	out := buf.String()
	for _, want := range []string{"Archetypes (20):", "Tables (10):", "spaghettitrees:dead_oak_log", "Better Savannah Trees", "minecraft:acacia_checked"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected list output to contain %q", want)
		}
	}
}

func TestDumpFormats(t *testing.T) {
	reg := testRegistry(t)

	var js bytes.Buffer
	if err := dump(&js, reg, "json"); err != nil {
		t.Fatalf("dump json: %v", err)
	}
	var doc feature.Document
	if err := json.Unmarshal(js.Bytes(), &doc); err != nil {
		t.Fatalf("decode json dump: %v", err)
	}
	if len(doc.Archetypes) != 20 || len(doc.Tables) != 10 {
		t.Fatalf("expected 20 archetypes and 10 tables, got %d and %d", len(doc.Archetypes), len(doc.Tables))
	}

	var ym bytes.Buffer
	if err := dump(&ym, reg, "yaml"); err != nil {
		t.Fatalf("dump yaml: %v", err)
	}
	var fromYAML feature.Document
	if err := yaml.Unmarshal(ym.Bytes(), &fromYAML); err != nil {
		t.Fatalf("decode yaml dump: %v", err)
	}
	if fromYAML.Namespace != doc.Namespace || len(fromYAML.Tables) != len(doc.Tables) {
		t.Fatalf("expected yaml and json dumps to describe the same registry")
	}

	if err := dump(&bytes.Buffer{}, reg, "xml"); !errors.Is(err, errUnknownFormat) {
		t.Fatalf("expected errUnknownFormat, got %v", err)
	}
}

func TestDumpInspect(t *testing.T) {
	var buf bytes.Buffer
	if err := dump(&buf, testRegistry(t), "nbt"); err != nil {
		t.Fatalf("dump nbt: %v", err)
	}
	var out bytes.Buffer
	if err := inspect(&out, &buf); err != nil {
		t.Fatalf("inspect dump: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 archetypes to be inspected, got %d", len(lines))
	}
	if !strings.Contains(out.String(), "spaghettitrees:tree_better_oak_bees trunk=minecraft:oak_log") {
		t.Fatalf("expected oak bees to be inspected, got\n%v", out.String())
	}
	if err := inspect(&out, strings.NewReader("garbage")); err == nil {
		t.Fatalf("expected garbage to fail to inspect")
	}
}

func TestInspectStreamEnd(t *testing.T) {
	var buf bytes.Buffer
	if err := dump(&buf, testRegistry(t), "nbt"); err != nil {
		t.Fatalf("dump nbt: %v", err)
	}
	full := buf.Bytes()

	var out bytes.Buffer
	if err := inspect(&out, bufio.NewReader(bytes.NewReader(full))); err != nil {
		t.Fatalf("inspect buffered dump: %v", err)
	}
	if n := strings.Count(out.String(), "\n"); n != 20 {
		t.Fatalf("expected 20 records, got %d", n)
	}

	out.Reset()
	if err := inspect(&out, bytes.NewReader(nil)); err != nil {
		t.Fatalf("expected an empty dump to inspect cleanly, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output for an empty dump, got %q", out.String())
	}

	if err := inspect(&out, bytes.NewReader(full[:len(full)-3])); err == nil {
		t.Fatalf("expected a truncated dump to fail to inspect")
	}
}

func TestDumpFile(t *testing.T) {
	reg := testRegistry(t)
	path := filepath.Join(t.TempDir(), "registry.nbt")
	if err := dumpFile(path, reg, "nbt"); err != nil {
		t.Fatalf("dump file: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open dump: %v", err)
	}
	defer f.Close()
	var out bytes.Buffer
	if err := inspect(&out, f); err != nil {
		t.Fatalf("inspect dump file: %v", err)
	}
	if n := strings.Count(out.String(), "\n"); n != 20 {
		t.Fatalf("expected 20 records in the dump file, got %d", n)
	}

	if err := dumpFile(filepath.Join(t.TempDir(), "missing", "registry.nbt"), reg, "nbt"); err == nil {
		t.Fatalf("expected a dump into a missing directory to fail")
	}
	if err := dumpFile(path, reg, "xml"); !errors.Is(err, errUnknownFormat) {
		t.Fatalf("expected errUnknownFormat, got %v", err)
	}
}

func TestSimulate(t *testing.T) {
	reg := testRegistry(t)
	table, _ := reg.Table(bettertrees.SavannaTrees)
	const trials = 50000
	outcomes := simulate(table, rand.NewRandom(11), trials)
	if len(outcomes) != 2 {
		t.Fatalf("expected an outcome for the entry and the fallback, got %d", len(outcomes))
	}
	if outcomes[0].count+outcomes[1].count != trials {
		t.Fatalf("expected every trial to be counted")
	}
	for _, o := range outcomes {
		if o.deviates(trials) {
			t.Fatalf("%v: observed %d of %d, expected probability %v", o.ref, o.count, trials, o.expected)
		}
	}
	if !(outcome{expected: 0.5, count: 0}).deviates(trials) {
		t.Fatalf("expected a count of 0 to deviate from a probability of 0.5")
	}
}

func TestSimulateMergesRepeatedFeatures(t *testing.T) {
	reg := testRegistry(t)
	oak, _ := reg.Lookup("spaghettitrees:tree_better_oak")
	acacia, _ := reg.Lookup(bettertrees.AcaciaChecked)
	table, err := feature.NewTable(oak,
		feature.Entry{Feature: oak, Chance: 0.5},
		feature.Entry{Feature: acacia, Chance: 0.5},
		feature.Entry{Feature: acacia, Chance: 0.5},
	)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	const trials = 50000
	outcomes := simulate(table, rand.NewRandom(3), trials)
	if len(outcomes) != 2 {
		t.Fatalf("expected one outcome per distinct feature, got %d", len(outcomes))
	}
	want := map[feature.Ref]float64{oak: 0.625, acacia: 0.375}
	for _, o := range outcomes {
		if math.Abs(o.expected-want[o.ref]) > 1e-9 {
			t.Fatalf("%v: expected probability %v, got %v", o.ref.ID, want[o.ref], o.expected)
		}
		if o.deviates(trials) {
			t.Fatalf("%v: observed %d of %d, expected probability %v", o.ref.ID, o.count, trials, o.expected)
		}
		if o.fallback != (o.ref == oak) {
			t.Fatalf("%v: expected only the oak to be marked as fallback", o.ref.ID)
		}
	}
}

func TestGrow(t *testing.T) {
	reg := testRegistry(t)
	c, ok, err := grow(reg, "tree_better_birch", rand.NewRandom(4))
	if err != nil || !ok {
		t.Fatalf("expected birch to grow, got %v, %v", ok, err)
	}
	if c.Count(world.Block{Name: "minecraft:birch_log"}) == 0 {
		t.Fatalf("expected birch logs, got %v", c.Counts())
	}
	c, ok, err = grow(reg, bettertrees.OakTree, rand.NewRandom(4))
	if err != nil || !ok {
		t.Fatalf("expected the plain oak to grow, got %v, %v", ok, err)
	}
	if c.Count(world.Block{Name: "minecraft:oak_log"}) == 0 {
		t.Fatalf("expected oak logs, got %v", c.Counts())
	}
	if _, _, err := grow(reg, "tree_palm", rand.NewRandom(4)); !errors.Is(err, feature.ErrUnknownFeature) {
		t.Fatalf("expected ErrUnknownFeature, got %v", err)
	}
}

func TestGenerate(t *testing.T) {
	g := generator.Config{Seed: 5, Registry: testRegistry(t), Biomes: []biome.Biome{biome.Jungle{}}, Log: discard}.New()
	c, biomes := generate(g, 1)
	if biomes["jungle"] != 9 {
		t.Fatalf("expected 9 jungle chunks, got %v", biomes)
	}
	if c.Count(world.GrassBlock)+c.Count(world.Dirt) < 9*256 {
		t.Fatalf("expected the surface of every chunk to be generated")
	}
}
