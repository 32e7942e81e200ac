package biome

import (
	"log/slog"
	"testing"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/bettertrees"
	"github.com/df-mc/spaghettitrees/server/world/generator/populate"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

func TestAllUnique(t *testing.T) {
	ids, names := map[uint8]bool{}, map[string]bool{}
	for _, b := range All() {
		if ids[b.ID()] || names[b.Name()] {
			t.Fatalf("duplicate biome %v (%d)", b.Name(), b.ID())
		}
		ids[b.ID()], names[b.Name()] = true, true
		if lo, hi := b.Elevation(); lo > hi {
			t.Fatalf("%v: invalid elevation [%d, %d]", b.Name(), lo, hi)
		}
	}
	if len(ids) != 11 {
		t.Fatalf("expected 11 biomes, got %d", len(ids))
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"forest", "minecraft:forest", "FOREST"} {
		if b, ok := ByName(name); !ok || b.ID() != IDForest {
			t.Fatalf("expected %q to look up the forest", name)
		}
	}
	if _, ok := ByName("plains"); ok {
		t.Fatalf("expected plains not to be found")
	}
}

func TestSlotsAreRegistered(t *testing.T) {
	reg, err := bettertrees.New(bettertrees.Options{Random: rand.NewRandom(1), Log: slog.New(slog.DiscardHandler)})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	for _, b := range All() {
		if _, ok := reg.Table(b.Slot()); !ok {
			t.Fatalf("%v: expected slot %v to be registered", b.Name(), b.Slot())
		}
		if len(b.Populators(reg)) == 0 {
			t.Fatalf("%v: expected populators", b.Name())
		}
	}
}

func TestForestGrowsTrees(t *testing.T) {
	reg, err := bettertrees.New(bettertrees.Options{Random: rand.NewRandom(1), Log: slog.New(slog.DiscardHandler)})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	chunk := world.ChunkPos{2, 5}
	c := world.NewCanvas()
	for x := 16; x < 64; x++ {
		for z := 64; z < 112; z++ {
			c.SetBlock(world.Pos{x, 63, z}, world.GrassBlock)
		}
	}
	before := c.Len()
	r := populate.ChunkRandom(7, chunk)
	for _, p := range (Forest{}).Populators(reg) {
		p.Populate(c, chunk, r)
	}
	if c.Len() <= before {
		t.Fatalf("expected the forest to grow vegetation")
	}
	for _, p := range c.Positions(world.Dirt) {
		if !chunk.Contains(p) {
			t.Fatalf("expected trees to be rooted within the chunk, found dirt at %v", p)
		}
	}
}
