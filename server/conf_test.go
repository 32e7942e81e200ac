package server

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/bettertrees"
	"github.com/df-mc/spaghettitrees/server/world/generator/biome"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

var discard = slog.New(slog.DiscardHandler)

func TestConfigNew(t *testing.T) {
	ext, err := Config{Log: discard, Random: rand.NewRandom(1), DisabledBiomes: []string{"minecraft:dark_forest"}}.New()
	if err != nil {
		t.Fatalf("new extension: %v", err)
	}
	if !ext.Registry().Frozen() {
		t.Fatalf("expected the registry to be frozen")
	}
	if n := len(ext.Biomes()); n != len(biome.All())-1 {
		t.Fatalf("expected %d biomes, got %d", len(biome.All())-1, n)
	}
	if _, ok := ext.Biome("dark_forest"); ok {
		t.Fatalf("expected dark forest to be disabled")
	}
	if b, ok := ext.Biome("forest"); !ok || b.ID() != biome.IDForest {
		t.Fatalf("expected forest to be enabled")
	}
	if b := ext.Generator().Biome(0, 0); b.ID() == biome.IDDarkForest {
		t.Fatalf("expected the generator not to generate disabled biomes")
	}
}

func TestConfigNewErrors(t *testing.T) {
	all := make([]string, 0, len(biome.All()))
	for _, b := range biome.All() {
		all = append(all, b.Name())
	}
	tests := map[string]struct {
		conf Config
		err  error
	}{
		"unknown biome": {Config{DisabledBiomes: []string{"plains"}}, ErrUnknownBiome},
		"no biomes":     {Config{DisabledBiomes: all}, ErrNoBiomes},
		"bush variants": {Config{BushVariants: 9}, bettertrees.ErrBushVariants},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			test.conf.Log, test.conf.Random = discard, rand.NewRandom(1)
			ext, err := test.conf.New()
			if !errors.Is(err, test.err) {
				t.Fatalf("expected %v, got %v", test.err, err)
			}
			if ext != nil {
				t.Fatalf("expected no extension on failure")
			}
		})
	}
}

func TestUserConfig(t *testing.T) {
	uc := DefaultConfig()
	uc.Generation.DrawMode = "placement"
	uc.Generation.BushSeed = 5
	uc.Biomes.Disabled = []string{"meadow"}
	conf, err := uc.Config(discard)
	if err != nil {
		t.Fatalf("convert config: %v", err)
	}
	if conf.Mode != feature.DrawPerPlacement {
		t.Fatalf("expected placement draw mode, got %v", conf.Mode)
	}
	if conf.Random == nil {
		t.Fatalf("expected a bush seed to result in a Random")
	}
	if len(conf.DisabledBiomes) != 1 || conf.DisabledBiomes[0] != "meadow" {
		t.Fatalf("expected meadow to be disabled, got %v", conf.DisabledBiomes)
	}

	uc.Generation.DrawMode = "sometimes"
	if _, err := uc.Config(discard); err == nil {
		t.Fatalf("expected an unknown draw mode to fail")
	}
}

func TestLoadUserConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "spaghettitrees.toml")
	uc, err := LoadUserConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if uc.Generation.BushVariants != 3 || uc.Generation.DrawMode != "registration" {
		t.Fatalf("expected default config, got %+v", uc)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be written: %v", err)
	}
	again, err := LoadUserConfig(path)
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if again.Generation != uc.Generation {
		t.Fatalf("expected written defaults to load back, got %+v", again)
	}
}

func TestLoadUserConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spaghettitrees.toml")
	contents := `
[Generation]
Seed = 42
DrawMode = "placement"

[Biomes]
Disabled = ["jungle", "savanna"]
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	uc, err := LoadUserConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if uc.Generation.Seed != 42 || uc.Generation.DrawMode != "placement" {
		t.Fatalf("expected generation settings to be read, got %+v", uc.Generation)
	}
	if _, err := uc.Config(discard); err != nil {
		t.Fatalf("convert config: %v", err)
	}
	if len(uc.Biomes.Disabled) != 2 {
		t.Fatalf("expected two disabled biomes, got %v", uc.Biomes.Disabled)
	}

	if err := os.WriteFile(path, []byte("[Generation\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadUserConfig(path); err == nil {
		t.Fatalf("expected malformed TOML to fail")
	}
}

func TestExtensionPopulate(t *testing.T) {
	ext, err := Config{Log: discard, Random: rand.NewRandom(1)}.New()
	if err != nil {
		t.Fatalf("new extension: %v", err)
	}
	chunk := world.ChunkPos{0, 0}
	c := world.NewCanvas()
	for x := -16; x < 32; x++ {
		for z := -16; z < 32; z++ {
			c.SetBlock(world.Pos{x, 63, z}, world.GrassBlock)
		}
	}
	before := c.Len()
	b, _ := ext.Biome("birch_forest")
	ext.Populate(c, b, chunk, 8)
	if c.Len() <= before {
		t.Fatalf("expected the birch forest to grow vegetation")
	}
}
