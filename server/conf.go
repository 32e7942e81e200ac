package server

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/df-mc/spaghettitrees/server/world/generator"
	"github.com/df-mc/spaghettitrees/server/world/generator/bettertrees"
	"github.com/df-mc/spaghettitrees/server/world/generator/biome"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
	"github.com/pelletier/go-toml"
)

var (
	// ErrUnknownBiome is returned when a disabled biome does not exist.
	ErrUnknownBiome = errors.New("unknown biome")
	// ErrNoBiomes is returned when every biome is disabled.
	ErrNoBiomes = errors.New("every biome is disabled")
)

// Config contains options for loading the tree features.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Random is drawn from to choose the blocks of undergrowth bushes. If nil,
	// a Random seeded with the current time is used, so that the bushes differ
	// between runs.
	Random rand.Source
	// Seed is the seed of the world that features are generated in.
	Seed int64
	// Mode controls whether the blocks of undergrowth bushes are drawn once
	// when registering or every time a bush is placed.
	Mode feature.DrawMode
	// BushVariants is the amount of undergrowth bush archetypes registered. If
	// 0, three variants are registered.
	BushVariants int
	// DisabledBiomes holds the names of biomes that are never generated.
	DisabledBiomes []string
}

// New registers every tree feature into a new, frozen Registry and creates an
// Extension around it. An error is returned if any registration fails, in
// which case nothing may be generated.
func (conf Config) New() (*Extension, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	reg, err := bettertrees.New(bettertrees.Options{
		Random:       conf.Random,
		Mode:         conf.Mode,
		BushVariants: conf.BushVariants,
		Log:          conf.Log,
	})
	if err != nil {
		return nil, fmt.Errorf("register features: %w", err)
	}
	biomes, err := conf.biomes()
	if err != nil {
		return nil, err
	}
	ext := &Extension{
		reg:    reg,
		biomes: biomes,
		gen:    generator.Config{Seed: conf.Seed, Registry: reg, Biomes: biomes, Log: conf.Log}.New(),
	}
	conf.Log.Info("Loaded tree features.", "biomes", len(biomes), "features", len(reg.Features()), "digest", fmt.Sprintf("%016x", reg.Digest()))
	return ext, nil
}

func (conf Config) biomes() ([]biome.Biome, error) {
	disabled := make(map[uint8]bool, len(conf.DisabledBiomes))
	for _, name := range conf.DisabledBiomes {
		b, ok := biome.ByName(name)
		if !ok {
			return nil, fmt.Errorf("disable biome: %w: %q", ErrUnknownBiome, name)
		}
		disabled[b.ID()] = true
	}
	biomes := slices.DeleteFunc(biome.All(), func(b biome.Biome) bool {
		return disabled[b.ID()]
	})
	if len(biomes) == 0 {
		return nil, ErrNoBiomes
	}
	return biomes, nil
}

// UserConfig is the user configuration of the tree features. UserConfig may be
// serialised and can be converted to a Config by calling UserConfig.Config().
type UserConfig struct {
	Generation struct {
		// Seed is the seed of the world generated.
		Seed int64
		// BushSeed is the seed used to draw the blocks of undergrowth bushes.
		// If 0, the bushes are drawn differently on every start.
		BushSeed int64
		// DrawMode is either "registration", to draw the blocks of a bush
		// variant once, or "placement", to draw them for every bush placed.
		DrawMode string
		// BushVariants is the amount of undergrowth bush variants, between 1
		// and 8.
		BushVariants int
	}
	Biomes struct {
		// Disabled holds the names of biomes that are never generated, such as
		// "dark_forest".
		Disabled []string
	}
}

// Config converts a UserConfig to a Config. An error is returned if the draw
// mode is unknown.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	mode, err := feature.ParseDrawMode(uc.Generation.DrawMode)
	if err != nil {
		return Config{}, fmt.Errorf("parse draw mode: %w", err)
	}
	conf := Config{
		Log:            log,
		Seed:           uc.Generation.Seed,
		Mode:           mode,
		BushVariants:   uc.Generation.BushVariants,
		DisabledBiomes: slices.Clone(uc.Biomes.Disabled),
	}
	if uc.Generation.BushSeed != 0 {
		conf.Random = rand.NewRandom(uc.Generation.BushSeed)
	}
	return conf, nil
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.Generation.Seed = 0
	c.Generation.DrawMode = feature.DrawPerRegistration.String()
	c.Generation.BushVariants = 3
	c.Biomes.Disabled = []string{}
	return c
}

// LoadUserConfig reads the UserConfig stored in the TOML file at the path
// passed. If the file does not exist, it is created holding DefaultConfig().
func LoadUserConfig(path string) (UserConfig, error) {
	if strings.TrimSpace(path) == "" {
		return UserConfig{}, errors.New("config path must not be empty")
	}
	c := DefaultConfig()
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, writeUserConfig(path, c)
		}
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(contents, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

func writeUserConfig(path string, c UserConfig) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	encoded, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
