// Package bettertrees registers the tree archetypes, host features and
// vegetation tables that replace the vanilla trees of forests, jungles,
// savannas, mountains and meadows.
package bettertrees

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/feature"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

var (
	// ErrUnknownBlock is returned when the block lookup does not hold a block
	// used by an archetype.
	ErrUnknownBlock = errors.New("unknown block")
	// ErrBushVariants is returned when the amount of bush variants is out of
	// range.
	ErrBushVariants = errors.New("invalid amount of bush variants")
)

// Options holds the settings used to register the features.
type Options struct {
	// Random is drawn from when the blocks of the undergrowth bushes are
	// chosen. If nil, a Random seeded with the current time is used, so that
	// every run produces different bushes.
	Random rand.Source
	// Mode controls if bush blocks are drawn once per variant or every time a
	// bush is placed.
	Mode feature.DrawMode
	// BushVariants is the amount of undergrowth bush archetypes to register,
	// between 1 and 8. It defaults to 3.
	BushVariants int
	// Blocks resolves the blocks used by the archetypes. If nil,
	// world.DefaultPalette() is used.
	Blocks world.BlockLookup
	// Host holds the vanilla features the tables refer to, by identifier. If
	// nil, HostFeatures() is used.
	Host map[string]feature.Feature
	// Log is the Logger to report registration to. If nil, slog.Default() is
	// used.
	Log *slog.Logger
}

func (opts Options) withDefaults() (Options, error) {
	if opts.Random == nil {
		opts.Random = rand.Seeded(0)
	}
	if opts.BushVariants == 0 {
		opts.BushVariants = defaultBushVariants
	}
	if opts.BushVariants < 1 || opts.BushVariants > maxBushVariants {
		return opts, fmt.Errorf("%w: %d, expected 1 to %d", ErrBushVariants, opts.BushVariants, maxBushVariants)
	}
	if opts.Blocks == nil {
		opts.Blocks = world.DefaultPalette()
	}
	if opts.Host == nil {
		opts.Host = HostFeatures()
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	return opts, nil
}

// New creates a Registry, registers every feature into it and freezes it. If
// any registration fails, no Registry is returned.
func New(opts Options) (*feature.Registry, error) {
	reg := feature.Config{Log: opts.Log}.New()
	if err := Register(reg, opts); err != nil {
		return nil, err
	}
	reg.Freeze()
	return reg, nil
}

// Register registers the archetypes, the host features and the vegetation
// tables into the Registry passed, in that order. Register stops at the first
// error, after which the Registry should be discarded.
func Register(reg *feature.Registry, opts Options) error {
	opts, err := opts.withDefaults()
	if err != nil {
		return err
	}
	log := opts.Log.With("mod", "spaghettitrees")

	blocks := &blockResolver{blocks: opts.Blocks}
	pending := archetypes(blocks)
	if blocks.err != nil {
		return blocks.err
	}
	bush, missing, ok := feature.LookupBushBlocks(opts.Blocks)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownBlock, missing)
	}
	for i := 0; i < opts.BushVariants; i++ {
		pending = append(pending, archetype{name: bushNames[i], builder: feature.BushBuilder(bush, opts.Random, opts.Mode)})
	}
	for _, p := range pending {
		a, err := p.builder.Build()
		if err != nil {
			return fmt.Errorf("build %v: %w", p.name, err)
		}
		if _, err := reg.RegisterArchetype(p.name, a); err != nil {
			return err
		}
	}

	for _, name := range slices.Sorted(maps.Keys(opts.Host)) {
		if _, err := reg.RegisterFeature(name, opts.Host[name]); err != nil {
			return err
		}
	}

	defs := tables(opts.BushVariants)
	for _, t := range defs {
		if err := registerTable(reg, t); err != nil {
			return err
		}
	}
	log.Info("Registered tree features.", "archetypes", len(pending), "host_features", len(opts.Host), "tables", len(defs), "draw_mode", opts.Mode)
	return nil
}

func registerTable(reg *feature.Registry, t table) error {
	lookup := func(name string) (feature.Ref, error) {
		ref, ok := reg.Lookup(name)
		if !ok {
			return feature.Ref{}, fmt.Errorf("register table %v: %w: %v", t.slot, feature.ErrUnknownFeature, name)
		}
		return ref, nil
	}
	fallback, err := lookup(t.fallback)
	if err != nil {
		return err
	}
	entries := make([]feature.Entry, 0, len(t.entries))
	for _, e := range t.entries {
		ref, err := lookup(e.feature)
		if err != nil {
			return err
		}
		entries = append(entries, feature.Entry{Feature: ref, Chance: e.chance})
	}
	composed, err := feature.NewTable(fallback, entries...)
	if err != nil {
		return fmt.Errorf("register table %v: %w", t.slot, err)
	}
	_, err = reg.RegisterTable(t.slot, composed)
	return err
}
