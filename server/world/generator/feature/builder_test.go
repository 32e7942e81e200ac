package feature

import (
	"errors"
	"reflect"
	"testing"

	"github.com/df-mc/spaghettitrees/server/world"
)

var (
	oakLog    = world.Block{Name: "minecraft:oak_log"}
	oakLeaves = world.Block{Name: "minecraft:oak_leaves"}
	stone     = world.Block{Name: "minecraft:stone"}
)

func oakBuilder(dead bool) *Builder {
	leaves := oakLeaves
	if dead {
		leaves = world.Air
	}
	b := NewBuilder(
		Simple{State: oakLog},
		BetterTrunk{Base: 6, RandA: 6, MinWidth: 0.85, MaxWidth: 1.25, MaxBranchLength: 5, MaxNarrowChance: 1, MinBranchChance: 0.3, MaxBranchChance: 0.95},
		Simple{State: leaves},
		LargeOakFoliage{Radius: BiasedToBottom{Min: 1, Max: 2}, Offset: Constant(0), Height: 2},
		TwoLayers{Limit: 5, UpperSize: 10},
	)
	if dead {
		b.Dead()
	}
	return b
}

func TestBuilderBuildsArchetype(t *testing.T) {
	a, err := oakBuilder(false).Decorators(Beehive{Probability: 0.05}).Build()
	if err != nil {
		t.Fatalf("build oak: %v", err)
	}
	if a.TrunkPlacer() == nil || a.FoliagePlacer() == nil {
		t.Fatalf("expected trunk and foliage placer to be set")
	}
	if a.Dead() {
		t.Fatalf("expected living archetype")
	}
	if got := a.Decorators(); len(got) != 1 || got[0] != (Beehive{Probability: 0.05}) {
		t.Fatalf("unexpected decorators %v", got)
	}
}

func TestBuilderReuseDoesNotAffectBuiltArchetypes(t *testing.T) {
	b := oakBuilder(false).Decorators(TrunkVine{})
	first := b.MustBuild()
	second := b.Decorators(TrunkVine{}, LeavesVine{Probability: 0.25}).MustBuild()
	if len(first.Decorators()) != 1 || len(second.Decorators()) != 2 {
		t.Fatalf("expected 1 and 2 decorators, got %d and %d", len(first.Decorators()), len(second.Decorators()))
	}
	decorators := second.Decorators()
	decorators[0] = Beehive{Probability: 1}
	if reflect.DeepEqual(decorators, second.Decorators()) {
		t.Fatalf("expected Decorators to return a copy")
	}
}

func TestBuilderRejectsInvalidArchetypes(t *testing.T) {
	blob := BlobFoliage{Radius: Constant(0), Offset: Constant(0)}
	size := TwoLayers{Limit: 1, LowerSize: 2, UpperSize: 1}
	tests := map[string]*Builder{
		"nil trunk placer":     NewBuilder(Simple{State: oakLog}, nil, Simple{State: oakLeaves}, blob, size),
		"nil foliage placer":   NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: 4}, Simple{State: oakLeaves}, nil, size),
		"nil size":             NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: 4}, Simple{State: oakLeaves}, blob, nil),
		"air trunk":            NewBuilder(Simple{State: world.Air}, StraightTrunk{Base: 4}, Simple{State: oakLeaves}, blob, size),
		"negative height":      NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: -1, RandA: 2}, Simple{State: oakLeaves}, blob, size),
		"zero height":          NewBuilder(Simple{State: oakLog}, DeadLogTrunk{}, Simple{State: world.Air}, blob, size).Dead(),
		"leafless not dead":    NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: 4}, Simple{State: world.Air}, blob, size),
		"dead with leaves":     NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: 4}, Simple{State: oakLeaves}, blob, size).Dead(),
		"empty uniform":        NewBuilder(UniformOf(), StraightTrunk{Base: 4}, Simple{State: oakLeaves}, blob, size),
		"inverted width":       NewBuilder(Simple{State: oakLog}, BetterTrunk{Base: 4, MinWidth: 2, MaxWidth: 1}, Simple{State: oakLeaves}, blob, size),
		"narrow chance":        NewBuilder(Simple{State: oakLog}, BetterTrunk{Base: 4, MinWidth: 1, MaxWidth: 1, MaxNarrowChance: 1.5}, Simple{State: oakLeaves}, blob, size),
		"inverted radius":      NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: 4}, Simple{State: oakLeaves}, BushFoliage{Radius: BiasedToBottom{Min: 2, Max: 1}, Offset: Constant(0)}, size),
		"nil radius":           NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: 4}, Simple{State: oakLeaves}, BushFoliage{Offset: Constant(0)}, size),
		"negative size":        NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: 4}, Simple{State: oakLeaves}, blob, TwoLayers{Limit: -1}),
		"zero beehive chance":  NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: 4}, Simple{State: oakLeaves}, blob, size).Decorators(Beehive{}),
		"nil decorator":        NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: 4}, Simple{State: oakLeaves}, blob, size).Decorators(nil),
		"leaves vine too high": NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: 4}, Simple{State: oakLeaves}, blob, size).Decorators(LeavesVine{Probability: 2}),
	}
	for name, b := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := b.Build()
			if !errors.Is(err, ErrInvalidArchetype) {
				t.Fatalf("expected ErrInvalidArchetype, got %v", err)
			}
		})
	}
}

func TestBuilderDeadArchetype(t *testing.T) {
	a, err := oakBuilder(true).Build()
	if err != nil {
		t.Fatalf("build dead oak: %v", err)
	}
	if !a.Dead() {
		t.Fatalf("expected dead archetype")
	}
	for _, b := range a.Foliage().Candidates() {
		if !b.Air() {
			t.Fatalf("expected dead archetype to have air foliage, got %v", b)
		}
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustBuild to panic for an invalid archetype")
		}
	}()
	NewBuilder(nil, nil, nil, nil, nil).MustBuild()
}
