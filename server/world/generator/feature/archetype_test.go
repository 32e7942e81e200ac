package feature

import (
	"testing"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

func simpleTree(leafHeight int, decorators ...Decorator) Archetype {
	b := NewBuilder(
		Simple{State: oakLog},
		StraightTrunk{Base: 4},
		Simple{State: oakLeaves},
		BlobFoliage{Radius: Constant(2), Offset: Constant(0), Height: leafHeight},
		TwoLayers{Limit: 1, UpperSize: 1},
	)
	if len(decorators) > 0 {
		b.Decorators(decorators...)
	}
	return b.MustBuild()
}

func TestArchetypeGrows(t *testing.T) {
	c := world.NewCanvas()
	c.SetBlock(world.Pos{0, 63, 0}, world.GrassBlock)

	if !simpleTree(3).Grow(c, world.Pos{0, 64, 0}, rand.NewRandom(1)) {
		t.Fatalf("expected tree to grow on an empty canvas")
	}
	for y := 64; y < 68; y++ {
		if b := c.Block(world.Pos{0, y, 0}); b != oakLog {
			t.Fatalf("expected log at y=%d, got %v", y, b)
		}
	}
	if b := c.Block(world.Pos{0, 68, 0}); b != oakLeaves {
		t.Fatalf("expected leaves on top of the trunk, got %v", b)
	}
	if b := c.Block(world.Pos{0, 63, 0}); b != world.Dirt {
		t.Fatalf("expected grass below the tree to turn into dirt, got %v", b)
	}
	if c.Count(oakLeaves) == 0 {
		t.Fatalf("expected leaves to be placed")
	}
}

func TestArchetypeDoesNotGrowWhenObstructed(t *testing.T) {
	c := world.NewCanvas()
	c.SetBlock(world.Pos{0, 63, 0}, world.GrassBlock)
	c.SetBlock(world.Pos{1, 66, 0}, stone)

	if simpleTree(3).Grow(c, world.Pos{0, 64, 0}, rand.NewRandom(1)) {
		t.Fatalf("expected tree not to grow next to stone")
	}
	if c.Len() != 2 || c.Block(world.Pos{0, 63, 0}) != world.GrassBlock {
		t.Fatalf("expected canvas to be unchanged, got %v", c.Counts())
	}

	c.SetBlock(world.Pos{1, 66, 0}, world.Air)
	c.SetBlock(world.Pos{3, 66, 0}, stone)
	if !simpleTree(3).Grow(c, world.Pos{0, 64, 0}, rand.NewRandom(1)) {
		t.Fatalf("expected tree to grow with stone outside of its size")
	}
}

func TestLeavesDoNotReplaceSolidBlocks(t *testing.T) {
	c := world.NewCanvas()
	c.SetBlock(world.Pos{1, 68, 0}, stone)
	c.SetBlock(world.Pos{-1, 68, 0}, world.ShortGrass)

	a := NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: 4}, Simple{State: oakLeaves},
		BlobFoliage{Radius: Constant(2), Offset: Constant(0)}, TwoLayers{}).MustBuild()
	if !a.Grow(c, world.Pos{0, 64, 0}, rand.NewRandom(3)) {
		t.Fatalf("expected tree to grow")
	}
	if b := c.Block(world.Pos{1, 68, 0}); b != stone {
		t.Fatalf("expected stone to stay, got %v", b)
	}
	if b := c.Block(world.Pos{-1, 68, 0}); b != oakLeaves {
		t.Fatalf("expected short grass to be replaced by leaves, got %v", b)
	}
}

func TestDeadArchetypeHasNoLeaves(t *testing.T) {
	a := oakBuilder(true).MustBuild()
	c, r := world.NewCanvas(), rand.NewRandom(8)
	for i := 0; i < 10; i++ {
		if !a.Grow(c, world.Pos{i * 32, 64, 0}, r) {
			t.Fatalf("expected dead tree %d to grow", i)
		}
	}
	for b := range c.Counts() {
		if b.Leaves() {
			t.Fatalf("expected no leaves on dead trees, found %v", b)
		}
	}
	if c.Count(oakLog) == 0 {
		t.Fatalf("expected logs to be placed")
	}
}

func TestBeehiveHangsBelowLeaves(t *testing.T) {
	c := world.NewCanvas()
	if !simpleTree(1, Beehive{Probability: 1}).Grow(c, world.Pos{0, 64, 0}, rand.NewRandom(4)) {
		t.Fatalf("expected tree to grow")
	}
	nests := c.Positions(world.BeeNest)
	if len(nests) != 1 {
		t.Fatalf("expected a single bee nest, got %v", nests)
	}
	// The lowest leaves are at y=67, so the nest hangs at y=66.
	want := map[world.Pos]bool{{1, 66, 0}: true, {0, 66, 1}: true, {-1, 66, 0}: true}
	if !want[nests[0]] {
		t.Fatalf("unexpected bee nest position %v", nests[0])
	}
}

func TestBeehiveWithoutLeaves(t *testing.T) {
	a := NewBuilder(Simple{State: oakLog}, StraightTrunk{Base: 5}, Simple{State: world.Air},
		BlobFoliage{Radius: Constant(2), Offset: Constant(0)}, TwoLayers{}).
		Dead().Decorators(Beehive{Probability: 1}).MustBuild()

	c := world.NewCanvas()
	// Two height draws, the nest height and finally the side of the trunk.
	seq := rand.NewSequence([]int{0, 0, 2, 1}, []float64{0})
	if !a.Grow(c, world.Pos{0, 10, 0}, seq) {
		t.Fatalf("expected tree to grow")
	}
	nests := c.Positions(world.BeeNest)
	if len(nests) != 1 || nests[0] != (world.Pos{0, 13, 1}) {
		t.Fatalf("expected bee nest south of the trunk at y=13, got %v", nests)
	}
	if ints, floats := seq.Remaining(); ints != 0 || floats != 0 {
		t.Fatalf("expected every scripted value to be drawn, %d ints and %d floats left", ints, floats)
	}
}

func TestLeavesVineHangs(t *testing.T) {
	c := world.NewCanvas()
	if !simpleTree(1, LeavesVine{Probability: 1}).Grow(c, world.Pos{0, 64, 0}, rand.NewRandom(6)) {
		t.Fatalf("expected tree to grow")
	}
	vines := c.Positions(world.Vine)
	if len(vines) == 0 {
		t.Fatalf("expected vines to hang from the leaves")
	}
	for _, v := range vines {
		if v.Y() > 68 {
			t.Fatalf("expected vines below the top of the tree, found one at %v", v)
		}
	}
}
