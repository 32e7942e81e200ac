package feature

import (
	"fmt"
	"math"

	"github.com/df-mc/spaghettitrees/server/world"
	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
	"github.com/go-gl/mathgl/mgl64"
)

// TrunkPlacer places the logs of a tree and returns the points that foliage
// grows around.
type TrunkPlacer interface {
	// Height draws the height of the trunk of a single tree.
	Height(r rand.Source) int
	// HeightRange returns the smallest and largest height Height may return.
	HeightRange() (min, max int)

	place(p *placement, pos world.Pos, height int) []Attachment
	validate() error
}

// StraightTrunk is a one block wide vertical trunk.
type StraightTrunk struct {
	Base, RandA, RandB int
}

// Height ...
func (t StraightTrunk) Height(r rand.Source) int {
	return t.Base + r.Intn(t.RandA+1) + r.Intn(t.RandB+1)
}

// HeightRange ...
func (t StraightTrunk) HeightRange() (min, max int) {
	return t.Base, t.Base + t.RandA + t.RandB
}

func (t StraightTrunk) place(p *placement, pos world.Pos, height int) []Attachment {
	for y := 0; y < height; y++ {
		p.setLog(pos.Add(world.Pos{0, y, 0}))
	}
	return []Attachment{{Pos: pos.Add(world.Pos{0, height, 0})}}
}

func (t StraightTrunk) validate() error {
	return validateHeights("straight", t.Base, t.RandA, t.RandB)
}

// BetterTrunk is a vertical trunk that starts out wider than a single block
// and narrows as it grows. Above BranchStart, every layer narrows with a
// chance that grows linearly from MinNarrowChance to MaxNarrowChance towards
// the top of the tree. A layer that narrows grows a branch with a chance
// between MinBranchChance and MaxBranchChance in the same way.
type BetterTrunk struct {
	Base, RandA, RandB int
	// MinWidth and MaxWidth bound the width multiplier drawn for each tree. A
	// multiplier above 1 results in a plus shaped trunk, a multiplier of 1.5
	// or more in a 3x3 trunk.
	MinWidth, MaxWidth float64
	// BranchStart is the first layer, counted from the bottom of the trunk,
	// that may narrow or grow a branch.
	BranchStart int
	// MaxBranchLength is the largest horizontal length of a branch.
	MaxBranchLength                  int
	MinNarrowChance, MaxNarrowChance float64
	MinBranchChance, MaxBranchChance float64
}

// Better returns a BetterTrunk of the heights passed that neither narrows nor
// grows branches.
func Better(base, randA, randB int) BetterTrunk {
	return BetterTrunk{Base: base, RandA: randA, RandB: randB, MinWidth: 1, MaxWidth: 1}
}

// Height ...
func (t BetterTrunk) Height(r rand.Source) int {
	return t.Base + r.Intn(t.RandA+1) + r.Intn(t.RandB+1)
}

// HeightRange ...
func (t BetterTrunk) HeightRange() (min, max int) {
	return t.Base, t.Base + t.RandA + t.RandB
}

const (
	widthSingle = iota
	widthPlus
	widthSquare
)

func (t BetterTrunk) place(p *placement, pos world.Pos, height int) []Attachment {
	width := t.MinWidth
	if t.MaxWidth > t.MinWidth {
		width += p.r.Float64() * (t.MaxWidth - t.MinWidth)
	}
	level := widthSingle
	switch {
	case width >= 1.5:
		level = widthSquare
	case width > 1:
		level = widthPlus
	}

	var attachments []Attachment
	start := max(t.BranchStart, 1)
	for y := 0; y < height; y++ {
		centre := pos.Add(world.Pos{0, y, 0})
		t.layer(p, centre, level)
		if y < start || y >= height-1 {
			continue
		}
		progress := float64(y-start+1) / float64(height-start)
		if chance := lerp(progress, t.MinNarrowChance, t.MaxNarrowChance); chance <= 0 || p.r.Float64() >= chance {
			continue
		}
		level = max(level-1, widthSingle)
		if t.MaxBranchLength <= 0 {
			continue
		}
		if chance := lerp(progress, t.MinBranchChance, t.MaxBranchChance); chance > 0 && p.r.Float64() < chance {
			attachments = append(attachments, t.branch(p, centre))
		}
	}
	return append(attachments, Attachment{Pos: pos.Add(world.Pos{0, height, 0})})
}

func (t BetterTrunk) layer(p *placement, centre world.Pos, level int) {
	p.setLog(centre)
	switch level {
	case widthPlus:
		for _, d := range world.Directions() {
			p.setLog(centre.Side(d))
		}
	case widthSquare:
		for dx := -1; dx <= 1; dx++ {
			for dz := -1; dz <= 1; dz++ {
				if dx != 0 || dz != 0 {
					p.setLog(centre.Add(world.Pos{dx, 0, dz}))
				}
			}
		}
	}
}

// branch grows a branch from the trunk position passed. The branch rises one
// block for every two blocks of horizontal length and ends in an attachment.
func (t BetterTrunk) branch(p *placement, from world.Pos) Attachment {
	angle := p.r.Float64() * 2 * math.Pi
	length := 1 + p.r.Intn(t.MaxBranchLength)
	dir := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}

	origin := from.Vec3().Add(mgl64.Vec3{0.5, 0, 0.5})
	end := from
	for i := 1; i <= length; i++ {
		off := dir.Mul(float64(i))
		end = world.PosFromVec3(origin.Add(mgl64.Vec3{off[0], float64(i / 2), off[1]}))
		p.setLog(end)
	}
	return Attachment{Pos: end.Add(world.Pos{0, 1, 0}), RadiusOffset: -1}
}

func (t BetterTrunk) validate() error {
	if err := validateHeights("better", t.Base, t.RandA, t.RandB); err != nil {
		return err
	}
	switch {
	case t.MinWidth <= 0 || t.MinWidth > t.MaxWidth:
		return fmt.Errorf("better trunk: width bounds [%v, %v] are invalid", t.MinWidth, t.MaxWidth)
	case t.BranchStart < 0:
		return fmt.Errorf("better trunk: branch start %d is negative", t.BranchStart)
	case t.MaxBranchLength < 0:
		return fmt.Errorf("better trunk: max branch length %d is negative", t.MaxBranchLength)
	}
	if err := validateChances("narrow", t.MinNarrowChance, t.MaxNarrowChance); err != nil {
		return err
	}
	return validateChances("branch", t.MinBranchChance, t.MaxBranchChance)
}

// DeadLogTrunk is a fallen log lying along the x or z axis. It has no
// attachments, so no foliage is ever grown around it.
type DeadLogTrunk struct {
	// Base and RandA determine the length of the log. RandB is not used to
	// draw the length, but kept so that every trunk placer shares the same
	// parameters.
	Base, RandA, RandB int
}

// Height ...
func (t DeadLogTrunk) Height(r rand.Source) int {
	return t.Base + r.Intn(t.RandA+1)
}

// HeightRange ...
func (t DeadLogTrunk) HeightRange() (min, max int) {
	return t.Base, t.Base + t.RandA
}

func (t DeadLogTrunk) place(p *placement, pos world.Pos, length int) []Attachment {
	step := world.Pos{1, 0, 0}
	if p.r.Intn(2) == 1 {
		step = world.Pos{0, 0, 1}
	}
	for i := 0; i < length; i++ {
		p.setLog(pos.Add(world.Pos{step[0] * i, 0, step[2] * i}))
	}
	return nil
}

func (t DeadLogTrunk) validate() error {
	return validateHeights("dead log", t.Base, t.RandA, t.RandB)
}

func validateHeights(kind string, base, randA, randB int) error {
	switch {
	case base < 0:
		return fmt.Errorf("%v trunk: base height %d is negative", kind, base)
	case randA < 0 || randB < 0:
		return fmt.Errorf("%v trunk: random heights %d and %d must not be negative", kind, randA, randB)
	case base+randA+randB == 0:
		return fmt.Errorf("%v trunk: height is always zero", kind)
	}
	return nil
}

func validateChances(kind string, lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo < 0 || hi > 1 || lo > hi {
		return fmt.Errorf("better trunk: %v chance bounds [%v, %v] are invalid", kind, lo, hi)
	}
	return nil
}

func lerp(progress, lo, hi float64) float64 {
	return lo + (hi-lo)*progress
}
