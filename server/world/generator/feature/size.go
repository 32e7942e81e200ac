package feature

import (
	"fmt"

	"github.com/df-mc/spaghettitrees/server/world"
)

// FeatureSize bounds the space a tree needs to grow.
type FeatureSize interface {
	// Radius returns the radius around the trunk that must be free at layer y
	// of a tree with the height passed.
	Radius(height, y int) int
	validate() error
}

// TwoLayers is a FeatureSize with one radius below Limit and another from
// Limit upwards.
type TwoLayers struct {
	Limit, LowerSize, UpperSize int
}

// Radius ...
func (s TwoLayers) Radius(_, y int) int {
	if y < s.Limit {
		return s.LowerSize
	}
	return s.UpperSize
}

func (s TwoLayers) validate() error {
	if s.Limit < 0 || s.LowerSize < 0 || s.UpperSize < 0 {
		return fmt.Errorf("two layers size: limit %d, lower size %d and upper size %d must not be negative", s.Limit, s.LowerSize, s.UpperSize)
	}
	return nil
}

// fits reports if a tree of the height passed fits at pos: every block within
// the radius of every layer up to one above the top must be replaceable.
func fits(s FeatureSize, c *world.Canvas, pos world.Pos, height int) bool {
	for y := 0; y <= height+1; y++ {
		r := s.Radius(height, y)
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				if !c.Block(pos.Add(world.Pos{dx, y, dz})).Replaceable() {
					return false
				}
			}
		}
	}
	return true
}
