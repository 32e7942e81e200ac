package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Pos holds the position of a block. The position is represented as an array
// with an x, y and z value.
type Pos [3]int

// String converts the Pos to a string in the format (1,2,3) and returns it.
func (p Pos) String() string {
	return fmt.Sprintf("(%v,%v,%v)", p[0], p[1], p[2])
}

// X returns the X coordinate of the block position.
func (p Pos) X() int { return p[0] }

// Y returns the Y coordinate of the block position.
func (p Pos) Y() int { return p[1] }

// Z returns the Z coordinate of the block position.
func (p Pos) Z() int { return p[2] }

// Add adds two block positions together and returns a new one.
func (p Pos) Add(pos Pos) Pos {
	return Pos{p[0] + pos[0], p[1] + pos[1], p[2] + pos[2]}
}

// Sub subtracts pos from the block position p and returns a new one.
func (p Pos) Sub(pos Pos) Pos {
	return Pos{p[0] - pos[0], p[1] - pos[1], p[2] - pos[2]}
}

// Side returns the position on the horizontal side of p passed.
func (p Pos) Side(d Direction) Pos {
	switch d {
	case North:
		return p.Add(Pos{0, 0, -1})
	case South:
		return p.Add(Pos{0, 0, 1})
	case West:
		return p.Add(Pos{-1, 0, 0})
	case East:
		return p.Add(Pos{1, 0, 0})
	}
	return p
}

// Vec3 returns a vec3 holding the same coordinates as the block position.
func (p Pos) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// PosFromVec3 returns a block position from the Vec3 passed. The coordinates
// are floored.
func PosFromVec3(vec3 mgl64.Vec3) Pos {
	return Pos{floor(vec3[0]), floor(vec3[1]), floor(vec3[2])}
}

func floor(v float64) int {
	i := int(v)
	if v < float64(i) {
		i--
	}
	return i
}

// Direction is a horizontal direction.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions returns the four horizontal directions.
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

// String ...
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	panic("invalid direction")
}

// ChunkPos holds the position of a chunk. The type is provided as a utility
// struct for keeping track of a chunk's position. Chunks do not themselves
// keep track of that.
type ChunkPos [2]int32

// Contains reports if the block position lies within the chunk.
func (c ChunkPos) Contains(p Pos) bool {
	return int32(p[0]>>4) == c[0] && int32(p[2]>>4) == c[1]
}
