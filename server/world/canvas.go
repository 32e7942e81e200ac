package world

import (
	"slices"

	"github.com/brentp/intintmap"
)

// Canvas is a sparse block store that stands in for the world of the host
// during feature placement. Positions that were never set hold Air. A Canvas
// is not safe for concurrent use.
type Canvas struct {
	blocks *intintmap.Map
	// palette holds every block that was set at least once. Index 0 is never
	// used so that a zero value in blocks cannot be mistaken for a block.
	palette []Block
	index   map[Block]int64
}

// NewCanvas returns an empty Canvas.
func NewCanvas() *Canvas {
	return &Canvas{
		blocks:  intintmap.New(1024, 0.6),
		palette: []Block{Air},
		index:   map[Block]int64{Air: 0},
	}
}

// Block returns the block at the position passed.
func (c *Canvas) Block(pos Pos) Block {
	v, ok := c.blocks.Get(pack(pos))
	if !ok {
		return Air
	}
	return c.palette[v]
}

// SetBlock sets the block at the position passed. Setting Air clears the
// position.
func (c *Canvas) SetBlock(pos Pos, b Block) {
	key := pack(pos)
	if b.Air() {
		c.blocks.Del(key)
		return
	}
	v, ok := c.index[b]
	if !ok {
		v = int64(len(c.palette))
		c.palette = append(c.palette, b)
		c.index[b] = v
	}
	c.blocks.Put(key, v)
}

// Len returns the amount of non-air blocks on the canvas.
func (c *Canvas) Len() int {
	return c.blocks.Size()
}

// Count returns how many positions hold the block passed.
func (c *Canvas) Count(b Block) int {
	v, ok := c.index[b]
	if !ok || v == 0 {
		return 0
	}
	n := 0
	for item := range c.blocks.Items() {
		if item[1] == v {
			n++
		}
	}
	return n
}

// Positions returns the positions that hold the block passed, sorted by y, x
// and z.
func (c *Canvas) Positions(b Block) []Pos {
	v, ok := c.index[b]
	if !ok || v == 0 {
		return nil
	}
	var positions []Pos
	for item := range c.blocks.Items() {
		if item[1] == v {
			positions = append(positions, unpack(item[0]))
		}
	}
	slices.SortFunc(positions, func(a, b Pos) int {
		for _, i := range [3]int{1, 0, 2} {
			if a[i] != b[i] {
				return a[i] - b[i]
			}
		}
		return 0
	})
	return positions
}

// Counts returns the amount of positions held by every block on the canvas.
func (c *Canvas) Counts() map[Block]int {
	counts := make(map[Block]int, len(c.palette))
	for item := range c.blocks.Items() {
		counts[c.palette[item[1]]]++
	}
	return counts
}

// Bounds returns the smallest and largest corner of the box holding every
// block on the canvas. ok is false if the canvas is empty.
func (c *Canvas) Bounds() (lo, hi Pos, ok bool) {
	for key := range c.blocks.Keys() {
		p := unpack(key)
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		for i := range p {
			lo[i], hi[i] = min(lo[i], p[i]), max(hi[i], p[i])
		}
	}
	return lo, hi, ok
}

const (
	horizontalBits = 26
	verticalBits   = 12
)

// pack encodes a position into a single int64 key: 26 bits for x and z each,
// 12 bits for y.
func pack(p Pos) int64 {
	const hMask, vMask = 1<<horizontalBits - 1, 1<<verticalBits - 1
	return (int64(p[0])&hMask)<<(horizontalBits+verticalBits) |
		(int64(p[2])&hMask)<<verticalBits |
		int64(p[1])&vMask
}

func unpack(k int64) Pos {
	x := signExtend(k>>(horizontalBits+verticalBits), horizontalBits)
	z := signExtend(k>>verticalBits, horizontalBits)
	y := signExtend(k, verticalBits)
	return Pos{int(x), int(y), int(z)}
}

func signExtend(v int64, bits uint) int64 {
	v &= 1<<bits - 1
	if v&(1<<(bits-1)) != 0 {
		v -= 1 << bits
	}
	return v
}
