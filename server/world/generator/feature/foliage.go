package feature

import "fmt"

// FoliagePlacer places the leaves of a tree around the attachments produced by
// its trunk placer.
type FoliagePlacer interface {
	place(p *placement, attachments []Attachment)
	validate() error
}

// BlobFoliage is a rounded blob of leaves that shrinks towards the top.
type BlobFoliage struct {
	Radius, Offset IntProvider
	Height         int
}

func (f BlobFoliage) place(p *placement, attachments []Attachment) {
	radius, offset := f.Radius.Int(p.r), f.Offset.Int(p.r)
	for _, a := range attachments {
		for y := offset; y >= offset-f.Height; y-- {
			rad := max(radius+a.RadiusOffset-1-y/2, 0)
			p.square(a.Pos, rad, y, func(dx, y, dz, radius int) bool {
				return dx == radius && dz == radius && (y == 0 || p.r.Intn(2) == 0)
			})
		}
	}
}

func (f BlobFoliage) validate() error {
	return validateFoliage("blob", f.Radius, f.Offset, f.Height)
}

// BushFoliage is a low and wide layer of leaves widening towards the bottom.
type BushFoliage struct {
	Radius, Offset IntProvider
	Height         int
}

func (f BushFoliage) place(p *placement, attachments []Attachment) {
	radius, offset := f.Radius.Int(p.r), f.Offset.Int(p.r)
	for _, a := range attachments {
		for y := offset; y >= offset-f.Height; y-- {
			rad := radius + a.RadiusOffset - 1 - y
			p.square(a.Pos, rad, y, func(dx, _, dz, radius int) bool {
				return dx == radius && dz == radius && p.r.Intn(2) == 0
			})
		}
	}
}

func (f BushFoliage) validate() error {
	return validateFoliage("bush", f.Radius, f.Offset, f.Height)
}

// LargeOakFoliage is a round canopy that is one block wider in its middle
// layers.
type LargeOakFoliage struct {
	Radius, Offset IntProvider
	Height         int
}

func (f LargeOakFoliage) place(p *placement, attachments []Attachment) {
	radius, offset := f.Radius.Int(p.r), f.Offset.Int(p.r)
	for _, a := range attachments {
		for y := offset; y >= offset-f.Height; y-- {
			rad := radius + a.RadiusOffset
			if y != offset && y != offset-f.Height {
				rad++
			}
			p.square(a.Pos, rad, y, func(dx, _, dz, radius int) bool {
				fx, fz := float64(dx)+0.5, float64(dz)+0.5
				return fx*fx+fz*fz > float64(radius*radius)
			})
		}
	}
}

func (f LargeOakFoliage) validate() error {
	return validateFoliage("large oak", f.Radius, f.Offset, f.Height)
}

func validateFoliage(kind string, radius, offset IntProvider, height int) error {
	if radius == nil || offset == nil {
		return fmt.Errorf("%v foliage: radius and offset must be set", kind)
	}
	if err := validateProvider(radius); err != nil {
		return fmt.Errorf("%v foliage: radius: %w", kind, err)
	}
	if err := validateProvider(offset); err != nil {
		return fmt.Errorf("%v foliage: offset: %w", kind, err)
	}
	if height < 0 {
		return fmt.Errorf("%v foliage: height %d is negative", kind, height)
	}
	return nil
}

func validateProvider(p IntProvider) error {
	lo, hi := p.Bounds()
	if lo < 0 || lo > hi {
		return fmt.Errorf("bounds [%d, %d] are invalid", lo, hi)
	}
	return nil
}
