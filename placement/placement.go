// Package placement computes where a tooltip is drawn relative to its
// anchor so that it stays inside the viewport.
//
// All functions are pure. Coordinates are viewport pixels with the origin
// at the top-left corner.
package placement

// Side is the edge of the anchor the tooltip is drawn next to.
type Side string

const (
	Top    Side = "top"
	Bottom Side = "bottom"
	Left   Side = "left"
	Right  Side = "right"
)

// ParseSide maps an attribute value onto a Side. Unknown values report
// false and resolve to Top.
func ParseSide(s string) (Side, bool) {
	switch Side(s) {
	case Top, Bottom, Left, Right:
		return Side(s), true
	}
	return Top, false
}

// Opposite returns the side used when flipping.
func (s Side) Opposite() Side {
	switch s {
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	}
	return Bottom
}

// Rect is a bounding rectangle as returned by getBoundingClientRect.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Size is a width and height, used both for the tooltip and the viewport.
type Size struct {
	Width  float64
	Height float64
}

type Point struct {
	X float64
	Y float64
}

// Result is the outcome of Place. Side is the side actually used, which
// differs from the requested one after a flip.
type Result struct {
	Side Side    `json:"side"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Candidate returns the unclamped top-left corner of the tooltip when
// drawn on the given side of anchor.
func Candidate(anchor Rect, tip Size, side Side, offset float64) Point {
	switch side {
	case Bottom:
		return Point{
			X: anchor.Left + anchor.Width/2 - tip.Width/2,
			Y: anchor.Bottom() + offset,
		}
	case Left:
		return Point{
			X: anchor.Left - tip.Width - offset,
			Y: anchor.Top + anchor.Height/2 - tip.Height/2,
		}
	case Right:
		return Point{
			X: anchor.Right() + offset,
			Y: anchor.Top + anchor.Height/2 - tip.Height/2,
		}
	}
	return Point{
		X: anchor.Left + anchor.Width/2 - tip.Width/2,
		Y: anchor.Top - tip.Height - offset,
	}
}

// Fits reports whether a tooltip at p lies entirely inside the viewport
// shrunk by pad on every edge.
func Fits(p Point, tip Size, viewport Size, pad float64) bool {
	return p.X >= pad &&
		p.Y >= pad &&
		p.X+tip.Width <= viewport.Width-pad &&
		p.Y+tip.Height <= viewport.Height-pad
}

// Clamp bounds v to [lo, hi]. The upper bound is applied first, so when
// hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Place picks the requested side, or its opposite if only the opposite
// fits, and clamps the result into the padded viewport. When neither side
// fits the requested side is kept; perpendicular sides are never tried.
func Place(anchor Rect, tip Size, side Side, viewport Size, offset, pad float64) Result {
	if _, ok := ParseSide(string(side)); !ok {
		side = Top
	}

	pos := Candidate(anchor, tip, side, offset)
	if !Fits(pos, tip, viewport, pad) {
		alt := side.Opposite()
		if altPos := Candidate(anchor, tip, alt, offset); Fits(altPos, tip, viewport, pad) {
			side, pos = alt, altPos
		}
	}

	return Result{
		Side: side,
		X:    Clamp(pos.X, pad, viewport.Width-tip.Width-pad),
		Y:    Clamp(pos.Y, pad, viewport.Height-tip.Height-pad),
	}
}

const (
	// FollowOffset is the distance between the cursor and the tooltip.
	FollowOffset = 12
	// FollowMargin is kept between the tooltip and the right/bottom edges.
	FollowMargin = 4
)

// Follow places the tooltip below and to the right of the cursor. Only the
// right and bottom viewport edges are enforced.
func Follow(cursor Point, tip Size, viewport Size) Point {
	x := cursor.X + FollowOffset
	y := cursor.Y + FollowOffset
	if limit := viewport.Width - tip.Width - FollowMargin; x > limit {
		x = limit
	}
	if limit := viewport.Height - tip.Height - FollowMargin; y > limit {
		y = limit
	}
	return Point{X: x, Y: y}
}
