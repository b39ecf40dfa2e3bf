// Package geometry provides the unit conversions and rectangle operations
// shared by the imposition engine and the cover/template engine. All
// geometry is carried internally in points; public configuration uses
// inches or millimeters with explicit unit tags.
package geometry

import "github.com/piwi3910/printcore/internal/errkind"

// PointsPerInch is the PDF/PostScript point convention: 1 inch = 72 points.
const PointsPerInch = 72.0

// PointsPerMM follows from PointsPerInch: 1 inch = 25.4 mm.
const PointsPerMM = PointsPerInch / 25.4

// InchToPt converts inches to points.
func InchToPt(in float64) float64 { return in * PointsPerInch }

// PtToInch converts points to inches.
func PtToInch(pt float64) float64 { return pt / PointsPerInch }

// MMToPt converts millimeters to points.
func MMToPt(mm float64) float64 { return mm * PointsPerMM }

// PtToMM converts points to millimeters.
func PtToMM(pt float64) float64 { return pt / PointsPerMM }

// Point is a 2D coordinate in points.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in points, with the origin at its
// lower-left corner (PDF convention: y grows upward).
type Rect struct {
	X, Y, W, H float64
}

// Right returns the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the rectangle's top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Contains reports whether p lies within r (inclusive of edges).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Top()
}

// ContainsRect reports whether r fully contains other.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Top() <= r.Top()
}

// Overlaps reports whether two rectangles share any interior area.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Top() && r.Top() > other.Y
}

// NewRect validates and builds a rectangle. Zero or negative dimensions are
// rejected with errkind.InvalidGeometry, matching the invariant that every
// slot coordinate computed must lie within its containing sheet.
func NewRect(x, y, w, h float64) (Rect, error) {
	if w <= 0 || h <= 0 {
		return Rect{}, errkind.Newf(errkind.InvalidGeometry, "non-positive rectangle dimensions %.4f x %.4f", w, h)
	}
	return Rect{X: x, Y: y, W: w, H: h}, nil
}

// CenterFit centers an inner box of size (iw, ih) within an outer box of
// size (ow, oh) and returns the inner box's origin relative to the outer
// box's origin.
func CenterFit(ow, oh, iw, ih float64) Point {
	return Point{X: (ow - iw) / 2, Y: (oh - ih) / 2}
}

// MaxUnitsAlong returns the maximum number of same-sized items (each of
// length `item`, separated by `gutter`) that fit within `available` length,
// per spec.md §4.1: max_n = floor((available + gutter) / (item + gutter)).
func MaxUnitsAlong(available, item, gutter float64) int {
	if item+gutter <= 0 {
		return 0
	}
	n := int((available + gutter) / (item + gutter))
	if n < 0 {
		return 0
	}
	return n
}

// Fits reports whether a box of size (w, h) fits within bounds (bw, bh)
// without rotation.
func Fits(w, h, bw, bh float64) bool {
	return w <= bw+1e-6 && h <= bh+1e-6
}
