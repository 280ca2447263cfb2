// Package geometry maps snap point specifications onto a viewport.
//
// A snap point in (0, 1] is a fraction of the viewport height; anything above 1 is
// an absolute height in pixels, capped at the viewport. The resolved offset is the
// distance from the top of the viewport to the drawer's top edge when resting at
// that point.
package geometry

import (
	"math"

	snaperrors "github.com/alexisbeaulieu97/snapsheet/pkg/errors"
)

// Layout is the resolved pixel geometry for one viewport size.
type Layout struct {
	ViewportHeight float64
	Points         []float64
	// Offsets has one entry per point, in input order.
	Offsets []float64
	// Topmost is the smallest offset (the most expanded resting position).
	Topmost float64
	// Offscreen is the offset of a fully hidden drawer.
	Offscreen float64
}

// Resolve computes offsets for points against viewportHeight. The point list must be
// non-empty and every point positive; the viewport height must be positive.
func Resolve(points []float64, viewportHeight float64) (Layout, error) {
	if len(points) == 0 {
		return Layout{}, snaperrors.NewGeometryError(viewportHeight, points, "snap point list is empty")
	}
	if !(viewportHeight > 0) || math.IsInf(viewportHeight, 0) {
		return Layout{}, snaperrors.NewGeometryError(viewportHeight, points, "viewport height must be positive")
	}

	offsets := make([]float64, len(points))
	topmost := math.Inf(1)
	for i, p := range points {
		if !(p > 0) || math.IsInf(p, 0) {
			return Layout{}, snaperrors.NewGeometryError(viewportHeight, points, "snap points must be positive")
		}
		offsets[i] = viewportHeight - Height(p, viewportHeight)
		topmost = math.Min(topmost, offsets[i])
	}

	return Layout{
		ViewportHeight: viewportHeight,
		Points:         append([]float64(nil), points...),
		Offsets:        offsets,
		Topmost:        topmost,
		Offscreen:      viewportHeight,
	}, nil
}

// Height returns the sheet height a single snap point resolves to.
func Height(point, viewportHeight float64) float64 {
	if point <= 1 {
		return viewportHeight * point
	}
	return math.Min(point, viewportHeight)
}

// Count returns the number of snap points.
func (l Layout) Count() int {
	return len(l.Offsets)
}

// Valid reports whether the layout came out of a successful Resolve.
func (l Layout) Valid() bool {
	return len(l.Offsets) > 0
}

// Offset returns the resting offset for index i. Indices outside the layout map to
// the off-screen offset.
func (l Layout) Offset(i int) float64 {
	if i < 0 || i >= len(l.Offsets) {
		return l.Offscreen
	}
	return l.Offsets[i]
}

// Resolver keeps the layout for the current viewport and recomputes it on resize.
type Resolver struct {
	points []float64
	layout Layout
}

// NewResolver resolves points against the initial viewport height.
func NewResolver(points []float64, viewportHeight float64) (*Resolver, error) {
	layout, err := Resolve(points, viewportHeight)
	if err != nil {
		return nil, err
	}
	return &Resolver{points: append([]float64(nil), points...), layout: layout}, nil
}

// Layout returns the current layout.
func (r *Resolver) Layout() Layout {
	return r.layout
}

// Resize recomputes the layout for a new viewport height. On error the previous
// layout stays current. The boolean reports whether the layout changed.
func (r *Resolver) Resize(viewportHeight float64) (Layout, bool, error) {
	if viewportHeight == r.layout.ViewportHeight {
		return r.layout, false, nil
	}
	layout, err := Resolve(r.points, viewportHeight)
	if err != nil {
		return r.layout, false, err
	}
	r.layout = layout
	return layout, true, nil
}
