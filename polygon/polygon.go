/*
Package polygon handles control polygons of Bézier curves as closed
polygons. Polygon clipping is delegated to polyclip-go.

A Bézier curve lies within the convex hull of its control points. Editors
use the (closed) control polygon and its bounding box as visual aids and to
decide which part of a curve's neighbourhood is visible.

# BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/casteljau"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a closed sequence of knots. To construct one, start with
// NullPolygon() and extend it.
type Polygon struct {
	knots []casteljau.Pair
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a vertex. Part of builder functionality.
func (pg *Polygon) Knot(p casteljau.Pair) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// ControlPolygon creates the closed polygon through all control points of a
// curve. pts is copied.
func ControlPolygon(pts []casteljau.Pair) *Polygon {
	pg := NullPolygon()
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg.Cycle()
}

// Box creates a rectangle from two opposite corners.
func Box(p1, p2 casteljau.Pair) *Polygon {
	x0, x1 := minmax(p1.X(), p2.X())
	y0, y1 := minmax(p1.Y(), p2.Y())
	return NullPolygon().Knot(casteljau.P(x0, y0)).Knot(casteljau.P(x1, y0)).
		Knot(casteljau.P(x1, y1)).Knot(casteljau.P(x0, y1)).Cycle()
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Knots returns a copy of the polygon's vertices.
func (pg *Polygon) Knots() []casteljau.Pair {
	k := make([]casteljau.Pair, len(pg.knots))
	copy(k, pg.knots)
	return k
}

// BoundingBox returns the lower left and upper right corner of the smallest
// axis-parallel rectangle containing all knots. For an empty polygon both are
// the origin.
func (pg *Polygon) BoundingBox() (casteljau.Pair, casteljau.Pair) {
	if pg.N() == 0 {
		return casteljau.Origin, casteljau.Origin
	}
	r := pg.contour().BoundingBox()
	return casteljau.P(r.Min.X, r.Min.Y), casteljau.P(r.Max.X, r.Max.Y)
}

// Clip returns the intersection of pg and clip. Self-intersecting control
// polygons may result in more than one contour; the largest (by knot count)
// is returned. A polygon with less than 3 knots is returned unchanged.
func (pg *Polygon) Clip(clip *Polygon) *Polygon {
	if pg.N() < 3 || clip.N() < 3 {
		return pg
	}
	subject := polyclip.Polygon{pg.contour()}
	result := subject.Construct(polyclip.INTERSECTION, polyclip.Polygon{clip.contour()})
	clipped := NullPolygon()
	var best polyclip.Contour
	for _, c := range result {
		if len(c) > len(best) {
			best = c
		}
	}
	if len(result) > 1 {
		L().Debugf("clipping produced %d contours, keeping largest", len(result))
	}
	for _, pt := range best {
		clipped.Knot(casteljau.P(pt.X, pt.Y))
	}
	return clipped.Cycle()
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, len(pg.knots))
	for _, p := range pg.knots {
		c.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.knots {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "%s", p)
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

func minmax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
