// Package editor holds the state of an interactive Bézier curve editor and
// maps user input onto it.
//
// The editor owns the control points, the curve parameter t and the display
// toggles. It does not draw anything; instead, Scene() computes everything a
// renderer needs from the current state, using package casteljau.
package editor

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/casteljau"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'editor'
func tracer() tracing.Trace {
	return tracing.Select("editor")
}

// Defaults of an editor after New() or Reset().
const (
	DefaultPointSize = 9.0
	DefaultT         = 0.5
	MinPointSize     = 1.0
	TStep            = 0.1  // increment of t for IncreaseT/DecreaseT
	HitThreshold     = 0.05 // radius for picking a control point, in normalized coordinates
)

// Editor is the mutable state of a curve editor. The zero value is not
// ready for use; create editors with New().
type Editor struct {
	points           []casteljau.Pair
	selected         int     // index of point being dragged, or -1
	PointSize        float64 // display size of points, in pixels
	T                float64 // curve parameter for construction aids
	ShowIntermediate bool    // show first de Casteljau level at T
	ShowPolar        bool    // show first polar curve at T
	ShowHull         bool    // show control polygon, clipped to the viewport
	Step             float64 // sampling step for curves
}

// New creates an editor without control points. Use Knot() to add points:
//
//	ed := editor.New().Knot(P(-1,-1)).Knot(P(0,1)).Knot(P(1,-1))
func New() *Editor {
	return &Editor{
		selected:         -1,
		PointSize:        DefaultPointSize,
		T:                DefaultT,
		ShowIntermediate: true,
		ShowPolar:        true,
		Step:             casteljau.DefaultStep,
	}
}

// Knot appends a control point. Part of builder functionality.
func (ed *Editor) Knot(p casteljau.Pair) *Editor {
	ed.AddPoint(p)
	return ed
}

// N returns the number of control points.
func (ed *Editor) N() int {
	return len(ed.points)
}

// Points returns a copy of the control points.
func (ed *Editor) Points() []casteljau.Pair {
	pts := make([]casteljau.Pair, len(ed.points))
	copy(pts, ed.points)
	return pts
}

// Z returns control point i.
func (ed *Editor) Z(i int) casteljau.Pair {
	return ed.points[i]
}

// Selected returns the index of the point currently dragged, or -1.
func (ed *Editor) Selected() int {
	return ed.selected
}

// AddPoint appends a control point at the end of the curve.
func (ed *Editor) AddPoint(p casteljau.Pair) {
	ed.points = append(ed.points, p)
	tracer().Debugf("add point #%d at %s", len(ed.points)-1, p)
}

// MovePoint sets control point i to p. Out-of-range indices are ignored.
func (ed *Editor) MovePoint(i int, p casteljau.Pair) bool {
	if i < 0 || i >= len(ed.points) {
		return false
	}
	ed.points[i] = p
	return true
}

// RemoveLast removes the most recently added control point, if any.
func (ed *Editor) RemoveLast() bool {
	if len(ed.points) == 0 {
		return false
	}
	ed.points = ed.points[:len(ed.points)-1]
	ed.fixSelection()
	return true
}

// RemoveAt removes control point i. Out-of-range indices are ignored.
func (ed *Editor) RemoveAt(i int) bool {
	if i < 0 || i >= len(ed.points) {
		return false
	}
	ed.points = append(ed.points[:i], ed.points[i+1:]...)
	tracer().Debugf("removed point #%d, %d left", i, len(ed.points))
	if ed.selected == i {
		ed.selected = -1
	} else if ed.selected > i {
		ed.selected--
	}
	return true
}

// Clear removes all control points.
func (ed *Editor) Clear() {
	ed.points = nil
	ed.selected = -1
}

// Reset removes all control points and restores point size and t. Display
// toggles keep their values.
func (ed *Editor) Reset() {
	ed.Clear()
	ed.PointSize = DefaultPointSize
	ed.T = DefaultT
}

// IncreasePointSize grows points by one pixel.
func (ed *Editor) IncreasePointSize() {
	ed.PointSize += 1.0
}

// DecreasePointSize shrinks points by one pixel, down to MinPointSize.
func (ed *Editor) DecreasePointSize() {
	ed.PointSize = math.Max(MinPointSize, ed.PointSize-1.0)
}

// IncreaseT moves t up by TStep, but not beyond 1.
func (ed *Editor) IncreaseT() {
	ed.T = math.Min(1, ed.T+TStep)
}

// DecreaseT moves t down by TStep, but not below 0.
func (ed *Editor) DecreaseT() {
	ed.T = math.Max(0, ed.T-TStep)
}

// SetT sets the curve parameter. Values outside [0,1] are kept and lead to
// extrapolated construction aids.
func (ed *Editor) SetT(t float64) {
	ed.T = t
}

// ToggleIntermediate switches display of intermediate points on or off.
func (ed *Editor) ToggleIntermediate() {
	ed.ShowIntermediate = !ed.ShowIntermediate
}

// TogglePolar switches display of the first polar curve on or off.
func (ed *Editor) TogglePolar() {
	ed.ShowPolar = !ed.ShowPolar
}

// ToggleHull switches display of the control hull on or off.
func (ed *Editor) ToggleHull() {
	ed.ShowHull = !ed.ShowHull
}

// FindPoint returns the index of the first control point closer to p than
// HitThreshold, or -1.
func (ed *Editor) FindPoint(p casteljau.Pair) int {
	for i, q := range ed.points {
		if q.Dist2(p) < HitThreshold*HitThreshold {
			return i
		}
	}
	return -1
}

func (ed *Editor) fixSelection() {
	if ed.selected >= len(ed.points) {
		ed.selected = -1
	}
}

// AsString returns the editor state as a (debugging) string.
func (ed *Editor) AsString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "t=%.2f size=%g", ed.T, ed.PointSize)
	fmt.Fprintf(&b, " intermediate=%v polar=%v hull=%v", ed.ShowIntermediate, ed.ShowPolar, ed.ShowHull)
	fmt.Fprintf(&b, " points[%d]: %s", len(ed.points), casteljau.AsString(ed.points))
	return b.String()
}
