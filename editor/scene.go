package editor

import (
	"github.com/npillmayer/casteljau"
	"github.com/npillmayer/casteljau/polygon"
)

// Scene is the display list for one frame. Empty slices mean "nothing to
// draw" for the respective layer. A Scene is computed fresh from the editor
// state and shares no memory with it.
type Scene struct {
	ControlPoints []casteljau.Pair // control points, drawn as dots
	ControlLines  []casteljau.Pair // control polygon, drawn as open polyline
	Curve         []casteljau.Pair // sampled Bézier curve
	Intermediate  []casteljau.Pair // first de Casteljau level at T
	Polar         []casteljau.Pair // sampled first polar curve at T
	CurvePoint    casteljau.Pair   // curve point at T, valid if HasCurvePoint
	HasCurvePoint bool
	BoundsMin     casteljau.Pair // bounding box of the control points
	BoundsMax     casteljau.Pair
	Hull          []casteljau.Pair // closed control polygon, clipped to [-1,1]²
	PointSize     float64
}

// viewportBox is the visible area in normalized coordinates.
var viewportBox = polygon.Box(casteljau.P(-1, -1), casteljau.P(1, 1))

// Scene computes the display list from the current state:
//
//	control points        N ≥ 1
//	control lines         N ≥ 2
//	Bézier curve          N ≥ 3
//	intermediate points   N ≥ 3, if ShowIntermediate
//	polar curve           N ≥ 3, if ShowPolar
//	control hull          N ≥ 3, if ShowHull
//
// A degree-1 curve is not sampled, as it coincides with its control line.
// For the same reason there is no polar curve for N = 2: its single control
// point would only be repeated for every sample.
func (ed *Editor) Scene() Scene {
	n := len(ed.points)
	sc := Scene{PointSize: ed.PointSize}
	if n == 0 {
		return sc
	}
	pts := ed.Points()
	step := ed.Step
	if !(step > 0) {
		step = casteljau.DefaultStep
	}
	sc.ControlPoints = pts
	sc.CurvePoint, _ = casteljau.EvaluateAt(pts, ed.T)
	sc.HasCurvePoint = true
	ctrl := polygon.ControlPolygon(pts)
	sc.BoundsMin, sc.BoundsMax = ctrl.BoundingBox()
	if n >= 2 {
		sc.ControlLines = pts
	}
	if n > 2 {
		sc.Curve = ed.sample(pts, step)
		if ed.ShowIntermediate {
			sc.Intermediate = casteljau.SubdivideOnce(pts, ed.T)
		}
		if ed.ShowHull {
			sc.Hull = ctrl.Clip(viewportBox).Knots()
		}
	}
	if ed.ShowPolar && n > 2 {
		sc.Polar = ed.sample(casteljau.Polar(pts, ed.T), step)
	}
	return sc
}

func (ed *Editor) sample(pts []casteljau.Pair, step float64) []casteljau.Pair {
	line, err := casteljau.SampleCurve(pts, step)
	if err != nil {
		tracer().Errorf("cannot sample curve: %v", err)
		return nil
	}
	return line
}
