package casteljau

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'casteljau'
func tracer() tracing.Trace {
	return tracing.Select("casteljau")
}

// DefaultStep is the parameter increment used for sampling curves for display.
const DefaultStep = 0.01

// MinStep is the smallest sampling step accepted by SampleCurve. It limits a
// polyline to about a million points.
const MinStep = 1e-6

var (
	// ErrInvalidInput indicates an empty set of control points.
	ErrInvalidInput = errors.New("curve needs at least one control point")
	// ErrInvalidStep indicates a sampling step which is not a finite number
	// of at least MinStep.
	ErrInvalidStep = errors.New("sampling step must be finite and not below MinStep")
)

// EvaluateAt returns the point of the Bézier curve defined by pts at parameter t.
//
// t is not clamped: values outside [0,1] extrapolate the curve. A single
// control point is returned as is, an empty slice yields ErrInvalidInput.
// pts is left untouched; the blending rounds operate on a private copy.
func EvaluateAt(pts []Pair, t float64) (Pair, error) {
	if len(pts) == 0 {
		return Origin, ErrInvalidInput
	}
	work := make([]Pair, len(pts))
	copy(work, pts)
	for r := 1; r < len(work); r++ {
		for i := 0; i < len(work)-r; i++ {
			work[i] = Lerp(work[i], work[i+1], t)
		}
	}
	return work[0], nil
}

// SampleCurve evaluates the curve at t = 0, step, 2⋅step, … as long as t ≤ 1
// and returns the resulting polyline.
//
// t is accumulated by repeated addition of step. Therefore t = 1 is part of
// the result only if the accumulated value hits it exactly, and for steps
// like 0.01 the sample count may differ by one from 1/step + 1.
// Steps below MinStep yield ErrInvalidStep.
func SampleCurve(pts []Pair, step float64) ([]Pair, error) {
	if len(pts) == 0 {
		return nil, ErrInvalidInput
	}
	if !(step >= MinStep) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidStep, step)
	}
	polyline := make([]Pair, 0, int(1/step)+2)
	for t := 0.0; t <= 1; t += step {
		pt, _ := EvaluateAt(pts, t)
		polyline = append(polyline, pt)
	}
	tracer().Debugf("sampled curve of degree %d with %d points", len(pts)-1, len(polyline))
	return polyline, nil
}

// SubdivideOnce performs the first round of de Casteljau's algorithm: point i
// of the result is the blend of pts[i] and pts[i+1] at t. The result has
// len(pts)-1 points and is empty (but not nil) for fewer than 2 control points.
//
// Fed back into EvaluateAt or SampleCurve, the result describes the first
// polar curve of pts at t.
func SubdivideOnce(pts []Pair, t float64) []Pair {
	if len(pts) < 2 {
		return []Pair{}
	}
	level := make([]Pair, len(pts)-1)
	for i := range level {
		level[i] = Lerp(pts[i], pts[i+1], t)
	}
	return level
}

// Polar returns the control points of the first polar curve of pts at t.
// It is the same as SubdivideOnce.
func Polar(pts []Pair, t float64) []Pair {
	return SubdivideOnce(pts, t)
}

// Levels returns the complete de Casteljau triangle for pts at t. Level 0 is
// a copy of pts, level k holds len(pts)-k points, and the single point of the
// last level is the curve point at t.
func Levels(pts []Pair, t float64) ([][]Pair, error) {
	if len(pts) == 0 {
		return nil, ErrInvalidInput
	}
	levels := make([][]Pair, len(pts))
	levels[0] = make([]Pair, len(pts))
	copy(levels[0], pts)
	for k := 1; k < len(pts); k++ {
		levels[k] = SubdivideOnce(levels[k-1], t)
	}
	return levels, nil
}

// Split cuts the curve at t. left holds the control points of the part for
// parameters [0,t], right those of the part for [t,1]. Both have len(pts)
// points and share the curve point at t.
func Split(pts []Pair, t float64) (left, right []Pair, err error) {
	levels, err := Levels(pts, t)
	if err != nil {
		return nil, nil, err
	}
	n := len(levels)
	left = make([]Pair, n)
	right = make([]Pair, n)
	for k, level := range levels {
		left[k] = level[0]
		right[n-1-k] = level[len(level)-1]
	}
	return left, right, nil
}

// AsString returns a sequence of points as a (debugging) string,
// in the notation of paths: (x0,y0) .. (x1,y1) .. (x2,y2)
func AsString(pts []Pair) string {
	var b strings.Builder
	for i, pt := range pts {
		if i > 0 {
			b.WriteString(" .. ")
		}
		fmt.Fprintf(&b, "(%.4g,%.4g)", pt.X(), pt.Y())
	}
	return b.String()
}
