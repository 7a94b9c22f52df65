package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/casteljau"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testeditor() *Editor {
	return New().Knot(casteljau.P(-1, -1)).Knot(casteljau.P(0, 1)).Knot(casteljau.P(1, -1))
}

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed := New()
	assert.Equal(t, 0, ed.N())
	assert.Equal(t, -1, ed.Selected())
	assert.Equal(t, DefaultPointSize, ed.PointSize)
	assert.Equal(t, DefaultT, ed.T)
	assert.True(t, ed.ShowIntermediate)
	assert.True(t, ed.ShowPolar)
	assert.False(t, ed.ShowHull)
}

func TestBuildAndRemove(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed := testeditor()
	require.Equal(t, 3, ed.N())
	assert.True(t, ed.RemoveLast())
	assert.Equal(t, []casteljau.Pair{casteljau.P(-1, -1), casteljau.P(0, 1)}, ed.Points())
	assert.True(t, ed.RemoveAt(0))
	assert.Equal(t, casteljau.P(0, 1), ed.Z(0))
	assert.False(t, ed.RemoveAt(5))
	assert.False(t, ed.RemoveAt(-1))
	assert.True(t, ed.RemoveLast())
	assert.False(t, ed.RemoveLast())
}

func TestPointsIsCopy(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed := testeditor()
	pts := ed.Points()
	pts[0] = casteljau.P(9, 9)
	assert.Equal(t, casteljau.P(-1, -1), ed.Z(0))
}

func TestPointSizeAndT(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed := New()
	ed.IncreasePointSize()
	assert.Equal(t, 10.0, ed.PointSize)
	for i := 0; i < 20; i++ {
		ed.DecreasePointSize()
	}
	assert.Equal(t, MinPointSize, ed.PointSize)
	for i := 0; i < 8; i++ {
		ed.IncreaseT()
	}
	assert.Equal(t, 1.0, ed.T)
	for i := 0; i < 15; i++ {
		ed.DecreaseT()
	}
	assert.Equal(t, 0.0, ed.T)
	ed.SetT(1.7)
	assert.Equal(t, 1.7, ed.T)
}

func TestResetKeepsToggles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed := testeditor()
	ed.ToggleIntermediate()
	ed.IncreasePointSize()
	ed.SetT(0.2)
	ed.Reset()
	assert.Equal(t, 0, ed.N())
	assert.Equal(t, DefaultPointSize, ed.PointSize)
	assert.Equal(t, DefaultT, ed.T)
	assert.False(t, ed.ShowIntermediate)
}

func TestFindPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed := testeditor()
	assert.Equal(t, 1, ed.FindPoint(casteljau.P(0.03, 0.98)))
	assert.Equal(t, -1, ed.FindPoint(casteljau.P(0.05, 1)))
	assert.Equal(t, -1, ed.FindPoint(casteljau.P(0.5, 0.5)))
	ed.AddPoint(casteljau.P(-1, -1))
	assert.Equal(t, 0, ed.FindPoint(casteljau.P(-1, -1)), "first match wins")
}

func TestClick(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed := testeditor()
	assert.True(t, ed.Click(casteljau.P(0.5, 0.5), 0))
	assert.Equal(t, 4, ed.N())
	assert.False(t, ed.Click(casteljau.P(0.2, 0.2), Ctrl))
	assert.Equal(t, 4, ed.N())
	assert.True(t, ed.Click(casteljau.P(0.01, 1), Shift))
	assert.Equal(t, 3, ed.N())
	assert.False(t, ed.Click(casteljau.P(0.3, 0), Shift))
	assert.Equal(t, casteljau.P(0.5, 0.5), ed.Z(2))
}

func TestDrag(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed := testeditor()
	ed.Press(casteljau.P(0, 1), 0)
	assert.Equal(t, -1, ed.Selected(), "press without ctrl selects nothing")
	ed.Press(casteljau.P(0, 1), Ctrl)
	require.Equal(t, 1, ed.Selected())
	assert.True(t, ed.Move(casteljau.P(0.2, 0.8), Ctrl))
	assert.False(t, ed.Move(casteljau.P(0.4, 0.4), 0), "ctrl released")
	assert.Equal(t, casteljau.P(0.2, 0.8), ed.Z(1))
	ed.Release()
	assert.Equal(t, -1, ed.Selected())
	assert.False(t, ed.Move(casteljau.P(0.4, 0.4), Ctrl))
}

func TestRemoveWhileDragging(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed := testeditor()
	ed.Press(casteljau.P(1, -1), Ctrl)
	require.Equal(t, 2, ed.Selected())
	ed.RemoveAt(0)
	assert.Equal(t, 1, ed.Selected())
	ed.RemoveLast()
	assert.Equal(t, -1, ed.Selected())
}

func TestKeys(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed := testeditor()
	assert.Equal(t, 0, ed.Keys("++-"))
	assert.Equal(t, DefaultPointSize+1, ed.PointSize)
	assert.Equal(t, 0, ed.Keys("iPh"))
	assert.False(t, ed.ShowIntermediate)
	assert.False(t, ed.ShowPolar)
	assert.True(t, ed.ShowHull)
	assert.Equal(t, 0, ed.Keys("]]"))
	assert.InDelta(t, 0.7, ed.T, 1e-9)
	assert.Equal(t, 0, ed.Keys("[["))
	assert.InDelta(t, 0.5, ed.T, 1e-9)
	assert.Equal(t, 0, ed.Keys("z"))
	assert.Equal(t, 2, ed.N())
	assert.Equal(t, 2, ed.Keys("xq"))
	assert.Equal(t, 0, ed.Keys("c"))
	assert.Equal(t, 0, ed.N())
	ed.Knot(casteljau.P(0, 0))
	ed.SetT(0.1)
	assert.True(t, ed.Key('R'))
	assert.Equal(t, 0, ed.N())
	assert.Equal(t, DefaultT, ed.T)
}

func TestViewport(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vp := Viewport{Width: 800, Height: 600}
	require.NoError(t, vp.Validate())
	assert.ErrorIs(t, Viewport{Width: 0, Height: 10}.Validate(), ErrBadViewport)
	tests := []struct {
		px, py float64
		want   casteljau.Pair
	}{
		{0, 0, casteljau.P(-1, 1)},
		{800, 600, casteljau.P(1, -1)},
		{400, 300, casteljau.P(0, 0)},
		{200, 450, casteljau.P(-0.5, -0.5)},
	}
	for _, tt := range tests {
		got := vp.Normalize(tt.px, tt.py)
		assert.True(t, got.Equal(tt.want), "(%g,%g) → %v, want %v", tt.px, tt.py, got, tt.want)
		back := vp.ToDevice().Transform(got)
		assert.InDelta(t, tt.px, back.X(), 1e-9)
		assert.InDelta(t, tt.py, back.Y(), 1e-9)
	}
}

func TestSceneEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := New().Scene()
	assert.Empty(t, sc.ControlPoints)
	assert.Empty(t, sc.Curve)
	assert.False(t, sc.HasCurvePoint)
	assert.Equal(t, DefaultPointSize, sc.PointSize)
}

func TestSceneLayers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	one := New().Knot(casteljau.P(0.5, 0.5)).Scene()
	assert.Len(t, one.ControlPoints, 1)
	assert.Empty(t, one.ControlLines)
	assert.Empty(t, one.Polar)
	assert.True(t, one.HasCurvePoint)
	assert.Equal(t, casteljau.P(0.5, 0.5), one.CurvePoint)

	two := New().Knot(casteljau.P(0, 0)).Knot(casteljau.P(1, 0)).Scene()
	assert.Len(t, two.ControlLines, 2)
	assert.Empty(t, two.Curve, "no curve for a single segment")
	assert.Empty(t, two.Intermediate)
	assert.Empty(t, two.Polar, "polar of a single segment is a point, nothing to sample")

	ed := testeditor()
	sc := ed.Scene()
	assert.InDelta(t, 101, len(sc.Curve), 1)
	want := []casteljau.Pair{casteljau.P(-0.5, 0), casteljau.P(0.5, 0)}
	if d := cmp.Diff(want, sc.Intermediate); d != "" {
		t.Error(d)
	}
	assert.True(t, sc.CurvePoint.Equal(casteljau.Origin))
	assert.Equal(t, casteljau.P(-1, -1), sc.BoundsMin)
	assert.Equal(t, casteljau.P(1, 1), sc.BoundsMax)
	assert.Empty(t, sc.Hull)
	first, _ := casteljau.EvaluateAt(want, 0)
	assert.Equal(t, first, sc.Polar[0])

	ed.Keys("ip")
	sc = ed.Scene()
	assert.Empty(t, sc.Intermediate)
	assert.Empty(t, sc.Polar)
	assert.NotEmpty(t, sc.Curve)
}

func TestSceneHull(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed := New().Knot(casteljau.P(-0.5, -0.5)).Knot(casteljau.P(0, 1.5)).Knot(casteljau.P(0.5, -0.5))
	ed.ToggleHull()
	sc := ed.Scene()
	require.GreaterOrEqual(t, len(sc.Hull), 3)
	for _, p := range sc.Hull {
		assert.LessOrEqual(t, p.Y(), 1+1e-9, "hull knot %v outside viewport", p)
	}
	assert.Equal(t, casteljau.P(0.5, 1.5), sc.BoundsMax)
}

func TestSceneIsDetached(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed := testeditor()
	sc := ed.Scene()
	sc.ControlPoints[0] = casteljau.P(5, 5)
	assert.Equal(t, casteljau.P(-1, -1), ed.Z(0))
}

func TestAsString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t,
		"t=0.50 size=9 intermediate=true polar=true hull=false points[3]: (-1,-1) .. (0,1) .. (1,-1)",
		testeditor().AsString())
}
