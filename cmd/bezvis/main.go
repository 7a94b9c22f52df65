/*
Command bezvis renders a Bézier curve together with its de Casteljau
construction aids into a PNG file.

	bezvis -points "-0.8,-0.6 -0.2,0.8 0.5,-0.7 0.9,0.5" -t 0.3 -o curve.png

Key strokes given with -keys are replayed against the editor before
rendering, with the same bindings an interactive front end would use:
'i' toggles intermediate points, 'p' the polar curve, 'h' the control hull,
'[' and ']' move t in steps of 0.1, '+' and '-' change the point size.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/casteljau"
	"github.com/npillmayer/casteljau/editor"
	"github.com/npillmayer/casteljau/raster"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bezvis'
func tracer() tracing.Trace {
	return tracing.Select("bezvis")
}

// ErrBadPoint indicates a malformed point on the command line.
var ErrBadPoint = errors.New("point must be given as x,y")

func main() {
	points := flag.String("points", "-1,-1 0,1 1,-1", "control points as space separated x,y pairs in [-1,1]")
	t := flag.Float64("t", editor.DefaultT, "curve parameter for construction aids")
	step := flag.Float64("step", casteljau.DefaultStep, "sampling step for curves")
	keys := flag.String("keys", "", "key strokes to replay before rendering")
	size := flag.String("size", "800x800", "image size WxH")
	out := flag.String("o", "bezier.png", "output file")
	flag.Parse()
	if err := run(*points, *t, *step, *keys, *size, *out); err != nil {
		fmt.Fprintf(os.Stderr, "bezvis: %v\n", err)
		os.Exit(1)
	}
}

func run(points string, t, step float64, keys, size, out string) error {
	pts, err := parsePoints(points)
	if err != nil {
		return err
	}
	w, h, err := parseSize(size)
	if err != nil {
		return err
	}
	ed := editor.New()
	for _, p := range pts {
		ed.Knot(p)
	}
	ed.SetT(t)
	ed.Step = step
	if n := ed.Keys(keys); n > 0 {
		tracer().Infof("%d key strokes ignored", n)
	}
	fmt.Println(ed.AsString())
	sc := ed.Scene()
	if sc.HasCurvePoint {
		fmt.Printf("curve point at t=%g: %s\n", ed.T, sc.CurvePoint)
	}
	img, err := raster.Render(sc, w, h)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := raster.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parsePoints(s string) ([]casteljau.Pair, error) {
	var pts []casteljau.Pair
	for _, field := range strings.Fields(s) {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadPoint, field)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadPoint, field, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadPoint, field, err)
		}
		p := casteljau.P(x, y)
		if !p.IsValid() {
			return nil, fmt.Errorf("%w: %q is not finite", ErrBadPoint, field)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("size must be given as WxH, is %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("bad width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("bad height in %q: %w", s, err)
	}
	return w, h, nil
}
