// Package raster draws editor scenes into images, using the vector
// rasterizer of golang.org/x/image.
//
// Scenes are given in normalized coordinates; they are mapped onto the
// image with the transform of an editor.Viewport of the image's size.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/npillmayer/casteljau"
	"github.com/npillmayer/casteljau/editor"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/vector"
)

// tracer writes to trace with key 'raster'
func tracer() tracing.Trace {
	return tracing.Select("raster")
}

// Colors of the scene layers.
var (
	Background   = color.RGBA{255, 255, 255, 255}
	ControlColor = rgb(0.1, 0.1, 0.8)
	CurveColor   = rgb(0.4, 0.7, 1.0)
	InterColor   = rgb(0.1, 0.8, 0.2)
	PolarColor   = rgb(0.8, 0.2, 0.2)
	HullColor    = color.RGBA{0xe0, 0xe0, 0xe8, 0xff}
	PointColor   = color.RGBA{0, 0, 0, 255}
)

// LineWidth is the stroke width of polylines, in pixels.
const LineWidth = 1.5

// discSegments is the number of edges used to approximate a disc.
const discSegments = 16

func rgb(r, g, b float64) color.RGBA {
	return color.RGBA{uint8(r*255 + 0.5), uint8(g*255 + 0.5), uint8(b*255 + 0.5), 255}
}

// Render draws a scene into a new image of size w×h.
func Render(sc editor.Scene, w, h int) (*image.RGBA, error) {
	vp := editor.Viewport{Width: float64(w), Height: float64(h)}
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	cv := &canvas{img: img, T: vp.ToDevice()}
	if len(sc.Hull) >= 3 {
		cv.fill(sc.Hull, HullColor)
	}
	cv.dots(sc.ControlPoints, sc.PointSize, ControlColor)
	cv.stroke(sc.ControlLines, LineWidth, ControlColor)
	cv.stroke(sc.Curve, LineWidth, CurveColor)
	cv.dots(sc.Intermediate, sc.PointSize, InterColor)
	cv.stroke(sc.Intermediate, LineWidth, InterColor)
	cv.stroke(sc.Polar, LineWidth, PolarColor)
	if sc.HasCurvePoint && len(sc.ControlPoints) > 2 {
		cv.dots([]casteljau.Pair{sc.CurvePoint}, sc.PointSize, PointColor)
	}
	tracer().Debugf("rendered scene with %d control points to %dx%d image", len(sc.ControlPoints), w, h)
	return img, nil
}

// WritePNG encodes an image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("cannot encode PNG: %w", err)
	}
	return nil
}

type canvas struct {
	img *image.RGBA
	T   casteljau.AT // normalized → device
}

func (cv *canvas) rasterizer() *vector.Rasterizer {
	b := cv.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	return r
}

func (cv *canvas) paint(r *vector.Rasterizer, c color.Color) {
	r.Draw(cv.img, cv.img.Bounds(), image.NewUniform(c), image.Point{})
}

// fill draws a closed polygon.
func (cv *canvas) fill(pts []casteljau.Pair, c color.Color) {
	r := cv.rasterizer()
	for i, p := range pts {
		x, y := cv.T.Transform(p).F()
		if i == 0 {
			r.MoveTo(float32(x), float32(y))
		} else {
			r.LineTo(float32(x), float32(y))
		}
	}
	r.ClosePath()
	cv.paint(r, c)
}

// stroke draws an open polyline. Every segment becomes a rectangle of the
// given width; all rectangles have the same orientation, so overlaps at the
// joints do not cancel out.
func (cv *canvas) stroke(pts []casteljau.Pair, width float64, c color.Color) {
	if len(pts) < 2 {
		return
	}
	r := cv.rasterizer()
	for i := 0; i+1 < len(pts); i++ {
		a, b := cv.T.Transform(pts[i]), cv.T.Transform(pts[i+1])
		d := b - a
		l := math.Hypot(d.X(), d.Y())
		if l == 0 {
			continue
		}
		n := casteljau.P(-d.Y()/l*width/2, d.X()/l*width/2)
		quad(r, a+n, b+n, b-n, a-n)
	}
	cv.paint(r, c)
}

// dots draws a disc of diameter size (in pixels) at each point.
func (cv *canvas) dots(pts []casteljau.Pair, size float64, c color.Color) {
	if len(pts) == 0 {
		return
	}
	r := cv.rasterizer()
	rad := size / 2
	for _, p := range pts {
		m := cv.T.Transform(p)
		for k := 0; k <= discSegments; k++ {
			phi := 2 * math.Pi * float64(k) / discSegments
			x, y := m.X()+rad*math.Cos(phi), m.Y()+rad*math.Sin(phi)
			if k == 0 {
				r.MoveTo(float32(x), float32(y))
			} else {
				r.LineTo(float32(x), float32(y))
			}
		}
		r.ClosePath()
	}
	cv.paint(r, c)
}

func quad(r *vector.Rasterizer, p0, p1, p2, p3 casteljau.Pair) {
	r.MoveTo(float32(p0.X()), float32(p0.Y()))
	r.LineTo(float32(p1.X()), float32(p1.Y()))
	r.LineTo(float32(p2.X()), float32(p2.Y()))
	r.LineTo(float32(p3.X()), float32(p3.Y()))
	r.ClosePath()
}
