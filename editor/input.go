package editor

import (
	"errors"
	"fmt"

	"github.com/npillmayer/casteljau"
)

// Modifiers is a set of modifier keys held during a mouse event.
type Modifiers uint8

// Modifier keys.
const (
	Shift Modifiers = 1 << iota
	Ctrl
)

// Has is a predicate: is modifier m part of the set?
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m != 0
}

// Viewport maps between device pixels (origin top left, y pointing down) and
// normalized coordinates in [-1,1]×[-1,1] (origin at the center, y pointing up).
type Viewport struct {
	Width, Height float64
}

// ErrBadViewport indicates a viewport without area.
var ErrBadViewport = errors.New("viewport must have positive width and height")

// Validate checks the viewport dimensions.
func (vp Viewport) Validate() error {
	if !(vp.Width > 0) || !(vp.Height > 0) {
		return fmt.Errorf("%w, is %gx%g", ErrBadViewport, vp.Width, vp.Height)
	}
	return nil
}

// ToNormalized returns the transform from device pixels to normalized coordinates.
func (vp Viewport) ToNormalized() casteljau.AT {
	return casteljau.Scaling(2/vp.Width, -2/vp.Height).Combine(casteljau.Translation(casteljau.P(-1, 1)))
}

// ToDevice returns the transform from normalized coordinates to device pixels.
func (vp Viewport) ToDevice() casteljau.AT {
	return casteljau.Translation(casteljau.P(1, -1)).Combine(casteljau.Scaling(vp.Width/2, -vp.Height/2))
}

// Normalize converts a device position to normalized coordinates.
func (vp Viewport) Normalize(px, py float64) casteljau.Pair {
	return vp.ToNormalized().Transform(casteljau.P(px, py))
}

// --- Mouse -----------------------------------------------------------------

// Click handles a click with the primary button at normalized position p.
// A plain click adds a point, a click with Shift removes the point under the
// pointer. Clicks with Ctrl are part of dragging and are ignored.
// Click reports whether the state changed.
func (ed *Editor) Click(p casteljau.Pair, mods Modifiers) bool {
	if mods.Has(Shift) {
		return ed.RemoveAt(ed.FindPoint(p))
	}
	if mods.Has(Ctrl) {
		return false
	}
	ed.AddPoint(p)
	return true
}

// Press handles pressing the primary button. With Ctrl held, the point under
// the pointer (if any) gets selected for dragging.
func (ed *Editor) Press(p casteljau.Pair, mods Modifiers) {
	if mods.Has(Ctrl) {
		ed.selected = ed.FindPoint(p)
	}
}

// Move handles pointer motion. A selected point follows the pointer as long
// as Ctrl is held. Move reports whether the state changed.
func (ed *Editor) Move(p casteljau.Pair, mods Modifiers) bool {
	if ed.selected == -1 || !mods.Has(Ctrl) {
		return false
	}
	return ed.MovePoint(ed.selected, p)
}

// Release handles releasing the primary button and ends dragging.
func (ed *Editor) Release() {
	ed.selected = -1
}

// --- Keyboard --------------------------------------------------------------

// Key handles a key stroke. It reports whether the key is bound.
//
//	+ =   increase point size      - _   decrease point size
//	z Z   remove last point        c C   clear all points
//	i I   toggle intermediate      p P   toggle polar curve
//	h H   toggle control hull      r R   reset to defaults
//	[     decrease t               ]     increase t
func (ed *Editor) Key(r rune) bool {
	switch r {
	case '+', '=':
		ed.IncreasePointSize()
	case '-', '_':
		ed.DecreasePointSize()
	case 'z', 'Z':
		ed.RemoveLast()
	case 'i', 'I':
		ed.ToggleIntermediate()
	case 'p', 'P':
		ed.TogglePolar()
	case 'h', 'H':
		ed.ToggleHull()
	case 'c', 'C':
		ed.Clear()
	case 'r', 'R':
		ed.Reset()
	case '[':
		ed.DecreaseT()
	case ']':
		ed.IncreaseT()
	default:
		return false
	}
	tracer().Debugf("key %q: %s", r, ed.AsString())
	return true
}

// Keys replays a sequence of key strokes and returns the number of strokes
// which were not bound.
func (ed *Editor) Keys(s string) int {
	unbound := 0
	for _, r := range s {
		if !ed.Key(r) {
			tracer().Infof("key %q is not bound", r)
			unbound++
		}
	}
	return unbound
}
