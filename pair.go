package casteljau

import (
	"fmt"
	"math"
	"math/cmplx"
)

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// === Pair Data Type ========================================================

// Pair is a 2D-point. Control points, curve samples and subdivision points
// all are pairs.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Equal compares two pairs, tolerating differences up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// IsValid is a predicate: are both coordinates finite numbers?
func (p Pair) IsValid() bool {
	return !cmplx.IsNaN(p.C()) && !cmplx.IsInf(p.C())
}

// Dist2 returns the squared euclidean distance between p and p2.
func (p Pair) Dist2(p2 Pair) float64 {
	dx, dy := p.X()-p2.X(), p.Y()-p2.Y()
	return dx*dx + dy*dy
}

// Lerp is the affine blend (1-t)⋅p + t⋅q, computed for each coordinate
// separately. t is not restricted to [0,1]; values outside extrapolate
// along the line through p and q.
func Lerp(p, q Pair, t float64) Pair {
	s := 1 - t
	return P(s*p.X()+t*q.X(), s*p.Y()+t*q.Y())
}
