/*
Package casteljau evaluates Bézier curves of arbitrary degree with the
algorithm of Paul de Casteljau.

A Bézier curve of degree N-1 is given by N control points. Instead of
expanding the Bernstein polynomials, de Casteljau's algorithm finds the
curve point at parameter t by repeated linear interpolation: every pair of
neighbouring points is blended at t, giving N-1 new points, and so on, until
a single point is left. The intermediate rows form a triangle

	P0      P1      P2      P3          level 0 (control points)
	   P01     P12     P23              level 1 (first polar)
	      P012    P123                  level 2
	         P0123                      level 3 (curve point)

which is what an interactive editor shows as construction aids. Level 1 is
of special interest: taken as a control polygon of its own, it defines a
curve of degree N-2, called the (first) polar curve at t.

# Usage

	pts := []casteljau.Pair{casteljau.P(-1, -1), casteljau.P(0, 1), casteljau.P(1, -1)}
	mid, err := casteljau.EvaluateAt(pts, 0.5)           // (0,0)
	line, err := casteljau.SampleCurve(pts, casteljau.DefaultStep)
	polar := casteljau.SubdivideOnce(pts, 0.5)           // [(-0.5,0) (0.5,0)]

All functions of this package are pure. They never modify or retain the
slice of control points they are handed, and may be called concurrently.

# BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package casteljau
