package canon

import (
	"math"

	"github.com/mastercactapus/gcanon/coord"
)

// Splines and 2D NURBS are approximated by biarcs: pairs of circular
// arcs sharing a tangent. Each biarc becomes two ArcFeed calls (which
// may themselves degrade to straight feeds).

func unit2(x, y float64) (float64, float64) {
	h := math.Hypot(x, y)
	if h != 0 {
		return x / h, y / h
	}
	return x, y
}

// splineArc emits one arc of a biarc: the circle through (x0,y0) and
// (x1,y1) with tangent (dx,dy) at (x0,y0). Degenerate circles become
// straight feeds. Coordinates are program units in the XY plane.
func (c *Canon) splineArc(line int, x0, y0, x1, y1, dx, dy float64) {
	const small = 0.000001
	x, y := x1-x0, y1-y0
	den := 2 * (y*dx - x*dy)
	if math.Abs(den) > small {
		r := -(x*x + y*y) / den
		i, j := dy*r, -dx*r
		cx, cy := x0+i, y0+j
		rotation := -1
		if r < 0 {
			rotation = 1
		}
		c.ArcFeed(line, x1, y1, cx, cy, rotation,
			c.toProgLen(c.endPoint.Z-c.programOrigin.Z),
			c.toProgAng(c.endPoint.A), c.toProgAng(c.endPoint.B), c.toProgAng(c.endPoint.C),
			c.toProgLen(c.endPoint.U), c.toProgLen(c.endPoint.V), c.toProgLen(c.endPoint.W))
	} else {
		c.StraightFeed(line, coord.Pose{
			X: x1, Y: y1,
			Z: c.toProgLen(c.endPoint.Z),
			A: c.toProgAng(c.endPoint.A), B: c.toProgAng(c.endPoint.B), C: c.toProgAng(c.endPoint.C),
			U: c.toProgLen(c.endPoint.U), V: c.toProgLen(c.endPoint.V), W: c.toProgLen(c.endPoint.W),
		})
	}
}

// biarc fits two arcs from (p0x,p0y) with start tangent (tsx,tsy) to
// (p4x,p4y) with end tangent (tex,tey). It reports false when no
// valid beta solves the fit, so the caller can perturb the step.
func (c *Canon) biarc(line int, p0x, p0y, tsx, tsy, p4x, p4y, tex, tey, r float64) bool {
	tsx, tsy = unit2(tsx, tsy)
	tex, tey = unit2(tex, tey)

	vx, vy := p0x-p4x, p0y-p4y
	cc := vx*vx + vy*vy
	b := 2 * (vx*(r*tsx+tex) + vy*(r*tsy+tey))
	a := 2 * r * (tsx*tex + tsy*tey - 1)

	discr := b*b - 4*a*cc
	if discr < 0 {
		return false
	}

	disq := math.Sqrt(discr)
	beta1 := (-b - disq) / 2 / a
	beta2 := (-b + disq) / 2 / a

	if beta1 > 0 && beta2 > 0 {
		return false
	}
	beta := math.Max(beta1, beta2)
	alpha := beta * r
	ab := alpha + beta
	p1x, p1y := p0x+alpha*tsx, p0y+alpha*tsy
	p3x, p3y := p4x-beta*tex, p4y-beta*tey
	p2x := (p1x*beta + p3x*alpha) / ab
	p2y := (p1y*beta + p3y*alpha) / ab
	tmx, tmy := unit2(p3x-p2x, p3y-p2y)

	c.splineArc(line, p0x, p0y, p2x, p2y, tsx, tsy)
	c.splineArc(line, p2x, p2y, p4x, p4y, tmx, tmy)
	return true
}

// biarcRetries bounds the step-halving perturbation when a biarc fit
// is rejected.
const biarcRetries = 20

// SplineFeed cuts a quadratic Bezier spline in the XY plane from the
// current position through control point (x1,y1) to (x2,y2), program
// units.
func (c *Canon) SplineFeed(line int, x1, y1, x2, y2 float64) {
	c.flushSegments()

	x0 := c.toProgLen(c.endPoint.X)
	y0 := c.toProgLen(c.endPoint.Y)
	xx0, xx1 := 2*(x1-x0), 2*(x2-x1)
	yy0, yy1 := 2*(y1-y0), 2*(y2-y1)
	ox, oy, odx, ody := x0, y0, xx0, yy0

	const n = 2
	for i := 1; i <= n; i++ {
		t := float64(i) / n
		u := 1.0 / n

		for retry := 0; ; retry++ {
			t0 := (1 - t) * (1 - t)
			t1 := 2 * t * (1 - t)
			t2 := t * t
			q0 := 1 - t
			q1 := t

			x := x0*t0 + x1*t1 + x2*t2
			y := y0*t0 + y1*t1 + y2*t2
			dx := xx0*q0 + xx1*q1
			dy := yy0*q0 + yy1*q1
			if c.biarc(line, ox, oy, odx, ody, x, y, dx, dy, 1) || retry >= biarcRetries {
				ox, oy, odx, ody = x, y, dx, dy
				break
			}
			t = t - u
			u /= -2
		}
	}
}

// CubicSplineFeed cuts a cubic Bezier spline in the XY plane from the
// current position through (x1,y1) and (x2,y2) to (x3,y3), program
// units.
func (c *Canon) CubicSplineFeed(line int, x1, y1, x2, y2, x3, y3 float64) {
	c.flushSegments()

	x0 := c.toProgLen(c.endPoint.X)
	y0 := c.toProgLen(c.endPoint.Y)
	xx0, xx1, xx2 := 3*(x1-x0), 3*(x2-x1), 3*(x3-x2)
	yy0, yy1, yy2 := 3*(y1-y0), 3*(y2-y1), 3*(y3-y2)
	ox, oy, odx, ody := x0, y0, xx0, yy0

	const n = 4
	for i := 1; i <= n; i++ {
		t := float64(i) / n
		u := 1.0 / n

		for retry := 0; ; retry++ {
			t3 := t * t * t
			t2 := 3 * t * t * (1 - t)
			t1 := 3 * t * (1 - t) * (1 - t)
			t0 := (1 - t) * (1 - t) * (1 - t)
			q0 := (1 - t) * (1 - t)
			q1 := 2 * t * (1 - t)
			q2 := t * t

			x := x0*t0 + x1*t1 + x2*t2 + x3*t3
			y := y0*t0 + y1*t1 + y2*t2 + y3*t3
			dx := xx0*q0 + xx1*q1 + xx2*q2
			dy := yy0*q0 + yy1*q1 + yy2*q2
			if c.biarc(line, ox, oy, odx, ody, x, y, dx, dy, 1) || retry >= biarcRetries {
				ox, oy, odx, ody = x, y, dx, dy
				break
			}
			t = t - u
			u /= -2
		}
	}
}
