package canon

import (
	"math"

	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

// ControlPoint is one weighted NURBS control point in program units.
// R is the weight; F is a per-point feed override in program units
// per minute, -1 for none.
type ControlPoint struct {
	X, Y, Z float64
	A, B, C float64
	U, V, W float64
	R       float64
	F       float64
}

func (p ControlPoint) pose() coord.Pose {
	return coord.Pose{
		X: p.X, Y: p.Y, Z: p.Z,
		A: p.A, B: p.B, C: p.C,
		U: p.U, V: p.V, W: p.W,
	}
}

// UoflBlock is one entry of the U(L) overlay accompanying a 3D NURBS
// move.
type UoflBlock struct {
	CtrlPt     float64
	Knot       float64
	Weight     float64
	HasCtrlPt  bool
	HasKnot    bool
}

// knotVector builds the clamped uniform knot vector for n+1 control
// points of order k.
func knotVector(n, k int) []int {
	kv := make([]int, n+k+1)
	for i := range kv {
		switch {
		case i < k:
			kv[i] = 0
		case i <= n:
			kv[i] = i - k + 1
		default:
			kv[i] = n - k + 2
		}
	}
	return kv
}

// basis is the Cox-de Boor recursion N(i,k) evaluated at u.
func basis(u float64, i, k int, kv []int) float64 {
	if k == 1 {
		if float64(kv[i]) <= u && u < float64(kv[i+1]) {
			return 1
		}
		return 0
	}
	var left, right float64
	if d := float64(kv[i+k-1] - kv[i]); d != 0 {
		left = (u - float64(kv[i])) / d * basis(u, i, k-1, kv)
	}
	if d := float64(kv[i+k] - kv[i+1]); d != 0 {
		right = (float64(kv[i+k]) - u) / d * basis(u, i+1, k-1, kv)
	}
	return left + right
}

// nurbsPoint evaluates the rational curve at parameter u.
func nurbsPoint(u float64, k int, pts []ControlPoint, kv []int) (x, y float64) {
	n := len(pts) - 1
	// clamp the end of the parameter range so the last basis is defined
	umax := float64(n - k + 2)
	if u >= umax {
		u = umax - 1e-9
	}
	var rsum float64
	for i := 0; i <= n; i++ {
		rsum += basis(u, i, k, kv) * pts[i].R
	}
	if rsum == 0 {
		return pts[n].X, pts[n].Y
	}
	for i := 0; i <= n; i++ {
		temp := basis(u, i, k, kv) * pts[i].R / rsum
		x += pts[i].X * temp
		y += pts[i].Y * temp
	}
	return x, y
}

// NurbsFeed approximates a 2D NURBS curve of order k through the
// control points with biarcs, sampling at uniform parameter steps.
func (c *Canon) NurbsFeed(line int, pts []ControlPoint, k int) {
	n := len(pts) - 1
	umax := float64(n - k + 2)
	div := float64(len(pts) * 4)
	kv := knotVector(n, k)

	u := 0.0
	p0x, p0y := nurbsPoint(u, k, pts, kv)
	p1x, p1y := nurbsPoint(u+umax/div, k, pts, kv)

	dxs, dys := unit2(pts[1].X-pts[0].X, pts[1].Y-pts[0].Y)
	u += umax / div
	for u+umax/div <= umax {
		p2x, p2y := nurbsPoint(u+umax/div, k, pts, kv)
		alpha1 := math.Atan2(p1y-p0y, p1x-p0x) // starting direction
		alpha2 := math.Atan2(p2y-p1y, p2x-p1x) // ending direction
		alpha3 := math.Atan2(p2y-p0y, p2x-p0x) // start->end direction

		// direction at the middle of the biarc; on quadrant crossing
		// it points backward, contrary to alpha3, so flip it
		alphaM := (alpha1 + alpha2) / 2
		if math.Abs(math.Abs(alpha3)-math.Abs(alphaM)) > math.Pi/4 {
			alphaM += math.Pi
		}
		dxe := math.Cos(alphaM)
		dye := math.Sin(alphaM)
		c.biarc(line, p0x, p0y, dxs, dys, p1x, p1y, dxe, dye, 1)
		dxs, dys = dxe, dye
		p0x, p0y = p1x, p1y
		p1x, p1y = p2x, p2y
		u += umax / div
	}
	p1x = pts[n].X
	p1y = pts[n].Y
	dxe, dye := unit2(pts[n].X-pts[n-1].X, pts[n].Y-pts[n-1].Y)
	c.biarc(line, p0x, p0y, dxs, dys, p1x, p1y, dxe, dye, 1)
}

// NurbsFeed3D streams a full 3D NURBS block: one message per control
// point and one per knot beyond the control-point count, each carrying
// the ordered block metadata.
func (c *Canon) NurbsFeed3D(line int, pts []ControlPoint, knots []float64,
	uofl []UoflBlock, k int, curveLength float64, axisMask uint32) {

	if len(pts) < 2 {
		panic("canon: nurbs move needs at least two control points")
	}

	// a NURBS move is not a point-to-point move
	c.flushSegments()

	nrCtrl := len(pts)
	nrKnot := len(knots)
	nrUoflKnot := len(uofl)
	nrUoflCP := 0
	for _, b := range uofl {
		if b.HasCtrlPt {
			nrUoflCP++
		}
	}

	// accumulate travel across the whole control polygon
	var d [NumAxes]float64
	for i := 0; i < nrCtrl-1; i++ {
		d[AxisX] += math.Abs(pts[i+1].X - pts[i].X)
		d[AxisY] += math.Abs(pts[i+1].Y - pts[i].Y)
		d[AxisZ] += math.Abs(pts[i+1].Z - pts[i].Z)
		d[AxisA] += math.Abs(pts[i+1].A - pts[i].A)
		d[AxisB] += math.Abs(pts[i+1].B - pts[i].B)
		d[AxisC] += math.Abs(pts[i+1].C - pts[i].C)
		d[AxisU] += math.Abs(pts[i+1].U - pts[i].U)
		d[AxisV] += math.Abs(pts[i+1].V - pts[i].V)
		d[AxisW] += math.Abs(pts[i+1].W - pts[i].W)
	}
	for i := range d {
		if !c.axisValid(i) || d[i] < tiny {
			d[i] = 0
		}
	}

	linear := d[AxisX] > 0 || d[AxisY] > 0 || d[AxisZ] > 0 ||
		d[AxisU] > 0 || d[AxisV] > 0 || d[AxisW] > 0
	angular := d[AxisA] > 0 || d[AxisB] > 0 || d[AxisC] > 0
	switch {
	case linear && !angular:
		c.cartesianMove = true
		c.angularMove = false
	case angular:
		// any rotary participation is priced as an angular move
		c.cartesianMove = false
		c.angularMove = true
	default:
		panic("canon: nurbs move travels nowhere")
	}

	pick := func(axis int, lim func(int) float64) float64 {
		if d[axis] > 0 {
			return c.fromExtLen(lim(axis))
		}
		return huge
	}

	var iniMaxVel, iniMaxAcc, iniMaxJerk, vel float64
	linEnv := func(lim func(int) float64) float64 {
		env := min3(pick(AxisX, lim), pick(AxisY, lim), pick(AxisZ, lim))
		return c.toExtLen(min2(env, min3(pick(AxisU, lim), pick(AxisV, lim), pick(AxisW, lim))))
	}

	if c.cartesianMove {
		iniMaxVel = linEnv(c.limits.MaxVelocity)
		iniMaxAcc = linEnv(c.limits.MaxAcceleration)
		iniMaxJerk = linEnv(c.limits.MaxJerk)
		vel = min2(iniMaxVel, c.linearFeedRate)
	} else {
		// the rotary A axis is priced by the linear speed of its rim,
		// with the radius taken from the last control point's Y,Z
		y := pts[nrCtrl-1].Y
		z := pts[nrCtrl-1].Z
		r := math.Sqrt(y*y + z*z)
		angPick := func(axis int, lim func(int) float64) float64 {
			if d[axis] == 0 {
				return huge
			}
			v := lim(axis)
			if axis == AxisA {
				// rim speed of the A axis at radius r
				v = lim(AxisA) / 360.0 * 2 * math.Pi * r
			}
			return c.fromExtLen(v)
		}
		env := func(lim func(int) float64) float64 {
			e := min3(pick(AxisX, lim), pick(AxisY, lim), pick(AxisZ, lim))
			e = min2(e, min3(pick(AxisU, lim), pick(AxisV, lim), pick(AxisW, lim)))
			return c.toExtLen(min2(e, min3(
				angPick(AxisA, lim),
				angPick(AxisB, lim),
				angPick(AxisC, lim))))
		}
		iniMaxVel = env(c.limits.MaxVelocity)
		iniMaxAcc = env(c.limits.MaxAcceleration)
		iniMaxJerk = env(c.limits.MaxJerk)
		vel = min2(iniMaxVel, c.angularFeedRate)
	}

	block := msg.NurbsBlock{
		CtrlPts:     nrCtrl,
		Knots:       nrKnot,
		Order:       uint(k),
		CurveLen:    curveLength,
		AxisMask:    axisMask,
		UoflOrder:   2,
		UoflCtrlPts: nrUoflCP,
		UoflKnots:   nrUoflKnot,
	}

	emit := func(i int, pt ControlPoint, knot, weight float64) {
		pos := c.rotateAndOffset(c.fromProg(pt.pose()))
		// homogeneous coordinates: scale by the weight
		pos.X *= pt.R
		pos.Y *= pt.R
		pos.Z *= pt.R
		pos.A *= pt.R
		pos.B *= pt.R
		pos.C *= pt.R
		pos.U *= pt.R
		pos.V *= pt.R
		pos.W *= pt.R

		m := &msg.NurbsMove{
			FeedMode:   c.feedMode,
			End:        c.toExtPose(pos),
			Vel:        vel,
			IniMaxVel:  iniMaxVel,
			IniMaxAcc:  iniMaxAcc,
			IniMaxJerk: iniMaxJerk,
			Block:      block,
		}
		m.Block.Knot = knot
		m.Block.Weight = weight
		if i < nrUoflCP {
			m.Block.UoflCtrlPt = uofl[i].CtrlPt
			m.Block.UoflKnot = uofl[i].Knot
			m.Block.UoflWeight = uofl[i].Weight
		} else if i < nrUoflKnot {
			m.Block.UoflKnot = uofl[i].Knot
		}

		c.list.SetLineNumber(line)
		c.list.Append(m)
		c.endPoint = pos
	}

	i := 0
	for ; i < nrCtrl; i++ {
		pt := pts[i]
		if pt.F != -1 {
			vel = c.fromProgLen(pt.F) / 60
		}
		emit(i, pt, knots[i], pt.R)
	}
	for ; i < nrKnot; i++ {
		emit(i, pts[nrCtrl-1], knots[i], 0)
	}
	for ; i < nrUoflKnot; i++ {
		emit(i, pts[nrCtrl-1], 0, 1)
	}
}
