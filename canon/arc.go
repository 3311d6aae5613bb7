package canon

import (
	"math"

	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

// chordDeviation returns the sagitta of the arc from (sx,sy) to
// (ex,ey) about (cx,cy) in the direction of rotation, along with the
// arc midpoint. theta2 is normalized into the arc direction; the edge
// case where atan2 straddles -pi/pi needs a second pass.
func chordDeviation(sx, sy, ex, ey, cx, cy float64, rotation int) (dev, mx, my float64) {
	th1 := math.Atan2(sy-cy, sx-cx)
	th2 := math.Atan2(ey-cy, ex-cx)
	r := math.Hypot(sy-cy, sx-cx)

	if rotation < 0 {
		if th2-th1 >= -1e-5 {
			th2 -= 2 * math.Pi
		}
		if th2-th1 >= -1e-5 {
			th2 -= 2 * math.Pi
		}
	} else {
		if th2-th1 <= 1e-5 {
			th2 += 2 * math.Pi
		}
		if th2-th1 <= 1e-5 {
			th2 += 2 * math.Pi
		}
	}

	included := math.Abs(th2 - th1)
	mid := (th2 + th1) / 2
	mx = cx + r*math.Cos(mid)
	my = cy + r*math.Sin(mid)
	dev = r * (1 - math.Cos(included/2))
	return dev, mx, my
}

// ArcFeed cuts an arc in the active plane. firstEnd/secondEnd are the
// in-plane end coordinates, firstAxis/secondAxis the in-plane center,
// rotation the signed number of turns (0 degrades to a straight
// move), axisEnd the end coordinate along the plane normal. All in
// program units.
func (c *Canon) ArcFeed(line int,
	firstEnd, secondEnd, firstAxis, secondAxis float64, rotation int,
	axisEnd float64, a, b, bc, u, v, w float64) {

	lx, ly, lz := c.lastPos()

	// Nearly straight arcs in continuous XY mode degrade into two
	// linked feeds through the chord midpoint, keeping them eligible
	// for naive-cam fusion.
	if c.activePlane == PlaneXY && c.motionMode == ModeContinuous {
		dev, mx, my := chordDeviation(lx, ly,
			c.offsetX(c.fromProgLen(firstEnd)), c.offsetY(c.fromProgLen(secondEnd)),
			c.offsetX(c.fromProgLen(firstAxis)), c.offsetY(c.fromProgLen(secondAxis)),
			rotation)
		if dev < c.naivecamTolerance {
			pos := c.rotateAndOffset(c.fromProg(coord.Pose{
				X: firstEnd, Y: secondEnd, Z: axisEnd,
				A: a, B: b, C: bc, U: u, V: v, W: w,
			}))
			c.seeSegment(line, coord.Pose{
				X: mx, Y: my, Z: (lz + pos.Z) / 2,
				A: (c.endPoint.A + pos.A) / 2,
				B: (c.endPoint.B + pos.B) / 2,
				C: (c.endPoint.C + pos.C) / 2,
				U: (c.endPoint.U + pos.U) / 2,
				V: (c.endPoint.V + pos.V) / 2,
				W: (c.endPoint.W + pos.W) / 2,
			})
			c.seeSegment(line, pos)
			return
		}
	}

	c.flushSegments()

	// rotary and UVW targets move linearly alongside the arc
	aux := coord.Pose{
		A: c.fromProgAng(a), B: c.fromProgAng(b), C: c.fromProgAng(bc),
		U: c.fromProgLen(u), V: c.fromProgLen(v), W: c.fromProgLen(w),
	}.Add(coord.Pose{
		A: c.programOrigin.A + c.toolOffset.A,
		B: c.programOrigin.B + c.toolOffset.B,
		C: c.programOrigin.C + c.toolOffset.C,
		U: c.programOrigin.U + c.toolOffset.U,
		V: c.programOrigin.V + c.toolOffset.V,
		W: c.programOrigin.W + c.toolOffset.W,
	})

	da := math.Abs(c.endPoint.A - aux.A)
	db := math.Abs(c.endPoint.B - aux.B)
	dc := math.Abs(c.endPoint.C - aux.C)
	du := math.Abs(c.endPoint.U - aux.U)
	dv := math.Abs(c.endPoint.V - aux.V)
	dw := math.Abs(c.endPoint.W - aux.W)

	firstAxis = c.fromProgLen(firstAxis)
	secondAxis = c.fromProgLen(secondAxis)
	firstEnd = c.fromProgLen(firstEnd)
	secondEnd = c.fromProgLen(secondEnd)
	axisEnd = c.fromProgLen(axisEnd)

	var maxVel, maxAcc, maxJerk [NumAxes]float64
	for i := 0; i < NumAxes; i++ {
		conv := c.fromExtLen
		if i >= AxisA && i <= AxisC {
			conv = c.fromExtAng
		}
		maxVel[i] = conv(c.limits.MaxVelocity(i))
		maxAcc[i] = conv(c.limits.MaxAcceleration(i))
		maxJerk[i] = conv(c.limits.MaxJerk(i))
	}

	rotOff := func(x, y, z float64) (float64, float64, float64) {
		p := c.rotateAndOffset(coord.Pose{X: x, Y: y, Z: z})
		return p.X, p.Y, p.Z
	}

	var end coord.Pose
	var center, normal coord.Point
	var axisLen float64
	var iniMaxVel, acc, iniMaxJerk float64

	switch c.activePlane {
	default:
		fallthrough
	case PlaneXY:
		end.X, end.Y, end.Z = rotOff(firstEnd, secondEnd, axisEnd)
		center.X, center.Y, center.Z = rotOff(firstAxis, secondAxis, end.Z)
		normal = coord.Point{Z: 1}

		axisLen = math.Abs(end.Z - c.endPoint.Z)

		iniMaxVel = min2(maxVel[AxisX], maxVel[AxisY])
		acc = min2(maxAcc[AxisX], maxAcc[AxisY])
		iniMaxJerk = min2(maxJerk[AxisX], maxJerk[AxisY])

		if c.axisValid(AxisZ) && axisLen > 0.001 {
			iniMaxVel = min2(iniMaxVel, maxVel[AxisZ])
			acc = min2(acc, maxAcc[AxisZ])
			iniMaxJerk = min2(iniMaxJerk, maxJerk[AxisZ])
		}

	case PlaneYZ:
		end.Y, end.Z, end.X = firstEnd, secondEnd, axisEnd
		end.X, end.Y, end.Z = rotOff(end.X, end.Y, end.Z)
		center.Y, center.Z, center.X = firstAxis, secondAxis, end.X
		center.X, center.Y, center.Z = rotOff(center.X, center.Y, center.Z)
		normal = coord.Point{X: 1}
		normal.X, normal.Y = coord.RotateXY(normal.X, normal.Y, c.xyRotation)

		axisLen = math.Abs(end.X - c.endPoint.X)

		iniMaxVel = min2(maxVel[AxisY], maxVel[AxisZ])
		acc = min2(maxAcc[AxisY], maxAcc[AxisZ])
		iniMaxJerk = min2(maxJerk[AxisY], maxJerk[AxisZ])

		if c.axisValid(AxisX) && axisLen > 0.001 {
			iniMaxVel = min2(iniMaxVel, maxVel[AxisX])
			acc = min2(acc, maxAcc[AxisX])
			iniMaxJerk = min2(iniMaxJerk, maxJerk[AxisX])
		}

	case PlaneXZ:
		end.Z, end.X, end.Y = firstEnd, secondEnd, axisEnd
		end.X, end.Y, end.Z = rotOff(end.X, end.Y, end.Z)
		center.Z, center.X, center.Y = firstAxis, secondAxis, end.Y
		center.X, center.Y, center.Z = rotOff(center.X, center.Y, center.Z)
		normal = coord.Point{Y: 1}
		normal.X, normal.Y = coord.RotateXY(normal.X, normal.Y, c.xyRotation)

		axisLen = math.Abs(end.Y - c.endPoint.Y)

		iniMaxVel = min2(maxVel[AxisX], maxVel[AxisZ])
		acc = min2(maxAcc[AxisX], maxAcc[AxisZ])
		iniMaxJerk = min2(maxJerk[AxisX], maxJerk[AxisZ])

		if c.axisValid(AxisY) && axisLen > 0.001 {
			iniMaxVel = min2(iniMaxVel, maxVel[AxisY])
			acc = min2(acc, maxAcc[AxisY])
			iniMaxJerk = min2(iniMaxJerk, maxJerk[AxisY])
		}
	}

	if !c.axisValid(AxisA) || da < tiny {
		da = 0
	}
	if !c.axisValid(AxisB) || db < tiny {
		db = 0
	}
	if !c.axisValid(AxisC) || dc < tiny {
		dc = 0
	}
	if !c.axisValid(AxisU) || du < tiny {
		du = 0
	}
	if !c.axisValid(AxisV) || dv < tiny {
		dv = 0
	}
	if !c.axisValid(AxisW) || dw < tiny {
		dw = 0
	}

	c.cartesianMove = true

	// fold in any moving UVW then ABC axes
	pick := func(d, lim float64) float64 {
		if d > 0 {
			return lim
		}
		return huge
	}
	iniMaxJerk = min2(iniMaxJerk, c.fromExtLen(min3(
		pick(du, c.limits.MaxJerk(AxisU)),
		pick(dv, c.limits.MaxJerk(AxisV)),
		pick(dw, c.limits.MaxJerk(AxisW)))))
	iniMaxJerk = min2(iniMaxJerk, c.fromExtAng(min3(
		pick(da, c.limits.MaxJerk(AxisA)),
		pick(db, c.limits.MaxJerk(AxisB)),
		pick(dc, c.limits.MaxJerk(AxisC)))))

	acc = min2(acc, c.fromExtLen(min3(
		pick(du, c.limits.MaxAcceleration(AxisU)),
		pick(dv, c.limits.MaxAcceleration(AxisV)),
		pick(dw, c.limits.MaxAcceleration(AxisW)))))
	acc = min2(acc, c.fromExtAng(min3(
		pick(da, c.limits.MaxAcceleration(AxisA)),
		pick(db, c.limits.MaxAcceleration(AxisB)),
		pick(dc, c.limits.MaxAcceleration(AxisC)))))

	iniMaxVel = min2(iniMaxVel, c.fromExtLen(min3(
		pick(du, c.limits.MaxVelocity(AxisU)),
		pick(dv, c.limits.MaxVelocity(AxisV)),
		pick(dw, c.limits.MaxVelocity(AxisW)))))
	iniMaxVel = min2(iniMaxVel, c.fromExtAng(min3(
		pick(da, c.limits.MaxVelocity(AxisA)),
		pick(db, c.limits.MaxVelocity(AxisB)),
		pick(dc, c.limits.MaxVelocity(AxisC)))))

	assertPositive(iniMaxVel, "velocity")
	assertPositive(iniMaxJerk, "jerk")
	assertPositive(acc, "acceleration")

	iniMaxVel = min2(iniMaxVel, c.linearFeedRate)
	vel := iniMaxVel

	end.A, end.B, end.C = aux.A, aux.B, aux.C
	end.U, end.V, end.W = aux.U, aux.V, aux.W

	if rotation == 0 {
		move := &msg.LinearMove{
			Type:       msg.MotionArc,
			FeedMode:   c.feedMode,
			End:        c.toExtPose(end),
			Vel:        vel,
			IniMaxVel:  iniMaxVel,
			Acc:        acc,
			IniMaxJerk: iniMaxJerk,
		}
		if vel != 0 && acc != 0 {
			c.list.SetLineNumber(line)
			c.list.Append(move)
		}
	} else {
		turn := rotation
		if rotation > 0 {
			turn = rotation - 1
		}
		move := &msg.CircularMove{
			FeedMode: c.feedMode,
			End:      c.toExtPose(end),
			Center: coord.Point{
				X: c.toExtLen(center.X),
				Y: c.toExtLen(center.Y),
				Z: c.toExtLen(center.Z),
			},
			Normal:     normal,
			Turn:       turn,
			Vel:        vel,
			IniMaxVel:  iniMaxVel,
			Acc:        acc,
			IniMaxJerk: iniMaxJerk,
		}
		if vel != 0 && acc != 0 {
			c.list.SetLineNumber(line)
			c.list.Append(move)
		}
	}

	c.endPoint = end
}
