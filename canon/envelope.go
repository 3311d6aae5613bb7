package canon

import (
	"math"

	"github.com/mastercactapus/gcanon/coord"
)

// Kinematic envelope: the largest velocity/acceleration/jerk no
// participating axis exceeds for a proposed straight move. The
// envelope is the minimum across moving axes; stationary or masked
// axes do not constrain it. For combined linear+angular moves the
// result is the minimum of the linear and angular minima, a
// deliberately conservative bound.

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func min3(a, b, c float64) float64 { return min2(min2(a, b), c) }

// axisDeltas returns per-axis absolute travel from the current end
// point, zeroing masked axes and deltas below the noise floor, and
// classifies the move by setting cartesianMove/angularMove.
func (c *Canon) axisDeltas(target coord.Pose) [NumAxes]float64 {
	diff := target.Sub(c.endPoint)
	d := [NumAxes]float64{
		math.Abs(diff.X), math.Abs(diff.Y), math.Abs(diff.Z),
		math.Abs(diff.A), math.Abs(diff.B), math.Abs(diff.C),
		math.Abs(diff.U), math.Abs(diff.V), math.Abs(diff.W),
	}
	for i := range d {
		if !c.axisValid(i) || d[i] < tiny {
			d[i] = 0
		}
	}

	c.cartesianMove = d[AxisX] > 0 || d[AxisY] > 0 || d[AxisZ] > 0 ||
		d[AxisU] > 0 || d[AxisV] > 0 || d[AxisW] > 0
	c.angularMove = d[AxisA] > 0 || d[AxisB] > 0 || d[AxisC] > 0

	return d
}

// envelope computes the min-of-maxima across moving axes for one limit
// dimension (velocity, acceleration or jerk, selected by limit).
func (c *Canon) envelope(d [NumAxes]float64, limit func(axis int) float64) float64 {
	pick := func(axis int) float64 {
		if d[axis] > 0 {
			return limit(axis)
		}
		return huge
	}

	lin := min3(pick(AxisX), pick(AxisY), pick(AxisZ))
	lin = c.fromExtLen(min2(lin, min3(pick(AxisU), pick(AxisV), pick(AxisW))))
	ang := c.fromExtAng(min3(pick(AxisA), pick(AxisB), pick(AxisC)))

	switch {
	case c.cartesianMove && !c.angularMove:
		return lin
	case !c.cartesianMove && c.angularMove:
		return ang
	default:
		return min2(lin, ang)
	}
}

// straightVelocity returns the envelope velocity for a straight move
// to target. A move to nowhere prices at the linear feed rate.
func (c *Canon) straightVelocity(target coord.Pose) float64 {
	d := c.axisDeltas(target)
	if !c.cartesianMove && !c.angularMove {
		return c.linearFeedRate
	}
	vel := c.envelope(d, c.limits.MaxVelocity)
	assertPositive(vel, "velocity")
	return vel
}

func (c *Canon) straightAcceleration(target coord.Pose) float64 {
	d := c.axisDeltas(target)
	if !c.cartesianMove && !c.angularMove {
		return 0
	}
	acc := c.envelope(d, c.limits.MaxAcceleration)
	assertPositive(acc, "acceleration")
	return acc
}

func (c *Canon) straightJerk(target coord.Pose) float64 {
	d := c.axisDeltas(target)
	if !c.cartesianMove && !c.angularMove {
		return 0
	}
	jerk := c.envelope(d, c.limits.MaxJerk)
	assertPositive(jerk, "jerk")
	return jerk
}

// feedClamp caps vel at the programmed feed for the classification of
// the last computed move.
func (c *Canon) feedClamp(vel float64) float64 {
	if !c.cartesianMove && c.angularMove {
		return min2(vel, c.angularFeedRate)
	}
	return min2(vel, c.linearFeedRate)
}
