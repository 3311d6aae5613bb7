package canon

import (
	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

// State mutators. Anything that changes how subsequent envelope math
// or message emission works flushes the segment buffer first, so
// buffered moves are computed under the state active when they were
// issued. Mutators that only take effect on the next dispatch
// (plane, naive-cam tolerance, spindle mode, block delete, optional
// stop) do not flush.

// sendOriginMsg appends the externalized origin so the executor
// observes the change in order, preceded by a CSS speed update when
// constant surface speed is active.
func (c *Canon) sendOriginMsg() {
	c.flushSegments()

	if c.cssMaximum != 0 {
		c.list.Append(&msg.SpindleSpeed{
			Speed:   c.cssMaximum,
			Factor:  c.cssNumerator,
			XOffset: c.toExtLen(c.programOrigin.X + c.toolOffset.X),
		})
	}
	c.list.Append(&msg.SetOrigin{Origin: c.toExtPose(c.programOrigin)})
}

// SetXYRotation sets the rotation applied to programmed X,Y, degrees.
func (c *Canon) SetXYRotation(t float64) {
	c.flushSegments()
	c.list.Append(&msg.SetRotation{Rotation: t})
	c.xyRotation = t
}

// SetOriginOffsets sets the work-coordinate origin, program units.
func (c *Canon) SetOriginOffsets(origin coord.Pose) {
	c.programOrigin = c.fromProg(origin)
	c.sendOriginMsg()
}

// UseLengthUnits sets the program-side length unit.
func (c *Canon) UseLengthUnits(u Units) {
	c.flushSegments()
	c.lengthUnits = u
}

// LengthUnits returns the program-side length unit.
func (c *Canon) LengthUnits() Units { return c.lengthUnits }

// SetFeedMode sets the feed mode; non-zero means spindle-synchronized.
// Turning synchronization off stops any active synch.
func (c *Canon) SetFeedMode(mode int) {
	c.flushSegments()
	c.feedMode = mode
	if c.feedMode == 0 {
		c.StopSpeedFeedSynch()
	}
}

// SetFeedRate sets the programmed feed, program units per minute (or
// units per revolution in a synchronized feed mode).
func (c *Canon) SetFeedRate(rate float64) {
	if c.feedMode != 0 {
		c.StartSpeedFeedSynch(rate, true)
		c.linearFeedRate = rate
		return
	}

	rate /= 60.0

	newLinear := c.fromProgLen(rate)
	newAngular := c.fromProgAng(rate)

	if newLinear != c.linearFeedRate || newAngular != c.angularFeedRate {
		c.flushSegments()
	}

	c.linearFeedRate = newLinear
	c.angularFeedRate = newAngular
}

// SetTraverseRate is accepted for interface completeness; traverse
// speed comes from the axis limits.
func (c *Canon) SetTraverseRate(rate float64) {}

// SetMotionControlMode switches between continuous (blended, with
// tolerance in program units) and exact-stop motion.
func (c *Canon) SetMotionControlMode(mode MotionMode, tolerance float64) {
	c.flushSegments()

	c.motionMode = mode
	c.motionTolerance = c.fromProgLen(tolerance)

	cond := &msg.SetTermCond{Cond: msg.TermCondStop}
	if mode == ModeContinuous {
		cond.Cond = msg.TermCondBlend
		cond.Tolerance = c.toExtLen(c.motionTolerance)
	}
	c.list.Append(cond)
}

// SetNaivecamTolerance sets the segment-fusion tolerance, program
// units. Zero disables fusion. No message is emitted; only fusion
// behavior changes.
func (c *Canon) SetNaivecamTolerance(tolerance float64) {
	c.naivecamTolerance = c.fromProgLen(tolerance)
}

// SelectPlane sets the arc plane, effective on the next dispatch.
func (c *Canon) SelectPlane(p Plane) {
	c.activePlane = p
}

// StartSpeedFeedSynch starts spindle-synchronized feed at the given
// program units per revolution.
func (c *Canon) StartSpeedFeedSynch(feedPerRev float64, velocityMode bool) {
	c.flushSegments()
	c.list.Append(&msg.SetSpindleSync{
		FeedPerRev:   c.toExtLen(c.fromProgLen(feedPerRev)),
		VelocityMode: velocityMode,
	})
	c.synched = true
}

// StopSpeedFeedSynch stops spindle-synchronized feed.
func (c *Canon) StopSpeedFeedSynch() {
	c.flushSegments()
	c.list.Append(&msg.SetSpindleSync{})
	c.synched = false
}

// SetBlockDelete toggles skipping of block-delete lines; read back by
// the interpreter, no message.
func (c *Canon) SetBlockDelete(state bool) { c.blockDelete = state }

// BlockDelete reports the block-delete switch.
func (c *Canon) BlockDelete() bool { return c.blockDelete }

// SetOptionalProgramStop toggles honoring of optional stops.
func (c *Canon) SetOptionalProgramStop(state bool) { c.optionalStop = state }

// OptionalProgramStopEnabled reports the optional-stop switch.
func (c *Canon) OptionalProgramStopEnabled() bool { return c.optionalStop }
