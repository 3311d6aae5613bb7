package canon

import (
	"fmt"

	"github.com/mastercactapus/gcanon/coord"
)

// Read-only views of the external status snapshot, converted to
// program units for the interpreter.

// Position reads the current machine position, updates the canonical
// end point and returns the position in program coordinates. Buffered
// segments are discarded, not flushed: the caller is resynchronizing
// to reality.
func (c *Canon) Position() coord.Pose {
	c.chained = c.chained[:0]

	c.endPoint = c.fromExtPose(c.status.Position())

	return c.toProg(c.unoffsetAndUnrotate(c.endPoint))
}

// ProbedPosition flushes, reads the last probed position and returns
// it in program coordinates. When a probe log is open, each changed
// sample appends one line of nine coordinates.
func (c *Canon) ProbedPosition() coord.Pose {
	c.flushSegments()

	pos := c.fromExtPose(c.status.ProbedPosition())
	position := c.toProg(c.unoffsetAndUnrotate(pos))

	if c.probeFile != nil {
		if !c.haveLastProbe || position != c.lastProbe {
			fmt.Fprintf(c.probeFile, "%f %f %f %f %f %f %f %f %f\n",
				position.X, position.Y, position.Z,
				position.A, position.B, position.C,
				position.U, position.V, position.W)
			c.lastProbe = position
			c.haveLastProbe = true
		}
	}

	return position
}

func poseAxis(p coord.Pose, axis int) float64 {
	switch axis {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	case AxisA:
		return p.A
	case AxisB:
		return p.B
	case AxisC:
		return p.C
	case AxisU:
		return p.U
	case AxisV:
		return p.V
	case AxisW:
		return p.W
	}
	return 0
}

// PositionAxis returns one coordinate of Position.
func (c *Canon) PositionAxis(axis int) float64 {
	return poseAxis(c.Position(), axis)
}

// ProbedPositionAxis returns one coordinate of ProbedPosition.
func (c *Canon) ProbedPositionAxis(axis int) float64 {
	return poseAxis(c.ProbedPosition(), axis)
}

// ToolLengthOffsetAxis returns one coordinate of the active tool
// offset in program units.
func (c *Canon) ToolLengthOffsetAxis(axis int) float64 {
	return poseAxis(c.ToolLengthOffset(), axis)
}

// ProbeTripped reports whether the probe has tripped.
func (c *Canon) ProbeTripped() bool { return c.status.ProbeTripped() }

// ProbeValue is only meaningful for analog non-contact probes, so
// force a zero.
func (c *Canon) ProbeValue() float64 { return 0 }

// FeedRate returns the programmed feed in program units per minute.
func (c *Canon) FeedRate() float64 {
	return c.toProgLen(c.linearFeedRate) * 60
}

// TraverseRate returns the machine's traverse rate in program units
// per minute.
func (c *Canon) TraverseRate() float64 {
	return c.toProgLen(c.fromExtLen(c.status.MaxTraverseRate())) * 60
}

// MotionControlMode returns the active motion-control mode.
func (c *Canon) MotionControlMode() MotionMode { return c.motionMode }

// MotionControlTolerance returns the blend tolerance in program units.
func (c *Canon) MotionControlTolerance() float64 {
	return c.toProgLen(c.motionTolerance)
}

// ActivePlane returns the active arc plane.
func (c *Canon) ActivePlane() Plane { return c.activePlane }

// AxisMask returns the configured axis mask.
func (c *Canon) AxisMask() int { return c.status.AxisMask() }

// QueueEmpty flushes and reports whether the executor queue is empty.
func (c *Canon) QueueEmpty() bool {
	c.flushSegments()
	return c.status.QueueLen() == 0
}

// ToolTable returns the tool-table entry for pocket, or a zeroed
// entry with ToolNo -1 when the pocket is out of range.
func (c *Canon) ToolTable(pocket int) ToolEntry {
	if pocket < 0 || pocket >= c.status.PocketsMax() {
		return ToolEntry{ToolNo: -1}
	}
	return c.status.ToolTable(pocket)
}

// ToolSlot returns the tool currently in the spindle.
func (c *Canon) ToolSlot() int { return c.status.ToolInSpindle() }

// SelectedToolSlot returns the prepped pocket.
func (c *Canon) SelectedToolSlot() int { return c.status.PocketPrepped() }

// Mist reports the mist coolant state.
func (c *Canon) Mist() bool { return c.status.Mist() }

// Flood reports the flood coolant state.
func (c *Canon) Flood() bool { return c.status.Flood() }

// SpindleSpeed returns the spindle speed, rpm everywhere.
func (c *Canon) SpindleSpeed() float64 { return c.status.SpindleSpeed() }

// SpindleDirection is positive clockwise, negative counterclockwise,
// zero stopped.
func (c *Canon) SpindleDirection() int {
	speed := c.status.SpindleSpeed()
	switch {
	case speed == 0:
		return 0
	case speed > 0:
		return 1
	}
	return -1
}

// FeedOverrideEnabled reports the feed-override enable.
func (c *Canon) FeedOverrideEnabled() bool { return c.status.FeedOverrideEnabled() }

// SpindleOverrideEnabled reports the spindle-override enable.
func (c *Canon) SpindleOverrideEnabled() bool { return c.status.SpindleOverrideEnabled() }

// AdaptiveFeedEnabled reports the adaptive-feed enable.
func (c *Canon) AdaptiveFeedEnabled() bool { return c.status.AdaptiveFeedEnabled() }

// FeedHoldEnabled reports the feed-hold enable.
func (c *Canon) FeedHoldEnabled() bool { return c.status.FeedHoldEnabled() }

// DigitalInputValue returns the digital input at index, or -1 on a bad
// index or input timeout.
func (c *Canon) DigitalInputValue(index int) int {
	if index < 0 || index >= c.status.NumDigitalInputs() {
		return -1
	}
	if c.status.InputTimeout() {
		return -1
	}
	if c.status.DigitalInput(index) != 0 {
		return 1
	}
	return 0
}

// AnalogInputValue returns the analog input at index, or -1 on a bad
// index or input timeout.
func (c *Canon) AnalogInputValue(index int) float64 {
	if index < 0 || index >= c.status.NumAnalogInputs() {
		return -1
	}
	if c.status.InputTimeout() {
		return -1
	}
	return c.status.AnalogInput(index)
}
