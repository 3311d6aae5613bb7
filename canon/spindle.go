package canon

import (
	"math"

	"github.com/mastercactapus/gcanon/msg"
)

// Constant surface speed: when a CSS maximum is set, every spindle
// command carries the maximum, the surface-speed numerator and the
// external X offset of the rotation axis so the executor can regulate
// rpm from the radius. Direction flips the numerator's sign.

// cssFactor computes the CSS numerator for the current spindle speed.
func (c *Canon) cssFactor() float64 {
	if c.lengthUnits == UnitsInches {
		return 12 / (2 * math.Pi) * c.spindleSpeed * c.toExtLen(25.4)
	}
	return 1000 / (2 * math.Pi) * c.spindleSpeed * c.toExtLen(1)
}

func (c *Canon) cssXOffset() float64 {
	return c.toExtLen(c.programOrigin.X + c.toolOffset.X)
}

// SetSpindleMode sets the CSS maximum rpm; zero selects plain rpm
// mode. Effective on the next spindle command.
func (c *Canon) SetSpindleMode(cssMax float64) {
	c.cssMaximum = cssMax
}

// StartSpindleClockwise starts the spindle turning clockwise.
func (c *Canon) StartSpindleClockwise() {
	c.flushSegments()

	on := &msg.SpindleOn{}
	if c.cssMaximum != 0 {
		c.cssNumerator = c.cssFactor()
		on.Speed = c.cssMaximum
		on.Factor = c.cssNumerator
		on.XOffset = c.cssXOffset()
	} else {
		on.Speed = c.spindleSpeed
		c.cssNumerator = 0
	}
	c.list.Append(on)
}

// StartSpindleCounterclockwise starts the spindle turning
// counterclockwise.
func (c *Canon) StartSpindleCounterclockwise() {
	c.flushSegments()

	on := &msg.SpindleOn{}
	if c.cssMaximum != 0 {
		c.cssNumerator = -c.cssFactor()
		on.Speed = c.cssMaximum
		on.Factor = c.cssNumerator
		on.XOffset = c.cssXOffset()
	} else {
		on.Speed = -c.spindleSpeed
		c.cssNumerator = 0
	}
	c.list.Append(on)
}

// SetSpindleSpeed sets the spindle speed, rpm.
func (c *Canon) SetSpindleSpeed(r float64) {
	c.spindleSpeed = r

	c.flushSegments()

	speed := &msg.SpindleSpeed{}
	if c.cssMaximum != 0 {
		c.cssNumerator = c.cssFactor()
		speed.Speed = c.cssMaximum
		speed.Factor = c.cssNumerator
		speed.XOffset = c.cssXOffset()
	} else {
		speed.Speed = c.spindleSpeed
		c.cssNumerator = 0
	}
	c.list.Append(speed)
}

// StopSpindleTurning stops the spindle.
func (c *Canon) StopSpindleTurning() {
	c.flushSegments()
	c.list.Append(&msg.SpindleOff{})
}
