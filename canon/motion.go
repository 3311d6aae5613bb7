package canon

import (
	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

// linearMove builds a feed-type linear move message to pos (internal
// units) with the given internal-unit rates.
func (c *Canon) linearMove(pos coord.Pose, vel, iniMaxVel, acc float64) *msg.LinearMove {
	return &msg.LinearMove{
		Type:       msg.MotionFeed,
		FeedMode:   c.feedMode,
		End:        c.toExtPose(pos),
		Vel:        c.toExtVel(vel),
		IniMaxVel:  c.toExtVel(iniMaxVel),
		Acc:        c.toExtAcc(acc),
		IniMaxJerk: c.toExtLen(c.straightJerk(pos)),
	}
}

// StraightTraverse is a non-cutting move to the program-unit target.
// An active spindle synch is suspended around the traverse.
func (c *Canon) StraightTraverse(line int, target coord.Pose) {
	c.flushSegments()

	pos := c.rotateAndOffset(c.fromProg(target))

	vel := c.straightVelocity(pos)
	acc := c.straightAcceleration(pos)
	move := &msg.LinearMove{
		Type:       msg.MotionTraverse,
		FeedMode:   0,
		IniMaxJerk: c.toExtLen(c.straightJerk(pos)),
		End:        c.toExtPose(pos),
		Vel:        c.toExtVel(vel),
		IniMaxVel:  c.toExtVel(vel),
		Acc:        c.toExtAcc(acc),
	}

	oldFeedMode := c.feedMode
	if c.feedMode != 0 {
		c.StopSpeedFeedSynch()
	}

	if vel != 0 && acc != 0 {
		c.list.SetLineNumber(line)
		c.list.Append(move)
	}

	if oldFeedMode != 0 {
		c.StartSpeedFeedSynch(c.linearFeedRate, true)
	}

	c.endPoint = pos
}

// StraightFeed is a cutting move to the program-unit target. It does
// not flush eagerly; the segment buffer links or flushes as needed.
func (c *Canon) StraightFeed(line int, target coord.Pose) {
	pos := c.rotateAndOffset(c.fromProg(target))
	c.seeSegment(line, pos)
}

// RigidTap reciprocates to the program-unit XYZ target and back,
// synchronized with the spindle. The end point is not updated; after
// the move the machine is back where it started.
func (c *Canon) RigidTap(line int, x, y, z float64) {
	pos := c.rotateAndOffset(c.fromProg(coord.Pose{X: x, Y: y, Z: z}))
	pos.A = c.endPoint.A
	pos.B = c.endPoint.B
	pos.C = c.endPoint.C
	pos.U = c.endPoint.U
	pos.V = c.endPoint.V
	pos.W = c.endPoint.W

	c.flushSegments()

	vel := c.straightVelocity(pos)
	acc := c.straightAcceleration(pos)

	tap := &msg.RigidTap{
		Pos:       c.toExtPose(pos),
		Vel:       c.toExtVel(vel),
		IniMaxVel: c.toExtVel(vel),
		Acc:       c.toExtAcc(acc),
	}

	if vel != 0 && acc != 0 {
		c.list.SetLineNumber(line)
		c.list.Append(tap)
	}
}

// StraightProbe moves toward the program-unit target until the probe
// trips. probeType passes through to the executor.
func (c *Canon) StraightProbe(line int, target coord.Pose, probeType uint8) {
	pos := c.rotateAndOffset(c.fromProg(target))

	c.flushSegments()

	iniMaxVel := c.straightVelocity(pos)
	vel := c.feedClamp(iniMaxVel)
	acc := c.straightAcceleration(pos)

	probe := &msg.Probe{
		Pos:       c.toExtPose(pos),
		Vel:       c.toExtVel(vel),
		IniMaxVel: c.toExtVel(iniMaxVel),
		Acc:       c.toExtAcc(acc),
		ProbeType: probeType,
	}

	if vel != 0 && acc != 0 {
		c.list.SetLineNumber(line)
		c.list.Append(probe)
	}
	c.endPoint = pos
}

// Dwell pauses motion for the given seconds.
func (c *Canon) Dwell(seconds float64) {
	c.flushSegments()
	c.list.Append(&msg.Delay{Seconds: seconds})
}

// TurnProbeOn clears the probe-tripped flag ahead of a probe move.
func (c *Canon) TurnProbeOn() {
	c.list.Append(&msg.ClearProbeTripped{})
}

// TurnProbeOff is called when probing is done; nothing to do.
func (c *Canon) TurnProbeOff() {}
