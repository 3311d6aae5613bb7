package canon

import (
	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

// SetToolTableEntry records a tool-table pocket downstream. Distances
// are already in external (machine) units.
func (c *Canon) SetToolTableEntry(pocket, toolno int, offset coord.Pose,
	diameter, frontAngle, backAngle float64, orientation int) {
	c.flushSegments()
	c.list.Append(&msg.ToolSetOffset{
		Pocket:      pocket,
		ToolNo:      toolno,
		Offset:      offset,
		Diameter:    diameter,
		FrontAngle:  frontAngle,
		BackAngle:   backAngle,
		Orientation: orientation,
	})
}

// UseToolLengthOffset applies a tool length offset, program units. The
// executor learns the externalized offset via a message so the change
// lands in order, not at read-ahead time.
func (c *Canon) UseToolLengthOffset(offset coord.Pose) {
	c.flushSegments()

	c.toolOffset = c.fromProg(offset)

	if c.cssMaximum != 0 {
		c.list.Append(&msg.SpindleSpeed{
			Speed:   c.cssMaximum,
			Factor:  c.cssNumerator,
			XOffset: c.cssXOffset(),
		})
	}
	c.list.Append(&msg.SetOffset{Offset: c.toExtPose(c.toolOffset)})
}

// ToolLengthOffset returns the active tool offset in program units.
func (c *Canon) ToolLengthOffset() coord.Pose {
	return c.toProg(c.toolOffset)
}

// ChangeTool loads the selected tool. When a tool-change position is
// configured, a traverse-like move goes there first, with any spindle
// synch suspended around it.
func (c *Canon) ChangeTool(slot int) {
	c.flushSegments()

	if ext, ok := c.status.ToolChangePosition(); ok {
		pos := c.fromExtPose(ext)

		vel := c.straightVelocity(pos)
		acc := c.straightAcceleration(pos)

		move := &msg.LinearMove{
			Type:      msg.MotionToolChange,
			FeedMode:  0,
			End:       c.toExtPose(pos),
			Vel:       c.toExtVel(vel),
			IniMaxVel: c.toExtVel(vel),
			Acc:       c.toExtAcc(acc),
		}

		oldFeedMode := c.feedMode
		if c.feedMode != 0 {
			c.StopSpeedFeedSynch()
		}

		if vel != 0 && acc != 0 {
			c.list.Append(move)
		}

		if oldFeedMode != 0 {
			c.StartSpeedFeedSynch(c.linearFeedRate, true)
		}

		c.endPoint = pos
	}

	c.list.Append(&msg.ToolLoad{})
}

// SelectPocket preps a tool pocket ahead of a change.
func (c *Canon) SelectPocket(slot int) {
	c.list.Append(&msg.ToolPrepare{Tool: slot})
}

// ChangeToolNumber overrides the current tool number without a change.
func (c *Canon) ChangeToolNumber(number int) {
	c.list.Append(&msg.ToolSetNumber{Tool: number})
}
