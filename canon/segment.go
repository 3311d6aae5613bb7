package canon

import (
	"github.com/mastercactapus/gcanon/coord"
)

// Segment buffer: pending straight-feed end points that may be fused
// into a single move. Points chain while each new candidate keeps
// every buffered point within the naive-cam tolerance of the straight
// line from the current end point to the candidate. Fusion is a pure
// XYZ optimization; any A,B,C or U,V,W change flushes.

// maxChained bounds the buffer length.
const maxChained = 100

type segPoint struct {
	pos  coord.Pose
	line int
}

// lastPos returns the XYZ position the next segment continues from:
// the last buffered point, or the end point when nothing is buffered.
func (c *Canon) lastPos() (lx, ly, lz float64) {
	if len(c.chained) == 0 {
		return c.endPoint.X, c.endPoint.Y, c.endPoint.Z
	}
	p := c.chained[len(c.chained)-1].pos
	return p.X, p.Y, p.Z
}

// linkable reports whether pos can chain onto the buffer. Note the
// rotary and UVW coordinates compare exactly: callers wanting
// tolerance-based merging must plan for it upstream.
func (c *Canon) linkable(pos coord.Pose) bool {
	last := c.chained[len(c.chained)-1].pos
	if c.motionMode != ModeContinuous || c.naivecamTolerance == 0 {
		return false
	}
	if len(c.chained) >= maxChained {
		return false
	}

	if pos.A != last.A || pos.B != last.B || pos.C != last.C {
		return false
	}
	if pos.U != last.U || pos.V != last.V || pos.W != last.W {
		return false
	}

	if pos.X == c.endPoint.X && pos.Y == c.endPoint.Y && pos.Z == c.endPoint.Z {
		return false
	}

	b := c.endPoint.Tran()
	m := pos.Tran().Sub(b)
	for _, it := range c.chained {
		p := it.pos.Tran()
		t0 := m.Dot(p.Sub(b)) / m.Dot(m)
		if t0 < 0 {
			t0 = 0
		}
		if t0 > 1 {
			t0 = 1
		}
		d := p.Sub(b.Add(m.Mul(t0))).Mag()
		if d > c.naivecamTolerance {
			return false
		}
	}
	return true
}

// seeSegment offers a feed end point to the buffer, flushing first
// when it cannot link and immediately after when it moves a rotary or
// UVW axis.
func (c *Canon) seeSegment(line int, pos coord.Pose) {
	changedABC := pos.A != c.endPoint.A ||
		pos.B != c.endPoint.B ||
		pos.C != c.endPoint.C
	changedUVW := pos.U != c.endPoint.U ||
		pos.V != c.endPoint.V ||
		pos.W != c.endPoint.W

	if len(c.chained) > 0 && !c.linkable(pos) {
		c.flushSegments()
	}

	c.chained = append(c.chained, segPoint{pos: pos, line: line})
	if changedABC || changedUVW {
		c.flushSegments()
	}
}

// flushSegments emits a single linear feed move ending at the last
// buffered point, then clears the buffer. Zero-velocity or
// zero-acceleration moves are dropped unless a spindle synch is
// active.
func (c *Canon) flushSegments() {
	if len(c.chained) == 0 {
		return
	}
	last := c.chained[len(c.chained)-1]
	pos := last.pos

	iniMaxVel := c.straightVelocity(pos)
	vel := c.feedClamp(iniMaxVel)
	acc := c.straightAcceleration(pos)

	move := c.linearMove(pos, vel, iniMaxVel, acc)
	if (vel != 0 && acc != 0) || c.synched {
		c.list.SetLineNumber(last.line)
		c.list.Append(move)
	}
	c.endPoint = pos

	c.chained = c.chained[:0]
}
