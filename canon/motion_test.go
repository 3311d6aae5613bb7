package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

func TestStraightTraverse(t *testing.T) {
	c, _, list := newTest()

	c.StraightTraverse(5, coord.Pose{X: 10, Y: 20})

	mv := moves(list)
	require.Len(t, mv, 1)
	lm := mv[0].(*msg.LinearMove)
	assert.Equal(t, msg.MotionTraverse, lm.Type)
	assert.Equal(t, 10.0, lm.End.X)
	assert.Equal(t, 20.0, lm.End.Y)
	// traverses run at the envelope, not the programmed feed
	assert.Equal(t, 100.0, lm.Vel)
	assert.Equal(t, 100.0, lm.IniMaxVel)
	assert.Equal(t, 0, lm.FeedMode)
	assert.Equal(t, 5, lm.Line)
	assert.Equal(t, coord.Pose{X: 10, Y: 20}, c.EndPoint())
}

func TestStraightTraverse_Inches(t *testing.T) {
	c, _, list := newTest()

	c.UseLengthUnits(UnitsInches)
	c.StraightTraverse(1, coord.Pose{X: 1})

	mv := moves(list)
	require.Len(t, mv, 1)
	lm := mv[0].(*msg.LinearMove)
	assert.Equal(t, 25.4, lm.End.X)
	assert.Equal(t, 25.4, c.EndPoint().X)
}

func TestStraightTraverse_SuspendsSynch(t *testing.T) {
	c, _, list := newTest()

	c.SetFeedMode(1)
	c.SetFeedRate(600)
	c.StraightTraverse(1, coord.Pose{X: 10})

	var kinds []msg.Kind
	for _, m := range list.Messages() {
		kinds = append(kinds, m.Kind())
	}
	// synch stop, the traverse itself, synch restart, in that order
	n := len(kinds)
	require.True(t, n >= 3)
	assert.Equal(t, msg.KindSetSpindleSync, kinds[n-3])
	assert.Equal(t, msg.KindLinearMove, kinds[n-2])
	assert.Equal(t, msg.KindSetSpindleSync, kinds[n-1])

	stop := list.Messages()[n-3].(*msg.SetSpindleSync)
	assert.Equal(t, 0.0, stop.FeedPerRev)
	restart := list.Messages()[n-1].(*msg.SetSpindleSync)
	assert.NotEqual(t, 0.0, restart.FeedPerRev)
}

func TestStraightTraverse_EnvelopeMonotonic(t *testing.T) {
	emit := func(xVel float64) float64 {
		status := newTestStatus()
		list := msg.NewList()
		c := New(testLimits{vel: 100, acc: 1000, jerk: 10000,
			velFor: map[int]float64{AxisX: xVel}}, status, list)
		c.StraightTraverse(1, coord.Pose{X: 10, Y: 10})
		mv := moves(list)
		require.Len(t, mv, 1)
		return mv[0].(*msg.LinearMove).IniMaxVel
	}

	assert.Equal(t, 100.0, emit(150))
	assert.Equal(t, 50.0, emit(50))
	assert.Equal(t, 10.0, emit(10))
}

func TestRigidTap(t *testing.T) {
	c, _, list := newTest()

	c.StraightTraverse(1, coord.Pose{X: 1, Y: 2, Z: 3})
	c.RigidTap(2, 1, 2, -10)

	mv := moves(list)
	require.Len(t, mv, 2)
	tap := mv[1].(*msg.RigidTap)
	assert.Equal(t, -10.0, tap.Pos.Z)
	assert.Equal(t, 2, tap.Line)

	// motion returns to the start: the end point must not move
	assert.Equal(t, coord.Pose{X: 1, Y: 2, Z: 3}, c.EndPoint())
}

func TestStraightProbe(t *testing.T) {
	c, _, list := newTest()

	c.SetFeedRate(600)
	c.StraightProbe(7, coord.Pose{Z: -5}, 1)

	mv := moves(list)
	require.Len(t, mv, 1)
	p := mv[0].(*msg.Probe)
	assert.Equal(t, -5.0, p.Pos.Z)
	assert.Equal(t, uint8(1), p.ProbeType)
	// probes are feed-clamped
	assert.Equal(t, 10.0, p.Vel)
	assert.Equal(t, 100.0, p.IniMaxVel)
	assert.Equal(t, coord.Pose{Z: -5}, c.EndPoint())
}

func TestDwell(t *testing.T) {
	c, _, list := newTest()

	c.Dwell(1.5)

	msgs := list.Messages()
	// init emits a term-cond message; the delay is last
	d := msgs[len(msgs)-1].(*msg.Delay)
	assert.Equal(t, 1.5, d.Seconds)
}

func TestMaskedAxisIgnored(t *testing.T) {
	c, _, list := newTest()

	// A is not in the XYZ mask: a pure A move goes nowhere and prices
	// at the linear feed rate, with zero acceleration, so nothing is
	// emitted
	c.SetFeedRate(600)
	c.StraightTraverse(1, coord.Pose{A: 90})

	assert.Empty(t, moves(list))
}

func TestXYRotation(t *testing.T) {
	c, st, list := newTest()

	c.SetFeedRate(600)
	c.SetXYRotation(90)
	c.StraightFeed(1, coord.Pose{X: 1})
	c.Finish()

	mv := moves(list)
	require.Len(t, mv, 1)
	lm := mv[0].(*msg.LinearMove)
	assert.InDelta(t, 0, lm.End.X, 1e-12)
	assert.InDelta(t, 1, lm.End.Y, 1e-12)

	assert.InDelta(t, 0, c.EndPoint().X, 1e-12)
	assert.InDelta(t, 1, c.EndPoint().Y, 1e-12)

	// reading back the position reverses the rotation
	st.pos = c.EndPoint()
	pos := c.Position()
	assert.InDelta(t, 1, pos.X, 1e-12)
	assert.InDelta(t, 0, pos.Y, 1e-12)
}

func TestUpdateEndPoint(t *testing.T) {
	c, _, _ := newTest()

	c.UseLengthUnits(UnitsInches)
	c.UpdateEndPoint(coord.Pose{X: 1, Z: 2})
	assert.Equal(t, coord.Pose{X: 25.4, Z: 50.8}, c.EndPoint())
}
