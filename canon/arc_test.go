package canon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

func TestArcFeed_HalfCircle(t *testing.T) {
	c, _, list := newTest()

	c.SetFeedRate(600)
	c.SetNaivecamTolerance(0.1)

	// half circle from (0,0) to (10,0) about (5,0)
	c.ArcFeed(20, 10, 0, 5, 0, 1, 0, 0, 0, 0, 0, 0, 0)

	mv := moves(list)
	require.Len(t, mv, 1)
	cm := mv[0].(*msg.CircularMove)
	assert.Equal(t, coord.Point{X: 5, Y: 0, Z: 0}, cm.Center)
	assert.Equal(t, coord.Point{Z: 1}, cm.Normal)
	assert.Equal(t, 0, cm.Turn)
	assert.Equal(t, 10.0, cm.End.X)
	assert.Equal(t, 0.0, cm.End.Y)
	assert.Equal(t, 20, cm.Line)
	// both the commanded and max velocity are feed-limited
	assert.Equal(t, 10.0, cm.Vel)
	assert.Equal(t, 10.0, cm.IniMaxVel)
	assert.Equal(t, 1000.0, cm.Acc)

	assert.Equal(t, coord.Pose{X: 10}, c.EndPoint())
}

func TestArcFeed_TurnMapping(t *testing.T) {
	c, _, list := newTest()
	c.SetFeedRate(600)

	// clockwise winding keeps the raw rotation
	c.ArcFeed(1, 10, 0, 5, 0, -1, 0, 0, 0, 0, 0, 0, 0)
	// counterclockwise full extra turn
	c.ArcFeed(2, 0, 0, 5, 0, 2, 0, 0, 0, 0, 0, 0, 0)

	mv := moves(list)
	require.Len(t, mv, 2)
	assert.Equal(t, -1, mv[0].(*msg.CircularMove).Turn)
	assert.Equal(t, 1, mv[1].(*msg.CircularMove).Turn)
}

func TestArcFeed_DegradesNearlyStraight(t *testing.T) {
	c, _, list := newTest()

	c.SetFeedRate(600)
	c.SetNaivecamTolerance(0.5)

	// huge radius, tiny sagitta: becomes two linked straight feeds
	c.ArcFeed(1, 10, 0, 5, -1000, -1, 0, 0, 0, 0, 0, 0, 0)

	assert.Empty(t, moves(list))
	assert.Len(t, c.chained, 2)

	c.Finish()
	mv := moves(list)
	require.Len(t, mv, 1)
	lm := mv[0].(*msg.LinearMove)
	assert.Equal(t, 10.0, lm.End.X)
}

func TestArcFeed_Helical(t *testing.T) {
	c, _, list := newTest()
	c.SetFeedRate(600)

	c.ArcFeed(1, 10, 0, 5, 0, 1, -4, 0, 0, 0, 0, 0, 0)

	mv := moves(list)
	require.Len(t, mv, 1)
	cm := mv[0].(*msg.CircularMove)
	assert.Equal(t, -4.0, cm.End.Z)
	assert.Equal(t, -4.0, cm.Center.Z)
	assert.Equal(t, coord.Pose{X: 10, Z: -4}, c.EndPoint())
}

func TestArcFeed_RotationZeroIsLinear(t *testing.T) {
	c, _, list := newTest()
	c.SetFeedRate(600)

	c.ArcFeed(1, 10, 5, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0)

	mv := moves(list)
	require.Len(t, mv, 1)
	lm := mv[0].(*msg.LinearMove)
	assert.Equal(t, msg.MotionArc, lm.Type)
	assert.Equal(t, 10.0, lm.End.X)
	assert.Equal(t, 5.0, lm.End.Y)
}

func TestChordDeviation(t *testing.T) {
	// clockwise quarter circle radius 5: sagitta is r*(1-cos(pi/4))
	dev, mx, my := chordDeviation(0, 0, 5, 5, 5, 0, -1)
	assert.InDelta(t, 5*(1-math.Cos(math.Pi/4)), dev, 1e-12)
	assert.InDelta(t, 5-5*math.Cos(math.Pi/4), mx, 1e-9)
	assert.InDelta(t, 5*math.Sin(math.Pi/4), my, 1e-9)

	// half circle: sagitta equals the radius
	dev, _, _ = chordDeviation(0, 0, 10, 0, 5, 0, 1)
	assert.InDelta(t, 5, dev, 1e-12)
}
