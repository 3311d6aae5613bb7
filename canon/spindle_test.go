package canon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

func TestSpindle_PlainRPM(t *testing.T) {
	c, _, list := newTest()

	c.SetSpindleSpeed(1200)
	speed := lastMsg(list).(*msg.SpindleSpeed)
	assert.Equal(t, 1200.0, speed.Speed)
	assert.Equal(t, 0.0, speed.Factor)

	c.StartSpindleClockwise()
	on := lastMsg(list).(*msg.SpindleOn)
	assert.Equal(t, 1200.0, on.Speed)

	c.StartSpindleCounterclockwise()
	on = lastMsg(list).(*msg.SpindleOn)
	assert.Equal(t, -1200.0, on.Speed)

	c.StopSpindleTurning()
	assert.Equal(t, msg.KindSpindleOff, lastMsg(list).Kind())
}

func TestSpindle_CSS(t *testing.T) {
	c, _, list := newTest()

	c.SetSpindleMode(3000)
	c.SetSpindleSpeed(200)

	want := 1000 / (2 * math.Pi) * 200

	speed := lastMsg(list).(*msg.SpindleSpeed)
	assert.Equal(t, 3000.0, speed.Speed)
	assert.InDelta(t, want, speed.Factor, 1e-9)

	c.StartSpindleClockwise()
	on := lastMsg(list).(*msg.SpindleOn)
	assert.Equal(t, 3000.0, on.Speed)
	assert.InDelta(t, want, on.Factor, 1e-9)

	// direction flips the numerator's sign
	c.StartSpindleCounterclockwise()
	on = lastMsg(list).(*msg.SpindleOn)
	assert.InDelta(t, -want, on.Factor, 1e-9)
}

func TestSpindle_CSSInches(t *testing.T) {
	c, _, list := newTest()

	c.UseLengthUnits(UnitsInches)
	c.SetSpindleMode(3000)
	c.SetSpindleSpeed(200)

	want := 25.4 * 12 / (2 * math.Pi) * 200

	speed := lastMsg(list).(*msg.SpindleSpeed)
	assert.InDelta(t, want, speed.Factor, 1e-9)
}

func TestSpindle_CSSXOffsetTracksTool(t *testing.T) {
	c, _, list := newTest()

	c.SetSpindleMode(3000)
	c.SetSpindleSpeed(200)
	c.SetOriginOffsets(coord.Pose{X: 3})
	c.UseToolLengthOffset(coord.Pose{X: 0.5})

	msgs := list.Messages()
	// the tool-offset change re-announces CSS with the combined
	// origin+tool x offset before the offset message itself
	n := len(msgs)
	speed := msgs[n-2].(*msg.SpindleSpeed)
	assert.InDelta(t, 3.5, speed.XOffset, 1e-12)
	assert.Equal(t, msg.KindSetOffset, msgs[n-1].Kind())
}
