package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

func TestOverrides(t *testing.T) {
	c, _, list := newTest()

	c.EnableFeedOverride()
	assert.True(t, lastMsg(list).(*msg.SetFeedOverride).Enable)
	c.DisableFeedOverride()
	assert.False(t, lastMsg(list).(*msg.SetFeedOverride).Enable)

	c.EnableSpeedOverride()
	assert.True(t, lastMsg(list).(*msg.SetSpindleOverride).Enable)
	c.DisableSpeedOverride()
	assert.False(t, lastMsg(list).(*msg.SetSpindleOverride).Enable)

	c.EnableAdaptiveFeed()
	assert.True(t, lastMsg(list).(*msg.SetAdaptiveFeed).Enable)
	c.DisableAdaptiveFeed()
	assert.False(t, lastMsg(list).(*msg.SetAdaptiveFeed).Enable)

	c.EnableFeedHold()
	assert.True(t, lastMsg(list).(*msg.SetFeedHold).Enable)
	c.DisableFeedHold()
	assert.False(t, lastMsg(list).(*msg.SetFeedHold).Enable)
}

func TestCoolant(t *testing.T) {
	c, _, list := newTest()

	c.FloodOn()
	assert.Equal(t, msg.KindFloodOn, lastMsg(list).Kind())
	c.MistOn()
	assert.Equal(t, msg.KindMistOn, lastMsg(list).Kind())
	c.MistOff()
	assert.Equal(t, msg.KindMistOff, lastMsg(list).Kind())
	c.FloodOff()
	assert.Equal(t, msg.KindFloodOff, lastMsg(list).Kind())
}

func TestDigitalOutputs(t *testing.T) {
	c, _, list := newTest()

	c.SetMotionOutputBit(2)
	d := lastMsg(list).(*msg.SetDout)
	assert.Equal(t, 2, d.Index)
	assert.Equal(t, 1, d.Start)
	assert.Equal(t, 1, d.End)
	assert.False(t, d.Now)

	c.ClearAuxOutputBit(3)
	d = lastMsg(list).(*msg.SetDout)
	assert.Equal(t, 3, d.Index)
	assert.Equal(t, 0, d.Start)
	assert.True(t, d.Now)
}

func TestAnalogOutputs(t *testing.T) {
	c, _, list := newTest()

	c.SetAuxOutputValue(1, 4.5)
	a := lastMsg(list).(*msg.SetAout)
	assert.Equal(t, 1, a.Index)
	assert.Equal(t, 4.5, a.Start)
	assert.Equal(t, 4.5, a.End)
	assert.True(t, a.Now)

	c.SetMotionOutputValue(0, -1)
	a = lastMsg(list).(*msg.SetAout)
	assert.False(t, a.Now)
}

func TestWait(t *testing.T) {
	c, _, list := newTest()

	n := list.Len()
	assert.Equal(t, -1, c.Wait(-1, DigitalInput, WaitRise, 1))
	assert.Equal(t, -1, c.Wait(99, DigitalInput, WaitRise, 1))
	assert.Equal(t, -1, c.Wait(99, AnalogInput, WaitHigh, 1))
	assert.Equal(t, n, list.Len())

	assert.Equal(t, 0, c.Wait(1, DigitalInput, WaitFall, 2.5))
	w := lastMsg(list).(*msg.InputWait)
	assert.Equal(t, 1, w.Index)
	assert.Equal(t, DigitalInput, w.InputType)
	assert.Equal(t, WaitFall, w.WaitType)
	assert.Equal(t, 2.5, w.Timeout)
}

func TestProgramFlow(t *testing.T) {
	c, _, list := newTest()

	c.ProgramStop()
	assert.Equal(t, msg.KindPlanPause, lastMsg(list).Kind())
	c.OptionalProgramStop()
	assert.Equal(t, msg.KindPlanOptionalStop, lastMsg(list).Kind())
	c.ProgramEnd()
	assert.Equal(t, msg.KindPlanEnd, lastMsg(list).Kind())
}

func TestOrderPreservation(t *testing.T) {
	c, _, list := newTest()

	n := list.Len()
	c.SetFeedRate(600)
	c.StraightTraverse(1, coord.Pose{X: 1})
	c.FloodOn()
	c.StraightFeed(2, coord.Pose{X: 2})
	c.Dwell(1) // flushes the feed first
	c.ProgramEnd()

	var kinds []msg.Kind
	for _, m := range list.Messages()[n:] {
		kinds = append(kinds, m.Kind())
	}
	assert.Equal(t, []msg.Kind{
		msg.KindLinearMove, // traverse
		msg.KindFloodOn,
		msg.KindLinearMove, // flushed feed
		msg.KindDelay,
		msg.KindPlanEnd,
	}, kinds)
}
