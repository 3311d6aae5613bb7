package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

func TestUseToolLengthOffset(t *testing.T) {
	c, _, list := newTest()

	c.UseToolLengthOffset(coord.Pose{Z: -2.5})

	so := lastMsg(list).(*msg.SetOffset)
	assert.Equal(t, -2.5, so.Offset.Z)
	assert.Equal(t, coord.Pose{Z: -2.5}, c.ToolLengthOffset())

	// moves now land offset
	c.StraightTraverse(1, coord.Pose{})
	assert.Equal(t, coord.Pose{Z: -2.5}, c.EndPoint())
}

func TestUseToolLengthOffset_ProgramUnits(t *testing.T) {
	c, _, _ := newTest()

	c.UseLengthUnits(UnitsInches)
	c.UseToolLengthOffset(coord.Pose{Z: -1})
	assert.Equal(t, -25.4, c.toolOffset.Z)
	assert.Equal(t, coord.Pose{Z: -1}, c.ToolLengthOffset())
}

func TestSetToolTableEntry(t *testing.T) {
	c, _, list := newTest()

	c.SetToolTableEntry(3, 12, coord.Pose{Z: -1}, 6, 0, 0, 0)

	o := lastMsg(list).(*msg.ToolSetOffset)
	assert.Equal(t, 3, o.Pocket)
	assert.Equal(t, 12, o.ToolNo)
	assert.Equal(t, -1.0, o.Offset.Z)
	assert.Equal(t, 6.0, o.Diameter)
}

func TestChangeTool_NoPosition(t *testing.T) {
	c, _, list := newTest()

	c.ChangeTool(2)
	assert.Equal(t, msg.KindToolLoad, lastMsg(list).Kind())
	assert.Empty(t, moves(list))
}

func TestChangeTool_WithPosition(t *testing.T) {
	c, st, list := newTest()

	st.hasChange = true
	st.changePos = coord.Pose{X: 100, Y: 50}

	c.ChangeTool(2)

	mv := moves(list)
	require.Len(t, mv, 1)
	lm := mv[0].(*msg.LinearMove)
	assert.Equal(t, msg.MotionToolChange, lm.Type)
	assert.Equal(t, 100.0, lm.End.X)
	assert.Equal(t, 0, lm.FeedMode)
	assert.Equal(t, coord.Pose{X: 100, Y: 50}, c.EndPoint())

	assert.Equal(t, msg.KindToolLoad, lastMsg(list).Kind())
}

func TestSelectPocketAndNumber(t *testing.T) {
	c, _, list := newTest()

	c.SelectPocket(4)
	assert.Equal(t, 4, lastMsg(list).(*msg.ToolPrepare).Tool)

	c.ChangeToolNumber(9)
	assert.Equal(t, 9, lastMsg(list).(*msg.ToolSetNumber).Tool)
}
