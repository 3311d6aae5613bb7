package feed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

func TestEncode(t *testing.T) {
	m := &msg.LinearMove{
		Type:      msg.MotionFeed,
		End:       coord.Pose{X: 10, Y: 2},
		Vel:       10,
		IniMaxVel: 100,
	}
	m.Line = 42

	data, err := Encode(m)
	require.NoError(t, err)

	var env struct {
		Kind string
		Msg  struct {
			Line int
			End  struct{ X, Y float64 }
			Vel  float64
		}
	}
	err = json.Unmarshal(data, &env)
	require.NoError(t, err)

	assert.Equal(t, "linear-move", env.Kind)
	assert.Equal(t, 42, env.Msg.Line)
	assert.Equal(t, 10.0, env.Msg.End.X)
	assert.Equal(t, 10.0, env.Msg.Vel)
}

func TestEncode_KindPerVariant(t *testing.T) {
	cases := []struct {
		m    msg.Message
		kind string
	}{
		{&msg.CircularMove{}, "circular-move"},
		{&msg.Delay{Seconds: 1}, "delay"},
		{&msg.SpindleOff{}, "spindle-off"},
		{&msg.InputWait{}, "input-wait"},
	}
	for _, tc := range cases {
		data, err := Encode(tc.m)
		require.NoError(t, err)
		var env struct{ Kind string }
		require.NoError(t, json.Unmarshal(data, &env))
		assert.Equal(t, tc.kind, env.Kind)
	}
}
