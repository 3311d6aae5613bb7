package canon

import (
	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

// flat per-axis limits with optional per-axis velocity overrides
type testLimits struct {
	vel, acc, jerk float64
	velFor         map[int]float64
}

func (l testLimits) MaxVelocity(axis int) float64 {
	if v, ok := l.velFor[axis]; ok {
		return v
	}
	return l.vel
}
func (l testLimits) MaxAcceleration(axis int) float64 { return l.acc }
func (l testLimits) MaxJerk(axis int) float64         { return l.jerk }

type testStatus struct {
	mask       int
	lenUnits   float64
	angUnits   float64
	pos        coord.Pose
	probedPos  coord.Pose
	tripped    bool
	queue      int
	maxRate    float64
	mist       bool
	flood      bool
	speed      float64
	tools      []ToolEntry
	inSpindle  int
	prepped    int
	changePos  coord.Pose
	hasChange  bool
	feedOvr    bool
	spindleOvr bool
	adaptive   bool
	feedHold   bool
	digital    []int
	analog     []float64
	timedOut   bool
}

func newTestStatus() *testStatus {
	return &testStatus{
		mask:     0x7, // xyz
		lenUnits: 1,
		angUnits: 1,
		maxRate:  100,
		tools:    make([]ToolEntry, 56),
		digital:  make([]int, 4),
		analog:   make([]float64, 4),
	}
}

func (s *testStatus) AxisMask() int                       { return s.mask }
func (s *testStatus) LengthUnits() float64                { return s.lenUnits }
func (s *testStatus) AngleUnits() float64                 { return s.angUnits }
func (s *testStatus) Position() coord.Pose                { return s.pos }
func (s *testStatus) ProbedPosition() coord.Pose          { return s.probedPos }
func (s *testStatus) ProbeTripped() bool                  { return s.tripped }
func (s *testStatus) QueueLen() int                       { return s.queue }
func (s *testStatus) MaxTraverseRate() float64            { return s.maxRate }
func (s *testStatus) Mist() bool                          { return s.mist }
func (s *testStatus) Flood() bool                         { return s.flood }
func (s *testStatus) SpindleSpeed() float64               { return s.speed }
func (s *testStatus) PocketsMax() int                     { return len(s.tools) }
func (s *testStatus) ToolTable(pocket int) ToolEntry      { return s.tools[pocket] }
func (s *testStatus) ToolInSpindle() int                  { return s.inSpindle }
func (s *testStatus) PocketPrepped() int                  { return s.prepped }
func (s *testStatus) ToolChangePosition() (coord.Pose, bool) {
	return s.changePos, s.hasChange
}
func (s *testStatus) FeedOverrideEnabled() bool    { return s.feedOvr }
func (s *testStatus) SpindleOverrideEnabled() bool { return s.spindleOvr }
func (s *testStatus) AdaptiveFeedEnabled() bool    { return s.adaptive }
func (s *testStatus) FeedHoldEnabled() bool        { return s.feedHold }
func (s *testStatus) NumDigitalInputs() int        { return len(s.digital) }
func (s *testStatus) NumAnalogInputs() int         { return len(s.analog) }
func (s *testStatus) InputTimeout() bool           { return s.timedOut }
func (s *testStatus) DigitalInput(index int) int   { return s.digital[index] }
func (s *testStatus) AnalogInput(index int) float64 {
	return s.analog[index]
}

// newTest builds an XYZ engine with the limits used by the end-to-end
// scenarios: vel 100, acc 1000, jerk 10000, unit external factors.
func newTest() (*Canon, *testStatus, *msg.List) {
	status := newTestStatus()
	list := msg.NewList()
	c := New(testLimits{vel: 100, acc: 1000, jerk: 10000}, status, list)
	return c, status, list
}

// moves filters the list down to motion messages, skipping the
// term-cond and sync bookkeeping around them.
func moves(list *msg.List) []msg.Message {
	var out []msg.Message
	for _, m := range list.Messages() {
		switch m.Kind() {
		case msg.KindLinearMove, msg.KindCircularMove, msg.KindRigidTap,
			msg.KindProbe, msg.KindNurbsMove:
			out = append(out, m)
		}
	}
	return out
}
