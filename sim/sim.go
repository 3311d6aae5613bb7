// Package sim provides an in-memory machine-status snapshot
// implementing canon.Status, for tests and the demo driver.
package sim

import (
	"github.com/mastercactapus/gcanon/canon"
	"github.com/mastercactapus/gcanon/coord"
)

// Status is a mutable status snapshot. The zero value is not usable;
// call NewStatus.
type Status struct {
	Mask       int
	LenUnits   float64
	AngUnits   float64
	Pos        coord.Pose
	ProbedPos  coord.Pose
	Tripped    bool
	Queue      int
	MaxRate    float64
	MistOn     bool
	FloodOn    bool
	Speed      float64
	Tools      []canon.ToolEntry
	InSpindle  int
	Prepped    int
	ChangePos  coord.Pose
	HasChange  bool
	FeedOvr    bool
	SpindleOvr bool
	Adaptive   bool
	FeedHold   bool
	Digital    []int
	Analog     []float64
	TimedOut   bool
}

var _ canon.Status = &Status{}

// NewStatus returns a status for an XYZ machine with unit external
// factors and a 56-pocket tool table.
func NewStatus() *Status {
	return &Status{
		Mask:     0x7, // xyz
		LenUnits: 1,
		AngUnits: 1,
		MaxRate:  100,
		Tools:    make([]canon.ToolEntry, 56),
		Digital:  make([]int, 4),
		Analog:   make([]float64, 4),
	}
}

func (s *Status) AxisMask() int            { return s.Mask }
func (s *Status) LengthUnits() float64     { return s.LenUnits }
func (s *Status) AngleUnits() float64      { return s.AngUnits }
func (s *Status) Position() coord.Pose     { return s.Pos }
func (s *Status) ProbedPosition() coord.Pose {
	return s.ProbedPos
}
func (s *Status) ProbeTripped() bool      { return s.Tripped }
func (s *Status) QueueLen() int           { return s.Queue }
func (s *Status) MaxTraverseRate() float64 { return s.MaxRate }
func (s *Status) Mist() bool              { return s.MistOn }
func (s *Status) Flood() bool             { return s.FloodOn }
func (s *Status) SpindleSpeed() float64   { return s.Speed }
func (s *Status) PocketsMax() int         { return len(s.Tools) }
func (s *Status) ToolTable(pocket int) canon.ToolEntry {
	return s.Tools[pocket]
}
func (s *Status) ToolInSpindle() int { return s.InSpindle }
func (s *Status) PocketPrepped() int { return s.Prepped }
func (s *Status) ToolChangePosition() (coord.Pose, bool) {
	return s.ChangePos, s.HasChange
}
func (s *Status) FeedOverrideEnabled() bool    { return s.FeedOvr }
func (s *Status) SpindleOverrideEnabled() bool { return s.SpindleOvr }
func (s *Status) AdaptiveFeedEnabled() bool    { return s.Adaptive }
func (s *Status) FeedHoldEnabled() bool        { return s.FeedHold }
func (s *Status) NumDigitalInputs() int        { return len(s.Digital) }
func (s *Status) NumAnalogInputs() int         { return len(s.Analog) }
func (s *Status) InputTimeout() bool           { return s.TimedOut }
func (s *Status) DigitalInput(index int) int   { return s.Digital[index] }
func (s *Status) AnalogInput(index int) float64 {
	return s.Analog[index]
}

// Limits is a flat per-axis limit set, the same three numbers for
// every axis unless overridden.
type Limits struct {
	Vel  float64
	Acc  float64
	Jerk float64

	// VelFor overrides the flat velocity limit for specific axes.
	VelFor map[int]float64
}

var _ canon.Limits = Limits{}

func (l Limits) MaxVelocity(axis int) float64 {
	if v, ok := l.VelFor[axis]; ok {
		return v
	}
	return l.Vel
}
func (l Limits) MaxAcceleration(axis int) float64 { return l.Acc }
func (l Limits) MaxJerk(axis int) float64         { return l.Jerk }
