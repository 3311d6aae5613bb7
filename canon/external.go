package canon

import "github.com/mastercactapus/gcanon/coord"

// Axis indices. Linear axes carry length units, angular axes degrees.
const (
	AxisX = iota
	AxisY
	AxisZ
	AxisA
	AxisB
	AxisC
	AxisU
	AxisV
	AxisW
	NumAxes
)

// Limits exposes the per-axis kinematic configuration, in external
// units per second (squared, cubed).
type Limits interface {
	MaxVelocity(axis int) float64
	MaxAcceleration(axis int) float64
	MaxJerk(axis int) float64
}

// ToolEntry is one pocket of the tool table, in machine units.
type ToolEntry struct {
	ToolNo      int
	Offset      coord.Pose
	Diameter    float64
	FrontAngle  float64
	BackAngle   float64
	Orientation int
}

// Status is the live machine-status snapshot maintained outside this
// package. All positions and rates are in external units.
type Status interface {
	AxisMask() int
	LengthUnits() float64 // external units per mm
	AngleUnits() float64  // external units per degree

	Position() coord.Pose
	ProbedPosition() coord.Pose
	ProbeTripped() bool
	QueueLen() int
	MaxTraverseRate() float64

	Mist() bool
	Flood() bool
	SpindleSpeed() float64

	PocketsMax() int
	ToolTable(pocket int) ToolEntry
	ToolInSpindle() int
	PocketPrepped() int
	ToolChangePosition() (coord.Pose, bool)

	FeedOverrideEnabled() bool
	SpindleOverrideEnabled() bool
	AdaptiveFeedEnabled() bool
	FeedHoldEnabled() bool

	NumDigitalInputs() int
	NumAnalogInputs() int
	InputTimeout() bool
	DigitalInput(index int) int
	AnalogInput(index int) float64
}
