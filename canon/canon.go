// Package canon is the canonical motion front-end: it translates
// canonical commands from a G-code interpreter into trajectory
// messages with resolved end positions, feedrates and kinematic
// limits, appended in order to the interpreter list.
//
// Values are held internally in mm and degrees. Program units (what
// the interpreter speaks) and external units (what the executor
// speaks) are converted at the boundary; see units.go.
package canon

import (
	"fmt"
	"math"
	"os"

	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/msg"
)

// Units is the program-side length unit.
type Units int

const (
	UnitsMM Units = iota
	UnitsInches
	UnitsCM
)

// Plane selects the arc plane.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneYZ
	PlaneXZ
)

// MotionMode selects blending or exact stop at segment ends.
type MotionMode int

const (
	ModeContinuous MotionMode = iota
	ModeExactStop
)

const (
	tiny = 1e-7
	huge = 1e9
)

// Canon holds the world state and owns the segment buffer. All
// dispatch runs synchronously on the caller; a single goroutine must
// own a Canon.
type Canon struct {
	limits Limits
	status Status
	list   *msg.List

	// cached external unit factors, refreshed by Init
	extLen, extAng float64

	endPoint      coord.Pose
	programOrigin coord.Pose
	toolOffset    coord.Pose
	xyRotation    float64
	lengthUnits   Units
	activePlane   Plane

	motionMode        MotionMode
	motionTolerance   float64
	naivecamTolerance float64

	// feedMode is non-zero for spindle-synchronized feeds
	feedMode        int
	linearFeedRate  float64
	angularFeedRate float64

	spindleSpeed float64
	cssMaximum   float64
	cssNumerator float64

	cartesianMove bool
	angularMove   bool
	synched       bool

	blockDelete  bool
	optionalStop bool

	chained []segPoint

	probeFile     *os.File
	lastProbe     coord.Pose
	haveLastProbe bool

	rpy [3]float64
}

// New constructs a Canon over the given limits, status snapshot and
// interpreter list, and initializes it.
func New(limits Limits, status Status, list *msg.List) *Canon {
	c := &Canon{limits: limits, status: status, list: list}
	c.Init()
	return c
}

// List returns the interpreter list dispatch appends to.
func (c *Canon) List() *msg.List { return c.list }

// Init resets the canonical state to defaults and clears the segment
// buffer. The program-side length unit is deduced from the external
// length units; anything non-standard reports an operator error and
// coerces to mm.
func (c *Canon) Init() {
	c.chained = c.chained[:0]

	c.xyRotation = 0
	c.cssMaximum = 0
	c.cssNumerator = 0
	c.feedMode = 0
	c.synched = false
	c.programOrigin = coord.Pose{}
	c.toolOffset = coord.Pose{}
	c.SelectPlane(PlaneXY)
	c.endPoint = coord.Pose{}
	c.SetMotionControlMode(ModeContinuous, 0)
	c.SetNaivecamTolerance(0)
	c.spindleSpeed = 0
	c.optionalStop = true
	c.blockDelete = true
	c.cartesianMove = false
	c.angularMove = false
	c.linearFeedRate = 0
	c.angularFeedRate = 0

	c.extLen = c.status.LengthUnits()
	if c.extLen == 0 {
		c.extLen = 1
	}
	c.extAng = c.status.AngleUnits()
	if c.extAng == 0 {
		c.extAng = 1
	}

	units := c.extLen
	switch {
	case math.Abs(units-1.0/25.4) < 1e-3:
		c.lengthUnits = UnitsInches
	case math.Abs(units-1.0) < 1e-3:
		c.lengthUnits = UnitsMM
	default:
		c.Errorf("non-standard length units, setting interpreter to mm")
		c.lengthUnits = UnitsMM
	}
}

// Finish flushes any buffered segments.
func (c *Canon) Finish() {
	c.flushSegments()
}

// UpdateEndPoint overwrites the canonical end point from program-unit
// coordinates. Used when skipping lines (run-from-line).
func (c *Canon) UpdateEndPoint(p coord.Pose) {
	c.endPoint = c.fromProg(p)
}

// EndPoint returns the last commanded end position in internal units.
func (c *Canon) EndPoint() coord.Pose { return c.endPoint }

// Message appends an operator display message.
func (c *Canon) Message(text string) {
	c.flushSegments()
	c.list.Append(&msg.Display{Text: text})
}

// Errorf appends an operator error message.
func (c *Canon) Errorf(format string, args ...interface{}) {
	c.flushSegments()
	c.list.Append(&msg.OperatorError{Text: fmt.Sprintf(format, args...)})
}

func (c *Canon) axisValid(n int) bool {
	return c.status.AxisMask()&(1<<uint(n)) != 0
}

// assertPositive guards the envelope contract: when at least one
// participating axis moves the derived limit must be positive. A
// violation is a configuration or programming bug.
func assertPositive(v float64, what string) {
	if v <= 0 {
		panic("canon: non-positive " + what + " in envelope computation")
	}
}
