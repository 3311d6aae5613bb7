// Package msg defines the trajectory messages appended to the
// interpreter list, and the list itself. Each message is a tagged
// variant sharing a Header; the downstream executor switches on Kind.
package msg

import "github.com/mastercactapus/gcanon/coord"

type Kind int

const (
	KindLinearMove Kind = iota + 1
	KindCircularMove
	KindRigidTap
	KindProbe
	KindNurbsMove
	KindSetTermCond
	KindSetOrigin
	KindSetRotation
	KindSetOffset
	KindSetSpindleSync
	KindSetFeedOverride
	KindSetSpindleOverride
	KindSetAdaptiveFeed
	KindSetFeedHold
	KindSpindleOn
	KindSpindleOff
	KindSpindleSpeed
	KindToolLoad
	KindToolPrepare
	KindToolSetNumber
	KindToolSetOffset
	KindFloodOn
	KindFloodOff
	KindMistOn
	KindMistOff
	KindDelay
	KindDisplay
	KindOperatorError
	KindPlanPause
	KindPlanOptionalStop
	KindPlanEnd
	KindClearProbeTripped
	KindSetDout
	KindSetAout
	KindSetSyncInput
	KindInputWait
)

var kindNames = map[Kind]string{
	KindLinearMove:        "linear-move",
	KindCircularMove:      "circular-move",
	KindRigidTap:          "rigid-tap",
	KindProbe:             "probe",
	KindNurbsMove:         "nurbs-move",
	KindSetTermCond:       "set-term-cond",
	KindSetOrigin:         "set-origin",
	KindSetRotation:       "set-rotation",
	KindSetOffset:         "set-offset",
	KindSetSpindleSync:    "set-spindle-sync",
	KindSetFeedOverride:   "set-feed-override",
	KindSetSpindleOverride: "set-spindle-override",
	KindSetAdaptiveFeed:   "set-adaptive-feed",
	KindSetFeedHold:       "set-feed-hold",
	KindSpindleOn:         "spindle-on",
	KindSpindleOff:        "spindle-off",
	KindSpindleSpeed:      "spindle-speed",
	KindToolLoad:          "tool-load",
	KindToolPrepare:       "tool-prepare",
	KindToolSetNumber:     "tool-set-number",
	KindToolSetOffset:     "tool-set-offset",
	KindFloodOn:           "flood-on",
	KindFloodOff:          "flood-off",
	KindMistOn:            "mist-on",
	KindMistOff:           "mist-off",
	KindDelay:             "delay",
	KindDisplay:           "display",
	KindOperatorError:     "operator-error",
	KindPlanPause:         "plan-pause",
	KindPlanOptionalStop:  "plan-optional-stop",
	KindPlanEnd:           "plan-end",
	KindClearProbeTripped: "clear-probe-tripped",
	KindSetDout:           "set-dout",
	KindSetAout:           "set-aout",
	KindSetSyncInput:      "set-sync-input",
	KindInputWait:         "input-wait",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// MotionType tags linear moves with their purpose so the executor can
// apply traverse vs. feed handling.
type MotionType int

const (
	MotionTraverse MotionType = iota + 1
	MotionFeed
	MotionArc
	MotionToolChange
	MotionProbing
)

// Header is embedded in every message.
type Header struct {
	Line int `json:"line"`
}

func (h *Header) setLine(n int) { h.Line = n }

// A Message is any variant appendable to the List.
type Message interface {
	Kind() Kind
	setLine(int)
}

// LinearMove is a straight move to End, emitted for traverses, feeds,
// fused segments, degraded arcs and tool-change moves.
type LinearMove struct {
	Header
	Type       MotionType `json:"type"`
	End        coord.Pose `json:"end"`
	Vel        float64    `json:"vel"`
	IniMaxVel  float64    `json:"iniMaxVel"`
	Acc        float64    `json:"acc"`
	IniMaxJerk float64    `json:"iniMaxJerk"`
	FeedMode   int        `json:"feedMode"`
}

func (*LinearMove) Kind() Kind { return KindLinearMove }

// CircularMove is an arc (optionally helical) about Normal through
// Turn extra revolutions.
type CircularMove struct {
	Header
	End        coord.Pose  `json:"end"`
	Center     coord.Point `json:"center"`
	Normal     coord.Point `json:"normal"`
	Turn       int         `json:"turn"`
	Vel        float64     `json:"vel"`
	IniMaxVel  float64     `json:"iniMaxVel"`
	Acc        float64     `json:"acc"`
	IniMaxJerk float64     `json:"iniMaxJerk"`
	FeedMode   int         `json:"feedMode"`
}

func (*CircularMove) Kind() Kind { return KindCircularMove }

// RigidTap reciprocates to Pos and back, synchronized to the spindle.
type RigidTap struct {
	Header
	Pos       coord.Pose `json:"pos"`
	Vel       float64    `json:"vel"`
	IniMaxVel float64    `json:"iniMaxVel"`
	Acc       float64    `json:"acc"`
}

func (*RigidTap) Kind() Kind { return KindRigidTap }

// Probe moves toward Pos until the probe trips.
type Probe struct {
	Header
	Pos       coord.Pose `json:"pos"`
	Vel       float64    `json:"vel"`
	IniMaxVel float64    `json:"iniMaxVel"`
	Acc       float64    `json:"acc"`
	ProbeType uint8      `json:"probeType"`
}

func (*Probe) Kind() Kind { return KindProbe }

// NurbsBlock is the per-message slice of an ordered NURBS transfer.
type NurbsBlock struct {
	CtrlPts      int     `json:"ctrlPts"`
	Knots        int     `json:"knots"`
	Order        uint    `json:"order"`
	CurveLen     float64 `json:"curveLen"`
	Knot         float64 `json:"knot"`
	Weight       float64 `json:"weight"`
	AxisMask     uint32  `json:"axisMask"`
	UoflOrder    uint    `json:"uoflOrder"`
	UoflCtrlPts  int     `json:"uoflCtrlPts"`
	UoflKnots    int     `json:"uoflKnots"`
	UoflCtrlPt   float64 `json:"uoflCtrlPt"`
	UoflKnot     float64 `json:"uoflKnot"`
	UoflWeight   float64 `json:"uoflWeight"`
}

// NurbsMove carries one control point or trailing knot of a 3D NURBS
// move; the executor reassembles the curve from the ordered stream.
type NurbsMove struct {
	Header
	End        coord.Pose `json:"end"`
	Vel        float64    `json:"vel"`
	IniMaxVel  float64    `json:"iniMaxVel"`
	IniMaxAcc  float64    `json:"iniMaxAcc"`
	IniMaxJerk float64    `json:"iniMaxJerk"`
	FeedMode   int        `json:"feedMode"`
	Block      NurbsBlock `json:"block"`
}

func (*NurbsMove) Kind() Kind { return KindNurbsMove }

type TermCond int

const (
	TermCondStop TermCond = iota + 1
	TermCondBlend
)

// SetTermCond switches the executor between blending and exact stop.
type SetTermCond struct {
	Header
	Cond      TermCond `json:"cond"`
	Tolerance float64  `json:"tolerance"`
}

func (*SetTermCond) Kind() Kind { return KindSetTermCond }

type SetOrigin struct {
	Header
	Origin coord.Pose `json:"origin"`
}

func (*SetOrigin) Kind() Kind { return KindSetOrigin }

type SetRotation struct {
	Header
	Rotation float64 `json:"rotation"`
}

func (*SetRotation) Kind() Kind { return KindSetRotation }

type SetOffset struct {
	Header
	Offset coord.Pose `json:"offset"`
}

func (*SetOffset) Kind() Kind { return KindSetOffset }

// SetSpindleSync starts (FeedPerRev != 0) or stops spindle-synchronized
// feed.
type SetSpindleSync struct {
	Header
	FeedPerRev   float64 `json:"feedPerRev"`
	VelocityMode bool    `json:"velocityMode"`
}

func (*SetSpindleSync) Kind() Kind { return KindSetSpindleSync }

type SetFeedOverride struct {
	Header
	Enable bool `json:"enable"`
}

func (*SetFeedOverride) Kind() Kind { return KindSetFeedOverride }

type SetSpindleOverride struct {
	Header
	Enable bool `json:"enable"`
}

func (*SetSpindleOverride) Kind() Kind { return KindSetSpindleOverride }

type SetAdaptiveFeed struct {
	Header
	Enable bool `json:"enable"`
}

func (*SetAdaptiveFeed) Kind() Kind { return KindSetAdaptiveFeed }

type SetFeedHold struct {
	Header
	Enable bool `json:"enable"`
}

func (*SetFeedHold) Kind() Kind { return KindSetFeedHold }

// SpindleOn starts the spindle. Speed is signed rpm, or the CSS
// maximum when Factor is non-zero; XOffset locates the rotation axis
// for CSS in external units.
type SpindleOn struct {
	Header
	Speed   float64 `json:"speed"`
	Factor  float64 `json:"factor"`
	XOffset float64 `json:"xOffset"`
}

func (*SpindleOn) Kind() Kind { return KindSpindleOn }

type SpindleOff struct {
	Header
}

func (*SpindleOff) Kind() Kind { return KindSpindleOff }

type SpindleSpeed struct {
	Header
	Speed   float64 `json:"speed"`
	Factor  float64 `json:"factor"`
	XOffset float64 `json:"xOffset"`
}

func (*SpindleSpeed) Kind() Kind { return KindSpindleSpeed }

type ToolLoad struct {
	Header
}

func (*ToolLoad) Kind() Kind { return KindToolLoad }

type ToolPrepare struct {
	Header
	Tool int `json:"tool"`
}

func (*ToolPrepare) Kind() Kind { return KindToolPrepare }

type ToolSetNumber struct {
	Header
	Tool int `json:"tool"`
}

func (*ToolSetNumber) Kind() Kind { return KindToolSetNumber }

type ToolSetOffset struct {
	Header
	Pocket      int        `json:"pocket"`
	ToolNo      int        `json:"toolno"`
	Offset      coord.Pose `json:"offset"`
	Diameter    float64    `json:"diameter"`
	FrontAngle  float64    `json:"frontangle"`
	BackAngle   float64    `json:"backangle"`
	Orientation int        `json:"orientation"`
}

func (*ToolSetOffset) Kind() Kind { return KindToolSetOffset }

type FloodOn struct{ Header }

func (*FloodOn) Kind() Kind { return KindFloodOn }

type FloodOff struct{ Header }

func (*FloodOff) Kind() Kind { return KindFloodOff }

type MistOn struct{ Header }

func (*MistOn) Kind() Kind { return KindMistOn }

type MistOff struct{ Header }

func (*MistOff) Kind() Kind { return KindMistOff }

type Delay struct {
	Header
	Seconds float64 `json:"seconds"`
}

func (*Delay) Kind() Kind { return KindDelay }

// Display is an operator message.
type Display struct {
	Header
	Text string `json:"text"`
}

func (*Display) Kind() Kind { return KindDisplay }

// OperatorError is an operator-visible error report.
type OperatorError struct {
	Header
	Text string `json:"text"`
}

func (*OperatorError) Kind() Kind { return KindOperatorError }

type PlanPause struct{ Header }

func (*PlanPause) Kind() Kind { return KindPlanPause }

type PlanOptionalStop struct{ Header }

func (*PlanOptionalStop) Kind() Kind { return KindPlanOptionalStop }

type PlanEnd struct{ Header }

func (*PlanEnd) Kind() Kind { return KindPlanEnd }

type ClearProbeTripped struct{ Header }

func (*ClearProbeTripped) Kind() Kind { return KindClearProbeTripped }

// SetDout drives a digital output. Now means immediately instead of
// synched with the next motion.
type SetDout struct {
	Header
	Index int  `json:"index"`
	Start int  `json:"start"`
	End   int  `json:"end"`
	Now   bool `json:"now"`
}

func (*SetDout) Kind() Kind { return KindSetDout }

// SetAout drives an analog output.
type SetAout struct {
	Header
	Index int     `json:"index"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Now   bool    `json:"now"`
}

func (*SetAout) Kind() Kind { return KindSetAout }

type SetSyncInput struct {
	Header
	Index    int     `json:"index"`
	Start    int     `json:"start"`
	End      int     `json:"end"`
	Now      bool    `json:"now"`
	WaitType int     `json:"waitType"`
	Timeout  float64 `json:"timeout"`
}

func (*SetSyncInput) Kind() Kind { return KindSetSyncInput }

type InputWait struct {
	Header
	Index     int     `json:"index"`
	InputType int     `json:"inputType"`
	WaitType  int     `json:"waitType"`
	Timeout   float64 `json:"timeout"`
}

func (*InputWait) Kind() Kind { return KindInputWait }
