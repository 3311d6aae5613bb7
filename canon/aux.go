package canon

import "github.com/mastercactapus/gcanon/msg"

// Input types and wait types for Wait and SetMotionSyncInputBit.
const (
	DigitalInput = iota
	AnalogInput
)

const (
	WaitRise = iota
	WaitFall
	WaitHigh
	WaitLow
)

// DisableFeedOverride disables the operator feed-rate override.
func (c *Canon) DisableFeedOverride() {
	c.flushSegments()
	c.list.Append(&msg.SetFeedOverride{Enable: false})
}

// EnableFeedOverride enables the operator feed-rate override.
func (c *Canon) EnableFeedOverride() {
	c.flushSegments()
	c.list.Append(&msg.SetFeedOverride{Enable: true})
}

// DisableAdaptiveFeed disables the adaptive-feed input.
func (c *Canon) DisableAdaptiveFeed() {
	c.flushSegments()
	c.list.Append(&msg.SetAdaptiveFeed{Enable: false})
}

// EnableAdaptiveFeed enables the adaptive-feed input.
func (c *Canon) EnableAdaptiveFeed() {
	c.flushSegments()
	c.list.Append(&msg.SetAdaptiveFeed{Enable: true})
}

// DisableSpeedOverride disables the spindle-speed override.
func (c *Canon) DisableSpeedOverride() {
	c.flushSegments()
	c.list.Append(&msg.SetSpindleOverride{Enable: false})
}

// EnableSpeedOverride enables the spindle-speed override.
func (c *Canon) EnableSpeedOverride() {
	c.flushSegments()
	c.list.Append(&msg.SetSpindleOverride{Enable: true})
}

// EnableFeedHold enables the feed-hold input.
func (c *Canon) EnableFeedHold() {
	c.flushSegments()
	c.list.Append(&msg.SetFeedHold{Enable: true})
}

// DisableFeedHold disables the feed-hold input.
func (c *Canon) DisableFeedHold() {
	c.flushSegments()
	c.list.Append(&msg.SetFeedHold{Enable: false})
}

// FloodOn turns flood coolant on.
func (c *Canon) FloodOn() {
	c.flushSegments()
	c.list.Append(&msg.FloodOn{})
}

// FloodOff turns flood coolant off.
func (c *Canon) FloodOff() {
	c.flushSegments()
	c.list.Append(&msg.FloodOff{})
}

// MistOn turns mist coolant on.
func (c *Canon) MistOn() {
	c.flushSegments()
	c.list.Append(&msg.MistOn{})
}

// MistOff turns mist coolant off.
func (c *Canon) MistOff() {
	c.flushSegments()
	c.list.Append(&msg.MistOff{})
}

// SetMotionOutputBit sets a digital output synched with the start of
// the next motion. Only one synched output survives per motion
// segment; use SetAuxOutputBit for immediate effect.
func (c *Canon) SetMotionOutputBit(index int) {
	c.flushSegments()
	c.list.Append(&msg.SetDout{Index: index, Start: 1, End: 1, Now: false})
}

// ClearMotionOutputBit clears a digital output synched with the start
// of the next motion.
func (c *Canon) ClearMotionOutputBit(index int) {
	c.flushSegments()
	c.list.Append(&msg.SetDout{Index: index, Start: 0, End: 0, Now: false})
}

// SetAuxOutputBit sets a digital output immediately.
func (c *Canon) SetAuxOutputBit(index int) {
	c.flushSegments()
	c.list.Append(&msg.SetDout{Index: index, Start: 1, End: 1, Now: true})
}

// ClearAuxOutputBit clears a digital output immediately.
func (c *Canon) ClearAuxOutputBit(index int) {
	c.flushSegments()
	c.list.Append(&msg.SetDout{Index: index, Start: 0, End: 0, Now: true})
}

// SetMotionOutputValue sets an analog output synched with motion.
func (c *Canon) SetMotionOutputValue(index int, value float64) {
	c.flushSegments()
	c.list.Append(&msg.SetAout{Index: index, Start: value, End: value, Now: false})
}

// SetAuxOutputValue sets an analog output immediately.
func (c *Canon) SetAuxOutputValue(index int, value float64) {
	c.flushSegments()
	c.list.Append(&msg.SetAout{Index: index, Start: value, End: value, Now: true})
}

// SetMotionSyncInputBit arms a motion-synchronized input.
func (c *Canon) SetMotionSyncInputBit(index, waitType int, timeout float64, now bool) {
	c.flushSegments()
	c.list.Append(&msg.SetSyncInput{
		Index:    index,
		Start:    1,
		End:      1,
		Now:      now,
		WaitType: waitType,
		Timeout:  timeout,
	})
}

// Wait stops execution until the selected input reaches the wanted
// state or the timeout passes. Returns -1 on a bad index without
// emitting, 0 otherwise; the timeout itself is honored downstream.
func (c *Canon) Wait(index, inputType, waitType int, timeout float64) int {
	switch inputType {
	case DigitalInput:
		if index < 0 || index >= c.status.NumDigitalInputs() {
			return -1
		}
	case AnalogInput:
		if index < 0 || index >= c.status.NumAnalogInputs() {
			return -1
		}
	}

	c.flushSegments()
	c.list.Append(&msg.InputWait{
		Index:     index,
		InputType: inputType,
		WaitType:  waitType,
		Timeout:   timeout,
	})
	return 0
}

// ProgramStop pauses the program; a resume continues motion.
func (c *Canon) ProgramStop() {
	c.flushSegments()
	c.list.Append(&msg.PlanPause{})
}

// OptionalProgramStop pauses the program at an optional stop.
func (c *Canon) OptionalProgramStop() {
	c.flushSegments()
	c.list.Append(&msg.PlanOptionalStop{})
}

// ProgramEnd ends the program.
func (c *Canon) ProgramEnd() {
	c.flushSegments()
	c.list.Append(&msg.PlanEnd{})
}

// PalletShuttle is accepted for interface completeness.
func (c *Canon) PalletShuttle() {}
