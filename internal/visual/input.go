package visual

// Input is the keyboard state sampled once at the top of a frame.
// Fields report held keys, not queued events.
type Input struct {
	IncreaseResolution bool
	DecreaseResolution bool
	RotatePositive     bool
	RotateNegative     bool
	ToggleVisibility   bool
}
