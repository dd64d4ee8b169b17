package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical menu action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Keys that type into the home slots field
	DigitKeys map[ebiten.Key]rune
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				// D-pad Up (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				// D-pad Down (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
		DigitKeys: map[ebiten.Key]rune{
			ebiten.KeyDigit0: '0', ebiten.KeyNumpad0: '0',
			ebiten.KeyDigit1: '1', ebiten.KeyNumpad1: '1',
			ebiten.KeyDigit2: '2', ebiten.KeyNumpad2: '2',
			ebiten.KeyDigit3: '3', ebiten.KeyNumpad3: '3',
			ebiten.KeyDigit4: '4', ebiten.KeyNumpad4: '4',
			ebiten.KeyDigit5: '5', ebiten.KeyNumpad5: '5',
			ebiten.KeyDigit6: '6', ebiten.KeyNumpad6: '6',
			ebiten.KeyDigit7: '7', ebiten.KeyNumpad7: '7',
			ebiten.KeyDigit8: '8', ebiten.KeyNumpad8: '8',
			ebiten.KeyDigit9: '9', ebiten.KeyNumpad9: '9',
		},
	}
}
