package ui

import (
	"image"

	cfg "github.com/automoto/latticeveil/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TextKeyKind is the kind of a text-editing key event.
type TextKeyKind int

const (
	TextKeyDigit TextKeyKind = iota
	TextKeyBackspace
	TextKeyEnter
)

// TextKey is one text-relevant key press in a frame.
type TextKey struct {
	Kind  TextKeyKind
	Digit rune // Set for TextKeyDigit
}

// FrameInput is the input snapshot for a single frame.
type FrameInput struct {
	Escape bool
	Click  *image.Point // New left click this frame, nil if none
	Cursor image.Point
	Keys   []TextKey
}

// FrameTime is simulated time; Elapsed grows by Delta every tick.
type FrameTime struct {
	Elapsed float64
	Delta   float64
}

// Clock produces FrameTime values at a fixed tick rate.
type Clock struct {
	elapsed float64
}

// Tick advances the clock by one tick at the given rate.
func (c *Clock) Tick(tps int) FrameTime {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := 1.0 / float64(tps)
	c.elapsed += dt
	return FrameTime{Elapsed: c.elapsed, Delta: dt}
}

// Reusable slice for just-pressed keys to avoid allocations
var justPressed []ebiten.Key

// PollFrameInput reads this frame's keyboard and mouse state from ebiten.
func PollFrameInput() FrameInput {
	var in FrameInput

	x, y := ebiten.CursorPosition()
	in.Cursor = image.Pt(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		click := in.Cursor
		in.Click = &click
	}

	justPressed = inpututil.AppendJustPressedKeys(justPressed[:0])
	for _, key := range justPressed {
		switch key {
		case ebiten.KeyEscape:
			in.Escape = true
		case ebiten.KeyBackspace:
			in.Keys = append(in.Keys, TextKey{Kind: TextKeyBackspace})
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			in.Keys = append(in.Keys, TextKey{Kind: TextKeyEnter})
		default:
			if r, ok := cfg.Input.DigitKeys[key]; ok {
				in.Keys = append(in.Keys, TextKey{Kind: TextKeyDigit, Digit: r})
			}
		}
	}
	return in
}
