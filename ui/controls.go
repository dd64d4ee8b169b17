package ui

import (
	"image"
	"math"
)

// Button is a clickable rectangle. Label is evaluated when drawn so the
// text always reflects current state.
type Button struct {
	Label      func() string
	Bounds     image.Rectangle
	OnActivate func()
}

// HandleClick activates the button if p is inside it.
func (b *Button) HandleClick(p image.Point) bool {
	if !p.In(b.Bounds) {
		return false
	}
	if b.OnActivate != nil {
		b.OnActivate()
	}
	return true
}

// Text returns the current label.
func (b *Button) Text() string {
	if b.Label == nil {
		return ""
	}
	return b.Label()
}

// NumericField is a digits-only text box.
type NumericField struct {
	Text   string
	Active bool
	Bounds image.Rectangle
	MaxLen int
}

// Type appends a digit. Anything else, or a full field, is dropped.
func (f *NumericField) Type(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	if f.MaxLen > 0 && len(f.Text) >= f.MaxLen {
		return false
	}
	f.Text += string(r)
	return true
}

// Backspace removes the last character.
func (f *NumericField) Backspace() {
	if len(f.Text) > 0 {
		f.Text = f.Text[:len(f.Text)-1]
	}
}

// CaretOn reports the blink phase: on for the first half of every cycle.
// rate is half-cycles per second, so rate 2 flips every 0.5s.
func CaretOn(elapsed, rate float64) bool {
	return math.Mod(elapsed*rate, 2) < 1
}
