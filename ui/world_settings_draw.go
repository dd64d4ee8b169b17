package ui

import (
	"image"
	"image/color"

	cfg "github.com/automoto/latticeveil/config"
	"github.com/automoto/latticeveil/fonts"
	"github.com/automoto/latticeveil/worldgen"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	xfont "golang.org/x/image/font"
)

// Draw renders the panel. It has no side effects; call Resize first.
func (p *WorldSettingsPanel) Draw(screen *ebiten.Image) {
	c := cfg.WorldSettings

	backdrop := c.BackdropColor
	backdrop.A = uint8(p.backdropAlpha)
	fillRect(screen, p.layout.Viewport, backdrop)

	if p.panelTex != nil {
		drawImageInRect(screen, p.panelTex, p.layout.Panel)
	} else {
		fillRect(screen, p.layout.Panel, c.PanelColor)
		strokeRect(screen, p.layout.Panel, c.BorderWidth, c.BorderColor)
	}

	drawTextCentered(screen, c.Title, fonts.Title.Get(), p.layout.Title, c.TitleColor)

	for i, opt := range worldgen.Options {
		bg := c.ToggleOffColor
		if p.settings.Enabled(opt) {
			bg = c.ToggleOnColor
		}
		b := &p.toggles[i]
		fillRect(screen, b.Bounds, bg)
		drawTextCentered(screen, b.Text(), fonts.Bold.Get(), b.Bounds, c.ToggleTextColor)
	}

	p.drawField(screen)
	p.drawBack(screen)
}

func (p *WorldSettingsPanel) drawField(screen *ebiten.Image) {
	c := cfg.WorldSettings
	r := p.field.Bounds
	if r.Empty() {
		return
	}

	labelFace := fonts.Small.Get()
	text.Draw(screen, "Home Slots", labelFace, r.Min.X, r.Min.Y-4, c.FieldTextColor)

	bg := c.FieldColor
	switch {
	case !p.settings.EnableHomes:
		bg = c.DisabledColor
	case p.field.Active:
		bg = c.FieldActiveColor
	}
	fillRect(screen, r, bg)
	strokeRect(screen, r, 1, c.BorderColor)

	face := fonts.Regular.Get()
	x := r.Min.X + c.FieldPadding
	y := baselineFor(face, r)

	if p.field.Text == "" {
		text.Draw(screen, "Unlimited", face, x, y, c.PlaceholderColor)
	} else {
		text.Draw(screen, p.field.Text, face, x, y, c.FieldTextColor)
	}

	if p.CaretVisible() {
		caretX := x + xfont.MeasureString(face, p.field.Text).Ceil() + 1
		caret := image.Rect(caretX, r.Min.Y+c.FieldPadding/2, caretX+2, r.Max.Y-c.FieldPadding/2)
		fillRect(screen, caret, c.CaretColor)
	}
}

func (p *WorldSettingsPanel) drawBack(screen *ebiten.Image) {
	c := cfg.WorldSettings
	if p.backTex != nil {
		drawImageInRect(screen, p.backTex, p.back.Bounds)
		return
	}
	fillRect(screen, p.back.Bounds, c.BackColor)
	drawTextCentered(screen, p.back.Text(), fonts.Bold.Get(), p.back.Bounds, c.ToggleTextColor)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, clr, false)
}

// drawImageInRect stretches img over r.
func drawImageInRect(dst, img *ebiten.Image, r image.Rectangle) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx())/float64(b.Dx()), float64(r.Dy())/float64(b.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	dst.DrawImage(img, op)
}

func drawTextCentered(dst *ebiten.Image, s string, face xfont.Face, r image.Rectangle, clr color.Color) {
	w := xfont.MeasureString(face, s).Ceil()
	x := r.Min.X + (r.Dx()-w)/2
	text.Draw(dst, s, face, x, baselineFor(face, r), clr)
}

// baselineFor vertically centers a line of text in r.
func baselineFor(face xfont.Face, r image.Rectangle) int {
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	return r.Min.Y + (r.Dy()-h)/2 + m.Ascent.Ceil()
}
