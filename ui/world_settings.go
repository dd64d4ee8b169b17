package ui

import (
	"image"
	"log"

	cfg "github.com/automoto/latticeveil/config"
	"github.com/automoto/latticeveil/worldgen"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Navigator closes the screen that is currently on top.
type Navigator interface {
	Pop()
}

// TextureSource loads a texture by asset path.
type TextureSource interface {
	Load(path string) (*ebiten.Image, error)
}

// PanelOptions are the construction parameters of a WorldSettingsPanel.
type PanelOptions struct {
	Initial   worldgen.Settings
	HomesCap  int
	Textures  TextureSource // nil draws everything with flat colors
	Navigator Navigator
	OnChange  func(worldgen.Settings)
}

// WorldSettingsPanel is the modal screen for world-generation options.
//
// Resize must be called whenever the viewport changes; Update and Draw
// then run once per frame on the game goroutine.
type WorldSettingsPanel struct {
	settings worldgen.Settings
	homesCap int

	layout  Layout
	toggles [worldgen.OptionCount]Button
	back    Button
	field   NumericField

	nav      Navigator
	onChange func(worldgen.Settings)

	panelTex *ebiten.Image
	backTex  *ebiten.Image

	elapsed       float64
	fade          *gween.Tween
	backdropAlpha float32
}

// NewWorldSettingsPanel builds a panel. Initial values are clamped to the cap.
func NewWorldSettingsPanel(opts PanelOptions) *WorldSettingsPanel {
	c := cfg.WorldSettings
	homesCap := worldgen.NormalizeCap(opts.HomesCap)
	settings := opts.Initial.Clamped(homesCap)

	p := &WorldSettingsPanel{
		settings: settings,
		homesCap: homesCap,
		nav:      opts.Navigator,
		onChange: opts.OnChange,
		field: NumericField{
			Text:   worldgen.FormatHomeSlots(settings.HomeSlots),
			MaxLen: worldgen.MaxHomeSlotsDigits,
		},
		fade: gween.New(0, float32(c.BackdropColor.A), float32(c.FadeInSeconds), ease.OutQuad),
	}

	p.panelTex = loadTexture(opts.Textures, c.PanelTexture)
	p.backTex = loadTexture(opts.Textures, c.BackTexture)
	return p
}

// loadTexture is best effort: a missing texture falls back to flat colors.
func loadTexture(src TextureSource, path string) *ebiten.Image {
	if src == nil {
		return nil
	}
	img, err := src.Load(path)
	if err != nil {
		log.Printf("Warning: Could not load texture %s: %v", path, err)
		return nil
	}
	return img
}

// Settings returns the current settings.
func (p *WorldSettingsPanel) Settings() worldgen.Settings {
	return p.settings
}

// HomesCap returns the clamped home slot cap.
func (p *WorldSettingsPanel) HomesCap() int {
	return p.homesCap
}

// Layout returns the geometry computed by the last Resize.
func (p *WorldSettingsPanel) Layout() Layout {
	return p.layout
}

// Field returns a copy of the home slots field state.
func (p *WorldSettingsPanel) Field() NumericField {
	return p.field
}

// Resize recomputes the layout and rebuilds the buttons.
func (p *WorldSettingsPanel) Resize(viewport image.Rectangle) {
	p.layout = ComputeLayout(viewport, p.backAspect())
	p.field.Bounds = p.layout.Field

	for i, opt := range worldgen.Options {
		p.toggles[i] = Button{
			Label:      func() string { return worldgen.Label(opt, p.settings) },
			Bounds:     p.layout.Toggles[i],
			OnActivate: func() { p.toggle(opt) },
		}
	}

	p.back = Button{
		Label:      func() string { return "< Back" },
		Bounds:     p.layout.Back,
		OnActivate: p.close,
	}
}

func (p *WorldSettingsPanel) backAspect() float64 {
	if p.backTex == nil {
		return cfg.WorldSettings.BackDefaultAspect
	}
	b := p.backTex.Bounds()
	if b.Dy() == 0 {
		return cfg.WorldSettings.BackDefaultAspect
	}
	return float64(b.Dx()) / float64(b.Dy())
}

// Update processes one frame of input.
func (p *WorldSettingsPanel) Update(t FrameTime, in FrameInput) {
	p.elapsed = t.Elapsed
	p.backdropAlpha, _ = p.fade.Update(float32(t.Delta))

	if in.Escape {
		p.close()
		return
	}

	if in.Click != nil {
		p.updateFieldFocus(*in.Click)
	}

	if p.field.Active {
		p.handleTextKeys(in.Keys)
	}

	if in.Click != nil {
		for i := range p.toggles {
			if p.toggles[i].HandleClick(*in.Click) {
				break
			}
		}
		p.back.HandleClick(*in.Click)
	}
}

// updateFieldFocus re-evaluates field focus on every click.
func (p *WorldSettingsPanel) updateFieldFocus(click image.Point) {
	wasActive := p.field.Active
	p.field.Active = p.settings.EnableHomes && click.In(p.field.Bounds)
	if wasActive && !p.field.Active {
		p.commit()
	}
}

func (p *WorldSettingsPanel) handleTextKeys(keys []TextKey) {
	for _, k := range keys {
		switch k.Kind {
		case TextKeyDigit:
			p.field.Type(k.Digit)
		case TextKeyBackspace:
			p.field.Backspace()
		case TextKeyEnter:
			p.field.Active = false
			p.commit()
			return
		}
	}
}

// commit parses the field into HomeSlots. Unparsable text keeps the old value.
func (p *WorldSettingsPanel) commit() {
	if n, err := worldgen.ParseHomeSlots(p.field.Text, p.homesCap); err == nil {
		p.settings.HomeSlots = n
	}
	p.field.Text = worldgen.FormatHomeSlots(p.settings.HomeSlots)
	p.notify()
}

func (p *WorldSettingsPanel) toggle(opt worldgen.Option) {
	p.settings.Toggle(opt)
	p.notify()
}

func (p *WorldSettingsPanel) notify() {
	if p.onChange != nil {
		p.onChange(p.settings)
	}
}

func (p *WorldSettingsPanel) close() {
	if p.nav != nil {
		p.nav.Pop()
	}
}

// CaretVisible reports whether the field caret is drawn this frame.
func (p *WorldSettingsPanel) CaretVisible() bool {
	return p.field.Active && p.settings.EnableHomes &&
		CaretOn(p.elapsed, cfg.WorldSettings.CaretBlinkRate)
}
