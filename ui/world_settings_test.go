package ui

import (
	"errors"
	"image"
	"testing"

	"github.com/automoto/latticeveil/worldgen"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNav struct {
	pops int
}

func (n *fakeNav) Pop() { n.pops++ }

type missingTextures struct {
	requested []string
}

func (m *missingTextures) Load(path string) (*ebiten.Image, error) {
	m.requested = append(m.requested, path)
	return nil, errors.New("file not found")
}

type recorder struct {
	calls []worldgen.Settings
}

func (r *recorder) onChange(s worldgen.Settings) { r.calls = append(r.calls, s) }

var testViewport = image.Rect(0, 0, 960, 540)

func newTestPanel(t *testing.T, initial worldgen.Settings, homesCap int) (*WorldSettingsPanel, *fakeNav, *recorder) {
	t.Helper()
	nav := &fakeNav{}
	rec := &recorder{}
	p := NewWorldSettingsPanel(PanelOptions{
		Initial:   initial,
		HomesCap:  homesCap,
		Navigator: nav,
		OnChange:  rec.onChange,
	})
	p.Resize(testViewport)
	return p, nav, rec
}

func center(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}

func click(p image.Point) FrameInput {
	return FrameInput{Click: &p, Cursor: p}
}

func digits(s string) FrameInput {
	var in FrameInput
	for _, r := range s {
		in.Keys = append(in.Keys, TextKey{Kind: TextKeyDigit, Digit: r})
	}
	return in
}

func keys(kinds ...TextKeyKind) FrameInput {
	var in FrameInput
	for _, k := range kinds {
		in.Keys = append(in.Keys, TextKey{Kind: k})
	}
	return in
}

var frame = FrameTime{Elapsed: 0.1, Delta: 1.0 / 60}

func TestNewWorldSettingsPanelClamps(t *testing.T) {
	tests := []struct {
		name      string
		slots     int
		homesCap  int
		wantSlots int
		wantCap   int
	}{
		{name: "unlimited stays unlimited", slots: worldgen.UnlimitedHomes, homesCap: 10, wantSlots: -1, wantCap: 10},
		{name: "above cap", slots: 25, homesCap: 10, wantSlots: 10, wantCap: 10},
		{name: "zero becomes one", slots: 0, homesCap: 10, wantSlots: 1, wantCap: 10},
		{name: "invalid cap", slots: 4, homesCap: -3, wantSlots: 1, wantCap: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := worldgen.DefaultSettings()
			s.HomeSlots = tt.slots
			p, _, _ := newTestPanel(t, s, tt.homesCap)
			assert.Equal(t, tt.wantSlots, p.Settings().HomeSlots)
			assert.Equal(t, tt.wantCap, p.HomesCap())
		})
	}
}

func TestMissingTexturesFallBack(t *testing.T) {
	tex := &missingTextures{}
	p := NewWorldSettingsPanel(PanelOptions{
		Initial:  worldgen.DefaultSettings(),
		HomesCap: 10,
		Textures: tex,
	})

	assert.Len(t, tex.requested, 2)
	assert.Nil(t, p.panelTex)
	assert.Nil(t, p.backTex)

	p.Resize(testViewport)
	assert.False(t, p.Layout().Back.Empty())
}

func TestToggleFlipsOneSettingAndNotifiesOnce(t *testing.T) {
	for i, opt := range worldgen.Options {
		t.Run(opt.String(), func(t *testing.T) {
			initial := worldgen.DefaultSettings()
			p, _, rec := newTestPanel(t, initial, 10)

			p.Update(frame, click(center(p.Layout().Toggles[i])))

			require.Len(t, rec.calls, 1)
			got := rec.calls[0]
			assert.Equal(t, got, p.Settings())
			for _, other := range worldgen.Options {
				if other == opt {
					assert.NotEqual(t, initial.Enabled(other), got.Enabled(other))
				} else {
					assert.Equal(t, initial.Enabled(other), got.Enabled(other))
				}
			}
		})
	}
}

func TestToggleLabelsFollowState(t *testing.T) {
	p, _, _ := newTestPanel(t, worldgen.DefaultSettings(), 10)
	flat := &p.toggles[worldgen.OptionFlat]

	assert.Equal(t, "Flat World: Off", flat.Text())
	p.Update(frame, click(center(flat.Bounds)))
	assert.Equal(t, "Flat World: On", p.toggles[worldgen.OptionFlat].Text())
}

func TestFieldFocusFollowsClicks(t *testing.T) {
	p, _, _ := newTestPanel(t, worldgen.DefaultSettings(), 10)
	field := p.Layout().Field

	p.Update(frame, click(center(field)))
	assert.True(t, p.Field().Active)

	p.Update(frame, click(center(field)))
	assert.True(t, p.Field().Active, "clicking inside again keeps focus")

	p.Update(frame, click(image.Pt(1, 1)))
	assert.False(t, p.Field().Active)
}

func TestFieldIgnoresClickWhenHomesDisabled(t *testing.T) {
	s := worldgen.DefaultSettings()
	s.EnableHomes = false
	p, _, rec := newTestPanel(t, s, 10)

	p.Update(frame, click(center(p.Layout().Field)))
	assert.False(t, p.Field().Active)

	p.Update(frame, digits("42"))
	assert.Empty(t, p.Field().Text)
	assert.Empty(t, rec.calls)
}

func TestCommitClampsToCap(t *testing.T) {
	p, _, rec := newTestPanel(t, worldgen.DefaultSettings(), 10)
	p.Update(frame, click(center(p.Layout().Field)))

	p.Update(frame, digits("15"))
	assert.Equal(t, "15", p.Field().Text)

	p.Update(frame, keys(TextKeyEnter))
	assert.False(t, p.Field().Active)
	assert.Equal(t, 10, p.Settings().HomeSlots)
	assert.Equal(t, "10", p.Field().Text)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, 10, rec.calls[0].HomeSlots)
}

func TestCommitEmptyIsUnlimited(t *testing.T) {
	s := worldgen.DefaultSettings()
	s.HomeSlots = 7
	p, _, rec := newTestPanel(t, s, 10)
	p.Update(frame, click(center(p.Layout().Field)))

	p.Update(frame, keys(TextKeyBackspace, TextKeyBackspace))
	assert.Empty(t, p.Field().Text)

	p.Update(frame, keys(TextKeyEnter))
	assert.Equal(t, worldgen.UnlimitedHomes, p.Settings().HomeSlots)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, worldgen.UnlimitedHomes, rec.calls[0].HomeSlots)
}

func TestCommitUnlimitedLiteral(t *testing.T) {
	for _, raw := range []string{"unlimited", "UNLIMITED", "Unlimited"} {
		t.Run(raw, func(t *testing.T) {
			s := worldgen.DefaultSettings()
			s.HomeSlots = 3
			p, _, _ := newTestPanel(t, s, 1)
			p.field.Active = true
			p.field.Text = raw

			p.Update(frame, keys(TextKeyEnter))
			assert.Equal(t, worldgen.UnlimitedHomes, p.Settings().HomeSlots)
		})
	}
}

func TestCommitOnClickAway(t *testing.T) {
	p, _, rec := newTestPanel(t, worldgen.DefaultSettings(), 10)
	p.Update(frame, click(center(p.Layout().Field)))
	p.Update(frame, digits("4"))

	p.Update(frame, click(image.Pt(1, 1)))
	assert.False(t, p.Field().Active)
	assert.Equal(t, 4, p.Settings().HomeSlots)
	assert.Len(t, rec.calls, 1)
}

func TestUnparsableCommitKeepsValue(t *testing.T) {
	s := worldgen.DefaultSettings()
	s.HomeSlots = 6
	p, _, rec := newTestPanel(t, s, 10)
	p.field.Active = true
	p.field.Text = "12abc"

	p.Update(frame, keys(TextKeyEnter))
	assert.Equal(t, 6, p.Settings().HomeSlots)
	assert.Equal(t, "6", p.Field().Text)
	assert.Len(t, rec.calls, 1)
}

func TestFieldTextStaysDigitsAndBounded(t *testing.T) {
	p, _, _ := newTestPanel(t, worldgen.DefaultSettings(), 10)
	p.Update(frame, click(center(p.Layout().Field)))

	in := digits("123456789012345")
	in.Keys = append(in.Keys, TextKey{Kind: TextKeyDigit, Digit: 'x'})
	p.Update(frame, in)

	text := p.Field().Text
	assert.Len(t, text, worldgen.MaxHomeSlotsDigits)
	assert.Regexp(t, `^[0-9]*$`, text)
}

func TestKeysAfterEnterAreNotTyped(t *testing.T) {
	p, _, _ := newTestPanel(t, worldgen.DefaultSettings(), 10)
	p.Update(frame, click(center(p.Layout().Field)))

	in := digits("3")
	in.Keys = append(in.Keys, TextKey{Kind: TextKeyEnter}, TextKey{Kind: TextKeyDigit, Digit: '9'})
	p.Update(frame, in)

	assert.Equal(t, 3, p.Settings().HomeSlots)
	assert.Equal(t, "3", p.Field().Text)
}

func TestEscapeClosesOnce(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		p, nav, rec := newTestPanel(t, worldgen.DefaultSettings(), 10)
		p.Update(frame, FrameInput{Escape: true})
		assert.Equal(t, 1, nav.pops)
		assert.Empty(t, rec.calls)
	})

	t.Run("field active suppresses everything else", func(t *testing.T) {
		p, nav, rec := newTestPanel(t, worldgen.DefaultSettings(), 10)
		p.Update(frame, click(center(p.Layout().Field)))

		in := click(center(p.Layout().Toggles[worldgen.OptionOres]))
		in.Escape = true
		in.Keys = []TextKey{{Kind: TextKeyDigit, Digit: '5'}, {Kind: TextKeyEnter}}
		p.Update(frame, in)

		assert.Equal(t, 1, nav.pops)
		assert.Empty(t, rec.calls)
		assert.True(t, p.Settings().GenerateOres)
		assert.Empty(t, p.Field().Text)
	})
}

func TestBackButtonCloses(t *testing.T) {
	p, nav, _ := newTestPanel(t, worldgen.DefaultSettings(), 10)
	p.Update(frame, click(center(p.Layout().Back)))
	assert.Equal(t, 1, nav.pops)
}

func TestCaretVisibility(t *testing.T) {
	p, _, _ := newTestPanel(t, worldgen.DefaultSettings(), 10)
	assert.False(t, p.CaretVisible(), "inactive field has no caret")

	p.Update(FrameTime{Elapsed: 0.25}, click(center(p.Layout().Field)))
	assert.True(t, p.CaretVisible())

	p.Update(FrameTime{Elapsed: 0.75}, FrameInput{})
	assert.False(t, p.CaretVisible())

	p.Update(FrameTime{Elapsed: 1.1}, FrameInput{})
	assert.True(t, p.CaretVisible())

	p.settings.EnableHomes = false
	assert.False(t, p.CaretVisible(), "no caret while homes are disabled")
}

func TestBackdropFadesIn(t *testing.T) {
	p, _, _ := newTestPanel(t, worldgen.DefaultSettings(), 10)
	p.Update(FrameTime{Elapsed: 0.01, Delta: 0.01}, FrameInput{})
	first := p.backdropAlpha

	p.Update(FrameTime{Elapsed: 5, Delta: 5}, FrameInput{})
	assert.Greater(t, p.backdropAlpha, first)
	assert.InDelta(t, 180, p.backdropAlpha, 0.5)
}
