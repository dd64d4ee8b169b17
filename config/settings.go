package config

import "image/color"

// WorldSettingsConfig contains world settings panel layout and styling
type WorldSettingsConfig struct {
	// Panel geometry (pixels)
	PanelMaxWidth  int
	PanelMaxHeight int
	ViewportMargin int     // Minimum gap between panel and viewport edge
	PaddingRatio   float64 // Padding as a fraction of panel size
	PaddingMin     int
	PaddingMax     int
	ContentShrink  int // Extra inset applied after padding
	TitleHeight    int

	// Toggle stack
	ButtonHeight     int
	ButtonSpacing    int
	ToggleWidthRatio float64 // Toggle width as a fraction of content width

	// Home slots field, sits right of the last toggle
	FieldGap      int
	FieldMaxWidth int
	FieldPadding  int

	// Back button, anchored bottom-left of the viewport
	BackMargin        int
	BackBoxWidth      int
	BackBoxHeight     int
	BackDefaultAspect float64 // Used when the back texture is missing

	// Behaviour
	CaretBlinkRate  float64 // Caret toggles this many times per second
	FadeInSeconds   float64
	DefaultHomesCap int

	// Textures, relative to C.AssetDir
	PanelTexture string
	BackTexture  string

	// Colors
	Title            string
	BackdropColor    color.RGBA
	PanelColor       color.RGBA
	BorderColor      color.RGBA
	BorderWidth      float32
	TitleColor       color.RGBA
	ToggleOnColor    color.RGBA
	ToggleOffColor   color.RGBA
	ToggleTextColor  color.RGBA
	FieldColor       color.RGBA
	FieldActiveColor color.RGBA
	FieldTextColor   color.RGBA
	PlaceholderColor color.RGBA
	DisabledColor    color.RGBA
	CaretColor       color.RGBA
	BackColor        color.RGBA
}

// WorldSettings is the global world settings panel configuration
var WorldSettings WorldSettingsConfig

func init() {
	WorldSettings = WorldSettingsConfig{
		PanelMaxWidth:  720,
		PanelMaxHeight: 480,
		ViewportMargin: 24,
		PaddingRatio:   0.05,
		PaddingMin:     12,
		PaddingMax:     32,
		ContentShrink:  4,
		TitleHeight:    48,

		ButtonHeight:     36,
		ButtonSpacing:    10,
		ToggleWidthRatio: 0.6,

		FieldGap:      16,
		FieldMaxWidth: 180,
		FieldPadding:  8,

		BackMargin:        16,
		BackBoxWidth:      120,
		BackBoxHeight:     40,
		BackDefaultAspect: 3.0,

		CaretBlinkRate:  2,
		FadeInSeconds:   0.25,
		DefaultHomesCap: 10,

		PanelTexture: "textures/ui/panel.png",
		BackTexture:  "textures/ui/back.png",

		Title:            "WORLD SETTINGS",
		BackdropColor:    BlackOverlay,
		PanelColor:       color.RGBA{R: 30, G: 30, B: 45, A: 255},
		BorderColor:      LightBlue,
		BorderWidth:      2,
		TitleColor:       Orange,
		ToggleOnColor:    color.RGBA{R: 40, G: 100, B: 40, A: 255},
		ToggleOffColor:   color.RGBA{R: 90, G: 40, B: 40, A: 255},
		ToggleTextColor:  White,
		FieldColor:       color.RGBA{R: 50, G: 50, B: 70, A: 255},
		FieldActiveColor: color.RGBA{R: 70, G: 70, B: 100, A: 255},
		FieldTextColor:   White,
		PlaceholderColor: Gray,
		DisabledColor:    color.RGBA{R: 40, G: 40, B: 50, A: 255},
		CaretColor:       White,
		BackColor:        DarkBlue,
	}
}
