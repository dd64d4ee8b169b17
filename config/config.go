package config

import "image/color"

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	Title             string
}

// FormConfig contains colors for the ebitenui create world form
type FormConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	InputColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	AccentIdle      color.RGBA
	AccentHover     color.RGBA
	AccentPressed   color.RGBA
	StatusColor     color.RGBA
	TitleFontSize   float64
	NormalFontSize  float64
	SmallFontSize   float64
	DefaultName     string
}

// Config holds general game configuration
type Config struct {
	Width     int
	Height    int
	AssetDir  string // Textures and sounds are read from here at runtime
	AppName   string // gdata namespace
	TitleName string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Open the world settings panel directly
}

// Global configuration instances
var C *Config
var Menu MenuConfig
var Form FormConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGray    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Gray         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:     960,
		Height:    540,
		AssetDir:  "assets",
		AppName:   "latticeveil",
		TitleName: "LatticeVeil",
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            90,
		MenuStartY:        170,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		Title:             "LATTICEVEIL",
	}

	// Create World Form Config
	Form = FormConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		PanelColor:      color.RGBA{R: 30, G: 30, B: 45, A: 255},
		InputColor:      color.RGBA{R: 50, G: 50, B: 70, A: 255},
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		AccentIdle:      color.RGBA{R: 40, G: 100, B: 40, A: 255},
		AccentHover:     color.RGBA{R: 60, G: 140, B: 60, A: 255},
		AccentPressed:   color.RGBA{R: 30, G: 80, B: 30, A: 255},
		StatusColor:     color.RGBA{R: 255, G: 200, B: 100, A: 255},
		TitleFontSize:   24,
		NormalFontSize:  16,
		SmallFontSize:   13,
		DefaultName:     "New World",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
