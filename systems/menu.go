package systems

import (
	"image/color"

	"github.com/automoto/latticeveil/components"
	cfg "github.com/automoto/latticeveil/config"
	"github.com/automoto/latticeveil/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// MenuActions are the transitions the main menu can trigger
type MenuActions struct {
	CreateWorld func()
	Continue    func()
	Exit        func()
}

// NewUpdateMenu creates an UpdateMenu system bound to scene transitions
func NewUpdateMenu(actions MenuActions) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around
		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)

			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuCreateWorld:
				call(actions.CreateWorld)
			case components.MainMenuContinue:
				call(actions.Continue)
			case components.MainMenuExit:
				call(actions.Exit)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			call(actions.Exit)
		}
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	drawCentered(screen, cfg.Menu.Title, titleFont, width, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		drawCentered(screen, getOptionLabel(option), menuFont, width, int(y+cfg.Menu.MenuItemHeight), textColor)
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	hintFont := fonts.Small.Get()
	drawCentered(screen, getMenuHint(input.LastInputMethod), hintFont, width, int(height)-12, cfg.Menu.TextColorNormal)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width float64, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	x := int((width - float64(w)) / 2)
	text.Draw(screen, s, face, x, y, clr)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Quit"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuCreateWorld:
		return "Create World"
	case components.MainMenuContinue:
		return "Continue"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// MenuOptions returns the options shown for the given save state
func MenuOptions(hasSavedWorld bool) []components.MainMenuOption {
	if hasSavedWorld {
		return []components.MainMenuOption{
			components.MainMenuContinue,
			components.MainMenuCreateWorld,
			components.MainMenuExit,
		}
	}
	return []components.MainMenuOption{
		components.MainMenuCreateWorld,
		components.MainMenuExit,
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		hasSaved := HasSavedWorld()

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex:  0,
			VisibleOptions: MenuOptions(hasSaved),
			HasSavedWorld:  hasSaved,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
