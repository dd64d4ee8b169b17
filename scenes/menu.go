package scenes

import (
	"image"
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/latticeveil/config"
	"github.com/automoto/latticeveil/systems"
	"github.com/automoto/latticeveil/ui"
	"github.com/automoto/latticeveil/worldgen"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MainMenuScene displays the main menu
type MainMenuScene struct {
	ecs      *ecs.ECS
	stack    *Stack
	textures ui.TextureSource
	once     sync.Once
}

func NewMainMenuScene(stack *Stack, textures ui.TextureSource) *MainMenuScene {
	return &MainMenuScene{stack: stack, textures: textures}
}

func (ms *MainMenuScene) Update() error {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	return nil
}

func (ms *MainMenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

// Resize is a no-op; the menu lays itself out from the screen bounds.
func (ms *MainMenuScene) Resize(image.Rectangle) {}

// Resume runs when a scene above the menu is popped.
func (ms *MainMenuScene) Resume() {
	if ms.ecs == nil {
		return
	}
	systems.SuppressHeldInput(ms.ecs)

	// The create world screen may have saved a world
	menu := systems.GetOrCreateMenu(ms.ecs)
	menu.HasSavedWorld = systems.HasSavedWorld()
	menu.VisibleOptions = systems.MenuOptions(menu.HasSavedWorld)
	if menu.SelectedIndex >= len(menu.VisibleOptions) {
		menu.SelectedIndex = 0
	}
}

func (ms *MainMenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(systems.MenuActions{
		CreateWorld: ms.createWorld,
		Continue:    ms.continueWorld,
		Exit:        ms.stack.Quit,
	}))
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}

func (ms *MainMenuScene) createWorld() {
	ms.stack.Push(NewCreateWorldScene(ms.stack, ms.textures, "", InitialSettings()))
}

func (ms *MainMenuScene) continueWorld() {
	rec, ok := systems.LastWorld()
	if !ok {
		ms.createWorld()
		return
	}
	ms.stack.Push(NewCreateWorldScene(ms.stack, ms.textures, rec.Name, rec.Settings))
}

// InitialSettings returns the last settings chosen in the panel, falling
// back to the configured world defaults.
func InitialSettings() worldgen.Settings {
	saved, err := systems.LoadWorldSettings()
	if err != nil {
		log.Printf("Warning: Could not load world settings: %v", err)
	}
	if saved != nil {
		return *saved
	}
	return cfg.World.Settings
}
