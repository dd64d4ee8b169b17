package scenes

import (
	"image"
	"log"

	cfg "github.com/automoto/latticeveil/config"
	"github.com/automoto/latticeveil/systems"
	"github.com/automoto/latticeveil/ui"
	"github.com/automoto/latticeveil/worldgen"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldSettingsScene hosts the world settings panel as a modal screen.
type WorldSettingsScene struct {
	ecs      *ecs.ECS
	panel    *ui.WorldSettingsPanel
	clock    ui.Clock
	onChange func(worldgen.Settings)
}

// NewWorldSettingsScene builds the panel. onChange receives every toggle and
// committed home slot value.
func NewWorldSettingsScene(nav ui.Navigator, textures ui.TextureSource, initial worldgen.Settings, homesCap int, onChange func(worldgen.Settings)) *WorldSettingsScene {
	ws := &WorldSettingsScene{
		ecs:      ecs.NewECS(donburi.NewWorld()),
		onChange: onChange,
	}
	ws.panel = ui.NewWorldSettingsPanel(ui.PanelOptions{
		Initial:   initial,
		HomesCap:  homesCap,
		Textures:  textures,
		Navigator: nav,
		OnChange:  ws.handleChange,
	})
	return ws
}

func (ws *WorldSettingsScene) Panel() *ui.WorldSettingsPanel {
	return ws.panel
}

func (ws *WorldSettingsScene) Update() error {
	ws.panel.Update(ws.clock.Tick(ebiten.TPS()), ui.PollFrameInput())
	systems.UpdateAudio(ws.ecs)
	return nil
}

func (ws *WorldSettingsScene) Draw(screen *ebiten.Image) {
	ws.panel.Draw(screen)
}

func (ws *WorldSettingsScene) Resize(viewport image.Rectangle) {
	ws.panel.Resize(viewport)
}

func (ws *WorldSettingsScene) handleChange(s worldgen.Settings) {
	systems.PlaySFX(ws.ecs, cfg.SoundToggle)

	if err := systems.SaveWorldSettings(s); err != nil {
		log.Printf("Warning: Could not save world settings: %v", err)
	}

	if ws.onChange != nil {
		ws.onChange(s)
	}
}
