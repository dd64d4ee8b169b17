package scenes

import (
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/latticeveil/config"
	"github.com/automoto/latticeveil/systems"
	"github.com/automoto/latticeveil/ui"
	"github.com/automoto/latticeveil/worldgen"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorldScene is the form where a world is named and created. Its
// settings are edited in a WorldSettingsScene pushed on top of it.
type CreateWorldScene struct {
	ecs      *ecs.ECS
	stack    *Stack
	textures ui.TextureSource
	form     *ui.CreateWorldUI
	once     sync.Once

	name     string
	settings worldgen.Settings
	status   string

	saveWorld func(worldgen.WorldRecord) error
	now       func() time.Time
}

func NewCreateWorldScene(stack *Stack, textures ui.TextureSource, name string, settings worldgen.Settings) *CreateWorldScene {
	return &CreateWorldScene{
		ecs:       ecs.NewECS(donburi.NewWorld()),
		stack:     stack,
		textures:  textures,
		name:      name,
		settings:  settings.Clamped(worldgen.NormalizeCap(cfg.World.HomesCap)),
		saveWorld: systems.SaveWorld,
		now:       time.Now,
	}
}

func (cs *CreateWorldScene) Settings() worldgen.Settings {
	return cs.settings
}

func (cs *CreateWorldScene) Status() string {
	return cs.status
}

func (cs *CreateWorldScene) Update() error {
	cs.once.Do(cs.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		cs.goBack()
		return nil
	}

	cs.form.Update()
	systems.UpdateAudio(cs.ecs)
	return nil
}

func (cs *CreateWorldScene) Draw(screen *ebiten.Image) {
	if cs.form == nil {
		return
	}
	cs.form.Draw(screen)
}

// Resize is a no-op; ebitenui lays the form out against the screen.
func (cs *CreateWorldScene) Resize(image.Rectangle) {}

func (cs *CreateWorldScene) configure() {
	cs.form = ui.NewCreateWorldUI(cs.name, worldgen.Summary(cs.settings), cs.OpenSettings, cs.create, cs.goBack)
	cs.form.SetStatus(cs.status)
}

// OpenSettings pushes the world settings panel for this form.
func (cs *CreateWorldScene) OpenSettings() {
	systems.PlaySFX(cs.ecs, cfg.SoundMenuSelect)
	cs.stack.Push(NewWorldSettingsScene(cs.stack, cs.textures, cs.settings, cfg.World.HomesCap, cs.setSettings))
}

// setSettings receives every change made in the settings panel.
func (cs *CreateWorldScene) setSettings(s worldgen.Settings) {
	cs.settings = s
	if cs.form != nil {
		cs.form.SetSummary(worldgen.Summary(s))
	}
}

func (cs *CreateWorldScene) create(name string) {
	rec := worldgen.WorldRecord{
		Name:      name,
		Settings:  cs.settings,
		CreatedAt: cs.now(),
	}

	if err := cs.saveWorld(rec); err != nil {
		log.Printf("Warning: Could not save world %q: %v", name, err)
		cs.setStatus("Could not save world")
		return
	}

	log.Printf("[world] Created %q (%s)", name, worldgen.Summary(rec.Settings))
	systems.PlaySFX(cs.ecs, cfg.SoundCreateWorld)
	cs.setStatus(fmt.Sprintf("Created world %q", name))
}

func (cs *CreateWorldScene) setStatus(msg string) {
	cs.status = msg
	if cs.form != nil {
		cs.form.SetStatus(msg)
	}
}

func (cs *CreateWorldScene) goBack() {
	cs.stack.Pop()
}
