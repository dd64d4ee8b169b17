package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/automoto/latticeveil/assets"
	"github.com/automoto/latticeveil/config"
	"github.com/automoto/latticeveil/fonts"
	"github.com/automoto/latticeveil/scenes"
	"github.com/automoto/latticeveil/systems"
	"github.com/automoto/latticeveil/worldgen"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	worldConfigPath string
	mute            bool
)

type Game struct {
	viewport image.Rectangle
	stack    *scenes.Stack
}

func NewGame() *Game {
	g := &Game{stack: scenes.NewStack()}
	textures := assets.NewTextureLoader(config.C.AssetDir)

	if config.Debug.SkipMenu {
		cw := scenes.NewCreateWorldScene(g.stack, textures, "", scenes.InitialSettings())
		g.stack.Push(cw)
		cw.OpenSettings()
	} else {
		g.stack.Push(scenes.NewMainMenuScene(g.stack, textures))
	}

	return g
}

func (g *Game) Update() error {
	return g.stack.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	g.stack.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	viewport := image.Rect(0, 0, outsideWidth, outsideHeight)
	if viewport != g.viewport {
		g.viewport = viewport
		g.stack.Resize(viewport)
	}
	return outsideWidth, outsideHeight
}

var rootCmd = &cobra.Command{
	Use:           "latticeveil",
	Short:         "Create and configure LatticeVeil worlds",
	Long:          `LatticeVeil opens the main menu, where new worlds are named and their generation settings chosen.`,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setup()

		ebiten.SetWindowSize(config.C.Width, config.C.Height)
		ebiten.SetWindowTitle(config.C.TitleName)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		if err := ebiten.RunGame(NewGame()); err != nil {
			return fmt.Errorf("run game: %w", err)
		}
		return nil
	},
}

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List created worlds",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := systems.InitPersistence(config.C.AppName); err != nil {
			return err
		}
		worlds, err := systems.LoadWorlds()
		if err != nil {
			return err
		}
		if len(worlds) == 0 {
			fmt.Println("No worlds created yet.")
			return nil
		}
		for _, w := range worlds {
			fmt.Printf("%s  %-24s %s\n", w.CreatedAt.Format("2006-01-02 15:04"), w.Name, worldgen.Summary(w.Settings))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of LatticeVeil",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("LatticeVeil version %s\n", version)
	},
}

// setup loads config files, persistence and shared assets. Failures fall
// back to defaults.
func setup() {
	defaults, err := config.LoadWorldDefaults(worldConfigPath, config.World)
	if err != nil {
		log.Printf("Warning: Could not load world defaults: %v", err)
	}
	config.World = defaults

	if err := systems.InitPersistence(config.C.AppName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	if mute {
		systems.SetSFXVolume(0)
	} else {
		systems.PreloadAllSFX()
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&worldConfigPath, "config", "world.yaml", "world defaults file (YAML)")
	flags.StringVar(&config.C.AssetDir, "assets", config.C.AssetDir, "directory holding textures and sounds")

	rootCmd.Flags().IntVar(&config.C.Width, "width", config.C.Width, "initial window width")
	rootCmd.Flags().IntVar(&config.C.Height, "height", config.C.Height, "initial window height")
	rootCmd.Flags().BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "open the world settings panel directly")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "disable sound effects")

	rootCmd.AddCommand(worldsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
