package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/latticeveil/worldgen"
	"gopkg.in/yaml.v3"
)

// WorldDefaults are the construction parameters for the world settings panel.
type WorldDefaults struct {
	Settings worldgen.Settings
	HomesCap int
}

// worldDefaultsFile mirrors the YAML layout. Pointers tell missing keys
// apart from explicit false/zero.
type worldDefaultsFile struct {
	GenerateOres       *bool `yaml:"generateOres"`
	GenerateCaves      *bool `yaml:"generateCaves"`
	GenerateStructures *bool `yaml:"generateStructures"`
	Flat               *bool `yaml:"flat"`
	EnableHomes        *bool `yaml:"enableHomes"`
	HomeSlots          *int  `yaml:"homeSlots"`
	HomesCap           *int  `yaml:"homesCap"`
}

// World holds the active world defaults
var World WorldDefaults

func init() {
	World = DefaultWorldDefaults()
}

// DefaultWorldDefaults returns the built-in world defaults
func DefaultWorldDefaults() WorldDefaults {
	return WorldDefaults{
		Settings: worldgen.DefaultSettings(),
		HomesCap: WorldSettings.DefaultHomesCap,
	}
}

// LoadWorldDefaults reads a YAML defaults file on top of base.
// A missing file is not an error.
func LoadWorldDefaults(path string, base WorldDefaults) (WorldDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("failed to read world defaults %s: %w", path, err)
	}
	return ParseWorldDefaults(data, base)
}

// ParseWorldDefaults applies YAML data on top of base and clamps the result.
func ParseWorldDefaults(data []byte, base WorldDefaults) (WorldDefaults, error) {
	var f worldDefaultsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("failed to parse world defaults: %w", err)
	}

	out := base
	setBool(&out.Settings.GenerateOres, f.GenerateOres)
	setBool(&out.Settings.GenerateCaves, f.GenerateCaves)
	setBool(&out.Settings.GenerateStructures, f.GenerateStructures)
	setBool(&out.Settings.Flat, f.Flat)
	setBool(&out.Settings.EnableHomes, f.EnableHomes)
	if f.HomeSlots != nil {
		out.Settings.HomeSlots = *f.HomeSlots
	}
	if f.HomesCap != nil {
		out.HomesCap = *f.HomesCap
	}

	out.HomesCap = worldgen.NormalizeCap(out.HomesCap)
	out.Settings = out.Settings.Clamped(out.HomesCap)
	return out, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
