package worldgen

import (
	"fmt"
	"strings"
)

// Option identifies one boolean world-generation toggle.
type Option int

const (
	OptionOres Option = iota
	OptionCaves
	OptionStructures
	OptionFlat
	OptionHomes
	OptionCount // Must be last
)

// Options lists the toggles in the order the settings panel stacks them.
var Options = [OptionCount]Option{
	OptionOres,
	OptionCaves,
	OptionStructures,
	OptionFlat,
	OptionHomes,
}

func (o Option) String() string {
	switch o {
	case OptionOres:
		return "Generate Ores"
	case OptionCaves:
		return "Generate Caves"
	case OptionStructures:
		return "Generate Structures"
	case OptionFlat:
		return "Flat World"
	case OptionHomes:
		return "Enable Homes"
	default:
		return "Unknown"
	}
}

// Enabled returns the current value of a toggle.
func (s Settings) Enabled(o Option) bool {
	switch o {
	case OptionOres:
		return s.GenerateOres
	case OptionCaves:
		return s.GenerateCaves
	case OptionStructures:
		return s.GenerateStructures
	case OptionFlat:
		return s.Flat
	case OptionHomes:
		return s.EnableHomes
	}
	return false
}

// Toggle flips exactly one option.
func (s *Settings) Toggle(o Option) {
	switch o {
	case OptionOres:
		s.GenerateOres = !s.GenerateOres
	case OptionCaves:
		s.GenerateCaves = !s.GenerateCaves
	case OptionStructures:
		s.GenerateStructures = !s.GenerateStructures
	case OptionFlat:
		s.Flat = !s.Flat
	case OptionHomes:
		s.EnableHomes = !s.EnableHomes
	}
}

// Label is the button text for a toggle, derived from current settings.
func Label(o Option, s Settings) string {
	return fmt.Sprintf("%s: %s", o, onOff(s.Enabled(o)))
}

// HomeSlotsText is the display form of the home-slot value.
func HomeSlotsText(s Settings) string {
	if s.Unlimited() {
		return "Unlimited"
	}
	return fmt.Sprintf("%d", s.HomeSlots)
}

// Summary is a one-line description used by the create world form.
func Summary(s Settings) string {
	var on []string
	for _, o := range Options {
		if o == OptionHomes {
			continue
		}
		if s.Enabled(o) {
			on = append(on, strings.TrimPrefix(o.String(), "Generate "))
		}
	}
	features := "none"
	if len(on) > 0 {
		features = strings.Join(on, ", ")
	}

	homes := "Homes off"
	if s.EnableHomes {
		homes = "Homes: " + HomeSlotsText(s)
	}
	return fmt.Sprintf("%s | %s", features, homes)
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
