// Package worldgen holds the world-generation options chosen in the menu
// before a world is created.
package worldgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UnlimitedHomes is the HomeSlots value meaning "no cap".
const UnlimitedHomes = -1

// MaxHomeSlotsDigits caps how many digits the home-slot field accepts.
const MaxHomeSlotsDigits = 10

// ErrInvalidHomeSlots is returned when home-slot text is not a number.
var ErrInvalidHomeSlots = errors.New("invalid home slot count")

// Settings is the full set of world-generation options.
type Settings struct {
	GenerateOres       bool `json:"generateOres"`
	GenerateCaves      bool `json:"generateCaves"`
	GenerateStructures bool `json:"generateStructures"`
	Flat               bool `json:"flat"`
	EnableHomes        bool `json:"enableHomes"`
	HomeSlots          int  `json:"homeSlots"` // UnlimitedHomes or 1..cap
}

// DefaultSettings returns the options a fresh world starts with.
func DefaultSettings() Settings {
	return Settings{
		GenerateOres:       true,
		GenerateCaves:      true,
		GenerateStructures: true,
		Flat:               false,
		EnableHomes:        true,
		HomeSlots:          UnlimitedHomes,
	}
}

// Unlimited reports whether home slots are uncapped.
func (s Settings) Unlimited() bool {
	return s.HomeSlots == UnlimitedHomes
}

// Clamped returns s with HomeSlots forced into range for the given cap.
func (s Settings) Clamped(homesCap int) Settings {
	s.HomeSlots = ClampHomeSlots(s.HomeSlots, homesCap)
	return s
}

// NormalizeCap returns a usable home cap (at least 1).
func NormalizeCap(homesCap int) int {
	if homesCap < 1 {
		return 1
	}
	return homesCap
}

// ClampHomeSlots keeps n inside [1, homesCap]. Negative values mean unlimited.
func ClampHomeSlots(n, homesCap int) int {
	if n < 0 {
		return UnlimitedHomes
	}
	homesCap = NormalizeCap(homesCap)
	if n < 1 {
		return 1
	}
	if n > homesCap {
		return homesCap
	}
	return n
}

// ParseHomeSlots turns field text into a home-slot value.
// Blank text and "unlimited" (any case) give UnlimitedHomes.
func ParseHomeSlots(raw string, homesCap int) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "unlimited") {
		return UnlimitedHomes, nil
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHomeSlots, raw)
	}
	if n < 1 {
		return 1, nil
	}
	return ClampHomeSlots(n, homesCap), nil
}

// FormatHomeSlots is the inverse of ParseHomeSlots; unlimited becomes "".
func FormatHomeSlots(n int) string {
	if n == UnlimitedHomes {
		return ""
	}
	return strconv.Itoa(n)
}

// WorldRecord is a created world as stored on disk.
type WorldRecord struct {
	Name      string    `json:"name"`
	Settings  Settings  `json:"settings"`
	CreatedAt time.Time `json:"createdAt"`
}
