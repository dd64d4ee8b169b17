package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/latticeveil/worldgen"
	"github.com/quasilyte/gdata"
)

const (
	worldSettingsKey = "world_settings"
	worldsKey        = "worlds"
)

// itemStore is the subset of *gdata.Manager persistence relies on
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open gdata storage: %w", err)
	}
	store = m
	return nil
}

// LoadWorldSettings returns the last settings chosen in the world settings
// panel, or nil when none were saved.
func LoadWorldSettings() (*worldgen.Settings, error) {
	var s worldgen.Settings
	ok, err := loadJSON(worldSettingsKey, &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

// SaveWorldSettings stores the last used world settings
func SaveWorldSettings(s worldgen.Settings) error {
	return saveJSON(worldSettingsKey, s)
}

// LoadWorlds returns every created world, oldest first
func LoadWorlds() ([]worldgen.WorldRecord, error) {
	var worlds []worldgen.WorldRecord
	if _, err := loadJSON(worldsKey, &worlds); err != nil {
		return nil, err
	}
	return worlds, nil
}

// SaveWorld appends a newly created world
func SaveWorld(rec worldgen.WorldRecord) error {
	if store == nil {
		return nil
	}
	worlds, err := LoadWorlds()
	if err != nil {
		// Don't let a corrupt list block new worlds
		log.Printf("Warning: Discarding unreadable world list: %v", err)
		worlds = nil
	}
	return saveJSON(worldsKey, append(worlds, rec))
}

// LastWorld returns the most recently created world
func LastWorld() (worldgen.WorldRecord, bool) {
	worlds, err := LoadWorlds()
	if err != nil || len(worlds) == 0 {
		return worldgen.WorldRecord{}, false
	}
	return worlds[len(worlds)-1], true
}

// HasSavedWorld returns true if at least one world was created
func HasSavedWorld() bool {
	_, ok := LastWorld()
	return ok
}

func loadJSON(key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}

	data, err := store.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse saved %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(key string, v any) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := store.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
