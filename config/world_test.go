package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/latticeveil/worldgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorldDefaults(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantFlat  bool
		wantOres  bool
		wantSlots int
		wantCap   int
	}{
		{
			name:      "empty document keeps base",
			yaml:      "",
			wantFlat:  false,
			wantOres:  true,
			wantSlots: worldgen.UnlimitedHomes,
			wantCap:   10,
		},
		{
			name:      "only present keys override",
			yaml:      "flat: true\nhomeSlots: 4\n",
			wantFlat:  true,
			wantOres:  true,
			wantSlots: 4,
			wantCap:   10,
		},
		{
			name:      "explicit false is honoured",
			yaml:      "generateOres: false\n",
			wantOres:  false,
			wantSlots: worldgen.UnlimitedHomes,
			wantCap:   10,
		},
		{
			name:      "slots clamp to cap",
			yaml:      "homesCap: 5\nhomeSlots: 50\n",
			wantOres:  true,
			wantSlots: 5,
			wantCap:   5,
		},
		{
			name:      "cap below one becomes one",
			yaml:      "homesCap: 0\nhomeSlots: 3\n",
			wantOres:  true,
			wantSlots: 1,
			wantCap:   1,
		},
	}

	base := WorldDefaults{Settings: worldgen.DefaultSettings(), HomesCap: 10}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWorldDefaults([]byte(tt.yaml), base)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFlat, got.Settings.Flat)
			assert.Equal(t, tt.wantOres, got.Settings.GenerateOres)
			assert.Equal(t, tt.wantSlots, got.Settings.HomeSlots)
			assert.Equal(t, tt.wantCap, got.HomesCap)
		})
	}
}

func TestParseWorldDefaultsInvalid(t *testing.T) {
	base := DefaultWorldDefaults()
	got, err := ParseWorldDefaults([]byte("flat: [nope"), base)
	require.Error(t, err)
	assert.Equal(t, base, got)
}

func TestLoadWorldDefaults(t *testing.T) {
	base := DefaultWorldDefaults()

	t.Run("missing file", func(t *testing.T) {
		got, err := LoadWorldDefaults(filepath.Join(t.TempDir(), "nope.yaml"), base)
		require.NoError(t, err)
		assert.Equal(t, base, got)
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "world.yaml")
		require.NoError(t, os.WriteFile(path, []byte("enableHomes: false\n"), 0o644))

		got, err := LoadWorldDefaults(path, base)
		require.NoError(t, err)
		assert.False(t, got.Settings.EnableHomes)
	})
}
