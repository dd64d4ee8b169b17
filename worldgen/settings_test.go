package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHomeSlots(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		homesCap int
		want     int
		wantErr  bool
	}{
		{name: "empty is unlimited", raw: "", homesCap: 10, want: UnlimitedHomes},
		{name: "whitespace is unlimited", raw: "   ", homesCap: 10, want: UnlimitedHomes},
		{name: "unlimited literal", raw: "unlimited", homesCap: 10, want: UnlimitedHomes},
		{name: "unlimited any case", raw: "UnLiMiTeD", homesCap: 3, want: UnlimitedHomes},
		{name: "in range", raw: "7", homesCap: 10, want: 7},
		{name: "above cap clamps", raw: "15", homesCap: 10, want: 10},
		{name: "zero clamps to one", raw: "0", homesCap: 10, want: 1},
		{name: "leading zeros", raw: "0004", homesCap: 10, want: 4},
		{name: "not a number", raw: "abc", homesCap: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHomeSlots(tt.raw, tt.homesCap)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidHomeSlots)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClampHomeSlots(t *testing.T) {
	assert.Equal(t, UnlimitedHomes, ClampHomeSlots(-1, 10))
	assert.Equal(t, UnlimitedHomes, ClampHomeSlots(-42, 10))
	assert.Equal(t, 1, ClampHomeSlots(0, 10))
	assert.Equal(t, 10, ClampHomeSlots(99, 10))
	assert.Equal(t, 1, ClampHomeSlots(5, 0), "cap below one is treated as one")
}

func TestFormatHomeSlotsRoundTrip(t *testing.T) {
	for _, n := range []int{UnlimitedHomes, 1, 8} {
		got, err := ParseHomeSlots(FormatHomeSlots(n), 10)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestToggleFlipsOnlyOneOption(t *testing.T) {
	for _, opt := range Options {
		t.Run(opt.String(), func(t *testing.T) {
			before := DefaultSettings()
			after := before
			after.Toggle(opt)

			for _, other := range Options {
				if other == opt {
					assert.NotEqual(t, before.Enabled(other), after.Enabled(other))
					continue
				}
				assert.Equal(t, before.Enabled(other), after.Enabled(other))
			}
			assert.Equal(t, before.HomeSlots, after.HomeSlots)
		})
	}
}

func TestLabelTracksState(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "Flat World: Off", Label(OptionFlat, s))
	s.Toggle(OptionFlat)
	assert.Equal(t, "Flat World: On", Label(OptionFlat, s))
}

func TestSummary(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "Ores, Caves, Structures | Homes: Unlimited", Summary(s))

	s = Settings{Flat: true, EnableHomes: true, HomeSlots: 3}
	assert.Equal(t, "Flat World | Homes: 3", Summary(s))

	s = Settings{}
	assert.Equal(t, "none | Homes off", Summary(s))
}
