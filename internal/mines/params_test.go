package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedRoundTrip(t *testing.T) {
	tests := []GameParams{
		{Width: 8, Height: 8, MineCount: 10},
		{Width: 16, Height: 16, MineCount: 40},
		{Width: 30, Height: 16, MineCount: 99},
	}
	for _, params := range tests {
		t.Run(params.Seed(), func(t *testing.T) {
			parsed, err := ParseSeed(params.Seed())
			assert.NoError(t, err)
			assert.Equal(t, params, *parsed)
		})
	}
}

func TestParseSeedRejectsGarbage(t *testing.T) {
	for _, seed := range []string{"", "8:8", "a:b:c", "8x8x10"} {
		_, err := ParseSeed(seed)
		assert.Error(t, err, "seed %q", seed)
	}
}

func TestPresetByName(t *testing.T) {
	tests := []struct {
		name string
		want Preset
	}{
		{"beginner", Beginner},
		{"Intermediate", Intermediate},
		{"EXPERT", Expert},
	}
	for _, test := range tests {
		preset, ok := PresetByName(test.name)
		assert.True(t, ok)
		assert.Equal(t, test.want, preset)
	}

	_, ok := PresetByName("nightmare")
	assert.False(t, ok)
}

func TestPresetsAreConstructible(t *testing.T) {
	for _, preset := range []Preset{Beginner, Intermediate, Expert} {
		_, err := NewGame(preset.GameParams, testRand())
		assert.NoError(t, err, "preset %s", preset.Name)
	}
}
