package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPresetsAreValid(t *testing.T) {
	require.NoError(t, validatePresets(DefaultPresets()))
}

func TestValidatePresets(t *testing.T) {
	assert.Error(t, validatePresets(nil))

	assert.Error(t, validatePresets([]Preset{
		{Category: "", Description: "A5", Price: 10},
	}))
	assert.Error(t, validatePresets([]Preset{
		{Category: "flyers", Description: " ", Price: 10},
	}))
	assert.Error(t, validatePresets([]Preset{
		{Category: "flyers", Description: "A5", Price: -1},
	}))

	// Category/description pairs must be unique; the same description may
	// repeat across categories.
	assert.Error(t, validatePresets([]Preset{
		{Category: "flyers", Description: "A5", Price: 10},
		{Category: "flyers", Description: "A5", Price: 12},
	}))
	assert.NoError(t, validatePresets([]Preset{
		{Category: "flyers", Description: "A5", Price: 10},
		{Category: "posters", Description: "A5", Price: 12},
	}))
}
