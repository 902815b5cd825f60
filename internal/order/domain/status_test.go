package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusNew, StatusInProduction, true},
		{StatusNew, StatusReady, false},
		{StatusNew, StatusDone, false},
		{StatusInProduction, StatusReady, true},
		{StatusInProduction, StatusShipped, false},
		{StatusReady, StatusShipped, true},
		{StatusReady, StatusDone, true},
		{StatusShipped, StatusDone, true},
		{StatusDone, StatusNew, false},
		{StatusReady, StatusNew, false},
		// Re-asserting the current status is idempotent.
		{StatusInProduction, StatusInProduction, true},
		{StatusDone, StatusDone, true},
		// Unknown values never transition.
		{Status(0), StatusNew, false},
		{StatusNew, Status(42), false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "new", StatusNew.String())
	assert.Equal(t, "in_production", StatusInProduction.String())
	assert.Equal(t, "done", StatusDone.String())
	assert.Equal(t, "unknown", Status(42).String())
	assert.False(t, Status(42).Valid())
	assert.True(t, StatusShipped.Valid())
}
