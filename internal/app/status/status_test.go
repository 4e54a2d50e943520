package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logitrack/assist/internal/app/status"
)

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		in        string
		wantColor string
		wantLabel string
		wantIcon  string
	}{
		{"delivered", status.ColorDelivered, "Delivered", "check-circle"},
		{"in-transit", status.ColorInTransit, "In Transit", "truck"},
		{"delayed", status.ColorDelayed, "Delayed", "map-pin"},
		{"pending", status.ColorPending, "Pending", "package"},
		{"active", status.ColorDelivered, "Active", "truck"},
		{"idle", status.ColorPending, "Idle", "clock"},
		{"maintenance", status.ColorDelayed, "Maintenance", "settings"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := status.ClassifyStatus(tc.in)
			assert.Equal(t, tc.wantColor, got.ColorToken)
			assert.Equal(t, tc.wantLabel, got.Label)
			assert.Equal(t, tc.wantIcon, got.Icon)
		})
	}
}

// Unknown values must stay renderable instead of failing.
func TestClassifyStatusUnknownFallsBackToMuted(t *testing.T) {
	got := status.ClassifyStatus("out-for-lunch")
	assert.Equal(t, status.ColorMuted, got.ColorToken)
	assert.Equal(t, "OUT FOR LUNCH", got.Label)

	empty := status.ClassifyStatus("")
	assert.Equal(t, status.ColorMuted, empty.ColorToken)
	assert.Equal(t, "Unknown", empty.Label)
}

func TestClassifyPriority(t *testing.T) {
	assert.Equal(t, status.ColorDelayed, status.ClassifyPriority("high").ColorToken)
	assert.Equal(t, status.ColorInTransit, status.ClassifyPriority("medium").ColorToken)
	assert.Equal(t, status.ColorPending, status.ClassifyPriority("low").ColorToken)
	assert.Equal(t, status.ColorMuted, status.ClassifyPriority("urgent").ColorToken)
}

// Every percentage in [0,100] lands in exactly one of the three buckets, and
// severity never decreases as the percentage drops.
func TestClassifyFuelLevelTotalAndMonotonic(t *testing.T) {
	severity := map[status.FuelBucket]int{
		status.FuelGood:   0,
		status.FuelMedium: 1,
		status.FuelLow:    2,
	}

	prev := -1
	for percent := 100; percent >= 0; percent-- {
		level := status.ClassifyFuelLevel(percent)

		sev, known := severity[level.Bucket]
		assert.True(t, known, "percent %d produced unknown bucket %q", percent, level.Bucket)
		assert.GreaterOrEqual(t, sev, prev, "severity regressed at percent %d", percent)
		prev = sev
	}
}

// Boundaries are closed on the lower side: 70 is medium, 30 is low. Shifting
// either visibly changes which vehicles show as low on fuel.
func TestClassifyFuelLevelBoundaries(t *testing.T) {
	assert.Equal(t, status.FuelGood, status.ClassifyFuelLevel(71).Bucket)
	assert.Equal(t, status.FuelMedium, status.ClassifyFuelLevel(70).Bucket)
	assert.Equal(t, status.FuelMedium, status.ClassifyFuelLevel(31).Bucket)
	assert.Equal(t, status.FuelLow, status.ClassifyFuelLevel(30).Bucket)
	assert.Equal(t, status.FuelLow, status.ClassifyFuelLevel(0).Bucket)
	assert.Equal(t, status.FuelGood, status.ClassifyFuelLevel(100).Bucket)
}
