package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/assist/internal/adapters/seed"
	"github.com/logitrack/assist/internal/domain"
)

func TestFleetSnapshotLoadsAndValidates(t *testing.T) {
	shipments, vehicles, err := seed.Fleet()
	require.NoError(t, err)

	require.Len(t, shipments, 4)
	require.Len(t, vehicles, 6)

	// The featured demo shipment the assistant references must exist.
	assert.Equal(t, domain.ShipmentID("SH-2024-001"), shipments[0].ID)
	assert.Equal(t, domain.ShipmentInTransit, shipments[0].Status)
	assert.Equal(t, 75, shipments[0].ProgressPercent)

	for _, s := range shipments {
		assert.NoError(t, s.Validate())
	}
	for _, v := range vehicles {
		assert.NoError(t, v.Validate())
	}
}
