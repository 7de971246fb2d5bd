package fleet_test

import (
	"testing"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	t.Run("registers_vehicle", func(t *testing.T) {
		v, err := fleet.NewVehicle(
			kernel.NewUUID(), kernel.NewUUID(),
			"semi", "refrigerated", "AB123CD", 24000,
		)

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, "AB123CD", v.Plate())
		assert.InDelta(t, 24000, v.CapacityKg(), 1e-9)
	})

	t.Run("rejects_invalid_input", func(t *testing.T) {
		testCases := []struct {
			name        string
			vehicleType string
			plate       string
			capacity    float64
		}{
			{"missing_plate", "semi", "", 24000},
			{"missing_vehicle_type", "", "AB123CD", 24000},
			{"non_positive_capacity", "semi", "AB123CD", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := fleet.NewVehicle(
					kernel.NewUUID(), kernel.NewUUID(),
					tc.vehicleType, "flatbed", tc.plate, tc.capacity,
				)
				require.Error(t, err)
			})
		}
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var v fleet.Vehicle

		require.Error(t, v.Validate())
	})
}
