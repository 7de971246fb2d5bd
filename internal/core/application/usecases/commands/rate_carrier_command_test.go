package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

func TestNewRateCarrierCommand_ValidInput(t *testing.T) {
	ratingID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	raterID := kernel.NewUUID()

	cmd, err := commands.NewRateCarrierCommand(ratingID, shipmentID, raterID, 5, 4, 3, "good trip")
	require.NoError(t, err)
	assert.Equal(t, ratingID, cmd.RatingID())
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	assert.Equal(t, raterID, cmd.RaterID())
	assert.Equal(t, 5, cmd.Efficiency())
	assert.Equal(t, 4, cmd.Communication())
	assert.Equal(t, 3, cmd.VehicleCondition())
	assert.Equal(t, "good trip", cmd.Comment())
}

func TestNewRateCarrierCommand_ScoreBelowScale(t *testing.T) {
	_, err := commands.NewRateCarrierCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, 4, 3, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewRateCarrierCommand_ScoreAboveScale(t *testing.T) {
	_, err := commands.NewRateCarrierCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 5, 4, 6, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewRateCarrierCommand_InvalidRaterID(t *testing.T) {
	_, err := commands.NewRateCarrierCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, 5, 4, 3, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestRateCarrierCommand_NotConstructedViaConstructor(t *testing.T) {
	var cmd commands.RateCarrierCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRateCarrierCommandIsNotConstructed)
}
