package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentHistoryQuery_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentHistoryQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetShipmentHistoryQuery_EmptyShipment(t *testing.T) {
	_, err := queries.NewGetShipmentHistoryQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetShipmentHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentHistoryQueryIsNotConstructed)
}
