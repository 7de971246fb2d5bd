package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentsByOwnerQuery_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentsByOwnerQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetShipmentsByOwnerQuery_EmptyOwner(t *testing.T) {
	_, err := queries.NewGetShipmentsByOwnerQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetShipmentsByOwnerQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentsByOwnerQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentsByOwnerQueryIsNotConstructed)
}
