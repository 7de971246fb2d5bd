package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetFleetQuery_Valid(t *testing.T) {
	query, err := queries.NewGetFleetQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetFleetQuery_EmptyOwner(t *testing.T) {
	_, err := queries.NewGetFleetQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetFleetQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetFleetQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetFleetQueryIsNotConstructed)
}
