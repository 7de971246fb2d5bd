package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetQuotesByCarrierQuery_Valid(t *testing.T) {
	query, err := queries.NewGetQuotesByCarrierQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetQuotesByCarrierQuery_EmptyCarrier(t *testing.T) {
	_, err := queries.NewGetQuotesByCarrierQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetQuotesByCarrierQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetQuotesByCarrierQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetQuotesByCarrierQueryIsNotConstructed)
}
