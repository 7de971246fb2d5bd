package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
)

func testShipment(t *testing.T, ownerID kernel.UUID, status shipment.Status) *shipment.Shipment {
	t.Helper()

	origin, err := shipment.NewWaypoint("Av. Rivadavia 2000, Buenos Aires")
	require.NoError(t, err)
	destination, err := shipment.NewWaypoint("Ruta 9 km 80, Campana")
	require.NoError(t, err)

	shp, err := shipment.RestoreShipment(
		kernel.NewUUID(), ownerID, status, origin, destination, nil, 500, time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	return shp
}

func testQuote(t *testing.T, shipmentID, carrierID kernel.UUID, status quote.Status) *quote.Quote {
	t.Helper()

	offer, err := kernel.NewMoney(42000)
	require.NoError(t, err)

	now := time.Now()
	q, err := quote.RestoreQuote(
		kernel.NewUUID(), shipmentID, carrierID, "Fletes del Plata", offer,
		now, now.Add(quote.ValidityPeriod), status)
	require.NoError(t, err)
	return q
}

func expiredPendingQuote(t *testing.T, shipmentID kernel.UUID) *quote.Quote {
	t.Helper()

	offer, err := kernel.NewMoney(42000)
	require.NoError(t, err)

	createdAt := time.Now().Add(-quote.ValidityPeriod - time.Hour)
	q, err := quote.RestoreQuote(
		kernel.NewUUID(), shipmentID, kernel.NewUUID(), "Fletes del Plata", offer,
		createdAt, createdAt.Add(quote.ValidityPeriod), quote.Pending)
	require.NoError(t, err)
	return q
}

func testCarrierProfile(t *testing.T, id kernel.UUID) *account.Profile {
	t.Helper()

	p, err := account.NewProfile(
		id, "Fletes del Plata", account.Business,
		[]account.Role{account.RoleCarrier}, "ops@fletesdelplata.com.ar", "+54 11 4555-0199")
	require.NoError(t, err)
	return p
}

func testShipperProfile(t *testing.T, id kernel.UUID) *account.Profile {
	t.Helper()

	p, err := account.NewProfile(
		id, "Molinos Centro", account.Business,
		[]account.Role{account.RoleShipper}, "logistica@molinoscentro.com.ar", "")
	require.NoError(t, err)
	return p
}
