package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"required value", errs.NewValueIsRequiredError("weight"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("amount"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("score", 9, 1, 5), http.StatusBadRequest},
		{"unauthorized", errs.NewUnauthorizedError("actor", "AcceptQuote"), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("shipment", "x"), http.StatusNotFound},
		{"conflict", errs.NewConflictError("already accepted"), http.StatusConflict},
		{"expired", errs.NewExpiredError("quote", time.Now()), http.StatusGone},
		{"invalid transition", errs.NewInvalidTransitionError("shipment", "Completed", "Cancel"), http.StatusUnprocessableEntity},
		{"upstream unavailable", errs.NewUpstreamUnavailableError("geocoder", nil), http.StatusServiceUnavailable},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func newEchoContext(t *testing.T, headers map[string]string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestPrincipalFrom(t *testing.T) {
	userID := kernel.NewUUID()

	t.Run("valid headers", func(t *testing.T) {
		ctx := newEchoContext(t, map[string]string{
			HeaderUserID:    userID.String(),
			HeaderUserRoles: "dador,operador",
		})

		principal, ok := principalFrom(ctx)
		require.True(t, ok)
		assert.True(t, principal.ID.IsEqual(userID))
		assert.Equal(t, []account.Role{account.RoleShipper, account.RoleCarrier}, principal.Roles)
	})

	t.Run("missing user id", func(t *testing.T) {
		ctx := newEchoContext(t, map[string]string{HeaderUserRoles: "dador"})

		_, ok := principalFrom(ctx)
		assert.False(t, ok)
	})

	t.Run("malformed user id", func(t *testing.T) {
		ctx := newEchoContext(t, map[string]string{HeaderUserID: "not-a-uuid"})

		_, ok := principalFrom(ctx)
		assert.False(t, ok)
	})

	t.Run("unknown role", func(t *testing.T) {
		ctx := newEchoContext(t, map[string]string{
			HeaderUserID:    userID.String(),
			HeaderUserRoles: "admin",
		})

		_, ok := principalFrom(ctx)
		assert.False(t, ok)
	})

	t.Run("no roles header", func(t *testing.T) {
		ctx := newEchoContext(t, map[string]string{HeaderUserID: userID.String()})

		principal, ok := principalFrom(ctx)
		require.True(t, ok)
		assert.Empty(t, principal.Roles)
	})
}
