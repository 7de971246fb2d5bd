package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
)

// Identity headers set by the identity proxy in front of this service.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserRoles = "X-User-Roles"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	ID    kernel.UUID
	Roles []account.Role
}

// principalFrom reads the authenticated principal from the identity headers.
// A missing or malformed user id means the request never passed the proxy.
func principalFrom(ctx echo.Context) (Principal, bool) {
	rawID := strings.TrimSpace(ctx.Request().Header.Get(HeaderUserID))
	if rawID == "" {
		return Principal{}, false
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return Principal{}, false
	}

	roles, err := account.ParseRoles(ctx.Request().Header.Get(HeaderUserRoles))
	if err != nil {
		return Principal{}, false
	}

	return Principal{ID: id, Roles: roles}, true
}
