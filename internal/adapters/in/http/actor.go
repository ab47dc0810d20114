package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the API gateway after authentication. This service
// trusts them; it performs authorization, not authentication.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const actorContextKey = "actor"

// ActorResolver builds the acting identity from the gateway headers and
// stores it on the request context. Requests without a valid identity are
// rejected with 401 before any handler runs.
func ActorResolver() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rawID := ctx.Request().Header.Get(HeaderUserID)
			rawRole := ctx.Request().Header.Get(HeaderUserRole)
			if rawID == "" || rawRole == "" {
				return unauthorized(ctx, "Missing identity headers")
			}

			userID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil {
				return unauthorized(ctx, "Invalid "+HeaderUserID+" header")
			}

			actor, err := kernel.NewActor(userID, kernel.Role(rawRole))
			if err != nil {
				return unauthorized(ctx, "Invalid identity headers")
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

func actorFromContext(ctx echo.Context) (kernel.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	return actor, ok
}
