package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, headers map[string]string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/addresses", nil)
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	reached := false
	next := func(ctx echo.Context) error {
		reached = true
		return ctx.NoContent(http.StatusOK)
	}

	require.NoError(t, ActorResolver()(next)(ctx))
	return rec, reached
}

func TestActorResolver_ResolvesActorFromHeaders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/addresses", nil)
	req.Header.Set(HeaderUserID, "42")
	req.Header.Set(HeaderUserRole, "CUSTOMER")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	next := func(ctx echo.Context) error {
		actor, ok := actorFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, int64(42), actor.ID())
		assert.Equal(t, kernel.RoleCustomer, actor.Role())
		return ctx.NoContent(http.StatusOK)
	}

	require.NoError(t, ActorResolver()(next)(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestActorResolver_RejectsBadIdentity(t *testing.T) {
	tests := map[string]map[string]string{
		"missing headers": {},
		"missing role":    {HeaderUserID: "42"},
		"non-numeric id":  {HeaderUserID: "abc", HeaderUserRole: "CUSTOMER"},
		"zero id":         {HeaderUserID: "0", HeaderUserRole: "CUSTOMER"},
		"unknown role":    {HeaderUserID: "42", HeaderUserRole: "SUPERUSER"},
	}

	for name, headers := range tests {
		t.Run(name, func(t *testing.T) {
			rec, reached := performRequest(t, headers)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, reached)
		})
	}
}

func TestWriteError_MapsCoreErrorsToStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", errs.NewObjectNotFoundError("orderId", 7), http.StatusNotFound},
		{"forbidden", errs.NewForbiddenError(42, "view this order"), http.StatusForbidden},
		{"conflict", errs.NewConflictError("status", "DELIVERED", "CONFIRMED"), http.StatusConflict},
		{"item unavailable", errs.NewItemUnavailableError("Paneer Tikka"), http.StatusUnprocessableEntity},
		{"below minimum", errs.NewBelowMinimumOrderError("150.00", "200.00"), http.StatusUnprocessableEntity},
		{"invalid value", errs.NewValueIsRequiredError("reason"), http.StatusBadRequest},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			require.NoError(t, writeError(ctx, test.err))
			assert.Equal(t, test.wantStatus, rec.Code)
		})
	}
}
