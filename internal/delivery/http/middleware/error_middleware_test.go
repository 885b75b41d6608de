package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "phonestore/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, domainerrors.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	newTestErrorMiddleware().HandleHTTPError(err, c)

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_EmptyCartCarriesWarningSeverity(t *testing.T) {
	rec, body := recordError(t, errors.Wrap(domainerrors.ErrEmptyCart, "checkout failed"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "EMPTY_CART", body.Error.Code)
	assert.Equal(t, "warning", body.Error.Severity)
}

func TestErrorMiddleware_AppErrorDefaultsToErrorSeverity(t *testing.T) {
	rec, body := recordError(t, errors.Wrap(domainerrors.ErrPhoneNotFound, "lookup failed"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "PHONE_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "error", body.Error.Severity)
}

func TestErrorMiddleware_UnknownErrorReturnsInternal(t *testing.T) {
	rec, body := recordError(t, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	// The raw error text never reaches the client.
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
