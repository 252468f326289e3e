package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performHealthCheck(t *testing.T, ping func(ctx context.Context) error, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	var bodyReader *strings.Reader
	if body == "" {
		bodyReader = strings.NewReader("")
	} else {
		bodyReader = strings.NewReader(body)
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", bodyReader)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHealthHandler(ping)
	require.NoError(t, h.Check(c))

	return rec
}

func TestHealthHandler_Healthy(t *testing.T) {
	rec := performHealthCheck(t, func(ctx context.Context) error { return nil }, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Cache-Control"), "no-store")
	assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	rec := performHealthCheck(t, func(ctx context.Context) error {
		return errors.New("connection refused")
	}, "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHealthHandler_RejectsPayload(t *testing.T) {
	rec := performHealthCheck(t, func(ctx context.Context) error { return nil }, `{"probe":true}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandler_RejectsChunkedPayload(t *testing.T) {
	e := echo.New()

	// A chunked body has no declared length; ContentLength is -1.
	req := httptest.NewRequest(http.MethodGet, "/healthz", strings.NewReader(`{"probe":true}`))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHealthHandler(func(ctx context.Context) error { return nil })
	require.NoError(t, h.Check(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
