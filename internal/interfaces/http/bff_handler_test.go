package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/suministros-api/internal/infrastructure/bff"
	apphttp "github.com/tu-usuario/suministros-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Passthrough /api/bff → servicio de jerarquía
// ──────────────────────────────────────────────────────────────────────────────

// buildBFFApp monta el passthrough contra un upstream de prueba que registra
// la URI exacta que recibe.
func buildBFFApp(t *testing.T, lastURI *string) *fiber.App {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*lastURI = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(upstream.Close)

	h := apphttp.NewBFFHandler(bff.NewProxy(upstream.URL, time.Second))
	app := fiber.New()
	app.All("/api/bff/*", h.Forward)
	return app
}

// El front llama /api/bff/hierarchy/...; el servicio expone /v2/hierarchy/...
func TestBFF_RutaJerarquia_LlegaAlUpstreamComoV2(t *testing.T) {
	var lastURI string
	app := buildBFFApp(t, &lastURI)

	req := httptest.NewRequest(http.MethodGet, "/api/bff/hierarchy/tree", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/v2/hierarchy/tree", lastURI)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestBFF_ConservaQueryStringAlReescribir(t *testing.T) {
	var lastURI string
	app := buildBFFApp(t, &lastURI)

	req := httptest.NewRequest(http.MethodGet, "/api/bff/hierarchy/search?q=sede", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "/v2/hierarchy/search?q=sede", lastURI)
}

func TestBFF_ReescribeTambienLasEscrituras(t *testing.T) {
	var lastURI string
	app := buildBFFApp(t, &lastURI)

	req := httptest.NewRequest(http.MethodPost, "/api/bff/hierarchy/nodes", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "/v2/hierarchy/nodes", lastURI)
}
