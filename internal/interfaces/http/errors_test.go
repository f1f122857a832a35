package http

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/leadscope-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo errores de dominio → HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestRespondError_Taxonomia(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"nota corta", domain.ErrNoteTooShort, fiber.StatusBadRequest, "VALIDATION"},
		{"status inválido", domain.ErrInvalidStatus, fiber.StatusBadRequest, "VALIDATION"},
		{"input inválido", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"fallo upstream", domain.NewTransportError(503, errors.New("bad gateway")), fiber.StatusBadGateway, "UPSTREAM"},
		{"desconocido", errors.New("se rompió algo"), fiber.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			body := decodeMap(t, resp)
			assert.Equal(t, tc.wantCode, body["code"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

// Un 404 envuelto por capas superiores sigue mapeando a NOT_FOUND.
func TestRespondError_ErroresEnvueltos(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, errors.Join(errors.New("consultando lead"), domain.ErrNotFound))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
