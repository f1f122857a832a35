package usecase

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Estado de filtros ⇄ URL
// ──────────────────────────────────────────────────────────────────────────────

// La URL solo lleva los parámetros distintos del default: status=contacted,
// category=retail, page=3 produce exactamente esos tres (limit y search en
// default se omiten), y decodificarla reproduce el estado idéntico.
func TestFilterState_RoundTripOmiteDefaults(t *testing.T) {
	state := FilterState{
		Status:   "contacted",
		Category: "retail",
		Search:   "",
		Page:     3,
		Limit:    DefaultPageSize,
	}

	vals := state.Values()
	assert.Len(t, vals, 3, "solo los parámetros fuera de default deben viajar")
	assert.Equal(t, "contacted", vals.Get("status"))
	assert.Equal(t, "retail", vals.Get("category"))
	assert.Equal(t, "3", vals.Get("page"))
	assert.Empty(t, vals.Get("limit"))
	assert.Empty(t, vals.Get("search"))

	decoded := FilterStateFromValues(vals)
	assert.Equal(t, state.Normalize(), decoded,
		"recargar desde la URL debe reproducir el estado de filtros")
}

func TestFilterState_EstadoPorDefectoProduceURLVacia(t *testing.T) {
	vals := DefaultFilterState().Values()
	assert.Empty(t, vals, "el estado por defecto no añade parámetros")

	decoded := FilterStateFromValues(url.Values{})
	assert.Equal(t, DefaultFilterState(), decoded)
}

func TestFilterState_NormalizeAcotaValores(t *testing.T) {
	s := FilterState{Status: "whatever", Category: "", Page: 0, Limit: 33}.Normalize()
	assert.Equal(t, DefaultStatus, s.Status, "status desconocido cae al default")
	assert.Equal(t, DefaultCategory, s.Category)
	assert.Equal(t, 1, s.Page, "page se acota a ≥ 1")
	assert.Equal(t, DefaultPageSize, s.Limit, "limit fuera del conjunto permitido cae al default")
}

func TestFilterState_LimitPermitidoSeConserva(t *testing.T) {
	vals := url.Values{}
	vals.Set("limit", "50")
	vals.Set("search", "panadería")
	s := FilterStateFromValues(vals)
	require.Equal(t, 50, s.Limit)
	assert.Equal(t, "panadería", s.Search)

	out := s.Values()
	assert.Equal(t, "50", out.Get("limit"))
	assert.Equal(t, "panadería", out.Get("search"))
}

func TestFilterState_CategoryActive(t *testing.T) {
	assert.False(t, DefaultFilterState().CategoryActive())
	assert.True(t, FilterState{Category: "retail"}.Normalize().CategoryActive())
}
