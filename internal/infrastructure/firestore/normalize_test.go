package firestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de documentos
// ──────────────────────────────────────────────────────────────────────────────

func TestLeadFromDoc_IDDelDocumentoYCoercion(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	lead := leadFromDoc("abc123", map[string]interface{}{
		"id":           "campo-ignorado", // el id público viene del documento
		"name":         "Panadería La Espiga",
		"category":     "Retail, Food",
		"status":       "contacted",
		"rating":       4.5,
		"rating_count": int64(120), // el store guarda enteros como int64
		"tier_reached": int64(2),
		"created_at":   created,
		"updated_at":   "2024-06-02T09:30:00Z", // documento antiguo migrado
		"campo_viejo":  "se descarta en silencio",
	})

	assert.Equal(t, "abc123", lead.ID)
	assert.Equal(t, "Panadería La Espiga", lead.Name)
	assert.Equal(t, "contacted", lead.Status)
	assert.Equal(t, 4.5, lead.Rating)
	assert.Equal(t, 120, lead.RatingCount)
	assert.Equal(t, 2, lead.TierReached)
	assert.Equal(t, created, lead.CreatedAt)
	assert.Equal(t, time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC), lead.UpdatedAt,
		"un timestamp en string RFC3339 se normaliza igual que uno nativo")
}

func TestLeadFromDoc_StatusDesconocidoQuedaAusente(t *testing.T) {
	lead := leadFromDoc("x", map[string]interface{}{"status": "archived"})
	assert.Equal(t, "", lead.Status)
	assert.Equal(t, "new", lead.EffectiveStatus())

	lead = leadFromDoc("y", map[string]interface{}{})
	assert.Equal(t, "", lead.Status, "status ausente se conserva ausente")
}

func TestLeadFromDoc_DocumentoMinimoNoFalla(t *testing.T) {
	lead := leadFromDoc("min", map[string]interface{}{"name": "Solo Nombre"})
	assert.Equal(t, "min", lead.ID)
	assert.Equal(t, "Solo Nombre", lead.Name)
	assert.True(t, lead.CreatedAt.IsZero())
	assert.Zero(t, lead.Rating)
}

func TestNoteFromDoc_UpdatedAtSoloSiExiste(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	n := noteFromDoc("n1", map[string]interface{}{
		"lead_id":        "abc123",
		"content":        "llamada inicial, interesado",
		"contact_method": "phone",
		"created_by":     "Ana",
		"created_at":     created,
	})
	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, "abc123", n.LeadID)
	assert.Nil(t, n.UpdatedAt, "sin updated_at en el documento el puntero queda nil")

	updated := created.Add(time.Hour)
	n = noteFromDoc("n2", map[string]interface{}{
		"lead_id":    "abc123",
		"content":    "seguimiento",
		"created_at": created,
		"updated_at": updated,
	})
	require.NotNil(t, n.UpdatedAt)
	assert.Equal(t, updated, *n.UpdatedAt)
}

func TestNoteToDoc_SinIDNiCamposVacios(t *testing.T) {
	n := noteFromDoc("n1", map[string]interface{}{
		"lead_id":    "abc123",
		"content":    "llamada inicial, interesado",
		"created_by": "Ana",
		"created_at": time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	})

	doc := noteToDoc(&n)
	assert.NotContains(t, doc, "id", "el id vive en el documento, nunca como campo")
	assert.NotContains(t, doc, "_id")
	assert.NotContains(t, doc, "contact_method", "los opcionales vacíos no se escriben")
	assert.NotContains(t, doc, "contact_date")
	assert.Equal(t, "abc123", doc["lead_id"])
	assert.Equal(t, "llamada inicial, interesado", doc["content"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Coerción de valores
// ──────────────────────────────────────────────────────────────────────────────

func TestAsTime_FormatosAceptados(t *testing.T) {
	native := time.Date(2024, 6, 1, 12, 0, 0, 0, time.FixedZone("COT", -5*3600))
	assert.Equal(t, native.UTC(), asTime(native), "timestamp nativo se pasa a UTC")

	assert.Equal(t, time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC),
		asTime("2024-06-01T12:00:00-05:00"))
	assert.True(t, asTime("no-es-fecha").IsZero())
	assert.True(t, asTime(nil).IsZero())
	assert.True(t, asTime(int64(1717243200)).IsZero(), "epoch numérico no se interpreta")
}

func TestAsFloatYAsInt_TiposNativos(t *testing.T) {
	assert.Equal(t, 4.5, asFloat(4.5))
	assert.Equal(t, 4.0, asFloat(int64(4)))
	assert.Zero(t, asFloat("4.5"), "strings no se coercen")

	assert.Equal(t, 120, asInt(int64(120)))
	assert.Equal(t, 120, asInt(120.0))
	assert.Zero(t, asInt(nil))
}
