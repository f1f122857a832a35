package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ──────────────────────────────────────────────────────────────────────────────
// Derivación de "contactado"
// ──────────────────────────────────────────────────────────────────────────────

func TestIsContacted_PorStatus(t *testing.T) {
	cases := []struct {
		status    string
		contacted bool
	}{
		{StatusNew, false},
		{StatusContacted, true},
		{StatusQualified, true},
		{StatusConverted, true},
		{StatusLost, false},
		{"", false}, // status ausente clasifica como no contactado
	}
	for _, tc := range cases {
		l := Lead{Status: tc.status}
		assert.Equal(t, tc.contacted, l.IsContacted(),
			"status %q debe clasificar contacted=%v", tc.status, tc.contacted)
	}
}

func TestEffectiveStatus_AusenteEsNew(t *testing.T) {
	l := Lead{}
	assert.Equal(t, StatusNew, l.EffectiveStatus(),
		"un status ausente se trata como new")

	l.Status = StatusLost
	assert.Equal(t, StatusLost, l.EffectiveStatus())
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost} {
		assert.True(t, ValidStatus(s), "%q debe ser válido", s)
	}
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Categoría principal
// ──────────────────────────────────────────────────────────────────────────────

func TestMainCategory_PrimerTokenRecortado(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{"Retail, Food", "Retail"},
		{"Retail", "Retail"},
		{"  Spa , Beauty ", "Spa"},
		{"", ""},
	}
	for _, tc := range cases {
		l := Lead{Category: tc.category}
		assert.Equal(t, tc.want, l.MainCategory(), "categoría %q", tc.category)
	}
}

func TestMatchesCategory_CaseInsensitive(t *testing.T) {
	l := Lead{Category: "Retail, Food"}
	assert.True(t, l.MatchesCategory("retail"),
		"el filtro por categoría no distingue mayúsculas")
	assert.True(t, l.MatchesCategory("RETAIL"))
	assert.False(t, l.MatchesCategory("food"),
		"solo la categoría principal cuenta para el filtro")
	assert.True(t, l.MatchesCategory("all"))
	assert.True(t, l.MatchesCategory(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda por nombre
// ──────────────────────────────────────────────────────────────────────────────

func TestMatchesSearch_SubstringCaseInsensitive(t *testing.T) {
	l := Lead{Name: "Panadería La Espiga"}
	assert.True(t, l.MatchesSearch("espiga"))
	assert.True(t, l.MatchesSearch("PANADERÍA"))
	assert.False(t, l.MatchesSearch("ferretería"))
	assert.True(t, l.MatchesSearch(""), "término vacío siempre coincide")
}
