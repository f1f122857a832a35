package entity

import (
	"strings"
	"time"
)

// Estados del ciclo de contacto de un lead. Un status ausente se trata
// como StatusNew en toda la aplicación (solo el campo almacenado puede
// quedar vacío).
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusConverted = "converted"
	StatusLost      = "lost"
)

// ValidStatus indica si s pertenece al conjunto cerrado de estados.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost:
		return true
	}
	return false
}

// Lead representa un prospecto de negocio alimentado por el pipeline de
// enriquecimiento externo. TierReached indica hasta qué nivel lo procesó
// el pipeline (no se calcula aquí).
type Lead struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Address            string    `json:"address,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Email              string    `json:"email,omitempty"`
	Website            string    `json:"website,omitempty"`
	Category           string    `json:"category,omitempty"` // lista separada por comas
	Rating             float64   `json:"rating,omitempty"`
	RatingCount        int       `json:"rating_count,omitempty"`
	Latitude           float64   `json:"latitude,omitempty"`
	Longitude          float64   `json:"longitude,omitempty"`
	TierReached        int       `json:"tier_reached,omitempty"`
	Status             string    `json:"status,omitempty"`
	IsSmallBusiness    bool      `json:"is_small_business,omitempty"`
	SmallBusinessScore float64   `json:"small_business_score,omitempty"`
	IsInformalBusiness bool      `json:"is_informal_business,omitempty"`
	InformalityScore   float64   `json:"informality_score,omitempty"`
	HasWebsite         bool      `json:"has_website,omitempty"`
	SocialMediaOnly    bool      `json:"social_media_only,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// EffectiveStatus devuelve el status almacenado o StatusNew si está ausente.
func (l *Lead) EffectiveStatus() string {
	if l.Status == "" {
		return StatusNew
	}
	return l.Status
}

// IsContacted indica si el lead cuenta como "contactado" para el dashboard:
// status ∈ {contacted, qualified, converted}. new (o ausente) y lost
// clasifican como no contactado.
func (l *Lead) IsContacted() bool {
	switch l.Status {
	case StatusContacted, StatusQualified, StatusConverted:
		return true
	}
	return false
}

// MainCategory devuelve la categoría principal: el primer token de la lista
// separada por comas, sin espacios. "Retail, Food" → "Retail".
func (l *Lead) MainCategory() string {
	if l.Category == "" {
		return ""
	}
	first, _, _ := strings.Cut(l.Category, ",")
	return strings.TrimSpace(first)
}

// MatchesCategory compara la categoría principal contra category sin
// distinguir mayúsculas. Un category vacío o "all" siempre coincide.
func (l *Lead) MatchesCategory(category string) bool {
	if category == "" || category == "all" {
		return true
	}
	return strings.EqualFold(l.MainCategory(), category)
}

// MatchesSearch aplica la búsqueda por substring (case-insensitive) sobre
// el nombre del negocio. Un término vacío siempre coincide.
func (l *Lead) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Name), strings.ToLower(term))
}
