package dto

import (
	"github.com/jhoicas/leadscope-api/internal/domain/entity"
	"github.com/jhoicas/leadscope-api/internal/domain/repository"
)

// LeadListResponse página de leads con metadatos y conteos globales.
// La forma {success, data, total, page, limit, totalPages, stats} es
// idéntica bajo ambos backends.
type LeadListResponse struct {
	Success    bool                 `json:"success"`
	Data       []entity.Lead        `json:"data"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"totalPages"`
	Stats      repository.LeadStats `json:"stats"`
}

// LeadDetailData lead con sus registros hijos.
type LeadDetailData struct {
	Lead           entity.Lead                 `json:"lead"`
	Contacts       []entity.Contact            `json:"contacts"`
	SocialProfiles []entity.SocialProfile      `json:"socialProfiles"`
	EnrichmentLog  []entity.EnrichmentLogEntry `json:"enrichmentLog"`
}

// LeadDetailResponse respuesta de detalle.
type LeadDetailResponse struct {
	Success bool           `json:"success"`
	Data    LeadDetailData `json:"data"`
}

// LeadResponse respuesta con un solo lead (update, mark-contacted).
type LeadResponse struct {
	Success bool        `json:"success"`
	Data    entity.Lead `json:"data"`
}

// UpdateLeadRequest actualización parcial de un lead. El id no se acepta
// como parte del cuerpo (viaja solo en la ruta).
type UpdateLeadRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Website     *string `json:"website,omitempty"`
	Category    *string `json:"category,omitempty"`
	Status      *string `json:"status,omitempty"`
	TierReached *int    `json:"tier_reached,omitempty"`
}

// ToPatch convierte la petición al patch del dominio.
func (r UpdateLeadRequest) ToPatch() repository.LeadPatch {
	return repository.LeadPatch{
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		Email:       r.Email,
		Website:     r.Website,
		Category:    r.Category,
		Status:      r.Status,
		TierReached: r.TierReached,
	}
}

// MarkContactedRequest datos del flujo "marcar contactado": la transición
// de status más la nota del evento de contacto.
type MarkContactedRequest struct {
	Content       string `json:"content"`
	ContactMethod string `json:"contact_method,omitempty"`
	ContactDate   string `json:"contact_date,omitempty"`
}

// CategoriesResponse lista de categorías principales para el facet.
type CategoriesResponse struct {
	Success bool     `json:"success"`
	Data    []string `json:"data"`
}
