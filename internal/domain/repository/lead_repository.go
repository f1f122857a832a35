package repository

import "github.com/jhoicas/leadscope-api/internal/domain/entity"

// Valores del filtro por status en los listados.
const (
	StatusFilterAll          = "all"
	StatusFilterContacted    = "contacted"
	StatusFilterNotContacted = "not_contacted"
)

// LeadFilter parámetros de listado que ambos backends entienden.
// La dimensión de categoría NO viaja aquí: ningún backend la soporta y la
// resuelve el caso de uso en memoria (ruta "thick").
type LeadFilter struct {
	Status string // all | not_contacted | contacted
	Search string // substring sobre el nombre, case-insensitive
	Page   int    // ≥ 1
	Limit  int    // tamaño de página
}

// LeadStats conteos globales de la colección completa (no del subconjunto
// filtrado): el encabezado del dashboard siempre muestra totales globales.
type LeadStats struct {
	All          int `json:"all"`
	Contacted    int `json:"contacted"`
	NotContacted int `json:"notContacted"`
}

// LeadPage página de resultados con metadatos de paginación y stats.
type LeadPage struct {
	Records    []entity.Lead
	Total      int
	Page       int
	TotalPages int
	Stats      LeadStats
}

// LeadDetail lead con sus registros hijos de solo lectura.
type LeadDetail struct {
	Lead           entity.Lead
	Contacts       []entity.Contact
	SocialProfiles []entity.SocialProfile
	EnrichmentLog  []entity.EnrichmentLogEntry
}

// LeadPatch actualización parcial de un lead. El ID nunca forma parte del
// patch; el backend fija UpdatedAt.
type LeadPatch struct {
	Name        *string
	Address     *string
	Phone       *string
	Email       *string
	Website     *string
	Category    *string
	Status      *string
	TierReached *int
}

// IsEmpty indica si el patch no modifica ningún campo.
func (p LeadPatch) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.Phone == nil &&
		p.Email == nil && p.Website == nil && p.Category == nil &&
		p.Status == nil && p.TierReached == nil
}

// LeadRepository puerto de consulta/mutación de leads (la fachada que
// implementan ambos adaptadores: Firestore y REST). Dado el mismo input,
// ambos deben devolver outputs con la misma forma y semántica de filtrado
// (módulo la aproximación documentada de not_contacted).
type LeadRepository interface {
	List(filter LeadFilter) (*LeadPage, error)
	Get(id string) (*LeadDetail, error)
	Update(id string, patch LeadPatch) (*entity.Lead, error)
	Delete(id string) error
}
