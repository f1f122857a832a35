package usecase

import (
	"net/url"
	"strconv"

	"github.com/jhoicas/leadscope-api/internal/domain/repository"
)

// Defaults del estado de filtros del dashboard. En la URL solo viajan los
// parámetros distintos de su default, para mantener URLs mínimas y
// compartibles.
const (
	DefaultStatus   = repository.StatusFilterAll
	DefaultCategory = "all"
	DefaultPageSize = 15
)

// AllowedPageSizes tamaños de página que acepta el dashboard.
var AllowedPageSizes = []int{10, 15, 25, 50}

// FilterState estado de filtros/paginación del listado, espejado a la URL
// navegable para sobrevivir recargas.
type FilterState struct {
	Status   string // all | not_contacted | contacted
	Category string // "all" o una categoría principal normalizada
	Search   string
	Page     int
	Limit    int
}

// DefaultFilterState estado inicial del dashboard.
func DefaultFilterState() FilterState {
	return FilterState{
		Status:   DefaultStatus,
		Category: DefaultCategory,
		Page:     1,
		Limit:    DefaultPageSize,
	}
}

// Normalize aplica defaults y acota valores fuera de rango: page ≥ 1 y
// limit restringido al conjunto permitido (fallback al default).
func (s FilterState) Normalize() FilterState {
	switch s.Status {
	case repository.StatusFilterContacted, repository.StatusFilterNotContacted:
	default:
		s.Status = DefaultStatus
	}
	if s.Category == "" {
		s.Category = DefaultCategory
	}
	if s.Page < 1 {
		s.Page = 1
	}
	if !allowedPageSize(s.Limit) {
		s.Limit = DefaultPageSize
	}
	return s
}

// CategoryActive indica si el filtro de categoría está activo (ruta thick).
func (s FilterState) CategoryActive() bool {
	return s.Category != "" && s.Category != DefaultCategory
}

// Values codifica el estado a query params, omitiendo los defaults.
// Round-trip sin pérdida con FilterStateFromValues para estados canónicos.
func (s FilterState) Values() url.Values {
	s = s.Normalize()
	v := url.Values{}
	if s.Status != DefaultStatus {
		v.Set("status", s.Status)
	}
	if s.Category != DefaultCategory {
		v.Set("category", s.Category)
	}
	if s.Search != "" {
		v.Set("search", s.Search)
	}
	if s.Limit != DefaultPageSize {
		v.Set("limit", strconv.Itoa(s.Limit))
	}
	if s.Page != 1 {
		v.Set("page", strconv.Itoa(s.Page))
	}
	return v
}

// FilterStateFromValues reconstruye el estado desde query params,
// aplicando defaults para los ausentes.
func FilterStateFromValues(v url.Values) FilterState {
	s := DefaultFilterState()
	if raw := v.Get("status"); raw != "" {
		s.Status = raw
	}
	if raw := v.Get("category"); raw != "" {
		s.Category = raw
	}
	s.Search = v.Get("search")
	if raw := v.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			s.Page = n
		}
	}
	if raw := v.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			s.Limit = n
		}
	}
	return s.Normalize()
}

func allowedPageSize(n int) bool {
	for _, size := range AllowedPageSizes {
		if n == size {
			return true
		}
	}
	return false
}
