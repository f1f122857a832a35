package usecase

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/leadscope-api/internal/application/dto"
	"github.com/jhoicas/leadscope-api/internal/domain"
	"github.com/jhoicas/leadscope-api/internal/domain/entity"
	"github.com/jhoicas/leadscope-api/internal/domain/repository"
	"github.com/jhoicas/leadscope-api/pkg/logger"
)

// SnapshotLimit cota del snapshot para la ruta thick (los N leads más
// recientes). Límite de escala conocido: los leads más allá de la cota
// quedan fuera del facet y del filtrado por categoría; se registra un
// warning cuando el total real supera la cota.
const SnapshotLimit = 1000

var titleCaser = cases.Title(language.Und)

// LeadUseCase controlador de consultas del dashboard. Decide entre dos
// estrategias de filtrado:
//
//   - ruta thin  (categoría = all): delega status/búsqueda/paginación a la
//     fachada (filtrado del lado del store/servidor);
//   - ruta thick (categoría activa): ninguno de los backends soporta la
//     dimensión de categoría, así que se trae un snapshot acotado de los
//     más recientes una sola vez y TODO el filtrado (categoría, status,
//     búsqueda) y la paginación ocurren en memoria.
//
// Para filtros válidos en ambas rutas (solo status, solo búsqueda) las dos
// producen el mismo conjunto filtrado observable.
//
// Las mutaciones incrementan un contador de generación; un snapshot cargado
// bajo una generación ya superada se descarta en vez de cachearse, de modo
// que una lectura lenta nunca pisa el estado posterior a una mutación.
type LeadUseCase struct {
	leads repository.LeadRepository
	notes repository.NoteRepository
	log   *logger.Logger

	generation atomic.Uint64

	mu            sync.Mutex
	snapshot      []entity.Lead
	snapshotStats repository.LeadStats
	snapshotGen   uint64
	snapshotOK    bool
}

// NewLeadUseCase construye el controlador.
func NewLeadUseCase(leads repository.LeadRepository, notes repository.NoteRepository, log *logger.Logger) *LeadUseCase {
	return &LeadUseCase{leads: leads, notes: notes, log: log}
}

// List resuelve el listado según el estado de filtros.
func (uc *LeadUseCase) List(state FilterState) (*dto.LeadListResponse, error) {
	state = state.Normalize()

	if !state.CategoryActive() {
		page, err := uc.leads.List(repository.LeadFilter{
			Status: state.Status,
			Search: state.Search,
			Page:   state.Page,
			Limit:  state.Limit,
		})
		if err != nil {
			return nil, err
		}
		return &dto.LeadListResponse{
			Success:    true,
			Data:       nonNilLeads(page.Records),
			Total:      page.Total,
			Page:       page.Page,
			Limit:      state.Limit,
			TotalPages: page.TotalPages,
			Stats:      page.Stats,
		}, nil
	}

	snapshot, stats, err := uc.snapshotLeads()
	if err != nil {
		return nil, err
	}

	filtered := make([]entity.Lead, 0, len(snapshot))
	for _, l := range snapshot {
		if !l.MatchesCategory(state.Category) {
			continue
		}
		if state.Status == repository.StatusFilterContacted && !l.IsContacted() {
			continue
		}
		if state.Status == repository.StatusFilterNotContacted && l.IsContacted() {
			continue
		}
		if !l.MatchesSearch(state.Search) {
			continue
		}
		filtered = append(filtered, l)
	}

	total := len(filtered)
	start := (state.Page - 1) * state.Limit
	end := start + state.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &dto.LeadListResponse{
		Success:    true,
		Data:       filtered[start:end],
		Total:      total,
		Page:       state.Page,
		Limit:      state.Limit,
		TotalPages: totalPages(total, state.Limit),
		Stats:      stats, // siempre los conteos globales, no los del subconjunto
	}, nil
}

// Categories devuelve las categorías principales presentes en el snapshot,
// únicas (case-insensitive), en display-case y ordenadas.
func (uc *LeadUseCase) Categories() (*dto.CategoriesResponse, error) {
	snapshot, _, err := uc.snapshotLeads()
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var categories []string
	for _, l := range snapshot {
		main := l.MainCategory()
		if main == "" {
			continue
		}
		key := strings.ToLower(main)
		if seen[key] {
			continue
		}
		seen[key] = true
		categories = append(categories, titleCaser.String(key))
	}
	sort.Strings(categories)
	if categories == nil {
		categories = []string{}
	}
	return &dto.CategoriesResponse{Success: true, Data: categories}, nil
}

// Get obtiene el detalle de un lead.
func (uc *LeadUseCase) Get(id string) (*dto.LeadDetailResponse, error) {
	detail, err := uc.leads.Get(id)
	if err != nil {
		return nil, err
	}
	data := dto.LeadDetailData{
		Lead:           detail.Lead,
		Contacts:       detail.Contacts,
		SocialProfiles: detail.SocialProfiles,
		EnrichmentLog:  detail.EnrichmentLog,
	}
	if data.Contacts == nil {
		data.Contacts = []entity.Contact{}
	}
	if data.SocialProfiles == nil {
		data.SocialProfiles = []entity.SocialProfile{}
	}
	if data.EnrichmentLog == nil {
		data.EnrichmentLog = []entity.EnrichmentLogEntry{}
	}
	return &dto.LeadDetailResponse{Success: true, Data: data}, nil
}

// Update aplica una actualización parcial e invalida el snapshot.
func (uc *LeadUseCase) Update(id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	patch := in.ToPatch()
	if patch.IsEmpty() {
		return nil, domain.ErrInvalidInput
	}
	lead, err := uc.leads.Update(id, patch)
	if err != nil {
		return nil, err
	}
	uc.invalidate()
	return &dto.LeadResponse{Success: true, Data: *lead}, nil
}

// Delete elimina un lead e invalida el snapshot: el siguiente listado
// thick re-consulta en lugar de confiar en datos pre-borrado.
func (uc *LeadUseCase) Delete(id string) error {
	if err := uc.leads.Delete(id); err != nil {
		return err
	}
	uc.invalidate()
	return nil
}

// MarkContacted transiciona el lead a "contacted" y registra la nota del
// evento. La transición de status es la operación de registro: si la
// escritura de la nota falla después de un update exitoso, el fallo solo
// se registra en el log y la operación completa se reporta como éxito
// (garantía de a-lo-sumo-una-escritura-crítica).
func (uc *LeadUseCase) MarkContacted(id string, in dto.MarkContactedRequest, actor string) (*dto.LeadResponse, error) {
	if err := validateNoteContent(in.Content); err != nil {
		return nil, err
	}
	if !entity.ValidContactMethod(in.ContactMethod) {
		return nil, domain.ErrInvalidInput
	}

	status := entity.StatusContacted
	lead, err := uc.leads.Update(id, repository.LeadPatch{Status: &status})
	if err != nil {
		return nil, err
	}
	uc.invalidate()

	note := &entity.Note{
		LeadID:        id,
		Content:       strings.TrimSpace(in.Content),
		ContactMethod: in.ContactMethod,
		ContactDate:   in.ContactDate,
		CreatedBy:     actor,
	}
	if _, err := uc.notes.Create(note); err != nil {
		uc.log.Warn().Err(err).Str("lead_id", id).
			Msg("status actualizado pero falló la escritura de la nota de contacto")
	}
	return &dto.LeadResponse{Success: true, Data: *lead}, nil
}

// ListNotes devuelve las notas del lead, creación descendente.
func (uc *LeadUseCase) ListNotes(leadID string) (*dto.NotesResponse, error) {
	notes, err := uc.notes.ListByLead(leadID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []entity.Note{}
	}
	return &dto.NotesResponse{Success: true, Data: notes}, nil
}

// CreateNote crea una nota suelta sobre un lead. La longitud mínima la
// valida el controlador antes de cualquier llamada al backend.
func (uc *LeadUseCase) CreateNote(leadID string, in dto.CreateNoteRequest, actor string) (*dto.NoteResponse, error) {
	if err := validateNoteContent(in.Content); err != nil {
		return nil, err
	}
	if !entity.ValidContactMethod(in.ContactMethod) {
		return nil, domain.ErrInvalidInput
	}
	saved, err := uc.notes.Create(&entity.Note{
		LeadID:        leadID,
		Content:       strings.TrimSpace(in.Content),
		ContactMethod: in.ContactMethod,
		ContactDate:   in.ContactDate,
		CreatedBy:     actor,
	})
	if err != nil {
		return nil, err
	}
	return &dto.NoteResponse{Success: true, Data: *saved}, nil
}

// UpdateNote edita el contenido de una nota existente.
func (uc *LeadUseCase) UpdateNote(id, content string) (*dto.NoteResponse, error) {
	if err := validateNoteContent(content); err != nil {
		return nil, err
	}
	saved, err := uc.notes.UpdateContent(id, strings.TrimSpace(content))
	if err != nil {
		return nil, err
	}
	return &dto.NoteResponse{Success: true, Data: *saved}, nil
}

// DeleteNote elimina una nota.
func (uc *LeadUseCase) DeleteNote(id string) error {
	return uc.notes.Delete(id)
}

// snapshotLeads devuelve el snapshot acotado (y sus stats globales),
// consultándolo una sola vez y cacheándolo hasta la siguiente mutación.
// Si una mutación gana la carrera mientras la consulta está en vuelo, el
// resultado obsoleto se descarta y se re-consulta.
func (uc *LeadUseCase) snapshotLeads() ([]entity.Lead, repository.LeadStats, error) {
	for {
		gen := uc.generation.Load()

		uc.mu.Lock()
		if uc.snapshotOK && uc.snapshotGen == gen {
			snapshot, stats := uc.snapshot, uc.snapshotStats
			uc.mu.Unlock()
			return snapshot, stats, nil
		}
		uc.mu.Unlock()

		page, err := uc.leads.List(repository.LeadFilter{
			Status: repository.StatusFilterAll,
			Page:   1,
			Limit:  SnapshotLimit,
		})
		if err != nil {
			return nil, repository.LeadStats{}, err
		}
		if uc.generation.Load() != gen {
			continue // superado por una mutación: descartar y re-consultar
		}
		if page.Total > SnapshotLimit {
			uc.log.Warn().
				Int("total", page.Total).
				Int("snapshot_limit", SnapshotLimit).
				Msg("snapshot truncado: el facet de categorías ignora leads más antiguos")
		}

		uc.mu.Lock()
		uc.snapshot = page.Records
		uc.snapshotStats = page.Stats
		uc.snapshotGen = gen
		uc.snapshotOK = true
		uc.mu.Unlock()
		return page.Records, page.Stats, nil
	}
}

func (uc *LeadUseCase) invalidate() {
	uc.generation.Add(1)
}

// validateNoteContent regla de negocio: mínimo 10 caracteres (sobre el
// contenido sin espacios en los extremos). Se rechaza antes de cualquier
// llamada de red.
func validateNoteContent(content string) error {
	if utf8.RuneCountInString(strings.TrimSpace(content)) < entity.MinNoteLength {
		return domain.ErrNoteTooShort
	}
	return nil
}

// totalPages = ceil(total/limit), mínimo 1 (total 0 sigue siendo 1 página).
func totalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

func nonNilLeads(leads []entity.Lead) []entity.Lead {
	if leads == nil {
		return []entity.Lead{}
	}
	return leads
}
