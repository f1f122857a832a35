package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/leadscope-api/internal/application/dto"
	"github.com/jhoicas/leadscope-api/internal/domain"
	"github.com/jhoicas/leadscope-api/internal/domain/entity"
	"github.com/jhoicas/leadscope-api/internal/domain/repository"
	"github.com/jhoicas/leadscope-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de la fachada (semántica de referencia en memoria)
// ──────────────────────────────────────────────────────────────────────────────

// fakeLeadRepo implementa la fachada en memoria con la misma semántica de
// filtrado que los adaptadores reales: filtros primero, paginación al final
// recortando el arreglo filtrado, stats siempre globales.
type fakeLeadRepo struct {
	leads       []entity.Lead // ordenado por creación descendente
	listCalls   int
	updateCalls int
	onList      func() // hook para simular carreras (se invoca antes de devolver)
}

var _ repository.LeadRepository = (*fakeLeadRepo)(nil)

func (f *fakeLeadRepo) List(filter repository.LeadFilter) (*repository.LeadPage, error) {
	f.listCalls++
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultPageSize
	}

	var filtered []entity.Lead
	for _, l := range f.leads {
		switch filter.Status {
		case repository.StatusFilterContacted:
			if !l.IsContacted() {
				continue
			}
		case repository.StatusFilterNotContacted:
			if l.IsContacted() {
				continue
			}
		}
		if !l.MatchesSearch(filter.Search) {
			continue
		}
		filtered = append(filtered, l)
	}

	total := len(filtered)
	start := (filter.Page - 1) * filter.Limit
	end := start + filter.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	contacted := 0
	for _, l := range f.leads {
		if l.IsContacted() {
			contacted++
		}
	}
	page := &repository.LeadPage{
		Records:    append([]entity.Lead(nil), filtered[start:end]...),
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages(total, filter.Limit),
		Stats: repository.LeadStats{
			All:          len(f.leads),
			Contacted:    contacted,
			NotContacted: len(f.leads) - contacted,
		},
	}
	if f.onList != nil {
		f.onList()
	}
	return page, nil
}

func (f *fakeLeadRepo) Get(id string) (*repository.LeadDetail, error) {
	for _, l := range f.leads {
		if l.ID == id {
			return &repository.LeadDetail{Lead: l}, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeLeadRepo) Update(id string, patch repository.LeadPatch) (*entity.Lead, error) {
	f.updateCalls++
	for i := range f.leads {
		if f.leads[i].ID != id {
			continue
		}
		if patch.Status != nil {
			f.leads[i].Status = *patch.Status
		}
		if patch.Name != nil {
			f.leads[i].Name = *patch.Name
		}
		if patch.Category != nil {
			f.leads[i].Category = *patch.Category
		}
		f.leads[i].UpdatedAt = time.Now().UTC()
		lead := f.leads[i]
		return &lead, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeLeadRepo) Delete(id string) error {
	for i := range f.leads {
		if f.leads[i].ID == id {
			f.leads = append(f.leads[:i:i], f.leads[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeNoteRepo struct {
	notes       []entity.Note
	createCalls int
	failCreate  bool
}

var _ repository.NoteRepository = (*fakeNoteRepo)(nil)

func (f *fakeNoteRepo) ListByLead(leadID string) ([]entity.Note, error) {
	var out []entity.Note
	for _, n := range f.notes {
		if n.LeadID == leadID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) Create(note *entity.Note) (*entity.Note, error) {
	f.createCalls++
	if f.failCreate {
		return nil, domain.NewTransportError(503, assert.AnError)
	}
	saved := *note
	saved.ID = "note-1"
	saved.CreatedAt = time.Now().UTC()
	f.notes = append(f.notes, saved)
	return &saved, nil
}

func (f *fakeNoteRepo) UpdateContent(id, content string) (*entity.Note, error) {
	for i := range f.notes {
		if f.notes[i].ID == id {
			f.notes[i].Content = content
			now := time.Now().UTC()
			f.notes[i].UpdatedAt = &now
			return &f.notes[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeNoteRepo) Delete(id string) error { return nil }

// seedLeads seis leads con statuses y categorías variados, creación
// descendente.
func seedLeads() []entity.Lead {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mk := func(i int, id, name, category, status string) entity.Lead {
		return entity.Lead{
			ID:        id,
			Name:      name,
			Category:  category,
			Status:    status,
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
			UpdatedAt: base.Add(-time.Duration(i) * time.Hour),
		}
	}
	return []entity.Lead{
		mk(0, "l1", "Café Central", "Cafe", ""), // status ausente = new
		mk(1, "l2", "Panadería La Espiga", "Retail, Food", entity.StatusNew),
		mk(2, "l3", "Ferretería El Tornillo", "Retail", entity.StatusContacted),
		mk(3, "l4", "Spa Serenity", "Spa, Beauty", entity.StatusQualified),
		mk(4, "l5", "Barbería Clásica", "Retail", entity.StatusConverted),
		mk(5, "l6", "Gimnasio Fuerte", "Gym", entity.StatusLost),
	}
}

func newTestUseCase(leads *fakeLeadRepo, notes *fakeNoteRepo) *LeadUseCase {
	return NewLeadUseCase(leads, notes, logger.Nop())
}

func ids(leads []entity.Lead) []string {
	out := make([]string, 0, len(leads))
	for _, l := range leads {
		out = append(out, l.ID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Ruta thin (categoría = all)
// ──────────────────────────────────────────────────────────────────────────────

func TestList_RutaThin_FiltroContactado(t *testing.T) {
	repo := &fakeLeadRepo{leads: seedLeads()}
	uc := newTestUseCase(repo, &fakeNoteRepo{})

	out, err := uc.List(FilterState{Status: "contacted", Limit: 10, Page: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"l3", "l4", "l5"}, ids(out.Data),
		"contacted agrupa contacted/qualified/converted")
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.TotalPages)
}

func TestList_StatsSiempreGlobales(t *testing.T) {
	repo := &fakeLeadRepo{leads: seedLeads()}
	uc := newTestUseCase(repo, &fakeNoteRepo{})

	out, err := uc.List(FilterState{Status: "contacted", Limit: 10, Page: 1})
	require.NoError(t, err)

	// El encabezado del dashboard muestra conteos de toda la colección,
	// no del subconjunto filtrado.
	assert.Equal(t, repository.LeadStats{All: 6, Contacted: 3, NotContacted: 3}, out.Stats)
}

func TestList_PaginaMasAllaDelFinal_DevuelveVacioSinError(t *testing.T) {
	repo := &fakeLeadRepo{leads: seedLeads()}
	uc := newTestUseCase(repo, &fakeNoteRepo{})

	out, err := uc.List(FilterState{Page: 5, Limit: 10})
	require.NoError(t, err, "pedir una página más allá del total no es un error")
	assert.Empty(t, out.Data)
	assert.Equal(t, 6, out.Total)
	assert.Equal(t, 1, out.TotalPages)
}

func TestTotalPages_CeilConMinimoUno(t *testing.T) {
	assert.Equal(t, 1, totalPages(0, 10), "total 0 sigue siendo 1 página")
	assert.Equal(t, 1, totalPages(6, 10))
	assert.Equal(t, 2, totalPages(30, 15))
	assert.Equal(t, 3, totalPages(31, 15))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ruta thick (categoría activa)
// ──────────────────────────────────────────────────────────────────────────────

func TestList_RutaThick_FiltraPorCategoriaPrincipal(t *testing.T) {
	repo := &fakeLeadRepo{leads: seedLeads()}
	uc := newTestUseCase(repo, &fakeNoteRepo{})

	out, err := uc.List(FilterState{Category: "retail", Limit: 10, Page: 1})
	require.NoError(t, err)

	// "Retail, Food" cuenta como Retail (solo el primer token) y el match
	// no distingue mayúsculas.
	assert.Equal(t, []string{"l2", "l3", "l5"}, ids(out.Data))
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, repository.LeadStats{All: 6, Contacted: 3, NotContacted: 3}, out.Stats,
		"la ruta thick conserva los stats globales")
}

// Para filtros válidos en ambas rutas el conjunto filtrado observable debe
// ser el mismo: se siembra una colección donde todos comparten categoría
// principal y se compara thin (category=all) contra thick (category fija).
func TestList_RutasThinYThickCoinciden(t *testing.T) {
	leads := seedLeads()
	for i := range leads {
		leads[i].Category = "Retail, " + leads[i].Category
	}

	for _, status := range []string{"all", "contacted", "not_contacted"} {
		thinRepo := &fakeLeadRepo{leads: append([]entity.Lead(nil), leads...)}
		thin := newTestUseCase(thinRepo, &fakeNoteRepo{})
		thickRepo := &fakeLeadRepo{leads: append([]entity.Lead(nil), leads...)}
		thick := newTestUseCase(thickRepo, &fakeNoteRepo{})

		thinOut, err := thin.List(FilterState{Status: status, Limit: 10, Page: 1})
		require.NoError(t, err)
		thickOut, err := thick.List(FilterState{Status: status, Category: "retail", Limit: 10, Page: 1})
		require.NoError(t, err)

		assert.Equal(t, ids(thinOut.Data), ids(thickOut.Data),
			"status %q: ambas rutas deben producir el mismo conjunto", status)
		assert.Equal(t, thinOut.Total, thickOut.Total, "status %q", status)
	}
}

func TestList_RutaThick_BusquedaYPaginacion(t *testing.T) {
	repo := &fakeLeadRepo{leads: seedLeads()}
	uc := newTestUseCase(repo, &fakeNoteRepo{})

	out, err := uc.List(FilterState{Category: "retail", Search: "ería", Limit: 10, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"l2", "l3", "l5"}, ids(out.Data))

	out, err = uc.List(FilterState{Category: "retail", Search: "espiga", Limit: 10, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"l2"}, ids(out.Data))

	out, err = uc.List(FilterState{Category: "retail", Limit: 10, Page: 9})
	require.NoError(t, err)
	assert.Empty(t, out.Data, "página fuera de rango en thick devuelve vacío")
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot: cache e invalidación
// ──────────────────────────────────────────────────────────────────────────────

func TestSnapshot_SeConsultaUnaVezYSeInvalidaConMutaciones(t *testing.T) {
	repo := &fakeLeadRepo{leads: seedLeads()}
	uc := newTestUseCase(repo, &fakeNoteRepo{})

	_, err := uc.List(FilterState{Category: "retail", Limit: 10, Page: 1})
	require.NoError(t, err)
	calls := repo.listCalls

	_, err = uc.Categories()
	require.NoError(t, err)
	_, err = uc.List(FilterState{Category: "gym", Limit: 10, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, calls, repo.listCalls,
		"cambios de filtro reutilizan el snapshot cacheado")

	require.NoError(t, uc.Delete("l3"))
	out, err := uc.List(FilterState{Category: "retail", Limit: 10, Page: 1})
	require.NoError(t, err)
	assert.Greater(t, repo.listCalls, calls, "la mutación fuerza re-consulta")
	assert.NotContains(t, ids(out.Data), "l3")
}

// Carrera delete vs. list en vuelo: la mutación incrementa la generación y
// el snapshot cargado bajo la generación anterior se descarta, así que la
// vista final nunca contiene el lead borrado sin importar el orden de
// terminación.
func TestSnapshot_DeleteDuranteFetchNoDejaDatosObsoletos(t *testing.T) {
	repo := &fakeLeadRepo{leads: seedLeads()}
	uc := newTestUseCase(repo, &fakeNoteRepo{})

	raced := false
	repo.onList = func() {
		if raced {
			return
		}
		raced = true
		require.NoError(t, uc.Delete("l5"))
	}

	out, err := uc.List(FilterState{Category: "retail", Limit: 10, Page: 1})
	require.NoError(t, err)
	assert.True(t, raced)
	assert.NotContains(t, ids(out.Data), "l5",
		"la lista final no debe contener el lead borrado durante el fetch")
}

func TestCategories_UnicasOrdenadasConDisplayCase(t *testing.T) {
	leads := seedLeads()
	leads = append(leads, entity.Lead{ID: "l7", Name: "Mini Market", Category: "retail"})
	repo := &fakeLeadRepo{leads: leads}
	uc := newTestUseCase(repo, &fakeNoteRepo{})

	out, err := uc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Cafe", "Gym", "Retail", "Spa"}, out.Data,
		"categorías principales únicas (case-insensitive), ordenadas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Notas: validación y fallo parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateNote_ContenidoCortoSeRechazaAntesDeLaRed(t *testing.T) {
	repo := &fakeLeadRepo{leads: seedLeads()}
	notes := &fakeNoteRepo{}
	uc := newTestUseCase(repo, notes)

	_, err := uc.CreateNote("l1", dto.CreateNoteRequest{Content: "123456789"}, "Ana")
	assert.ErrorIs(t, err, domain.ErrNoteTooShort, "9 caracteres se rechazan")
	assert.Zero(t, notes.createCalls, "la validación ocurre antes de cualquier llamada")

	out, err := uc.CreateNote("l1", dto.CreateNoteRequest{Content: "1234567890"}, "Ana")
	require.NoError(t, err, "10 caracteres se aceptan")
	assert.Equal(t, 1, notes.createCalls)
	assert.Equal(t, "Ana", out.Data.CreatedBy)
}

func TestMarkContacted_ValidaAntesDeMutar(t *testing.T) {
	repo := &fakeLeadRepo{leads: seedLeads()}
	uc := newTestUseCase(repo, &fakeNoteRepo{})

	_, err := uc.MarkContacted("l1", dto.MarkContactedRequest{Content: "corta"}, "Ana")
	assert.ErrorIs(t, err, domain.ErrNoteTooShort)
	assert.Zero(t, repo.updateCalls, "una nota inválida no debe tocar el backend")
}

// El update de status es la operación de registro: si la nota falla después
// de un update exitoso, el status queda persistido y la operación completa
// se reporta como éxito (el fallo solo va al log).
func TestMarkContacted_FalloDeNotaNoRevierteElStatus(t *testing.T) {
	repo := &fakeLeadRepo{leads: seedLeads()}
	notes := &fakeNoteRepo{failCreate: true}
	uc := newTestUseCase(repo, notes)

	out, err := uc.MarkContacted("l1", dto.MarkContactedRequest{
		Content:       "llamada inicial, interesado en demo",
		ContactMethod: entity.ContactPhone,
	}, "Ana")
	require.NoError(t, err, "el fallo de la nota nunca se reporta como fallo")
	assert.True(t, out.Success)
	assert.Equal(t, entity.StatusContacted, out.Data.Status)
	assert.Equal(t, 1, notes.createCalls, "la escritura de la nota sí se intentó")

	detail, err := repo.Get("l1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusContacted, detail.Lead.Status, "el status quedó persistido")
}

func TestUpdate_PatchVacioEsInvalido(t *testing.T) {
	repo := &fakeLeadRepo{leads: seedLeads()}
	uc := newTestUseCase(repo, &fakeNoteRepo{})

	_, err := uc.Update("l1", dto.UpdateLeadRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet_Inexistente_NotFound(t *testing.T) {
	repo := &fakeLeadRepo{leads: seedLeads()}
	uc := newTestUseCase(repo, &fakeNoteRepo{})

	_, err := uc.Get("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
