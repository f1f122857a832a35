package restapi

import (
	"net/http"
	"net/url"

	"github.com/jhoicas/leadscope-api/internal/domain/entity"
	"github.com/jhoicas/leadscope-api/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo implementación del puerto NoteRepository contra la API REST.
type NoteRepo struct {
	client *Client
}

// NewNoteRepository construye el adaptador de notas.
func NewNoteRepository(client *Client) *NoteRepo {
	return &NoteRepo{client: client}
}

type notesEnvelope struct {
	Success bool       `json:"success"`
	Data    []wireNote `json:"data"`
}

type noteEnvelope struct {
	Success bool     `json:"success"`
	Data    wireNote `json:"data"`
}

// ListByLead devuelve las notas ordenadas por creación descendente (el
// servidor aplica el orden).
func (r *NoteRepo) ListByLead(leadID string) ([]entity.Note, error) {
	var env notesEnvelope
	path := "/api/leads/" + url.PathEscape(leadID) + "/notes"
	if err := r.client.doJSON(http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	notes := make([]entity.Note, 0, len(env.Data))
	for _, w := range env.Data {
		notes = append(notes, w.toEntity())
	}
	return notes, nil
}

// Create persiste una nota nueva; el servidor asigna id y created_at.
func (r *NoteRepo) Create(note *entity.Note) (*entity.Note, error) {
	body := map[string]interface{}{
		"content":    note.Content,
		"created_by": note.CreatedBy,
	}
	if note.ContactMethod != "" {
		body["contact_method"] = note.ContactMethod
	}
	if note.ContactDate != "" {
		body["contact_date"] = note.ContactDate
	}
	var env noteEnvelope
	path := "/api/leads/" + url.PathEscape(note.LeadID) + "/notes"
	if err := r.client.doJSON(http.MethodPost, path, nil, body, &env); err != nil {
		return nil, err
	}
	saved := env.Data.toEntity()
	return &saved, nil
}

// UpdateContent reemplaza el contenido de una nota.
func (r *NoteRepo) UpdateContent(id, content string) (*entity.Note, error) {
	var env noteEnvelope
	body := map[string]interface{}{"content": content}
	if err := r.client.doJSON(http.MethodPut, "/api/notes/"+url.PathEscape(id), nil, body, &env); err != nil {
		return nil, err
	}
	saved := env.Data.toEntity()
	return &saved, nil
}

// Delete elimina una nota por id.
func (r *NoteRepo) Delete(id string) error {
	return r.client.doJSON(http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil, nil, nil)
}
