package dto

import "github.com/jhoicas/leadscope-api/internal/domain/entity"

// CreateNoteRequest creación de una nota sobre un lead. El autor se toma
// del token del actor, no del cuerpo.
type CreateNoteRequest struct {
	Content       string `json:"content"`
	ContactMethod string `json:"contact_method,omitempty"`
	ContactDate   string `json:"contact_date,omitempty"`
}

// UpdateNoteRequest edición del contenido de una nota.
type UpdateNoteRequest struct {
	Content string `json:"content"`
}

// NoteResponse respuesta con una nota.
type NoteResponse struct {
	Success bool        `json:"success"`
	Data    entity.Note `json:"data"`
}

// NotesResponse notas de un lead, creación descendente.
type NotesResponse struct {
	Success bool          `json:"success"`
	Data    []entity.Note `json:"data"`
}
