package repository

import "github.com/jhoicas/leadscope-api/internal/domain/entity"

// NoteRepository puerto de persistencia para Note. El listado devuelve las
// notas del lead ordenadas por fecha de creación descendente.
type NoteRepository interface {
	ListByLead(leadID string) ([]entity.Note, error)
	Create(note *entity.Note) (*entity.Note, error)
	UpdateContent(id, content string) (*entity.Note, error)
	Delete(id string) error
}
