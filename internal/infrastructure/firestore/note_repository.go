package firestore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/jhoicas/leadscope-api/internal/domain/entity"
	"github.com/jhoicas/leadscope-api/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo implementación del puerto NoteRepository sobre el document store.
type NoteRepo struct {
	client *firestore.Client
}

// NewNoteRepository construye el adaptador de notas.
func NewNoteRepository(client *firestore.Client) *NoteRepo {
	return &NoteRepo{client: client}
}

// ListByLead devuelve las notas de un lead ordenadas por creación
// descendente. El orden se aplica aquí para no exigir un índice compuesto
// where+orderBy en el store.
func (r *NoteRepo) ListByLead(leadID string) ([]entity.Note, error) {
	ctx := context.Background()
	iter := r.client.Collection(ColNotes).Where("lead_id", "==", leadID).Documents(ctx)
	defer iter.Stop()

	var notes []entity.Note
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translate(err)
		}
		notes = append(notes, noteFromDoc(doc.Ref.ID, doc.Data()))
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}

// Create persiste una nota nueva con id generado.
func (r *NoteRepo) Create(note *entity.Note) (*entity.Note, error) {
	ctx := context.Background()
	saved := *note
	saved.ID = uuid.NewString()
	saved.CreatedAt = time.Now().UTC()
	if _, err := r.client.Collection(ColNotes).Doc(saved.ID).Create(ctx, noteToDoc(&saved)); err != nil {
		return nil, translate(err)
	}
	return &saved, nil
}

// UpdateContent reemplaza el contenido de una nota y marca updated_at.
func (r *NoteRepo) UpdateContent(id, content string) (*entity.Note, error) {
	ctx := context.Background()
	docRef := r.client.Collection(ColNotes).Doc(id)
	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "content", Value: content},
		{Path: "updated_at", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return nil, translate(err)
	}
	snap, err := docRef.Get(ctx)
	if err != nil {
		return nil, translate(err)
	}
	note := noteFromDoc(snap.Ref.ID, snap.Data())
	return &note, nil
}

// Delete elimina una nota por id.
func (r *NoteRepo) Delete(id string) error {
	ctx := context.Background()
	docRef := r.client.Collection(ColNotes).Doc(id)
	if _, err := docRef.Get(ctx); err != nil {
		return translate(err)
	}
	if _, err := docRef.Delete(ctx); err != nil {
		return translate(err)
	}
	return nil
}
