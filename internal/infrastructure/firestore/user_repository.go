package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/jhoicas/leadscope-api/internal/domain/entity"
	"github.com/jhoicas/leadscope-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el document store.
// El id del documento es el subject id del proveedor de identidad.
type UserRepo struct {
	client *firestore.Client
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(client *firestore.Client) *UserRepo {
	return &UserRepo{client: client}
}

// Upsert crea el usuario en el primer login o actualiza su perfil y
// last_login en los siguientes.
func (r *UserRepo) Upsert(user *entity.User) (*entity.User, bool, error) {
	ctx := context.Background()
	now := time.Now().UTC()
	docRef := r.client.Collection(ColUsers).Doc(user.ID)

	snap, err := docRef.Get(ctx)
	switch {
	case err != nil && grpcstatus.Code(err) == codes.NotFound:
		saved := *user
		saved.CreatedAt = now
		saved.LastLogin = now
		doc := map[string]interface{}{
			"email":      saved.Email,
			"name":       saved.Name,
			"photo_url":  saved.PhotoURL,
			"last_login": saved.LastLogin,
			"created_at": saved.CreatedAt,
		}
		if _, err := docRef.Create(ctx, doc); err != nil {
			return nil, false, translate(err)
		}
		return &saved, true, nil
	case err != nil:
		return nil, false, translate(err)
	}

	existing := userFromDoc(snap.Ref.ID, snap.Data())
	_, err = docRef.Update(ctx, []firestore.Update{
		{Path: "email", Value: user.Email},
		{Path: "name", Value: user.Name},
		{Path: "photo_url", Value: user.PhotoURL},
		{Path: "last_login", Value: now},
	})
	if err != nil {
		return nil, false, translate(err)
	}
	existing.Email = user.Email
	existing.Name = user.Name
	existing.PhotoURL = user.PhotoURL
	existing.LastLogin = now
	return &existing, false, nil
}
