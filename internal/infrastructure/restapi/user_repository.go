package restapi

import (
	"net/http"

	"github.com/jhoicas/leadscope-api/internal/domain/entity"
	"github.com/jhoicas/leadscope-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository contra la API REST.
type UserRepo struct {
	client *Client
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(client *Client) *UserRepo {
	return &UserRepo{client: client}
}

type userEnvelope struct {
	Success bool     `json:"success"`
	Data    wireUser `json:"data"`
	IsNew   bool     `json:"isNew"`
}

// Upsert delega el upsert por subject id al servidor.
func (r *UserRepo) Upsert(user *entity.User) (*entity.User, bool, error) {
	body := map[string]interface{}{
		"uid":       user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"photo_url": user.PhotoURL,
	}
	var env userEnvelope
	if err := r.client.doJSON(http.MethodPost, "/api/users", nil, body, &env); err != nil {
		return nil, false, err
	}
	saved := env.Data.toEntity()
	return &saved, env.IsNew, nil
}
