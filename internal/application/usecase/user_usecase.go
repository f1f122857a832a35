package usecase

import (
	"github.com/jhoicas/leadscope-api/internal/application/dto"
	"github.com/jhoicas/leadscope-api/internal/domain"
	"github.com/jhoicas/leadscope-api/internal/domain/entity"
	"github.com/jhoicas/leadscope-api/internal/domain/repository"
)

// UserUseCase registro de la identidad del actor autenticado. El proveedor
// de identidad es externo; aquí solo se persiste el perfil para atribución
// y auditoría (upsert por subject id en cada login).
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// SaveIdentity hace upsert del actor. subjectID es obligatorio.
func (uc *UserUseCase) SaveIdentity(subjectID, email, name, photoURL string) (*dto.UserSessionResponse, error) {
	if subjectID == "" {
		return nil, domain.ErrInvalidInput
	}
	saved, isNew, err := uc.users.Upsert(&entity.User{
		ID:       subjectID,
		Email:    email,
		Name:     name,
		PhotoURL: photoURL,
	})
	if err != nil {
		return nil, err
	}
	return &dto.UserSessionResponse{Success: true, Data: *saved, IsNew: isNew}, nil
}
