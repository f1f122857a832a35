package repository

import "github.com/jhoicas/leadscope-api/internal/domain/entity"

// UserRepository puerto de persistencia para User (identidad del actor).
// Upsert está keyed por el subject id del proveedor: crea en el primer
// login y actualiza LastLogin en los siguientes. isNew indica si se creó.
type UserRepository interface {
	Upsert(user *entity.User) (saved *entity.User, isNew bool, err error)
}
