package dto

import "github.com/jhoicas/leadscope-api/internal/domain/entity"

// UserSessionResponse resultado del upsert de identidad del actor.
// isNew indica si fue el primer login.
type UserSessionResponse struct {
	Success bool        `json:"success"`
	Data    entity.User `json:"data"`
	IsNew   bool        `json:"isNew"`
}
