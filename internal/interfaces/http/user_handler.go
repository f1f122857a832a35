package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leadscope-api/internal/application/usecase"
)

// UserHandler maneja el registro de identidad del actor (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// SaveSession godoc
// @Summary      Registrar sesión del actor (upsert por subject id del token)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserSessionResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/auth/session [post]
func (h *UserHandler) SaveSession(c *fiber.Ctx) error {
	out, err := h.uc.SaveIdentity(GetSubjectID(c), GetEmail(c), localString(c, LocalName), GetPhotoURL(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
