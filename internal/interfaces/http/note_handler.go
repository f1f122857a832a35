package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leadscope-api/internal/application/dto"
	"github.com/jhoicas/leadscope-api/internal/application/usecase"
)

// NoteHandler maneja las peticiones HTTP para Note (protegido).
type NoteHandler struct {
	uc *usecase.LeadUseCase
}

// NewNoteHandler construye el handler.
func NewNoteHandler(uc *usecase.LeadUseCase) *NoteHandler {
	return &NoteHandler{uc: uc}
}

// ListByLead godoc
// @Summary      Listar notas de un lead (creación descendente)
// @Tags         notes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lead"
// @Success      200  {object}  dto.NotesResponse
// @Router       /api/leads/{id}/notes [get]
func (h *NoteHandler) ListByLead(c *fiber.Ctx) error {
	leadID := c.Params("id")
	if leadID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListNotes(leadID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear nota sobre un lead
// @Tags         notes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.CreateNoteRequest  true  "Contenido (mínimo 10 caracteres)"
// @Success      201   {object}  dto.NoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leads/{id}/notes [post]
func (h *NoteHandler) Create(c *fiber.Ctx) error {
	leadID := c.Params("id")
	if leadID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreateNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateNote(leadID, in, GetActorName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar el contenido de una nota
// @Tags         notes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la nota"
// @Param        body  body  dto.UpdateNoteRequest  true  "Contenido nuevo"
// @Success      200   {object}  dto.NoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/notes/{id} [put]
func (h *NoteHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateNote(id, in.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar nota
// @Tags         notes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.OkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.DeleteNote(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OkResponse{Success: true})
}
