package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leadscope-api/internal/application/dto"
	"github.com/jhoicas/leadscope-api/pkg/jwt"
)

// Locals keys para la identidad del actor en Fiber.
const (
	LocalSubjectID = "subject_id"
	LocalEmail     = "email"
	LocalName      = "name"
	LocalPhotoURL  = "photo_url"
)

// AuthMiddleware valida el Bearer Token JWT y extrae la identidad del actor
// a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		identity, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSubjectID, identity.SubjectID)
		c.Locals(LocalEmail, identity.Email)
		c.Locals(LocalName, identity.Name)
		c.Locals(LocalPhotoURL, identity.PhotoURL)
		return c.Next()
	}
}

// GetSubjectID devuelve el subject id del actor (después del middleware).
func GetSubjectID(c *fiber.Ctx) string {
	return localString(c, LocalSubjectID)
}

// GetEmail devuelve el email del actor.
func GetEmail(c *fiber.Ctx) string {
	return localString(c, LocalEmail)
}

// GetPhotoURL devuelve la foto de perfil del actor.
func GetPhotoURL(c *fiber.Ctx) string {
	return localString(c, LocalPhotoURL)
}

// GetActorName devuelve el nombre a mostrar del actor para atribución
// (Note.CreatedBy): el nombre del perfil, o el email si no hay nombre.
func GetActorName(c *fiber.Ctx) string {
	if name := localString(c, LocalName); name != "" {
		return name
	}
	return localString(c, LocalEmail)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
