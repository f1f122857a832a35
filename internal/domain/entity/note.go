package entity

import "time"

// Métodos de contacto permitidos en una nota.
const (
	ContactPhone    = "phone"
	ContactEmail    = "email"
	ContactInPerson = "in-person"
	ContactWhatsApp = "whatsapp"
	ContactOther    = "other"
)

// MinNoteLength longitud mínima del contenido de una nota creada desde el
// flujo "marcar contactado". La valida el caso de uso, nunca se asume que
// el backend la aplique.
const MinNoteLength = 10

// ValidContactMethod indica si m es un método de contacto conocido.
// Vacío es válido (el método es opcional).
func ValidContactMethod(m string) bool {
	switch m {
	case "", ContactPhone, ContactEmail, ContactInPerson, ContactWhatsApp, ContactOther:
		return true
	}
	return false
}

// Note registra un evento de contacto sobre un lead. Pertenece a exactamente
// un Lead (LeadID); solo el contenido es editable después de creada.
type Note struct {
	ID            string     `json:"id"`
	LeadID        string     `json:"lead_id"`
	Content       string     `json:"content"`
	ContactMethod string     `json:"contact_method,omitempty"`
	ContactDate   string     `json:"contact_date,omitempty"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
