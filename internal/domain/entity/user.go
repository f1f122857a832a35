package entity

import "time"

// User actor autenticado del dashboard, identificado por el subject id del
// proveedor de identidad externo. Se crea en el primer login y se actualiza
// LastLogin en cada login posterior (upsert); sirve para atribución
// (Note.CreatedBy) y auditoría.
type User struct {
	ID        string    `json:"id"` // subject id del proveedor
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
}
