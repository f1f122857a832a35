package entity

import "time"

// Registros hijos de un Lead, poblados por el pipeline de enriquecimiento
// externo. El núcleo solo los lee (keyed por LeadID); no tienen ciclo de
// vida propio fuera de su lead.

// Contact persona de contacto detectada para el negocio.
type Contact struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SocialProfile perfil en redes sociales asociado al lead.
type SocialProfile struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url,omitempty"`
	Username  string    `json:"username,omitempty"`
	Followers int       `json:"followers,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EnrichmentLogEntry traza de una corrida del pipeline sobre el lead.
type EnrichmentLogEntry struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	Tier      int       `json:"tier"`
	Source    string    `json:"source,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
