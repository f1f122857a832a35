// Package firestore implementa la fachada de consulta sobre el document
// store gestionado. El store soporta igualdad/rango/membresía y orden, pero
// no substring case-insensitive ni el predicado derivado "no contactado";
// esos filtros se aplican aquí del lado del cliente tras sobre-consultar.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/jhoicas/leadscope-api/pkg/config"
)

// Colecciones del proyecto.
const (
	ColLeads          = "leads"
	ColNotes          = "notes"
	ColUsers          = "users"
	ColContacts       = "contacts"
	ColSocialProfiles = "social_profiles"
	ColEnrichmentLog  = "enrichment_log"
)

// NewClient crea el cliente de Firestore. Si CredentialsFile está vacío se
// usan las credenciales por defecto del entorno (ADC).
func NewClient(ctx context.Context, cfg config.FirestoreConfig) (*firestore.Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestore: FIRESTORE_PROJECT_ID requerido")
	}
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("crear cliente firestore: %w", err)
	}
	return client, nil
}
