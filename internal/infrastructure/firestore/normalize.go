package firestore

import (
	"time"

	"github.com/jhoicas/leadscope-api/internal/domain/entity"
)

// Normalización entre la forma nativa del document store y las entidades
// canónicas. El id público viene del id del documento, nunca de un campo;
// los timestamps pueden llegar como timestamp nativo o como string RFC3339
// (documentos antiguos migrados) y siempre se normalizan a time.Time.
// Funciones puras y totales: nunca fallan ante un documento bien formado,
// los campos desconocidos se descartan en silencio.

func leadFromDoc(id string, data map[string]interface{}) entity.Lead {
	status := asString(data["status"])
	if !entity.ValidStatus(status) {
		status = "" // ausente se trata como "new" en toda la app
	}
	return entity.Lead{
		ID:                 id,
		Name:               asString(data["name"]),
		Address:            asString(data["address"]),
		Phone:              asString(data["phone"]),
		Email:              asString(data["email"]),
		Website:            asString(data["website"]),
		Category:           asString(data["category"]),
		Rating:             asFloat(data["rating"]),
		RatingCount:        asInt(data["rating_count"]),
		Latitude:           asFloat(data["latitude"]),
		Longitude:          asFloat(data["longitude"]),
		TierReached:        asInt(data["tier_reached"]),
		Status:             status,
		IsSmallBusiness:    asBool(data["is_small_business"]),
		SmallBusinessScore: asFloat(data["small_business_score"]),
		IsInformalBusiness: asBool(data["is_informal_business"]),
		InformalityScore:   asFloat(data["informality_score"]),
		HasWebsite:         asBool(data["has_website"]),
		SocialMediaOnly:    asBool(data["social_media_only"]),
		CreatedAt:          asTime(data["created_at"]),
		UpdatedAt:          asTime(data["updated_at"]),
	}
}

func noteFromDoc(id string, data map[string]interface{}) entity.Note {
	n := entity.Note{
		ID:            id,
		LeadID:        asString(data["lead_id"]),
		Content:       asString(data["content"]),
		ContactMethod: asString(data["contact_method"]),
		ContactDate:   asString(data["contact_date"]),
		CreatedBy:     asString(data["created_by"]),
		CreatedAt:     asTime(data["created_at"]),
	}
	if t := asTime(data["updated_at"]); !t.IsZero() {
		n.UpdatedAt = &t
	}
	return n
}

// noteToDoc forma nativa de una nota nueva. El id va en el documento, no
// como campo.
func noteToDoc(n *entity.Note) map[string]interface{} {
	doc := map[string]interface{}{
		"lead_id":    n.LeadID,
		"content":    n.Content,
		"created_by": n.CreatedBy,
		"created_at": n.CreatedAt,
	}
	if n.ContactMethod != "" {
		doc["contact_method"] = n.ContactMethod
	}
	if n.ContactDate != "" {
		doc["contact_date"] = n.ContactDate
	}
	return doc
}

func userFromDoc(id string, data map[string]interface{}) entity.User {
	return entity.User{
		ID:        id,
		Email:     asString(data["email"]),
		Name:      asString(data["name"]),
		PhotoURL:  asString(data["photo_url"]),
		LastLogin: asTime(data["last_login"]),
		CreatedAt: asTime(data["created_at"]),
	}
}

func contactFromDoc(id string, data map[string]interface{}) entity.Contact {
	return entity.Contact{
		ID:        id,
		LeadID:    asString(data["lead_id"]),
		Name:      asString(data["name"]),
		Role:      asString(data["role"]),
		Phone:     asString(data["phone"]),
		Email:     asString(data["email"]),
		Source:    asString(data["source"]),
		CreatedAt: asTime(data["created_at"]),
	}
}

func socialProfileFromDoc(id string, data map[string]interface{}) entity.SocialProfile {
	return entity.SocialProfile{
		ID:        id,
		LeadID:    asString(data["lead_id"]),
		Platform:  asString(data["platform"]),
		URL:       asString(data["url"]),
		Username:  asString(data["username"]),
		Followers: asInt(data["followers"]),
		CreatedAt: asTime(data["created_at"]),
	}
}

func enrichmentFromDoc(id string, data map[string]interface{}) entity.EnrichmentLogEntry {
	return entity.EnrichmentLogEntry{
		ID:        id,
		LeadID:    asString(data["lead_id"]),
		Tier:      asInt(data["tier"]),
		Source:    asString(data["source"]),
		Message:   asString(data["message"]),
		CreatedAt: asTime(data["created_at"]),
	}
}

// ── Coerción de valores nativos ───────────────────────────────────────────

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

// asFloat acepta float64 e int64 (el store guarda enteros como int64).
func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

// asTime acepta timestamp nativo o string RFC3339; cualquier otra cosa
// produce el cero de time.Time.
func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.UTC()
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
