package restapi

import (
	"time"

	"github.com/jhoicas/leadscope-api/internal/domain/entity"
)

// Formas de cable del backend REST. La clave primaria viaja como "_id";
// la normalización la mapea al id público y nunca la envía en escrituras.

type wireLead struct {
	ID                 string    `json:"_id"`
	Name               string    `json:"name"`
	Address            string    `json:"address,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Email              string    `json:"email,omitempty"`
	Website            string    `json:"website,omitempty"`
	Category           string    `json:"category,omitempty"`
	Rating             float64   `json:"rating,omitempty"`
	RatingCount        int       `json:"rating_count,omitempty"`
	Latitude           float64   `json:"latitude,omitempty"`
	Longitude          float64   `json:"longitude,omitempty"`
	TierReached        int       `json:"tier_reached,omitempty"`
	Status             string    `json:"status,omitempty"`
	IsSmallBusiness    bool      `json:"is_small_business,omitempty"`
	SmallBusinessScore float64   `json:"small_business_score,omitempty"`
	IsInformalBusiness bool      `json:"is_informal_business,omitempty"`
	InformalityScore   float64   `json:"informality_score,omitempty"`
	HasWebsite         bool      `json:"has_website,omitempty"`
	SocialMediaOnly    bool      `json:"social_media_only,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (w wireLead) toEntity() entity.Lead {
	status := w.Status
	if !entity.ValidStatus(status) {
		status = ""
	}
	return entity.Lead{
		ID:                 w.ID,
		Name:               w.Name,
		Address:            w.Address,
		Phone:              w.Phone,
		Email:              w.Email,
		Website:            w.Website,
		Category:           w.Category,
		Rating:             w.Rating,
		RatingCount:        w.RatingCount,
		Latitude:           w.Latitude,
		Longitude:          w.Longitude,
		TierReached:        w.TierReached,
		Status:             status,
		IsSmallBusiness:    w.IsSmallBusiness,
		SmallBusinessScore: w.SmallBusinessScore,
		IsInformalBusiness: w.IsInformalBusiness,
		InformalityScore:   w.InformalityScore,
		HasWebsite:         w.HasWebsite,
		SocialMediaOnly:    w.SocialMediaOnly,
		CreatedAt:          w.CreatedAt.UTC(),
		UpdatedAt:          w.UpdatedAt.UTC(),
	}
}

type wireNote struct {
	ID            string     `json:"_id"`
	LeadID        string     `json:"lead_id"`
	Content       string     `json:"content"`
	ContactMethod string     `json:"contact_method,omitempty"`
	ContactDate   string     `json:"contact_date,omitempty"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func (w wireNote) toEntity() entity.Note {
	return entity.Note{
		ID:            w.ID,
		LeadID:        w.LeadID,
		Content:       w.Content,
		ContactMethod: w.ContactMethod,
		ContactDate:   w.ContactDate,
		CreatedBy:     w.CreatedBy,
		CreatedAt:     w.CreatedAt.UTC(),
		UpdatedAt:     w.UpdatedAt,
	}
}

type wireContact struct {
	ID        string    `json:"_id"`
	LeadID    string    `json:"lead_id"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (w wireContact) toEntity() entity.Contact {
	return entity.Contact{
		ID: w.ID, LeadID: w.LeadID, Name: w.Name, Role: w.Role,
		Phone: w.Phone, Email: w.Email, Source: w.Source, CreatedAt: w.CreatedAt.UTC(),
	}
}

type wireSocialProfile struct {
	ID        string    `json:"_id"`
	LeadID    string    `json:"lead_id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url,omitempty"`
	Username  string    `json:"username,omitempty"`
	Followers int       `json:"followers,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (w wireSocialProfile) toEntity() entity.SocialProfile {
	return entity.SocialProfile{
		ID: w.ID, LeadID: w.LeadID, Platform: w.Platform, URL: w.URL,
		Username: w.Username, Followers: w.Followers, CreatedAt: w.CreatedAt.UTC(),
	}
}

type wireEnrichmentEntry struct {
	ID        string    `json:"_id"`
	LeadID    string    `json:"lead_id"`
	Tier      int       `json:"tier"`
	Source    string    `json:"source,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (w wireEnrichmentEntry) toEntity() entity.EnrichmentLogEntry {
	return entity.EnrichmentLogEntry{
		ID: w.ID, LeadID: w.LeadID, Tier: w.Tier, Source: w.Source,
		Message: w.Message, CreatedAt: w.CreatedAt.UTC(),
	}
}

type wireUser struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
}

func (w wireUser) toEntity() entity.User {
	return entity.User{
		ID: w.ID, Email: w.Email, Name: w.Name, PhotoURL: w.PhotoURL,
		LastLogin: w.LastLogin.UTC(), CreatedAt: w.CreatedAt.UTC(),
	}
}
