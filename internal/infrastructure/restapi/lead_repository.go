package restapi

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/leadscope-api/internal/domain"
	"github.com/jhoicas/leadscope-api/internal/domain/entity"
	"github.com/jhoicas/leadscope-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación del puerto LeadRepository contra la API REST.
// Todo el filtrado, la paginación y los stats los calcula el servidor.
type LeadRepo struct {
	client *Client
}

// NewLeadRepository construye el adaptador de leads.
func NewLeadRepository(client *Client) *LeadRepo {
	return &LeadRepo{client: client}
}

type listEnvelope struct {
	Success    bool                 `json:"success"`
	Data       []wireLead           `json:"data"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"totalPages"`
	Stats      repository.LeadStats `json:"stats"`
}

// List delega el listado al servidor vía query params.
func (r *LeadRepo) List(filter repository.LeadFilter) (*repository.LeadPage, error) {
	query := url.Values{}
	if filter.Status != "" && filter.Status != repository.StatusFilterAll {
		query.Set("status", filter.Status)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var env listEnvelope
	if err := r.client.doJSON(http.MethodGet, "/api/leads", query, nil, &env); err != nil {
		return nil, err
	}
	records := make([]entity.Lead, 0, len(env.Data))
	for _, w := range env.Data {
		records = append(records, w.toEntity())
	}
	return &repository.LeadPage{
		Records:    records,
		Total:      env.Total,
		Page:       env.Page,
		TotalPages: env.TotalPages,
		Stats:      env.Stats,
	}, nil
}

type detailEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Lead           wireLead              `json:"lead"`
		Contacts       []wireContact         `json:"contacts"`
		SocialProfiles []wireSocialProfile   `json:"socialProfiles"`
		EnrichmentLog  []wireEnrichmentEntry `json:"enrichmentLog"`
	} `json:"data"`
}

// Get obtiene el lead con sus registros hijos.
func (r *LeadRepo) Get(id string) (*repository.LeadDetail, error) {
	var env detailEnvelope
	if err := r.client.doJSON(http.MethodGet, "/api/leads/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return nil, err
	}
	detail := &repository.LeadDetail{Lead: env.Data.Lead.toEntity()}
	for _, w := range env.Data.Contacts {
		detail.Contacts = append(detail.Contacts, w.toEntity())
	}
	for _, w := range env.Data.SocialProfiles {
		detail.SocialProfiles = append(detail.SocialProfiles, w.toEntity())
	}
	for _, w := range env.Data.EnrichmentLog {
		detail.EnrichmentLog = append(detail.EnrichmentLog, w.toEntity())
	}
	return detail, nil
}

type leadEnvelope struct {
	Success bool     `json:"success"`
	Data    wireLead `json:"data"`
}

// Update envía el patch parcial; el id nunca viaja en el cuerpo y el
// servidor fija updated_at.
func (r *LeadRepo) Update(id string, patch repository.LeadPatch) (*entity.Lead, error) {
	if s := patch.Status; s != nil && !entity.ValidStatus(*s) {
		return nil, domain.ErrInvalidStatus
	}
	body := map[string]interface{}{}
	set := func(k string, v interface{}) { body[k] = v }
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Address != nil {
		set("address", *patch.Address)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Website != nil {
		set("website", *patch.Website)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.TierReached != nil {
		set("tier_reached", *patch.TierReached)
	}
	if len(body) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var env leadEnvelope
	if err := r.client.doJSON(http.MethodPut, "/api/leads/"+url.PathEscape(id), nil, body, &env); err != nil {
		return nil, err
	}
	lead := env.Data.toEntity()
	return &lead, nil
}

// Delete elimina un lead por id.
func (r *LeadRepo) Delete(id string) error {
	return r.client.doJSON(http.MethodDelete, "/api/leads/"+url.PathEscape(id), nil, nil, nil)
}
