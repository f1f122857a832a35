package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/jhoicas/leadscope-api/internal/domain"
	"github.com/jhoicas/leadscope-api/internal/domain/entity"
	"github.com/jhoicas/leadscope-api/internal/domain/repository"
	"github.com/jhoicas/leadscope-api/pkg/logger"
)

// NotContactedFetchFactor multiplicador de sobre-consulta para los filtros
// que el store no puede expresar (not_contacted, búsqueda por substring).
// Aproximación conocida: si los leads no contactados son escasos en el
// tramo más reciente, la página puede quedar corta; se registra un warning
// en ese caso en vez de emitir lecturas adicionales.
const NotContactedFetchFactor = 3

// DefaultPageSize tamaño de página cuando el filtro no lo indica.
const DefaultPageSize = 15

var contactedSet = []string{entity.StatusContacted, entity.StatusQualified, entity.StatusConverted}

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación del puerto LeadRepository sobre el document store.
type LeadRepo struct {
	client *firestore.Client
	log    *logger.Logger
}

// NewLeadRepository construye el adaptador de leads.
func NewLeadRepository(client *firestore.Client, log *logger.Logger) *LeadRepo {
	return &LeadRepo{client: client, log: log}
}

// List lista leads según el filtro. El filtro por membresía de status se
// empuja al store; not_contacted ("new o ausente") y la búsqueda por nombre
// se resuelven del lado del cliente tras sobre-consultar, y la paginación
// se aplica al final recortando el arreglo filtrado.
func (r *LeadRepo) List(filter repository.LeadFilter) (*repository.LeadPage, error) {
	ctx := context.Background()
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultPageSize
	}

	q := r.client.Collection(ColLeads).Query.OrderBy("created_at", firestore.Desc)
	if filter.Status == repository.StatusFilterContacted {
		q = q.Where("status", "in", contactedSet)
	}
	// not_contacted no es un campo almacenado ("new o ausente"): no se puede
	// empujar al store y obliga al filtrado del lado del cliente.
	clientSide := filter.Search != "" || filter.Status == repository.StatusFilterNotContacted

	window := filter.Page * filter.Limit
	fetch := window
	if clientSide {
		fetch = window * NotContactedFetchFactor
	}

	iter := q.Limit(fetch).Documents(ctx)
	defer iter.Stop()
	var candidates []entity.Lead
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translate(err)
		}
		candidates = append(candidates, leadFromDoc(doc.Ref.ID, doc.Data()))
	}

	filtered := candidates[:0:0]
	for _, l := range candidates {
		if filter.Status == repository.StatusFilterNotContacted && l.IsContacted() {
			continue
		}
		if !l.MatchesSearch(filter.Search) {
			continue
		}
		filtered = append(filtered, l)
	}

	var total int
	if clientSide {
		// Total aproximado: solo se conoce el subconjunto sobre-consultado.
		total = len(filtered)
		if len(filtered) < window && len(candidates) == fetch {
			r.log.Warn().
				Int("fetched", len(candidates)).
				Int("matched", len(filtered)).
				Int("window", window).
				Msg("posible subconteo: candidatos filtrados por debajo de la ventana solicitada")
		}
	} else {
		countQ := r.client.Collection(ColLeads).Query
		if filter.Status == repository.StatusFilterContacted {
			countQ = countQ.Where("status", "in", contactedSet)
		}
		var err error
		total, err = r.count(ctx, countQ)
		if err != nil {
			return nil, err
		}
	}

	start := (filter.Page - 1) * filter.Limit
	end := start + filter.Limit
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	stats, err := r.stats(ctx)
	if err != nil {
		return nil, err
	}

	return &repository.LeadPage{
		Records:    filtered[start:end],
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages(total, filter.Limit),
		Stats:      *stats,
	}, nil
}

// Get obtiene un lead con sus registros hijos de solo lectura.
func (r *LeadRepo) Get(id string) (*repository.LeadDetail, error) {
	ctx := context.Background()
	snap, err := r.client.Collection(ColLeads).Doc(id).Get(ctx)
	if err != nil {
		return nil, translate(err)
	}

	detail := &repository.LeadDetail{Lead: leadFromDoc(snap.Ref.ID, snap.Data())}

	if err := r.childDocs(ctx, ColContacts, id, func(docID string, data map[string]interface{}) {
		detail.Contacts = append(detail.Contacts, contactFromDoc(docID, data))
	}); err != nil {
		return nil, err
	}
	if err := r.childDocs(ctx, ColSocialProfiles, id, func(docID string, data map[string]interface{}) {
		detail.SocialProfiles = append(detail.SocialProfiles, socialProfileFromDoc(docID, data))
	}); err != nil {
		return nil, err
	}
	if err := r.childDocs(ctx, ColEnrichmentLog, id, func(docID string, data map[string]interface{}) {
		detail.EnrichmentLog = append(detail.EnrichmentLog, enrichmentFromDoc(docID, data))
	}); err != nil {
		return nil, err
	}
	return detail, nil
}

// Update aplica un patch parcial. El id nunca se escribe como campo y
// updated_at lo fija el servidor.
func (r *LeadRepo) Update(id string, patch repository.LeadPatch) (*entity.Lead, error) {
	ctx := context.Background()
	if s := patch.Status; s != nil && !entity.ValidStatus(*s) {
		return nil, domain.ErrInvalidStatus
	}
	updates := patchUpdates(patch)
	if len(updates) == 0 {
		return nil, domain.ErrInvalidInput
	}
	updates = append(updates, firestore.Update{Path: "updated_at", Value: firestore.ServerTimestamp})

	docRef := r.client.Collection(ColLeads).Doc(id)
	if _, err := docRef.Update(ctx, updates); err != nil {
		return nil, translate(err)
	}
	snap, err := docRef.Get(ctx)
	if err != nil {
		return nil, translate(err)
	}
	lead := leadFromDoc(snap.Ref.ID, snap.Data())
	return &lead, nil
}

// Delete elimina un lead. Un id inexistente señala ErrNotFound, distinto de
// un fallo de transporte.
func (r *LeadRepo) Delete(id string) error {
	ctx := context.Background()
	docRef := r.client.Collection(ColLeads).Doc(id)
	if _, err := docRef.Get(ctx); err != nil {
		return translate(err)
	}
	if _, err := docRef.Delete(ctx); err != nil {
		return translate(err)
	}
	return nil
}

// stats conteos globales en dos consultas de agregación independientes:
// total sin filtro y total con la membresía de contactados. O(1) viajes
// sin importar el tamaño de la colección; siempre describen la colección
// completa, no el subconjunto filtrado.
func (r *LeadRepo) stats(ctx context.Context) (*repository.LeadStats, error) {
	all, err := r.count(ctx, r.client.Collection(ColLeads).Query)
	if err != nil {
		return nil, err
	}
	contacted, err := r.count(ctx, r.client.Collection(ColLeads).Query.Where("status", "in", contactedSet))
	if err != nil {
		return nil, err
	}
	return &repository.LeadStats{
		All:          all,
		Contacted:    contacted,
		NotContacted: all - contacted,
	}, nil
}

func (r *LeadRepo) count(ctx context.Context, q firestore.Query) (int, error) {
	res, err := q.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, translate(err)
	}
	v, ok := res["total"].(*firestorepb.Value)
	if !ok {
		return 0, domain.NewTransportError(0, fmt.Errorf("agregación count sin resultado"))
	}
	return int(v.GetIntegerValue()), nil
}

// childDocs recorre los documentos hijos keyed por lead_id en la colección
// indicada.
func (r *LeadRepo) childDocs(ctx context.Context, col, leadID string, visit func(id string, data map[string]interface{})) error {
	iter := r.client.Collection(col).Where("lead_id", "==", leadID).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return translate(err)
		}
		visit(doc.Ref.ID, doc.Data())
	}
}

func patchUpdates(patch repository.LeadPatch) []firestore.Update {
	var updates []firestore.Update
	add := func(path string, v interface{}) {
		updates = append(updates, firestore.Update{Path: path, Value: v})
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Website != nil {
		add("website", *patch.Website)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.TierReached != nil {
		add("tier_reached", *patch.TierReached)
	}
	return updates
}

// totalPages = ceil(total/limit), mínimo 1.
func totalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

// translate clasifica un error del SDK: NotFound del store se traduce al
// sentinel de dominio, el resto es fallo de transporte.
func translate(err error) error {
	if grpcstatus.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	return domain.NewTransportError(0, err)
}
