package services

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"travelexplorer/internal/models/db_models"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/internal/models/response_models"
	"travelexplorer/internal/repositories"
	"travelexplorer/pkg/logger"
	mem "travelexplorer/pkg/memcache"
	"travelexplorer/pkg/metrics"
	"travelexplorer/pkg/utils"
)

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context, filters request_models.SearchFilters) (response_models.DestinationList, error)
	GetFacets(ctx context.Context) (response_models.Facets, error)
	GetDestination(ctx context.Context, id string) (response_models.Destination, error)
	GetFeatured(ctx context.Context, limit int) ([]response_models.Destination, error)

	GetSavedFilters(userID string) request_models.SearchFilters
	SaveFilters(userID string, filters request_models.SearchFilters) request_models.SearchFilters
	ClearFilters(userID string)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	sessions        mem.SessionStore
	metrics         *metrics.Metrics
	log             logger.Logger
}

func NewDestinationService(
	destinationRepo repositories.DestinationRepository,
	sessions mem.SessionStore,
	m *metrics.Metrics,
	log logger.Logger,
) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		sessions:        sessions,
		metrics:         m,
		log:             log,
	}
}

// loadAll reads the active destinations and falls back to the built-in list
// when the read fails or finds nothing.
func (d *DestinationService) loadAll(ctx context.Context) ([]response_models.Destination, bool) {
	rows, err := d.destinationRepo.ListActive(ctx)
	if err != nil {
		d.log.Error("Error fetching destinations, serving fallback list", "error", err)
		d.metrics.DestinationFallbacks.WithLabelValues("error").Inc()
		return FallbackDestinations(), true
	}

	if len(rows) == 0 {
		d.metrics.DestinationFallbacks.WithLabelValues("empty").Inc()
		return FallbackDestinations(), true
	}

	destinations := make([]response_models.Destination, 0, len(rows))
	for i := range rows {
		destinations = append(destinations, toDestinationResponse(&rows[i]))
	}
	return destinations, false
}

func (d *DestinationService) ListDestinations(ctx context.Context, filters request_models.SearchFilters) (response_models.DestinationList, error) {
	all, fallback := d.loadAll(ctx)

	filtered := FilterDestinations(all, filters)
	return response_models.DestinationList{
		Destinations: filtered,
		Total:        len(filtered),
		Fallback:     fallback,
	}, nil
}

func (d *DestinationService) GetFacets(ctx context.Context) (response_models.Facets, error) {
	all, _ := d.loadAll(ctx)

	facets := response_models.Facets{
		Continents:   []string{},
		Difficulties: []string{},
	}
	seenContinent := make(map[string]struct{})
	seenDifficulty := make(map[string]struct{})

	for _, dest := range all {
		if _, ok := seenContinent[dest.Continent]; !ok && dest.Continent != "" {
			seenContinent[dest.Continent] = struct{}{}
			facets.Continents = append(facets.Continents, dest.Continent)
		}
		if _, ok := seenDifficulty[dest.Difficulty]; !ok && dest.Difficulty != "" {
			seenDifficulty[dest.Difficulty] = struct{}{}
			facets.Difficulties = append(facets.Difficulties, dest.Difficulty)
		}
	}

	return facets, nil
}

func (d *DestinationService) GetDestination(ctx context.Context, id string) (response_models.Destination, error) {
	if fallback, ok := findFallback(id); ok {
		return fallback, nil
	}

	if _, err := uuid.Parse(id); err != nil {
		return response_models.Destination{}, utils.ErrDestinationNotFound
	}

	destination, err := d.destinationRepo.FindActiveByID(ctx, id)
	if err != nil {
		d.log.Error("Error fetching destination", "id", id, "error", err)
		return response_models.Destination{}, utils.ErrDestinationNotFound
	}
	if destination == nil {
		return response_models.Destination{}, utils.ErrDestinationNotFound
	}

	return toDestinationResponse(destination), nil
}

func (d *DestinationService) GetFeatured(ctx context.Context, limit int) ([]response_models.Destination, error) {
	rows, err := d.destinationRepo.ListTopRated(ctx, limit)
	if err != nil || len(rows) == 0 {
		if err != nil {
			d.log.Error("Error fetching featured destinations", "error", err)
			d.metrics.DestinationFallbacks.WithLabelValues("error").Inc()
		} else {
			d.metrics.DestinationFallbacks.WithLabelValues("empty").Inc()
		}

		fallback := FallbackDestinations()
		if len(fallback) > limit {
			fallback = fallback[:limit]
		}
		return fallback, nil
	}

	featured := make([]response_models.Destination, 0, len(rows))
	for i := range rows {
		featured = append(featured, toDestinationResponse(&rows[i]))
	}
	return featured, nil
}

func (d *DestinationService) GetSavedFilters(userID string) request_models.SearchFilters {
	return d.sessions.GetFilters(userID)
}

// SaveFilters merges filters into the ones remembered for userID.
func (d *DestinationService) SaveFilters(userID string, filters request_models.SearchFilters) request_models.SearchFilters {
	return d.sessions.MergeFilters(userID, filters)
}

func (d *DestinationService) ClearFilters(userID string) {
	d.sessions.ClearFilters(userID)
}

// FallbackDestinations returns a deep copy of the built-in destination list.
func FallbackDestinations() []response_models.Destination {
	out := make([]response_models.Destination, 0, len(fallbackDestinations))
	for _, dest := range fallbackDestinations {
		out = append(out, cloneDestination(dest))
	}
	return out
}

func findFallback(id string) (response_models.Destination, bool) {
	for _, dest := range fallbackDestinations {
		if dest.ID == id {
			return cloneDestination(dest), true
		}
	}
	return response_models.Destination{}, false
}

func cloneDestination(d response_models.Destination) response_models.Destination {
	d.Images = slices.Clone(d.Images)
	d.Highlights = slices.Clone(d.Highlights)
	d.Itinerary = slices.Clone(d.Itinerary)
	d.Included = slices.Clone(d.Included)
	d.Excluded = slices.Clone(d.Excluded)
	d.Languages = slices.Clone(d.Languages)
	return d
}

// FilterDestinations keeps the destinations matching every filter that is
// set, preserving order.
func FilterDestinations(all []response_models.Destination, f request_models.SearchFilters) []response_models.Destination {
	out := make([]response_models.Destination, 0, len(all))
	for _, dest := range all {
		if matchesFilters(dest, f) {
			out = append(out, dest)
		}
	}
	return out
}

func matchesFilters(dest response_models.Destination, f request_models.SearchFilters) bool {
	if f.Query != nil && *f.Query != "" {
		q := strings.ToLower(*f.Query)
		if !containsFold(dest.Name, q) && !containsFold(dest.Location, q) &&
			!containsFold(dest.Country, q) && !containsFold(dest.Description, q) {
			return false
		}
	}
	if f.Location != nil && *f.Location != "" {
		q := strings.ToLower(*f.Location)
		if !containsFold(dest.Location, q) && !containsFold(dest.Country, q) {
			return false
		}
	}
	if f.Continent != nil && *f.Continent != "" && dest.Continent != *f.Continent {
		return false
	}
	if f.Difficulty != nil && *f.Difficulty != "" && dest.Difficulty != *f.Difficulty {
		return false
	}
	if f.MinPrice != nil && dest.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && dest.Price > *f.MaxPrice {
		return false
	}
	if f.Duration != nil && dest.Duration > *f.Duration {
		return false
	}
	if f.Rating != nil && dest.Rating < *f.Rating {
		return false
	}
	return true
}

func containsFold(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}

func toDestinationResponse(d *db_models.Destination) response_models.Destination {
	itinerary := make([]response_models.ItineraryDay, 0, len(d.Itinerary))
	for _, day := range d.Itinerary {
		itinerary = append(itinerary, response_models.ItineraryDay{
			Title:       day.Title,
			Description: day.Description,
		})
	}

	return response_models.Destination{
		ID:           d.ID.String(),
		Name:         d.Name,
		Description:  d.Description,
		Location:     d.Location,
		Country:      d.Country,
		Continent:    d.Continent,
		Images:       nonNil(d.Images),
		Price:        d.Price,
		Currency:     d.Currency,
		Rating:       d.Rating,
		Duration:     d.Duration,
		Highlights:   nonNil(d.Highlights),
		Difficulty:   string(d.Difficulty),
		MaxGroupSize: d.MaxGroupSize,
		IsActive:     d.IsActive,
		Itinerary:    itinerary,
		Included:     nonNil(d.Included),
		Excluded:     nonNil(d.Excluded),
		Languages:    nonNil(d.Languages),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
