package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelexplorer/internal/models/db_models"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/internal/models/response_models"
	"travelexplorer/pkg/logger"
	mem "travelexplorer/pkg/memcache"
	"travelexplorer/pkg/metrics"
	"travelexplorer/pkg/utils"
)

func ptr[T any](v T) *T {
	return &v
}

func newDestinationService(repo *fakeDestinationRepo) (*DestinationService, *metrics.Metrics) {
	m := metrics.NewMetrics("test")
	svc := NewDestinationService(repo, mem.NewSessions(), m, logger.NewNopLogger())
	return svc.(*DestinationService), m
}

func names(list []response_models.Destination) []string {
	out := make([]string, 0, len(list))
	for _, d := range list {
		out = append(out, d.Name)
	}
	return out
}

func TestListDestinations_FallbackOnStoreError(t *testing.T) {
	svc, m := newDestinationService(&fakeDestinationRepo{err: errStore})

	list, err := svc.ListDestinations(context.Background(), request_models.SearchFilters{})
	require.NoError(t, err)
	assert.True(t, list.Fallback)
	assert.Equal(t, 6, list.Total)
	assert.Equal(t, "fallback-1", list.Destinations[0].ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DestinationFallbacks.WithLabelValues("error")))
}

func TestListDestinations_FallbackOnEmptyStore(t *testing.T) {
	svc, m := newDestinationService(&fakeDestinationRepo{})

	list, err := svc.ListDestinations(context.Background(), request_models.SearchFilters{})
	require.NoError(t, err)
	assert.True(t, list.Fallback)
	assert.Len(t, list.Destinations, 6)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DestinationFallbacks.WithLabelValues("empty")))
}

func TestListDestinations_StoredRows(t *testing.T) {
	rows := []db_models.Destination{
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Patagonia Trek", Continent: "Americas", Price: 3100, Duration: 12, IsActive: true},
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Lisbon Weekend", Continent: "Europe", Price: 650, Duration: 3, IsActive: true},
	}
	svc, _ := newDestinationService(&fakeDestinationRepo{rows: rows})

	list, err := svc.ListDestinations(context.Background(), request_models.SearchFilters{MaxPrice: ptr(1000.0)})
	require.NoError(t, err)
	assert.False(t, list.Fallback)
	assert.Equal(t, []string{"Lisbon Weekend"}, names(list.Destinations))
	assert.Equal(t, rows[1].ID.String(), list.Destinations[0].ID)
	assert.NotNil(t, list.Destinations[0].Images)
	assert.NotNil(t, list.Destinations[0].Itinerary)
}

func TestFilterDestinations(t *testing.T) {
	all := FallbackDestinations()

	tests := []struct {
		name    string
		filters request_models.SearchFilters
		want    []string
	}{
		{
			name:    "no filters keeps every destination in order",
			filters: request_models.SearchFilters{},
			want: []string{
				"Swiss Alps Adventure", "Kyoto Heritage Tour", "Santorini Sunset Bliss",
				"Bali Tropical Escape", "Machu Picchu Expedition", "Amalfi Coast Charm",
			},
		},
		{
			name:    "query matches country case-insensitively",
			filters: request_models.SearchFilters{Query: ptr("JAPAN")},
			want:    []string{"Kyoto Heritage Tour"},
		},
		{
			name:    "location matches town",
			filters: request_models.SearchFilters{Location: ptr("ubud")},
			want:    []string{"Bali Tropical Escape"},
		},
		{
			name:    "continent and difficulty combine",
			filters: request_models.SearchFilters{Continent: ptr("Europe"), Difficulty: ptr("Easy")},
			want:    []string{"Santorini Sunset Bliss", "Amalfi Coast Charm"},
		},
		{
			name:    "price range is inclusive",
			filters: request_models.SearchFilters{MinPrice: ptr(1850.0), MaxPrice: ptr(2499.0)},
			want:    []string{"Swiss Alps Adventure", "Kyoto Heritage Tour", "Machu Picchu Expedition"},
		},
		{
			name:    "duration is an upper bound",
			filters: request_models.SearchFilters{Duration: ptr(6)},
			want:    []string{"Kyoto Heritage Tour", "Santorini Sunset Bliss"},
		},
		{
			name:    "minimum rating",
			filters: request_models.SearchFilters{Rating: ptr(4.9)},
			want:    []string{"Swiss Alps Adventure", "Santorini Sunset Bliss", "Machu Picchu Expedition"},
		},
		{
			name:    "nothing matches",
			filters: request_models.SearchFilters{Query: ptr("antarctica")},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(FilterDestinations(all, tt.filters)))
		})
	}
}

func TestFallbackDestinations_ReturnsCopy(t *testing.T) {
	first := FallbackDestinations()
	first[0].Name = "changed"
	first[0].Images[0] = "changed"
	first[0].Highlights[0] = "changed"
	first[0].Itinerary[0].Title = "changed"
	first[0].Included[0] = "changed"
	first[0].Excluded[0] = "changed"
	first[0].Languages[0] = "changed"

	fresh := FallbackDestinations()[0]
	assert.Equal(t, "Swiss Alps Adventure", fresh.Name)
	assert.NotEqual(t, "changed", fresh.Images[0])
	assert.Equal(t, "Matterhorn Views", fresh.Highlights[0])
	assert.Equal(t, "Arrival in Zermatt", fresh.Itinerary[0].Title)
	assert.Equal(t, "Luxury Accommodation", fresh.Included[0])
	assert.Equal(t, "International Flights", fresh.Excluded[0])
	assert.Equal(t, "German", fresh.Languages[0])
}

func TestGetDestination_FallbackIsACopy(t *testing.T) {
	svc, _ := newDestinationService(&fakeDestinationRepo{})

	dest, err := svc.GetDestination(context.Background(), "fallback-1")
	require.NoError(t, err)
	dest.Highlights[0] = "changed"

	again, err := svc.GetDestination(context.Background(), "fallback-1")
	require.NoError(t, err)
	assert.Equal(t, "Matterhorn Views", again.Highlights[0])
}

func TestGetFacets_FirstSeenOrder(t *testing.T) {
	svc, _ := newDestinationService(&fakeDestinationRepo{})

	facets, err := svc.GetFacets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Europe", "Asia", "Americas"}, facets.Continents)
	assert.Equal(t, []string{"Moderate", "Easy", "Challenging"}, facets.Difficulties)
}

func TestGetDestination(t *testing.T) {
	stored := db_models.Destination{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Lisbon Weekend", IsActive: true}
	repo := &fakeDestinationRepo{rows: []db_models.Destination{stored}}
	svc, _ := newDestinationService(repo)
	ctx := context.Background()

	fallback, err := svc.GetDestination(ctx, "fallback-3")
	require.NoError(t, err)
	assert.Equal(t, "Santorini Sunset Bliss", fallback.Name)

	dest, err := svc.GetDestination(ctx, stored.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Lisbon Weekend", dest.Name)

	_, err = svc.GetDestination(ctx, uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)

	_, err = svc.GetDestination(ctx, "fallback-99")
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)

	repo.err = errStore
	_, err = svc.GetDestination(ctx, stored.ID.String())
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestGetFeatured_FallbackIsTrimmed(t *testing.T) {
	svc, _ := newDestinationService(&fakeDestinationRepo{err: errStore})

	featured, err := svc.GetFeatured(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Swiss Alps Adventure", "Kyoto Heritage Tour", "Santorini Sunset Bliss"}, names(featured))
}

func TestSavedFilters_Merge(t *testing.T) {
	svc, _ := newDestinationService(&fakeDestinationRepo{})
	user := uuid.NewString()

	assert.True(t, svc.GetSavedFilters(user).IsEmpty())

	svc.SaveFilters(user, request_models.SearchFilters{Continent: ptr("Asia"), MaxPrice: ptr(2000.0)})
	saved := svc.SaveFilters(user, request_models.SearchFilters{Continent: ptr("Europe")})

	require.NotNil(t, saved.Continent)
	assert.Equal(t, "Europe", *saved.Continent)
	require.NotNil(t, saved.MaxPrice)
	assert.Equal(t, 2000.0, *saved.MaxPrice)

	svc.ClearFilters(user)
	assert.True(t, svc.GetSavedFilters(user).IsEmpty())
}
