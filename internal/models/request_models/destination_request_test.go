package request_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFilters_Merge(t *testing.T) {
	asia, europe := "Asia", "Europe"
	maxPrice := 2000.0

	saved := SearchFilters{Continent: &asia, MaxPrice: &maxPrice}
	merged := saved.Merge(SearchFilters{Continent: &europe})

	require.NotNil(t, merged.Continent)
	assert.Equal(t, "Europe", *merged.Continent)
	assert.Equal(t, &maxPrice, merged.MaxPrice)
	assert.Equal(t, "Asia", *saved.Continent, "receiver is not modified")

	assert.True(t, SearchFilters{}.IsEmpty())
	assert.False(t, merged.IsEmpty())
	assert.Equal(t, saved, saved.Merge(SearchFilters{}))
}
