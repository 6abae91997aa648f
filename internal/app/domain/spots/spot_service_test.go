package spots

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wandererhq/wanderer/internal/app/models"
)

func makeSpot(name string, municipality string, categories ...string) models.TouristSpot {
	s := models.TouristSpot{
		ID:       uuid.New(),
		Name:     name,
		Category: categories,
	}
	if municipality != "" {
		s.Municipality = &municipality
	}
	return s
}

func spotNames(spots []models.TouristSpot) []string {
	names := make([]string, 0, len(spots))
	for _, s := range spots {
		names = append(names, s.Name)
	}
	return names
}

func TestFilterSpots_NoFilterReturnsAll(t *testing.T) {
	spots := []models.TouristSpot{
		makeSpot("Mayon Volcano", "Legazpi", "Nature"),
		makeSpot("Cagsawa Ruins", "Daraga", "Historical"),
	}

	filtered := FilterSpots(spots, models.SpotFilter{})
	assert.Len(t, filtered, 2)
}

func TestFilterSpots_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	spots := []models.TouristSpot{
		makeSpot("Mayon Volcano", "Legazpi", "Nature"),
		makeSpot("Cagsawa Ruins", "Daraga", "Historical"),
		makeSpot("Sumlang Lake", "Camalig", "Nature"),
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "lowercase name fragment", query: "mayon", expected: []string{"Mayon Volcano"}},
		{name: "uppercase name fragment", query: "CAGSAWA", expected: []string{"Cagsawa Ruins"}},
		{name: "municipality fragment", query: "camalig", expected: []string{"Sumlang Lake"}},
		{name: "no match", query: "boracay", expected: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filtered := FilterSpots(spots, models.SpotFilter{Query: tc.query})
			assert.Equal(t, tc.expected, spotNames(filtered))
		})
	}
}

func TestFilterSpots_CategoriesRequireEveryActiveFilter(t *testing.T) {
	spots := []models.TouristSpot{
		makeSpot("Mayon Volcano", "Legazpi", "Nature", "Adventure"),
		makeSpot("Sumlang Lake", "Camalig", "Nature"),
		makeSpot("Cagsawa Ruins", "Daraga", "Historical"),
	}

	filtered := FilterSpots(spots, models.SpotFilter{Categories: []string{"Nature", "Adventure"}})

	// Only the spot carrying both active categories survives.
	assert.Equal(t, []string{"Mayon Volcano"}, spotNames(filtered))
}

func TestFilterSpots_QueryAndCategoriesCombine(t *testing.T) {
	spots := []models.TouristSpot{
		makeSpot("Mayon Volcano", "Legazpi", "Nature"),
		makeSpot("Mayon Skyline", "Tabaco", "Viewpoint"),
	}

	filtered := FilterSpots(spots, models.SpotFilter{Query: "mayon", Categories: []string{"Nature"}})
	assert.Equal(t, []string{"Mayon Volcano"}, spotNames(filtered))
}

func TestValidateSpotParams(t *testing.T) {
	tests := []struct {
		name      string
		params    SpotParams
		expectErr bool
	}{
		{name: "valid", params: SpotParams{Name: "Mayon Volcano", Location: "Legazpi"}, expectErr: false},
		{name: "missing name", params: SpotParams{Location: "Legazpi"}, expectErr: true},
		{name: "blank name", params: SpotParams{Name: "   ", Location: "Legazpi"}, expectErr: true},
		{name: "missing location", params: SpotParams{Name: "Mayon Volcano"}, expectErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSpotParams(tc.params)
			if tc.expectErr {
				assert.ErrorIs(t, err, models.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
