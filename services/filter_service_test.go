package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lacuchara/reservation-app/models"
)

func seedCatalog() []models.Restaurant {
	return []models.Restaurant{
		{ID: 1, Name: "El Rincón Mediterráneo", CuisineType: "Mediterráneo", PriceMin: 15, PriceMax: 25, Promoted: true},
		{ID: 2, Name: "Sabores de Asia", CuisineType: "Asiático", PriceMin: 12, PriceMax: 20},
		{ID: 3, Name: "La Trattoria", CuisineType: "Italiano", PriceMin: 10, PriceMax: 18},
		{ID: 4, Name: "El Asador", CuisineType: "Español", PriceMin: 18, PriceMax: 30, Promoted: true},
		{ID: 5, Name: "Veggie Garden", CuisineType: "Vegetariano", PriceMin: 12, PriceMax: 16},
	}
}

func TestFilterByCuisine(t *testing.T) {
	result := FilterRestaurants(seedCatalog(), FilterCriteria{CuisineType: "Italiano"})

	assert.Len(t, result, 1)
	assert.Equal(t, uint(3), result[0].ID)
	assert.Equal(t, "La Trattoria", result[0].Name)
}

func TestFilterByPriceContainment(t *testing.T) {
	// Containment, not overlap: the restaurant's whole range must sit
	// inside [10, 25].
	result := FilterRestaurants(seedCatalog(), FilterCriteria{PriceMin: 10, PriceMax: 25})

	ids := make([]uint, 0, len(result))
	for _, r := range result {
		ids = append(ids, r.ID)
	}

	// El Asador (18-30) sticks out above 25 and is excluded even though
	// part of its range fits the budget.
	assert.NotContains(t, ids, uint(4))
	assert.Equal(t, []uint{1, 2, 3, 5}, ids)
}

func TestFilterLowerBoundAloneFiltersNothing(t *testing.T) {
	// PriceMax zero means no budget ceiling, so there is no range to
	// contain restaurants in and the price predicate stays off.
	result := FilterRestaurants(seedCatalog(), FilterCriteria{PriceMin: 20})

	assert.Len(t, result, 5)
}

func TestFilterPromotedOnly(t *testing.T) {
	result := FilterRestaurants(seedCatalog(), FilterCriteria{PromotedOnly: true})

	assert.Len(t, result, 2)
	assert.Equal(t, uint(1), result[0].ID)
	assert.Equal(t, uint(4), result[1].ID)
}

func TestFilterIgnoresDietaryAndTextInputs(t *testing.T) {
	// Dietary tags and the free-text inputs are accepted but never narrow
	// the result; this pins the observed search-page behavior.
	criteria := FilterCriteria{
		DietaryTags:   []string{"Vegano", "Celíaco"},
		DishQuery:     "paella",
		LocationQuery: "Plaza Mayor",
	}

	result := FilterRestaurants(seedCatalog(), criteria)
	assert.Len(t, result, len(seedCatalog()))
}

func TestFilterKeepsCatalogOrder(t *testing.T) {
	result := FilterRestaurants(seedCatalog(), FilterCriteria{})

	for i := 1; i < len(result); i++ {
		assert.Less(t, result[i-1].ID, result[i].ID)
	}
}

func TestFilterCombinedCriteria(t *testing.T) {
	result := FilterRestaurants(seedCatalog(), FilterCriteria{
		PromotedOnly: true,
		PriceMin:     10,
		PriceMax:     25,
	})

	assert.Len(t, result, 1)
	assert.Equal(t, "El Rincón Mediterráneo", result[0].Name)
}
