package services

import "github.com/lacuchara/reservation-app/models"

// FilterCriteria mirrors the search form. DietaryTags, DishQuery and
// LocationQuery are accepted but deliberately never applied as predicates;
// the live behavior of the search page ignores them and that contract is
// preserved here.
type FilterCriteria struct {
	CuisineType   string   `form:"cuisine" json:"cuisine_type"`
	PriceMin      float64  `form:"price_min" json:"price_min"`
	PriceMax      float64  `form:"price_max" json:"price_max"`
	PromotedOnly  bool     `form:"promoted_only" json:"promoted_only"`
	DietaryTags   []string `form:"dietary" json:"dietary_tags"`
	DishQuery     string   `form:"dish" json:"dish_query"`
	LocationQuery string   `form:"location" json:"location_query"`
}

// FilterRestaurants returns the subset of restaurants matching the criteria,
// in the order they were given. The price predicate is a containment test:
// the restaurant's whole price range must lie within [PriceMin, PriceMax].
// A restaurant whose range only partially overlaps the query is excluded.
// The predicate is skipped when PriceMax is zero, so a query that sets only
// PriceMin has no upper bound to contain ranges in and filters nothing.
func FilterRestaurants(restaurants []models.Restaurant, criteria FilterCriteria) []models.Restaurant {
	filtered := make([]models.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if criteria.CuisineType != "" && r.CuisineType != criteria.CuisineType {
			continue
		}
		if criteria.PromotedOnly && !r.Promoted {
			continue
		}
		if criteria.PriceMax > 0 {
			if r.PriceMin < criteria.PriceMin || r.PriceMax > criteria.PriceMax {
				continue
			}
		}
		filtered = append(filtered, r)
	}
	return filtered
}
