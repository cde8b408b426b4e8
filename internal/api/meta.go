package api

import (
	"net/http"

	"github.com/findit-campus/findit/internal/model"
)

// Meta handles GET /api/meta: the vocabularies clients use to populate
// filter and form dropdowns.
func Meta(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string][]string{
		"locations":          model.Locations,
		"listing_categories": model.ListingCategories,
		"listing_conditions": model.ListingConditions,
		"service_categories": model.ServiceCategories,
	})
}
