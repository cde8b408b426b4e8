package api

import (
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/findit-campus/findit/internal/model"
)

// MarketHandler handles marketplace endpoints. Listings are validated and
// acknowledged but held in process memory only; they do not survive a
// restart.
type MarketHandler struct {
	mu       sync.Mutex
	listings []model.Listing
}

type createListingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Condition   string `json:"condition"`
	Price       int    `json:"price"`
	Type        string `json:"type"`
	Location    string `json:"location"`
}

// NewMarketHandler creates the handler preloaded with the demo listings.
func NewMarketHandler() *MarketHandler {
	return &MarketHandler{listings: demoListings()}
}

// List handles GET /api/market/listings. Filters: q (search over title and
// description), category, type (sell|donate).
func (h *MarketHandler) List(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("q"))
	category := r.URL.Query().Get("category")
	if category == "All Categories" {
		category = ""
	}
	listingType := r.URL.Query().Get("type")

	h.mu.Lock()
	defer h.mu.Unlock()

	filtered := []model.Listing{}
	for _, l := range h.listings {
		if search != "" && !strings.Contains(strings.ToLower(l.Title), search) &&
			!strings.Contains(strings.ToLower(l.Description), search) {
			continue
		}
		if category != "" && l.Category != category {
			continue
		}
		if listingType != "" && listingType != "all" && l.Type != listingType {
			continue
		}
		filtered = append(filtered, l)
	}

	jsonResponse(w, http.StatusOK, filtered)
}

// Create handles POST /api/market/listings.
func (h *MarketHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createListingRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" || req.Description == "" || req.Category == "" || req.Condition == "" {
		jsonError(w, http.StatusBadRequest, "title, description, category, and condition required")
		return
	}
	if !slices.Contains(model.ListingCategories, req.Category) {
		jsonError(w, http.StatusBadRequest, "invalid category")
		return
	}
	if !slices.Contains(model.ListingConditions, req.Condition) {
		jsonError(w, http.StatusBadRequest, "invalid condition")
		return
	}
	if req.Type == "" {
		req.Type = model.ListingTypeSell
	}
	if req.Type != model.ListingTypeSell && req.Type != model.ListingTypeDonate {
		jsonError(w, http.StatusBadRequest, "type must be sell or donate")
		return
	}
	if req.Type == model.ListingTypeSell && req.Price <= 0 {
		jsonError(w, http.StatusBadRequest, "price required for sell listings")
		return
	}
	if req.Type == model.ListingTypeDonate {
		req.Price = 0
	}

	listing := model.Listing{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Condition:   req.Condition,
		Price:       req.Price,
		Type:        req.Type,
		Location:    req.Location,
		SellerName:  claims.Name,
		CreatedAt:   time.Now(),
	}

	h.mu.Lock()
	h.listings = append(h.listings, listing)
	h.mu.Unlock()

	jsonResponse(w, http.StatusCreated, listing)
}

// demoListings is the seeded marketplace content.
func demoListings() []model.Listing {
	base := time.Now()
	return []model.Listing{
		{
			ID:          "m-1",
			Title:       "Physics Textbook",
			Description: "Fundamentals of Physics by Halliday & Resnick. 10th edition, good condition with minor highlighting.",
			Category:    "Textbooks",
			Condition:   "Good",
			Price:       400,
			Type:        model.ListingTypeSell,
			Location:    "Hostel Block A",
			SellerName:  "Alex Johnson",
			SellerRoom:  "A-205",
			CreatedAt:   base.AddDate(0, 0, -1),
		},
		{
			ID:          "m-2",
			Title:       "Scientific Calculator",
			Description: "Casio FX-991EX scientific calculator. Like new, includes cover and manual.",
			Category:    "Electronics",
			Condition:   "Like New",
			Price:       800,
			Type:        model.ListingTypeSell,
			Location:    "Hostel Block B",
			SellerName:  "Sarah Patel",
			SellerRoom:  "B-118",
			CreatedAt:   base.AddDate(0, 0, -3),
		},
		{
			ID:          "m-3",
			Title:       "Winter Jacket",
			Description: "Medium size black winter jacket, barely used. Very warm and comfortable.",
			Category:    "Clothing",
			Condition:   "Good",
			Price:       600,
			Type:        model.ListingTypeSell,
			Location:    "Hostel Block A",
			SellerName:  "Mike Chen",
			SellerRoom:  "A-312",
			CreatedAt:   base.AddDate(0, 0, -4),
		},
		{
			ID:          "m-4",
			Title:       "Chemistry Lab Coat",
			Description: "Standard white lab coat, size L. No stains or damage. Free to a good home!",
			Category:    "Clothing",
			Condition:   "Good",
			Price:       0,
			Type:        model.ListingTypeDonate,
			Location:    "Hostel Block B",
			SellerName:  "Emma Clark",
			SellerRoom:  "B-240",
			CreatedAt:   base.AddDate(0, 0, -6),
		},
		{
			ID:          "m-5",
			Title:       "Desk Lamp",
			Description: "Adjustable LED desk lamp with multiple brightness levels. Includes USB charging port.",
			Category:    "Furniture",
			Condition:   "Like New",
			Price:       350,
			Type:        model.ListingTypeSell,
			Location:    "Hostel Block A",
			SellerName:  "David Kim",
			SellerRoom:  "A-127",
			CreatedAt:   base.AddDate(0, 0, -8),
		},
		{
			ID:          "m-6",
			Title:       "Yoga Mat",
			Description: "Purple 6mm thick yoga mat. Lightly used, clean and in great condition.",
			Category:    "Sports Equipment",
			Condition:   "Good",
			Price:       200,
			Type:        model.ListingTypeSell,
			Location:    "Hostel Block B",
			SellerName:  "Priya Singh",
			SellerRoom:  "B-305",
			CreatedAt:   base.AddDate(0, 0, -10),
		},
	}
}
