package api

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/findit-campus/findit/internal/imaging"
	"github.com/findit-campus/findit/internal/metrics"
	"github.com/findit-campus/findit/internal/model"
	"github.com/findit-campus/findit/internal/store"
)

// FoundHandler handles found item endpoints.
type FoundHandler struct {
	DB *sql.DB
}

type createFoundItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	DateFound   string `json:"date_found"`
	ImageURL    string `json:"image_url"`
}

// List handles GET /api/found. Supported filters: location (exact tag,
// "All Locations" matches everything), q (case-insensitive search over name
// and description), status (default available, "all" disables the filter).
func (h *FoundHandler) List(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "All Locations" {
		location = ""
	}
	search := r.URL.Query().Get("q")

	status := r.URL.Query().Get("status")
	switch status {
	case "":
		status = model.FoundStatusAvailable
	case "all":
		status = ""
	case model.FoundStatusAvailable, model.FoundStatusClaimed:
	default:
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	items, err := store.ListFoundItems(r.Context(), h.DB, location, search, status)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list found items")
		return
	}
	if items == nil {
		items = []model.FoundItem{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/found (staff only).
func (h *FoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createFoundItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Location == "" {
		jsonError(w, http.StatusBadRequest, "name and location required")
		return
	}

	dateFound := time.Now()
	if req.DateFound != "" {
		parsed, err := parseDate(req.DateFound)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid date_found")
			return
		}
		dateFound = parsed
	}

	item, err := store.CreateFoundItem(r.Context(), h.DB, req.Name, req.Description, req.Location, dateFound, req.ImageURL, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create found item")
		return
	}

	metrics.FoundItemsLoggedTotal.Inc()
	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/found/{id}.
func (h *FoundHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetFoundItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get found item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// UploadImage handles PUT /api/found/{id}/image (staff only).
func (h *FoundHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetFoundItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get found item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	data, mime, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetFoundItemImage(r.Context(), h.DB, id, data, mime); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/found/{id}/image.
func (h *FoundHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := store.GetFoundItemImage(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}

// parseDate accepts RFC 3339 timestamps or bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
