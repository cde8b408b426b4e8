package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/findit-campus/findit/internal/model"
)

// ServicesHandler handles maintenance service endpoints. The staff
// directory is embedded; bookings are validated and acknowledged but held
// in process memory only.
type ServicesHandler struct {
	mu       sync.Mutex
	bookings []model.ServiceBooking
}

type createBookingRequest struct {
	StaffID     string `json:"staff_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// serviceStaff is the embedded maintenance staff directory.
var serviceStaff = []model.ServiceStaff{
	{ID: "1", Name: "Rajesh Kumar", Title: "Plumber", Category: "Plumbing", Rating: 4.8,
		Availability: []string{"Mon-Fri, 9AM-5PM", "Sat, 10AM-2PM"}},
	{ID: "2", Name: "Anita Sharma", Title: "Electrician", Category: "Electrical", Rating: 4.9,
		Availability: []string{"Mon-Sat, 10AM-6PM"}},
	{ID: "3", Name: "Vikram Singh", Title: "Carpenter", Category: "Carpentry", Rating: 4.7,
		Availability: []string{"Mon-Fri, 8AM-4PM"}},
	{ID: "4", Name: "Priya Patel", Title: "Laundry Services", Category: "Laundry", Rating: 4.6,
		Availability: []string{"Mon-Sun, 7AM-7PM"}},
	{ID: "5", Name: "Sanjay Mehta", Title: "AC Technician", Category: "HVAC", Rating: 4.8,
		Availability: []string{"Mon-Sat, 9AM-5PM"}},
}

// ListStaff handles GET /api/services/staff, optionally filtered by category.
func (h *ServicesHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" || category == "All Categories" {
		jsonResponse(w, http.StatusOK, serviceStaff)
		return
	}

	filtered := []model.ServiceStaff{}
	for _, s := range serviceStaff {
		if s.Category == category {
			filtered = append(filtered, s)
		}
	}
	jsonResponse(w, http.StatusOK, filtered)
}

// CreateBooking handles POST /api/services/bookings.
func (h *ServicesHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.StaffID == "" || req.Date == "" || req.Time == "" || req.Description == "" || req.Location == "" {
		jsonError(w, http.StatusBadRequest, "staff_id, date, time, description, and location required")
		return
	}

	found := false
	for _, s := range serviceStaff {
		if s.ID == req.StaffID {
			found = true
			break
		}
	}
	if !found {
		jsonError(w, http.StatusBadRequest, "unknown staff member")
		return
	}

	booking := model.ServiceBooking{
		ID:          uuid.NewString(),
		StaffID:     req.StaffID,
		UserID:      claims.UserID,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
		Location:    req.Location,
		CreatedAt:   time.Now(),
	}

	h.mu.Lock()
	h.bookings = append(h.bookings, booking)
	h.mu.Unlock()

	jsonResponse(w, http.StatusCreated, booking)
}

// ListBookings handles GET /api/services/bookings, returning the caller's
// bookings from this session.
func (h *ServicesHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	mine := []model.ServiceBooking{}
	for _, b := range h.bookings {
		if b.UserID == claims.UserID {
			mine = append(mine, b)
		}
	}
	jsonResponse(w, http.StatusOK, mine)
}
