package model

import "time"

// ServiceStaff is a maintenance staff member available for booking.
type ServiceStaff struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Rating       float64  `json:"rating"`
	Availability []string `json:"availability"`
}

// ServiceBooking is a maintenance request. Like listings, bookings are
// validated and acknowledged but not persisted.
type ServiceBooking struct {
	ID          string    `json:"id"`
	StaffID     string    `json:"staff_id"`
	UserID      int64     `json:"user_id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceCategories is the maintenance category vocabulary.
var ServiceCategories = []string{
	"Plumbing",
	"Electrical",
	"Carpentry",
	"HVAC",
	"Laundry",
	"Cleaning",
	"Painting",
	"IT Support",
}
