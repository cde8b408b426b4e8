package model

import "time"

// FoundItem is an item logged at the lost-and-found desk by a staff member.
type FoundItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	DateFound   time.Time `json:"date_found"`
	ImageURL    string    `json:"image_url,omitempty"`
	ImageMime   string    `json:"image_mime,omitempty"`
	Status      string    `json:"status"`
	StaffID     int64     `json:"staff_id"`
	StaffName   string    `json:"staff_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Found item statuses. The progression is one-way: a claimed item never
// becomes available again.
const (
	FoundStatusAvailable = "available"
	FoundStatusClaimed   = "claimed"
)
