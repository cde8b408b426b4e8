package model

import "time"

// LostReport is a user's report of a lost item.
type LostReport struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	UserEmail   string    `json:"user_email,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	DateLost    time.Time `json:"date_lost"`
	ImageMime   string    `json:"image_mime,omitempty"`
	Status      string    `json:"status"`
	ReportedAt  time.Time `json:"reported_at"`
}

// Lost report statuses. Progression is one-way:
// not_found -> matched -> claimed.
const (
	LostStatusNotFound = "not_found"
	LostStatusMatched  = "matched"
	LostStatusClaimed  = "claimed"
)
