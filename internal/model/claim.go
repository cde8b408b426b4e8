package model

import "time"

// Claim records a successful item recovery: a found item handed back to its
// owner after verification. Claims carry their own timestamp so activity
// history does not depend on the clock at render time.
type Claim struct {
	ID            string    `json:"id"`
	FoundItemID   int64     `json:"found_item_id"`
	UserID        int64     `json:"user_id"`
	LostReportID  *int64    `json:"lost_report_id,omitempty"`
	PointsAwarded int       `json:"points_awarded"`
	ClaimedAt     time.Time `json:"claimed_at"`

	// Joined fields (not always populated).
	ItemName     string `json:"item_name,omitempty"`
	ItemLocation string `json:"item_location,omitempty"`
}
