package model

import "time"

// Listing is a marketplace entry. Listings are validated and acknowledged
// but held in process memory only; they are not persisted.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"`
	Price       int       `json:"price"`
	Type        string    `json:"type"`
	Location    string    `json:"location,omitempty"`
	SellerName  string    `json:"seller_name"`
	SellerRoom  string    `json:"seller_room,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Listing types.
const (
	ListingTypeSell   = "sell"
	ListingTypeDonate = "donate"
)

// ListingCategories is the marketplace category vocabulary.
var ListingCategories = []string{
	"Textbooks",
	"Electronics",
	"Clothing",
	"Furniture",
	"Sports Equipment",
	"Kitchen Items",
	"Stationery",
	"Other",
}

// ListingConditions is the accepted condition scale.
var ListingConditions = []string{"New", "Like New", "Good", "Fair", "Poor"}

// Locations is the campus location vocabulary used by reports and found items.
var Locations = []string{
	"Dining Hall",
	"Study Room",
	"Library",
	"Sports Complex",
	"Hostel Block A",
	"Hostel Block B",
	"Cafeteria",
	"Lecture Hall",
	"Lab Complex",
	"Other",
}
