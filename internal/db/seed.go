package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password for the seeded demo accounts.
const DemoPassword = "password"

type seedUser struct {
	email string
	name  string
	role  string
	room  string
	// starting green points (students only)
	points int
}

var seedUsers = []seedUser{
	{email: "student@example.com", name: "John Doe", role: "student", room: "A-101", points: 25},
	{email: "staff@example.com", name: "Jane Smith", role: "staff"},
	{email: "admin@example.com", name: "Admin User", role: "admin"},
}

type seedFoundItem struct {
	name        string
	description string
	location    string
	daysAgo     int
	imageURL    string
}

var seedFoundItems = []seedFoundItem{
	{
		name:        "Blue Notebook",
		description: `A blue spiral notebook with "Organic Chemistry" written on the cover.`,
		location:    "Library",
		daysAgo:     7,
		imageURL:    "https://images.unsplash.com/photo-1600095077943-9059ad6fde2a?q=80&w=200",
	},
	{
		name:        "Silver Watch",
		description: "A silver analog watch with a leather strap. Brand appears to be Fossil.",
		location:    "Dining Hall",
		daysAgo:     10,
		imageURL:    "https://images.unsplash.com/photo-1523170335258-f5ed11844a49?q=80&w=200",
	},
	{
		name:        "USB Drive",
		description: "32GB SanDisk USB drive, black and red in color.",
		location:    "Study Room",
		daysAgo:     15,
		imageURL:    "https://images.unsplash.com/photo-1647427060118-4911c9821b82?q=80&w=200",
	},
	{
		name:        "Water Bottle",
		description: "Blue hydroflask water bottle with a few stickers on it.",
		location:    "Sports Complex",
		daysAgo:     20,
		imageURL:    "https://images.unsplash.com/photo-1602143407151-7111542de6e8?q=80&w=200",
	},
}

// Seed writes the demo accounts and default found items if the respective
// tables are empty. Idempotent: safe to call on every startup.
// Returns true if anything was written.
func Seed(ctx context.Context, db *sql.DB) (bool, error) {
	seeded := false

	var userCount int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return false, fmt.Errorf("counting users: %w", err)
	}

	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
		if err != nil {
			return false, fmt.Errorf("hashing demo password: %w", err)
		}

		for _, u := range seedUsers {
			var room any
			if u.room != "" {
				room = u.room
			}
			_, err := db.ExecContext(ctx,
				`INSERT INTO users (email, password_hash, name, role, room_number, green_points)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				u.email, string(hash), u.name, u.role, room, u.points,
			)
			if err != nil {
				return false, fmt.Errorf("seeding user %s: %w", u.email, err)
			}
		}
		seeded = true
	}

	var itemCount int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM found_items`).Scan(&itemCount); err != nil {
		return false, fmt.Errorf("counting found items: %w", err)
	}

	if itemCount == 0 {
		// Items are logged by the seeded staff account.
		var staffID int64
		err := db.QueryRowContext(ctx,
			`SELECT id FROM users WHERE role = 'staff' ORDER BY id LIMIT 1`,
		).Scan(&staffID)
		if err != nil {
			return false, fmt.Errorf("finding seed staff account: %w", err)
		}

		now := time.Now()
		for _, it := range seedFoundItems {
			_, err := db.ExecContext(ctx,
				`INSERT INTO found_items (name, description, location, date_found, image_url, staff_id)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				it.name, it.description, it.location, now.AddDate(0, 0, -it.daysAgo), it.imageURL, staffID,
			)
			if err != nil {
				return false, fmt.Errorf("seeding found item %s: %w", it.name, err)
			}
		}
		seeded = true
	}

	return seeded, nil
}
