package db

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestSeed(t *testing.T) {
	database := NewTestDB(t)
	ctx := context.Background()

	seeded, err := Seed(ctx, database)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if !seeded {
		t.Error("expected first seed to report writes")
	}

	var userCount, itemCount int
	database.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount)
	database.QueryRowContext(ctx, `SELECT COUNT(*) FROM found_items`).Scan(&itemCount)
	if userCount != 3 {
		t.Errorf("expected 3 seeded users, got %d", userCount)
	}
	if itemCount != 4 {
		t.Errorf("expected 4 seeded found items, got %d", itemCount)
	}

	// The demo student starts with green points and a room.
	var points int
	var room string
	err = database.QueryRowContext(ctx,
		`SELECT green_points, room_number FROM users WHERE email = 'student@example.com'`,
	).Scan(&points, &room)
	if err != nil {
		t.Fatalf("querying demo student: %v", err)
	}
	if points != 25 {
		t.Errorf("expected 25 starting points, got %d", points)
	}
	if room != "A-101" {
		t.Errorf("expected room 'A-101', got %q", room)
	}

	// Seeded items belong to the demo staff account.
	var staffItems int
	database.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM found_items f
		 JOIN users u ON u.id = f.staff_id
		 WHERE u.email = 'staff@example.com'`,
	).Scan(&staffItems)
	if staffItems != 4 {
		t.Errorf("expected all 4 items logged by demo staff, got %d", staffItems)
	}
}

func TestSeedIdempotent(t *testing.T) {
	database := NewTestDB(t)
	ctx := context.Background()

	if _, err := Seed(ctx, database); err != nil {
		t.Fatalf("first Seed: %v", err)
	}

	seeded, err := Seed(ctx, database)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if seeded {
		t.Error("expected second seed to be a no-op")
	}

	var userCount, itemCount int
	database.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount)
	database.QueryRowContext(ctx, `SELECT COUNT(*) FROM found_items`).Scan(&itemCount)
	if userCount != 3 || itemCount != 4 {
		t.Errorf("expected 3 users and 4 items after reseed, got %d and %d", userCount, itemCount)
	}
}

func TestSeedPassword(t *testing.T) {
	database := NewTestDB(t)
	ctx := context.Background()

	if _, err := Seed(ctx, database); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var hash string
	err := database.QueryRowContext(ctx,
		`SELECT password_hash FROM users WHERE email = 'admin@example.com'`,
	).Scan(&hash)
	if err != nil {
		t.Fatalf("querying demo admin: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(DemoPassword)); err != nil {
		t.Errorf("demo password does not match seeded hash: %v", err)
	}
}
