package store

import (
	"context"
	"testing"

	"github.com/findit-campus/findit/internal/db"
	"github.com/findit-campus/findit/internal/model"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "alice@example.com", "hash", "Alice", model.RoleStudent, "B-204")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("expected email 'alice@example.com', got %q", user.Email)
	}
	if user.RoomNumber != "B-204" {
		t.Errorf("expected room 'B-204', got %q", user.RoomNumber)
	}
	if user.GreenPoints != 0 {
		t.Errorf("expected 0 green points, got %d", user.GreenPoints)
	}

	got, err := GetUser(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got == nil || got.Email != user.Email {
		t.Errorf("GetUser returned %+v", got)
	}
}

func TestCreateStudentDefaultRoom(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "bob@example.com", "hash", "Bob", model.RoleStudent, "")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.RoomNumber != model.DefaultRoomNumber {
		t.Errorf("expected default room %q, got %q", model.DefaultRoomNumber, user.RoomNumber)
	}

	// Staff accounts never get a room number.
	staff, err := CreateUser(ctx, database, "staff@example.com", "hash", "Staff", model.RoleStaff, "C-300")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if staff.RoomNumber != "" {
		t.Errorf("expected empty room for staff, got %q", staff.RoomNumber)
	}
}

func TestGetUserByEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "carol@example.com", "hash", "Carol", model.RoleStudent, "")

	got, err := GetUserByEmail(ctx, database, "carol@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got == nil || got.Name != "Carol" {
		t.Errorf("GetUserByEmail returned %+v", got)
	}

	missing, err := GetUserByEmail(ctx, database, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown email, got %+v", missing)
	}
}

func TestAddGreenPoints(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	student, _ := CreateUser(ctx, database, "dan@example.com", "hash", "Dan", model.RoleStudent, "")
	staff, _ := CreateUser(ctx, database, "eve@example.com", "hash", "Eve", model.RoleStaff, "")

	awarded, err := AddGreenPoints(ctx, database, student.ID, model.PointsLostReport)
	if err != nil {
		t.Fatalf("AddGreenPoints: %v", err)
	}
	if awarded != model.PointsLostReport {
		t.Errorf("expected %d points awarded, got %d", model.PointsLostReport, awarded)
	}

	got, _ := GetUser(ctx, database, student.ID)
	if got.GreenPoints != model.PointsLostReport {
		t.Errorf("expected %d green points, got %d", model.PointsLostReport, got.GreenPoints)
	}

	// Only students collect green points.
	awarded, err = AddGreenPoints(ctx, database, staff.ID, model.PointsLostReport)
	if err != nil {
		t.Fatalf("AddGreenPoints: %v", err)
	}
	if awarded != 0 {
		t.Errorf("expected 0 points awarded to staff, got %d", awarded)
	}
}

func TestUpdateUserPassword(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "frank@example.com", "oldhash", "Frank", model.RoleStudent, "")

	if err := UpdateUserPassword(ctx, database, user.ID, "newhash"); err != nil {
		t.Fatalf("UpdateUserPassword: %v", err)
	}

	got, _ := GetUser(ctx, database, user.ID)
	if got.PasswordHash != "newhash" {
		t.Errorf("expected updated password hash, got %q", got.PasswordHash)
	}
}
