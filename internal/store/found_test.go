package store

import (
	"context"
	"testing"
	"time"

	"github.com/findit-campus/findit/internal/db"
	"github.com/findit-campus/findit/internal/model"
)

func TestCreateAndGetFoundItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	staff, _ := CreateUser(ctx, database, "staff@example.com", "hash", "Jane Smith", model.RoleStaff, "")

	item, err := CreateFoundItem(ctx, database, "Blue Notebook", "Spiral bound", "Library", time.Now(), "", staff.ID)
	if err != nil {
		t.Fatalf("CreateFoundItem: %v", err)
	}
	if item.Status != model.FoundStatusAvailable {
		t.Errorf("expected status 'available', got %q", item.Status)
	}

	got, err := GetFoundItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetFoundItem: %v", err)
	}
	if got == nil {
		t.Fatal("expected item, got nil")
	}
	if got.StaffName != "Jane Smith" {
		t.Errorf("expected staff name 'Jane Smith', got %q", got.StaffName)
	}
}

func TestListFoundItemsFilters(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	staff, _ := CreateUser(ctx, database, "staff@example.com", "hash", "Staff", model.RoleStaff, "")
	CreateFoundItem(ctx, database, "Blue Notebook", "Spiral bound", "Library", time.Now(), "", staff.ID)
	CreateFoundItem(ctx, database, "Silver Watch", "Leather strap", "Dining Hall", time.Now(), "", staff.ID)
	CreateFoundItem(ctx, database, "Red Notebook", "Hardcover", "Dining Hall", time.Now(), "", staff.ID)

	all, err := ListFoundItems(ctx, database, "", "", "")
	if err != nil {
		t.Fatalf("ListFoundItems: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 items, got %d", len(all))
	}

	// Location and search filters stack.
	byLocation, _ := ListFoundItems(ctx, database, "Dining Hall", "", "")
	if len(byLocation) != 2 {
		t.Errorf("expected 2 items in Dining Hall, got %d", len(byLocation))
	}

	bySearch, _ := ListFoundItems(ctx, database, "", "notebook", "")
	if len(bySearch) != 2 {
		t.Errorf("expected 2 notebook matches, got %d", len(bySearch))
	}

	both, _ := ListFoundItems(ctx, database, "Library", "notebook", "")
	if len(both) != 1 || both[0].Name != "Blue Notebook" {
		t.Errorf("expected only the Blue Notebook, got %+v", both)
	}
}

func TestListFoundItemsByStatus(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	staff, _ := CreateUser(ctx, database, "staff@example.com", "hash", "Staff", model.RoleStaff, "")
	student, _ := CreateUser(ctx, database, "student@example.com", "hash", "Student", model.RoleStudent, "")

	item, _ := CreateFoundItem(ctx, database, "USB Drive", "", "Study Room", time.Now(), "", staff.ID)
	CreateFoundItem(ctx, database, "Water Bottle", "", "Sports Complex", time.Now(), "", staff.ID)

	if _, err := CompleteClaim(ctx, database, item.ID, student.ID); err != nil {
		t.Fatalf("CompleteClaim: %v", err)
	}

	available, _ := ListFoundItems(ctx, database, "", "", model.FoundStatusAvailable)
	if len(available) != 1 || available[0].Name != "Water Bottle" {
		t.Errorf("expected only the Water Bottle available, got %+v", available)
	}

	claimed, _ := ListFoundItems(ctx, database, "", "", model.FoundStatusClaimed)
	if len(claimed) != 1 || claimed[0].Name != "USB Drive" {
		t.Errorf("expected only the USB Drive claimed, got %+v", claimed)
	}
}

func TestFoundItemImage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	staff, _ := CreateUser(ctx, database, "staff@example.com", "hash", "Staff", model.RoleStaff, "")
	item, _ := CreateFoundItem(ctx, database, "Photo Item", "", "Library", time.Now(), "", staff.ID)

	imageData := []byte("fake image data")
	if err := SetFoundItemImage(ctx, database, item.ID, imageData, "image/jpeg"); err != nil {
		t.Fatalf("SetFoundItemImage: %v", err)
	}

	data, mime, err := GetFoundItemImage(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetFoundItemImage: %v", err)
	}
	if string(data) != "fake image data" {
		t.Errorf("expected image data, got %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}
}
