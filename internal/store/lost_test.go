package store

import (
	"context"
	"testing"
	"time"

	"github.com/findit-campus/findit/internal/db"
	"github.com/findit-campus/findit/internal/model"
)

func TestCreateAndGetLostReport(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	student, _ := CreateUser(ctx, database, "student@example.com", "hash", "John Doe", model.RoleStudent, "")

	report, err := CreateLostReport(ctx, database, student.ID, "Blue Notebook", "Spiral bound", "Library", time.Now())
	if err != nil {
		t.Fatalf("CreateLostReport: %v", err)
	}
	if report.Status != model.LostStatusNotFound {
		t.Errorf("expected status 'not_found', got %q", report.Status)
	}

	got, err := GetLostReport(ctx, database, report.ID)
	if err != nil {
		t.Fatalf("GetLostReport: %v", err)
	}
	if got == nil {
		t.Fatal("expected report, got nil")
	}
	if got.UserName != "John Doe" {
		t.Errorf("expected reporter 'John Doe', got %q", got.UserName)
	}
}

func TestListLostReports(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice, _ := CreateUser(ctx, database, "alice@example.com", "hash", "Alice", model.RoleStudent, "")
	bob, _ := CreateUser(ctx, database, "bob@example.com", "hash", "Bob", model.RoleStudent, "")

	CreateLostReport(ctx, database, alice.ID, "Keys", "", "Cafeteria", time.Now())
	CreateLostReport(ctx, database, alice.ID, "Umbrella", "", "Library", time.Now())
	CreateLostReport(ctx, database, bob.ID, "Wallet", "", "Gym", time.Now())

	mine, err := ListLostReports(ctx, database, alice.ID)
	if err != nil {
		t.Fatalf("ListLostReports: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 reports for alice, got %d", len(mine))
	}

	// userID 0 lists everyone's reports.
	all, err := ListLostReports(ctx, database, 0)
	if err != nil {
		t.Fatalf("ListLostReports: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 reports total, got %d", len(all))
	}
}

func TestMarkLostReportMatched(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	student, _ := CreateUser(ctx, database, "student@example.com", "hash", "Student", model.RoleStudent, "")
	report, _ := CreateLostReport(ctx, database, student.ID, "Headphones", "", "Bus Stop", time.Now())

	if err := MarkLostReportMatched(ctx, database, report.ID); err != nil {
		t.Fatalf("MarkLostReportMatched: %v", err)
	}

	got, _ := GetLostReport(ctx, database, report.ID)
	if got.Status != model.LostStatusMatched {
		t.Errorf("expected status 'matched', got %q", got.Status)
	}

	// The transition is one-way; matching again is a no-op error.
	if err := MarkLostReportMatched(ctx, database, report.ID); err == nil {
		t.Error("expected error re-matching an already matched report")
	}
}

func TestLostReportImage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	student, _ := CreateUser(ctx, database, "student@example.com", "hash", "Student", model.RoleStudent, "")
	report, _ := CreateLostReport(ctx, database, student.ID, "Camera", "", "Park", time.Now())

	if err := SetLostReportImage(ctx, database, report.ID, []byte("photo"), "image/png"); err != nil {
		t.Fatalf("SetLostReportImage: %v", err)
	}

	data, mime, err := GetLostReportImage(ctx, database, report.ID)
	if err != nil {
		t.Fatalf("GetLostReportImage: %v", err)
	}
	if string(data) != "photo" || mime != "image/png" {
		t.Errorf("got %q (%s)", string(data), mime)
	}
}
