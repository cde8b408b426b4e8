package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/findit-campus/findit/internal/model"
)

// ErrAlreadyClaimed is returned when completing a claim on an item that is
// no longer available.
var ErrAlreadyClaimed = errors.New("item already claimed")

// ErrItemNotFound is returned when the claimed item does not exist.
var ErrItemNotFound = errors.New("item not found")

// CompleteClaim finalizes a successful verification in a single transaction:
// the found item moves from available to claimed, the claimant's open lost
// report with a case-insensitively matching name (if any) moves to claimed,
// and a student claimant with such a match is awarded recovery points.
// The claim row records the real claim time.
func CompleteClaim(ctx context.Context, db *sql.DB, foundItemID, userID int64) (*model.Claim, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Look up the item name for the cross-match.
	var itemName string
	err = tx.QueryRowContext(ctx,
		`SELECT name FROM found_items WHERE id = ?`, foundItemID,
	).Scan(&itemName)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("checking found item: %w", err)
	}

	// One-way transition guard: the UPDATE only applies while the item is
	// still available, so an item can be claimed at most once.
	result, err := tx.ExecContext(ctx,
		`UPDATE found_items SET status = 'claimed' WHERE id = ? AND status = 'available'`,
		foundItemID,
	)
	if err != nil {
		return nil, fmt.Errorf("claiming found item: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking claim update: %w", err)
	}
	if n == 0 {
		return nil, ErrAlreadyClaimed
	}

	// Cross-match: the claimant's oldest open lost report with the same name.
	var lostReportID *int64
	var matchedID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM lost_reports
		 WHERE user_id = ? AND status = 'not_found' AND LOWER(name) = LOWER(?)
		 ORDER BY reported_at LIMIT 1`,
		userID, itemName,
	).Scan(&matchedID)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("matching lost report: %w", err)
	}
	if err == nil {
		lostReportID = &matchedID
	}

	points := 0
	if lostReportID != nil {
		_, err = tx.ExecContext(ctx,
			`UPDATE lost_reports SET status = 'claimed' WHERE id = ? AND status = 'not_found'`,
			*lostReportID,
		)
		if err != nil {
			return nil, fmt.Errorf("updating lost report: %w", err)
		}

		// Recovery points go to students only.
		result, err = tx.ExecContext(ctx,
			`UPDATE users SET green_points = green_points + ? WHERE id = ? AND role = 'student'`,
			model.PointsItemRecovery, userID,
		)
		if err != nil {
			return nil, fmt.Errorf("awarding recovery points: %w", err)
		}
		if n, err := result.RowsAffected(); err == nil && n > 0 {
			points = model.PointsItemRecovery
		}
	}

	claimID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO claims (id, found_item_id, user_id, lost_report_id, points_awarded)
		 VALUES (?, ?, ?, ?, ?)`,
		claimID, foundItemID, userID, lostReportID, points,
	)
	if err != nil {
		return nil, fmt.Errorf("recording claim: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing claim: %w", err)
	}

	return GetClaim(ctx, db, claimID)
}

// GetClaim returns a claim by ID with the claimed item's name and location.
func GetClaim(ctx context.Context, db *sql.DB, id string) (*model.Claim, error) {
	c := &model.Claim{}
	err := db.QueryRowContext(ctx,
		`SELECT c.id, c.found_item_id, c.user_id, c.lost_report_id, c.points_awarded, c.claimed_at,
		        f.name AS item_name, f.location AS item_location
		 FROM claims c
		 JOIN found_items f ON f.id = c.found_item_id
		 WHERE c.id = ?`, id,
	).Scan(&c.ID, &c.FoundItemID, &c.UserID, &c.LostReportID, &c.PointsAwarded, &c.ClaimedAt,
		&c.ItemName, &c.ItemLocation)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting claim: %w", err)
	}
	return c, nil
}

// ListClaims returns claims, optionally filtered by claimant.
// A zero userID lists all claims.
func ListClaims(ctx context.Context, db *sql.DB, userID int64) ([]model.Claim, error) {
	query := `SELECT c.id, c.found_item_id, c.user_id, c.lost_report_id, c.points_awarded, c.claimed_at,
	                 f.name AS item_name, f.location AS item_location
	          FROM claims c
	          JOIN found_items f ON f.id = c.found_item_id`
	var args []any

	if userID > 0 {
		query += ` WHERE c.user_id = ?`
		args = append(args, userID)
	}

	query += ` ORDER BY c.claimed_at DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing claims: %w", err)
	}
	defer rows.Close()

	var claims []model.Claim
	for rows.Next() {
		var c model.Claim
		if err := rows.Scan(&c.ID, &c.FoundItemID, &c.UserID, &c.LostReportID, &c.PointsAwarded,
			&c.ClaimedAt, &c.ItemName, &c.ItemLocation); err != nil {
			return nil, fmt.Errorf("scanning claim: %w", err)
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}
