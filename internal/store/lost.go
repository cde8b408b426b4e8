package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/findit-campus/findit/internal/model"
)

// CreateLostReport files a lost item report for a user.
func CreateLostReport(ctx context.Context, db *sql.DB, userID int64, name, description, location string, dateLost time.Time) (*model.LostReport, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO lost_reports (user_id, name, description, location, date_lost)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, name, description, location, dateLost,
	)
	if err != nil {
		return nil, fmt.Errorf("creating lost report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting lost report id: %w", err)
	}

	return GetLostReport(ctx, db, id)
}

// GetLostReport returns a lost report by ID, with the reporter's name and email.
func GetLostReport(ctx context.Context, db *sql.DB, id int64) (*model.LostReport, error) {
	rep := &model.LostReport{}
	var imageMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT l.id, l.user_id, u.name, u.email, l.name, l.description, l.location,
		        l.date_lost, l.image_mime, l.status, l.reported_at
		 FROM lost_reports l
		 JOIN users u ON u.id = l.user_id
		 WHERE l.id = ?`, id,
	).Scan(&rep.ID, &rep.UserID, &rep.UserName, &rep.UserEmail, &rep.Name, &rep.Description,
		&rep.Location, &rep.DateLost, &imageMime, &rep.Status, &rep.ReportedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting lost report: %w", err)
	}
	rep.ImageMime = imageMime.String
	return rep, nil
}

// ListLostReports returns lost reports, optionally filtered by reporter.
// A zero userID lists all reports.
func ListLostReports(ctx context.Context, db *sql.DB, userID int64) ([]model.LostReport, error) {
	query := `SELECT l.id, l.user_id, u.name, u.email, l.name, l.description, l.location,
	                 l.date_lost, l.image_mime, l.status, l.reported_at
	          FROM lost_reports l
	          JOIN users u ON u.id = l.user_id`
	var args []any

	if userID > 0 {
		query += ` WHERE l.user_id = ?`
		args = append(args, userID)
	}

	query += ` ORDER BY l.reported_at DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing lost reports: %w", err)
	}
	defer rows.Close()

	var reports []model.LostReport
	for rows.Next() {
		var rep model.LostReport
		var imageMime sql.NullString
		if err := rows.Scan(&rep.ID, &rep.UserID, &rep.UserName, &rep.UserEmail, &rep.Name,
			&rep.Description, &rep.Location, &rep.DateLost, &imageMime, &rep.Status, &rep.ReportedAt); err != nil {
			return nil, fmt.Errorf("scanning lost report: %w", err)
		}
		rep.ImageMime = imageMime.String
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

// MarkLostReportMatched advances a report from not_found to matched.
// The transition is one-way; reports in any other state are left untouched.
func MarkLostReportMatched(ctx context.Context, db *sql.DB, id int64) error {
	result, err := db.ExecContext(ctx,
		`UPDATE lost_reports SET status = 'matched' WHERE id = ? AND status = 'not_found'`,
		id,
	)
	if err != nil {
		return fmt.Errorf("marking lost report matched: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking match update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("lost report %d is not open", id)
	}
	return nil
}

// SetLostReportImage stores an uploaded photo for a lost report.
func SetLostReportImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE lost_reports SET image = ?, image_mime = ? WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting lost report image: %w", err)
	}
	return nil
}

// GetLostReportImage returns a lost report's photo and MIME type.
func GetLostReportImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM lost_reports WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting lost report image: %w", err)
	}
	return image, mime.String, nil
}
