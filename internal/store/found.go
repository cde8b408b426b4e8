package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/findit-campus/findit/internal/model"
)

// CreateFoundItem logs a found item at the lost-and-found desk.
func CreateFoundItem(ctx context.Context, db *sql.DB, name, description, location string, dateFound time.Time, imageURL string, staffID int64) (*model.FoundItem, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO found_items (name, description, location, date_found, image_url, staff_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		name, description, location, dateFound, imageURL, staffID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating found item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting found item id: %w", err)
	}

	return GetFoundItem(ctx, db, id)
}

// GetFoundItem returns a found item by ID, with the logging staff member's name.
func GetFoundItem(ctx context.Context, db *sql.DB, id int64) (*model.FoundItem, error) {
	item := &model.FoundItem{}
	var description, imageURL, imageMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT f.id, f.name, f.description, f.location, f.date_found, f.image_url, f.image_mime,
		        f.status, f.staff_id, u.name AS staff_name, f.created_at
		 FROM found_items f
		 JOIN users u ON u.id = f.staff_id
		 WHERE f.id = ?`, id,
	).Scan(&item.ID, &item.Name, &description, &item.Location, &item.DateFound, &imageURL, &imageMime,
		&item.Status, &item.StaffID, &item.StaffName, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting found item: %w", err)
	}
	item.Description = description.String
	item.ImageURL = imageURL.String
	item.ImageMime = imageMime.String
	return item, nil
}

// ListFoundItems returns found items filtered by location, a case-insensitive
// search term matched against name and description, and status. Empty filters
// match everything.
func ListFoundItems(ctx context.Context, db *sql.DB, location, search, status string) ([]model.FoundItem, error) {
	query := `SELECT f.id, f.name, f.description, f.location, f.date_found, f.image_url, f.image_mime,
	                 f.status, f.staff_id, u.name AS staff_name, f.created_at
	          FROM found_items f
	          JOIN users u ON u.id = f.staff_id
	          WHERE 1=1`
	var args []any

	if location != "" {
		query += ` AND f.location = ?`
		args = append(args, location)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query += ` AND (LOWER(f.name) LIKE ? OR LOWER(f.description) LIKE ?)`
		args = append(args, pattern, pattern)
	}
	if status != "" {
		query += ` AND f.status = ?`
		args = append(args, status)
	}

	query += ` ORDER BY f.date_found DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing found items: %w", err)
	}
	defer rows.Close()

	return scanFoundItems(rows)
}

// ListFoundItemsByStaff returns all items logged by a staff member.
func ListFoundItemsByStaff(ctx context.Context, db *sql.DB, staffID int64) ([]model.FoundItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT f.id, f.name, f.description, f.location, f.date_found, f.image_url, f.image_mime,
		        f.status, f.staff_id, u.name AS staff_name, f.created_at
		 FROM found_items f
		 JOIN users u ON u.id = f.staff_id
		 WHERE f.staff_id = ?
		 ORDER BY f.date_found DESC`, staffID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing found items by staff: %w", err)
	}
	defer rows.Close()

	return scanFoundItems(rows)
}

func scanFoundItems(rows *sql.Rows) ([]model.FoundItem, error) {
	var items []model.FoundItem
	for rows.Next() {
		var item model.FoundItem
		var description, imageURL, imageMime sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &description, &item.Location, &item.DateFound,
			&imageURL, &imageMime, &item.Status, &item.StaffID, &item.StaffName, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning found item: %w", err)
		}
		item.Description = description.String
		item.ImageURL = imageURL.String
		item.ImageMime = imageMime.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetFoundItemImage stores an uploaded photo for a found item.
func SetFoundItemImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE found_items SET image = ?, image_mime = ? WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting found item image: %w", err)
	}
	return nil
}

// GetFoundItemImage returns a found item's photo and MIME type.
func GetFoundItemImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM found_items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting found item image: %w", err)
	}
	return image, mime.String, nil
}
