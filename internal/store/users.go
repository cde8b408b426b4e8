package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/findit-campus/findit/internal/model"
)

// CreateUser creates a new user. For students, an empty room number is
// replaced with the default.
func CreateUser(ctx context.Context, db *sql.DB, email, passwordHash, name, role, roomNumber string) (*model.User, error) {
	var room any
	if role == model.RoleStudent {
		if roomNumber == "" {
			roomNumber = model.DefaultRoomNumber
		}
		room = roomNumber
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, name, role, room_number) VALUES (?, ?, ?, ?, ?)`,
		email, passwordHash, name, role, room,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}

	return GetUser(ctx, db, id)
}

// GetUser returns a user by ID.
func GetUser(ctx context.Context, db *sql.DB, id int64) (*model.User, error) {
	u := &model.User{}
	var room sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, role, room_number, green_points, created_at
		 FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &room, &u.GreenPoints, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	u.RoomNumber = room.String
	return u, nil
}

// GetUserByEmail returns a user by email address.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*model.User, error) {
	u := &model.User{}
	var room sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, role, room_number, green_points, created_at
		 FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &room, &u.GreenPoints, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	u.RoomNumber = room.String
	return u, nil
}

// ListUsers returns all users.
func ListUsers(ctx context.Context, db *sql.DB) ([]model.User, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, email, password_hash, name, role, room_number, green_points, created_at
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		var room sql.NullString
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &room, &u.GreenPoints, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		u.RoomNumber = room.String
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateUserPassword updates a user's password hash.
func UpdateUserPassword(ctx context.Context, db *sql.DB, id int64, passwordHash string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE id = ?`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("updating user password: %w", err)
	}
	return nil
}

// AddGreenPoints adds points to a student account. The update only applies
// to students; staff and admin accounts are left untouched. Returns the
// number of points actually awarded.
func AddGreenPoints(ctx context.Context, db *sql.DB, userID int64, points int) (int, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE users SET green_points = green_points + ? WHERE id = ? AND role = 'student'`,
		points, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("adding green points: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking green point update: %w", err)
	}
	if n == 0 {
		return 0, nil
	}
	return points, nil
}
