package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    name          TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'student' CHECK (role IN ('admin', 'staff', 'student')),
    room_number   TEXT,
    green_points  INTEGER NOT NULL DEFAULT 0 CHECK (green_points >= 0),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS lost_reports (
    id          INTEGER PRIMARY KEY,
    user_id     INTEGER NOT NULL REFERENCES users(id),
    name        TEXT NOT NULL,
    description TEXT NOT NULL,
    location    TEXT NOT NULL,
    date_lost   DATETIME NOT NULL,
    image       BLOB,
    image_mime  TEXT,
    status      TEXT NOT NULL DEFAULT 'not_found' CHECK (status IN ('not_found', 'matched', 'claimed')),
    reported_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_lost_reports_user ON lost_reports(user_id);

CREATE TABLE IF NOT EXISTS found_items (
    id          INTEGER PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT,
    location    TEXT NOT NULL,
    date_found  DATETIME NOT NULL,
    image_url   TEXT,
    image       BLOB,
    image_mime  TEXT,
    status      TEXT NOT NULL DEFAULT 'available' CHECK (status IN ('available', 'claimed')),
    staff_id    INTEGER NOT NULL REFERENCES users(id),
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS claims (
    id             TEXT PRIMARY KEY,
    found_item_id  INTEGER NOT NULL REFERENCES found_items(id),
    user_id        INTEGER NOT NULL REFERENCES users(id),
    lost_report_id INTEGER REFERENCES lost_reports(id),
    points_awarded INTEGER NOT NULL DEFAULT 0,
    claimed_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
