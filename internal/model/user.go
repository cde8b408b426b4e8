package model

import "time"

// User represents a campus account. Room number and green points only
// apply to students; both stay zero-valued for staff and admins.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	RoomNumber   string    `json:"room_number,omitempty"`
	GreenPoints  int       `json:"green_points"`
	CreatedAt    time.Time `json:"created_at"`
}

// Roles.
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

// Green point awards.
const (
	PointsLostReport   = 5  // filing a lost item report
	PointsItemRecovery = 15 // recovering a lost item through a claim
)

// DefaultRoomNumber is assigned to students who register without one.
const DefaultRoomNumber = "A-101"

// RoleAtLeast checks if role meets or exceeds the minimum required role.
func RoleAtLeast(role, minimum string) bool {
	levels := map[string]int{
		RoleAdmin:   3,
		RoleStaff:   2,
		RoleStudent: 1,
	}
	return levels[role] >= levels[minimum]
}
