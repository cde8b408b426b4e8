package model

import "testing"

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role    string
		minimum string
		want    bool
	}{
		{RoleAdmin, RoleStudent, true},
		{RoleAdmin, RoleAdmin, true},
		{RoleStaff, RoleStaff, true},
		{RoleStaff, RoleAdmin, false},
		{RoleStudent, RoleStaff, false},
		{RoleStudent, RoleStudent, true},
		{"unknown", RoleStudent, false},
	}

	for _, tt := range tests {
		if got := RoleAtLeast(tt.role, tt.minimum); got != tt.want {
			t.Errorf("RoleAtLeast(%q, %q) = %v, want %v", tt.role, tt.minimum, got, tt.want)
		}
	}
}
