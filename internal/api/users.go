package api

import (
	"database/sql"
	"net/http"

	"github.com/findit-campus/findit/internal/model"
	"github.com/findit-campus/findit/internal/store"
)

// UsersHandler handles account administration endpoints.
type UsersHandler struct {
	DB *sql.DB
}

// List handles GET /api/users (admin only).
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := store.ListUsers(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	if users == nil {
		users = []model.User{}
	}
	jsonResponse(w, http.StatusOK, users)
}
