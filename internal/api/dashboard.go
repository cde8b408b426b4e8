package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/findit-campus/findit/internal/model"
	"github.com/findit-campus/findit/internal/store"
)

// DashboardHandler serves the per-user activity summary.
type DashboardHandler struct {
	DB *sql.DB
}

type dashboardResponse struct {
	User        *model.User        `json:"user"`
	LostReports []model.LostReport `json:"lost_reports"`
	Claims      []model.Claim      `json:"claims"`
	LoggedItems []model.FoundItem  `json:"logged_items,omitempty"`
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := store.GetUser(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("dashboard: load user", "error", err, "user_id", claims.UserID)
		jsonError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if user == nil {
		jsonError(w, http.StatusUnauthorized, "account no longer exists")
		return
	}

	reports, err := store.ListLostReports(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("dashboard: list lost reports", "error", err, "user_id", claims.UserID)
		jsonError(w, http.StatusInternalServerError, "failed to load lost reports")
		return
	}

	userClaims, err := store.ListClaims(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("dashboard: list claims", "error", err, "user_id", claims.UserID)
		jsonError(w, http.StatusInternalServerError, "failed to load claims")
		return
	}

	resp := dashboardResponse{
		User:        user,
		LostReports: reports,
		Claims:      userClaims,
	}

	if model.RoleAtLeast(user.Role, model.RoleStaff) {
		logged, err := store.ListFoundItemsByStaff(r.Context(), h.DB, user.ID)
		if err != nil {
			slog.Error("dashboard: list logged items", "error", err, "user_id", user.ID)
			jsonError(w, http.StatusInternalServerError, "failed to load logged items")
			return
		}
		resp.LoggedItems = logged
	}

	jsonResponse(w, http.StatusOK, resp)
}
