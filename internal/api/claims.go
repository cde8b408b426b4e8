package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/findit-campus/findit/internal/metrics"
	"github.com/findit-campus/findit/internal/model"
	"github.com/findit-campus/findit/internal/store"
	"github.com/findit-campus/findit/internal/verify"
)

// ClaimsHandler handles the claim verification flow. Claiming a found item
// opens a verification session; the client drives the scan and polls its
// progress. The machine stays free of persistence: all store mutations run
// in the completion handler after a successful scan.
type ClaimsHandler struct {
	DB       *sql.DB
	Registry *verify.Registry
}

type claimStatusResponse struct {
	SessionID string       `json:"session_id"`
	ItemID    int64        `json:"item_id"`
	State     verify.State `json:"state"`
	Progress  int          `json:"progress"`
	Claim     *model.Claim `json:"claim,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// Start handles POST /api/found/{id}/claim: opens an idle verification
// session for an available item.
func (h *ClaimsHandler) Start(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetFoundItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get found item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if item.Status != model.FoundStatusAvailable {
		jsonError(w, http.StatusConflict, "item already claimed")
		return
	}

	db := h.DB
	sess := h.Registry.Create(id, claims.UserID, strconv.FormatInt(id, 10), func(s *verify.Session) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		claim, err := store.CompleteClaim(ctx, db, s.ItemID, s.UserID)
		if err != nil {
			slog.Error("claim completion failed", "session_id", s.ID, "item_id", s.ItemID, "error", err)
			s.SetError(err)
			return
		}

		s.SetResult(claim)
		metrics.ClaimsCompletedTotal.Inc()
		if claim.PointsAwarded > 0 {
			metrics.GreenPointsAwardedTotal.Add(float64(claim.PointsAwarded))
		}
		slog.Info("item claimed", "session_id", s.ID, "item_id", s.ItemID, "user_id", s.UserID,
			"matched_report", claim.LostReportID != nil, "points", claim.PointsAwarded)
	})

	jsonResponse(w, http.StatusCreated, map[string]any{
		"session_id": sess.ID,
		"item_id":    sess.ItemID,
		"state":      verify.StateIdle,
	})
}

// Scan handles POST /api/claims/{session}/scan: starts the fingerprint
// scan, or retries after a failure.
func (h *ClaimsHandler) Scan(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}

	if err := sess.Machine.Start(); err != nil {
		jsonError(w, http.StatusConflict, err.Error())
		return
	}

	metrics.ClaimScansStartedTotal.Inc()
	snap := sess.Machine.Snapshot()
	jsonResponse(w, http.StatusOK, claimStatusResponse{
		SessionID: sess.ID,
		ItemID:    sess.ItemID,
		State:     snap.State,
		Progress:  snap.Progress,
	})
}

// Status handles GET /api/claims/{session}: returns scan state, progress,
// and the finalized claim once the completion handler has run.
func (h *ClaimsHandler) Status(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}

	snap := sess.Machine.Snapshot()
	claim, completionErr := sess.Result()

	resp := claimStatusResponse{
		SessionID: sess.ID,
		ItemID:    sess.ItemID,
		State:     snap.State,
		Progress:  snap.Progress,
		Claim:     claim,
	}
	if completionErr != nil {
		resp.Error = completionErr.Error()
	}
	jsonResponse(w, http.StatusOK, resp)
}

// Cancel handles POST /api/claims/{session}/cancel. Cancelling is only
// allowed before a scan starts or after one has failed; a running scan
// cannot be interrupted.
func (h *ClaimsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}

	if err := sess.Machine.Cancel(); err != nil {
		jsonError(w, http.StatusConflict, err.Error())
		return
	}

	h.Registry.Remove(sess.ID)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "claim cancelled"})
}

// session resolves the {session} path value to a live session owned by the
// authenticated user, writing the error response itself when it cannot.
func (h *ClaimsHandler) session(w http.ResponseWriter, r *http.Request) *verify.Session {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return nil
	}

	sess := h.Registry.Get(r.PathValue("session"))
	if sess == nil || sess.UserID != claims.UserID {
		jsonError(w, http.StatusNotFound, "verification session not found")
		return nil
	}
	return sess
}
