package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/findit-campus/findit/internal/imaging"
	"github.com/findit-campus/findit/internal/metrics"
	"github.com/findit-campus/findit/internal/model"
	"github.com/findit-campus/findit/internal/store"
)

// LostHandler handles lost report endpoints.
type LostHandler struct {
	DB *sql.DB
}

type createLostReportRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	DateLost    string `json:"date_lost"`
}

type lostReportResponse struct {
	Report        *model.LostReport `json:"report"`
	PointsAwarded int               `json:"points_awarded"`
}

// Create handles POST /api/lost. Students earn green points for reporting.
func (h *LostHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createLostReportRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Description == "" || req.Location == "" || req.DateLost == "" {
		jsonError(w, http.StatusBadRequest, "name, description, location, and date_lost required")
		return
	}

	dateLost, err := parseDate(req.DateLost)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid date_lost")
		return
	}

	report, err := store.CreateLostReport(r.Context(), h.DB, claims.UserID, req.Name, req.Description, req.Location, dateLost)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create lost report")
		return
	}

	points, err := store.AddGreenPoints(r.Context(), h.DB, claims.UserID, model.PointsLostReport)
	if err != nil {
		// The report itself succeeded; log and carry on.
		slog.Error("failed to award report points", "user_id", claims.UserID, "error", err)
		points = 0
	}
	if points > 0 {
		metrics.GreenPointsAwardedTotal.Add(float64(points))
	}

	metrics.LostReportsFiledTotal.Inc()
	slog.Info("lost report filed", "report_id", report.ID, "user_id", claims.UserID, "item", report.Name)
	jsonResponse(w, http.StatusCreated, lostReportResponse{Report: report, PointsAwarded: points})
}

// List handles GET /api/lost. Users see their own reports; staff and admins
// may pass ?all=1 to list everyone's.
func (h *LostHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	userID := claims.UserID
	if r.URL.Query().Get("all") == "1" {
		if !model.RoleAtLeast(claims.Role, model.RoleStaff) {
			jsonError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		userID = 0
	}

	reports, err := store.ListLostReports(r.Context(), h.DB, userID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list lost reports")
		return
	}
	if reports == nil {
		reports = []model.LostReport{}
	}
	jsonResponse(w, http.StatusOK, reports)
}

// Match handles POST /api/lost/{id}/match (staff only): flags an open
// report as matched when a candidate found item turns up, so the reporter
// knows to come in and claim it.
func (h *LostHandler) Match(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	report, err := store.GetLostReport(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get lost report")
		return
	}
	if report == nil {
		jsonError(w, http.StatusNotFound, "report not found")
		return
	}
	if report.Status != model.LostStatusNotFound {
		jsonError(w, http.StatusConflict, "report is not open")
		return
	}

	if err := store.MarkLostReportMatched(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusConflict, "report is not open")
		return
	}

	slog.Info("lost report matched", "report_id", id)
	report, err = store.GetLostReport(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get lost report")
		return
	}
	jsonResponse(w, http.StatusOK, report)
}

// UploadImage handles PUT /api/lost/{id}/image. Only the reporter may attach
// a photo.
func (h *LostHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	report, err := store.GetLostReport(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get lost report")
		return
	}
	if report == nil {
		jsonError(w, http.StatusNotFound, "report not found")
		return
	}
	if report.UserID != claims.UserID {
		jsonError(w, http.StatusForbidden, "not your report")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	data, mime, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetLostReportImage(r.Context(), h.DB, id, data, mime); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/lost/{id}/image.
func (h *LostHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	data, mime, err := store.GetLostReportImage(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
