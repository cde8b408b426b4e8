package api

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/findit-campus/findit/internal/model"
	"github.com/findit-campus/findit/internal/verify"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, registry *verify.Registry) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	foundHandler := &FoundHandler{DB: db}
	lostHandler := &LostHandler{DB: db}
	claimsHandler := &ClaimsHandler{DB: db, Registry: registry}
	marketHandler := NewMarketHandler()
	servicesHandler := &ServicesHandler{}
	dashboardHandler := &DashboardHandler{DB: db}
	usersHandler := &UsersHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)
	requireStaff := RequireRole(model.RoleStaff)
	requireAdmin := RequireRole(model.RoleAdmin)

	// Vocabularies for filter and form dropdowns.
	mux.HandleFunc("GET /api/meta", Meta)

	// Public: account creation and login.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated account routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("GET /api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))

	// Found items: browsing is public, logging is staff only.
	mux.HandleFunc("GET /api/found", foundHandler.List)
	mux.HandleFunc("GET /api/found/{id}", foundHandler.Get)
	mux.HandleFunc("GET /api/found/{id}/image", foundHandler.GetImage)
	mux.Handle("POST /api/found", authMW(requireStaff(http.HandlerFunc(foundHandler.Create))))
	mux.Handle("PUT /api/found/{id}/image", authMW(requireStaff(http.HandlerFunc(foundHandler.UploadImage))))

	// Lost reports (all roles).
	mux.Handle("POST /api/lost", authMW(http.HandlerFunc(lostHandler.Create)))
	mux.Handle("GET /api/lost", authMW(http.HandlerFunc(lostHandler.List)))
	mux.Handle("POST /api/lost/{id}/match", authMW(requireStaff(http.HandlerFunc(lostHandler.Match))))
	mux.Handle("PUT /api/lost/{id}/image", authMW(http.HandlerFunc(lostHandler.UploadImage)))
	mux.Handle("GET /api/lost/{id}/image", authMW(http.HandlerFunc(lostHandler.GetImage)))

	// Claim verification sessions.
	mux.Handle("POST /api/found/{id}/claim", authMW(http.HandlerFunc(claimsHandler.Start)))
	mux.Handle("POST /api/claims/{session}/scan", authMW(http.HandlerFunc(claimsHandler.Scan)))
	mux.Handle("GET /api/claims/{session}", authMW(http.HandlerFunc(claimsHandler.Status)))
	mux.Handle("POST /api/claims/{session}/cancel", authMW(http.HandlerFunc(claimsHandler.Cancel)))

	// Marketplace: browsing is public, listing requires an account.
	mux.HandleFunc("GET /api/market/listings", marketHandler.List)
	mux.Handle("POST /api/market/listings", authMW(http.HandlerFunc(marketHandler.Create)))

	// Services: staff directory is public, bookings require an account.
	mux.HandleFunc("GET /api/services/staff", servicesHandler.ListStaff)
	mux.Handle("POST /api/services/bookings", authMW(http.HandlerFunc(servicesHandler.CreateBooking)))
	mux.Handle("GET /api/services/bookings", authMW(http.HandlerFunc(servicesHandler.ListBookings)))

	// Activity dashboard.
	mux.Handle("GET /api/dashboard", authMW(http.HandlerFunc(dashboardHandler.Get)))

	// Account administration.
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
