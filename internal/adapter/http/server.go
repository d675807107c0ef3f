// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"context"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"escena/internal/app"
)

// OIDCConfig carries the optional single-sign-on wiring for admin login.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Deps are the collaborators the server is wired to.
type Deps struct {
	Auth    *app.AuthService
	Content *app.ContentService
	Catalog *app.CatalogService
	Site    *app.SiteService
	Contact *app.ContactService

	Gate   *RequestGate
	DBPing func(ctx context.Context) error
	OIDC   OIDCConfig
	WebDir string
	Log    logrus.FieldLogger
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth    *app.AuthService
	content *app.ContentService
	catalog *app.CatalogService
	site    *app.SiteService
	contact *app.ContactService

	gate   *RequestGate
	dbPing func(ctx context.Context) error
	oidc   OIDCConfig
	webDir string
	log    logrus.FieldLogger
}

// New creates a Server wired to the given dependencies.
func New(d Deps) *Server {
	return &Server{
		auth:    d.Auth,
		content: d.Content,
		catalog: d.Catalog,
		site:    d.Site,
		contact: d.Contact,
		gate:    d.Gate,
		dbPing:  d.DBPing,
		oidc:    d.OIDC,
		webDir:  d.WebDir,
		log:     d.Log,
	}
}

// Handler returns the root http.Handler for the application. The gate runs
// before routing so rejected requests never reach a handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/health/db", s.handleHealthDB).Methods(http.MethodGet)

	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", s.handleMe).Methods(http.MethodGet)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin).Methods(http.MethodGet)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback).Methods(http.MethodGet)

	// Public reads.
	api.HandleFunc("/hero", s.handleHeroList).Methods(http.MethodGet)
	api.HandleFunc("/gallery", s.handleGalleryList).Methods(http.MethodGet)
	api.HandleFunc("/genres", s.handleGenreList).Methods(http.MethodGet)
	api.HandleFunc("/tracks", s.handleTrackList).Methods(http.MethodGet)
	api.HandleFunc("/social", s.handleSocialList).Methods(http.MethodGet)
	api.HandleFunc("/site", s.handleSiteConfig).Methods(http.MethodGet)
	api.HandleFunc("/contact", s.handleContactSubmit).Methods(http.MethodPost)

	// Admin CRUD; everything under /api/admin is gated.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/hero", s.handleHeroAdminList).Methods(http.MethodGet)
	admin.HandleFunc("/hero", s.handleHeroCreate).Methods(http.MethodPost)
	admin.HandleFunc("/hero/{id:[0-9]+}", s.handleHeroUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/hero/{id:[0-9]+}", s.handleHeroDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/gallery", s.handleGalleryCreate).Methods(http.MethodPost)
	admin.HandleFunc("/gallery/{id:[0-9]+}", s.handleGalleryDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/genres", s.handleGenreCreate).Methods(http.MethodPost)
	admin.HandleFunc("/genres/{id:[0-9]+}", s.handleGenreUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/genres/{id:[0-9]+}", s.handleGenreDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/tracks", s.handleTrackCreate).Methods(http.MethodPost)
	admin.HandleFunc("/tracks/{id:[0-9]+}", s.handleTrackUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/tracks/{id:[0-9]+}", s.handleTrackDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/social", s.handleSocialAdminList).Methods(http.MethodGet)
	admin.HandleFunc("/social", s.handleSocialCreate).Methods(http.MethodPost)
	admin.HandleFunc("/social/{id:[0-9]+}", s.handleSocialUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/social/{id:[0-9]+}", s.handleSocialDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/site", s.handleSiteUpdate).Methods(http.MethodPut)

	admin.HandleFunc("/messages", s.handleMessageList).Methods(http.MethodGet)
	admin.HandleFunc("/messages/{id:[0-9]+}/read", s.handleMessageMarkRead).Methods(http.MethodPost)
	admin.HandleFunc("/messages/{id:[0-9]+}", s.handleMessageDelete).Methods(http.MethodDelete)

	r.PathPrefix("/").Handler(spaFromDisk(s.webDir))

	return s.loggingMiddleware(s.gate.Middleware(withNoCache(r)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleHealthDB(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.dbPing(ctx); err != nil {
		s.log.WithError(err).Error("db healthcheck failed")
		writeError(w, http.StatusInternalServerError, "Error de conexión a la base de datos")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// statusRecorder captures the status written by downstream handlers.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Info("request")
	})
}
