// Package httpapi exposes the backend over HTTP/JSON: auth endpoints, the
// profile and post handlers, the bearer-token middleware, and static serving
// of uploaded avatars.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pandroidYT/doxxd-backend/internal/logging"
	"github.com/pandroidYT/doxxd-backend/internal/server/config"
	"github.com/pandroidYT/doxxd-backend/internal/server/services"
)

type Server struct {
	address         string
	logger          logging.Logger
	users           *services.UserService
	profiles        *services.ProfileService
	posts           *services.PostService
	jwtSecret       []byte
	corsOrigin      string
	uploadDir       string
	uploadURLPrefix string
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, prs *services.ProfileService, pos *services.PostService, uploadDir string) *Server {
	return &Server{
		address:         cfg.EndpointAddr,
		logger:          l.With("module", "http_server"),
		users:           us,
		profiles:        prs,
		posts:           pos,
		jwtSecret:       []byte(cfg.SecretKey),
		corsOrigin:      cfg.CORSOrigin,
		uploadDir:       uploadDir,
		uploadURLPrefix: cfg.UploadURLPrefix,
	}
}

// Router builds the chi handler tree: open auth routes, token-gated API
// routes, and the static file server for uploaded avatars.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	var origins []string
	for _, p := range strings.Split(s.corsOrigin, ",") {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("doxxd backend API is working!"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	// Open routes. The /api/auth/* paths are canonical; the short aliases are
	// kept for older clients.
	r.Post("/api/auth/register", s.handleRegister)
	r.Post("/api/register", s.handleRegister)
	r.Post("/api/auth/login", s.handleLogin)
	r.Post("/api/login", s.handleLogin)

	// Token-gated routes.
	r.Group(func(pr chi.Router) {
		pr.Use(s.RequireAuth)
		pr.Get("/api/profile", s.handleProfileGet)
		pr.Post("/api/profile", s.handleProfileUpdate)
		pr.Post("/api/posts", s.handlePostCreate)
		pr.Get("/api/posts", s.handlePostList)
	})

	// Uploaded avatars are served as static files.
	uploads := http.StripPrefix(s.uploadURLPrefix+"/", http.FileServer(http.Dir(s.uploadDir)))
	r.Get(s.uploadURLPrefix+"/*", uploads.ServeHTTP)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadTimeout:       time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       5 * time.Minute,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
