// Package httpapi exposes the auth service over HTTP. Response bodies
// follow the {success, message} envelope on every route.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/framepeach/framepeach/internal/logging"
	"github.com/framepeach/framepeach/internal/server/users"
)

type Server struct {
	addr        string
	logger      logging.Logger
	userService *users.Service
	jwtSecret   []byte
}

func NewServer(addr string, logger logging.Logger, userService *users.Service, jwtSecret string) *Server {
	return &Server{
		addr:        addr,
		logger:      logger,
		userService: userService,
		jwtSecret:   []byte(jwtSecret),
	}
}

// Router builds the chi router with the full middleware chain and routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.With(s.RequireAuth).Get("/me", s.handleMe)
	})

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully with a 10 second deadline.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "auth service listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutCtx)
}
