// Package api exposes the HTTP surface of the server: the auth endpoints,
// the token-guarded task endpoints and the health probe.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/taskflow/taskflow/internal/logging"
	"github.com/taskflow/taskflow/internal/server/services"
)

type Server struct {
	address     string
	logger      logging.Logger
	users       *services.UserService
	tasks       *services.TaskService
	jwtSecret   []byte
	corsOrigins []string
}

func NewServer(address string, l logging.Logger, us *services.UserService, ts *services.TaskService, secretKey string, corsOrigins []string) *Server {
	return &Server{
		address:     address,
		logger:      l.With("module", "http_server"),
		users:       us,
		tasks:       ts,
		jwtSecret:   []byte(secretKey),
		corsOrigins: corsOrigins,
	}
}

// Handler builds the routing tree. Every /tasks route goes through the
// bearer-token middleware; there is no unguarded path to a task operation.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	tr := r.PathPrefix("/tasks").Subrouter()
	tr.Use(s.authMiddleware)
	tr.HandleFunc("", s.handleCreateTask).Methods(http.MethodPost)
	tr.HandleFunc("", s.handleListTasks).Methods(http.MethodGet)
	tr.HandleFunc("/{id:[0-9]+}", s.handleGetTask).Methods(http.MethodGet)
	tr.HandleFunc("/{id:[0-9]+}", s.handleUpdateTask).Methods(http.MethodPatch)
	tr.HandleFunc("/{id:[0-9]+}", s.handleDeleteTask).Methods(http.MethodDelete)

	var h http.Handler = r
	h = corsMiddleware(s.corsOrigins)(h)
	h = s.loggingMiddleware(h)
	h = s.recoveryMiddleware(h)
	return h
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
