package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

// maxBodyBytes bounds request bodies; every valid request is tiny.
const maxBodyBytes = 4 << 10

// Server serves the leaderboard JSON API over a Backend.
type Server struct {
	backend Backend
	logger  *log.Logger
	router  *mux.Router
}

// NewServer builds the router for backend. A nil logger falls back to
// the default logger.
func NewServer(backend Backend, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{backend: backend, logger: logger, router: mux.NewRouter()}

	r := s.router.PathPrefix("/api").Subrouter()
	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/submit-run", s.handleSubmitRun).Methods(http.MethodPost)
	r.HandleFunc("/leaderboard", s.handleLeaderboard).Methods(http.MethodGet)
	r.Use(s.logRequests)

	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting leaderboard API", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Stopping leaderboard API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "took", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

type registerRequest struct {
	Username string `json:"username"`
}

type userResponse struct {
	User User `json:"user"`
}

type leaderboardResponse struct {
	By      Order            `json:"by"`
	Results []LeaderboardRow `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u, err := s.backend.RegisterUser(r.Context(), req.Username)
	if err != nil {
		s.writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: u})
}

func (s *Server) handleSubmitRun(w http.ResponseWriter, r *http.Request) {
	var req RunSubmission
	if !decodeBody(w, r, &req) {
		return
	}
	u, err := s.backend.SubmitRun(r.Context(), req)
	if err != nil {
		s.writeBackendError(w, err)
		return
	}
	s.logger.Info("run submitted", "username", u.Username, "score", req.Score, "level", req.LevelReached)
	writeJSON(w, http.StatusOK, userResponse{User: u})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	by := ParseOrder(q.Get("by"))
	limit := DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = max(1, min(MaxLimit, n))
		}
	}

	rows, err := s.backend.Leaderboard(r.Context(), by, limit)
	if err != nil {
		s.writeBackendError(w, err)
		return
	}
	if rows == nil {
		rows = []LeaderboardRow{}
	}
	writeJSON(w, http.StatusOK, leaderboardResponse{By: by, Results: rows})
}

// writeBackendError maps domain errors to status codes; anything else is
// logged and reported as a 500 without details.
func (s *Server) writeBackendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidUsername), errors.Is(err, ErrInvalidScore), errors.Is(err, ErrInvalidLevel):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error("backend failure", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // Client may have gone away
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
