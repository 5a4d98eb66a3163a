// Package httpapi exposes the analysis pipeline and its persistence over
// a JSON HTTP API.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/textflow/textflow/internal/mail"
	"github.com/textflow/textflow/pkg/textflow/pipeline"
	"github.com/textflow/textflow/pkg/textflow/store"
)

// Server wires the pipeline, store, and mailer behind the API routes.
type Server struct {
	pipe   *pipeline.Pipeline
	store  store.Store
	mailer *mail.Mailer
	log    *slog.Logger
}

// New creates a Server. The mailer may be nil when mail is not
// configured.
func New(pipe *pipeline.Pipeline, st store.Store, mailer *mail.Mailer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{pipe: pipe, store: st, mailer: mailer, log: logger}
}

// Router builds the route table. CORS wraps the whole router so
// preflight requests are answered before method matching.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/signup", s.handleSignup).Methods("POST")
	r.HandleFunc("/api/login", s.handleLogin).Methods("POST")
	r.HandleFunc("/api/analyze", s.handleAnalyze).Methods("POST")
	r.HandleFunc("/api/inbox", s.handleInbox).Methods("GET")
	r.HandleFunc("/api/history", s.handleHistory).Methods("GET")
	r.HandleFunc("/api/search", s.handleSearch).Methods("GET")
	r.HandleFunc("/api/export", s.handleExport).Methods("POST")
	r.HandleFunc("/api/operations", s.handleOperations).Methods("GET")
	r.HandleFunc("/api/contact", s.handleContact).Methods("POST")
	r.HandleFunc("/api/health", s.handleHealth).Methods("GET")

	return corsMiddleware(r)
}

// corsMiddleware allows browser frontends on any origin to call the API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
