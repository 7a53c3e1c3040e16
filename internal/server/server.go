// Package server exposes the extraction pipeline over HTTP.
package server

import (
	"net/http"

	"fjacquet/expense-parse/internal/extractor"
	"fjacquet/expense-parse/internal/logging"
	"fjacquet/expense-parse/internal/transcribe"
)

// Server handles HTTP requests for expense parsing and transcription.
type Server struct {
	extractor   *extractor.Extractor
	transcriber transcribe.Transcriber
	mux         *http.ServeMux
	log         logging.Logger
}

// NewServer creates a new Server with a default mux.
func NewServer(ex *extractor.Extractor, tr transcribe.Transcriber, logger logging.Logger) *Server {
	return NewServerWithMux(ex, tr, http.NewServeMux(), logger)
}

// NewServerWithMux creates a new Server on a custom mux for testing.
func NewServerWithMux(ex *extractor.Extractor, tr transcribe.Transcriber, mux *http.ServeMux, logger logging.Logger) *Server {
	s := &Server{
		extractor:   ex,
		transcriber: tr,
		mux:         mux,
		log:         logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /parse_text", s.handleParseText)
	s.mux.HandleFunc("POST /transcribe", s.handleTranscribe)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

// corsMiddleware adds CORS headers and answers preflight requests.
func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

// Start blocks serving HTTP on addr with CORS applied to every route.
func (s *Server) Start(addr string) error {
	s.log.Info("starting server", logging.Field{Key: "address", Value: addr})
	return http.ListenAndServe(addr, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.corsMiddleware(func(w http.ResponseWriter, r *http.Request) {
			s.mux.ServeHTTP(w, r)
		})(w, r)
	}))
}

// ServeHTTP implements http.Handler for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
