// Package api provides the HTTP surface over the statement pipeline.
// Handlers are thin glue: framing, auth and persistence live elsewhere.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/radum/extrascont/categorize"
	"github.com/radum/extrascont/extractor"
	"github.com/radum/extrascont/extractor/common"
)

// Config holds the API server configuration
type Config struct {
	Port      string
	LogPrefix string
}

// DefaultConfig returns the default API configuration
func DefaultConfig() Config {
	return Config{
		Port:      ":8080",
		LogPrefix: "API: ",
	}
}

// Server represents the HTTP API server
type Server struct {
	config Config
	mux    *http.ServeMux
}

// New creates a new API server with the given configuration
func New(cfg Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/extract", s.handleExtract)
	s.mux.HandleFunc("/categorize", s.handleCategorize)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the http.Handler for the server
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server (blocking)
func (s *Server) Start() error {
	log.Printf("%sStarting server on %s", s.config.LogPrefix, s.config.Port)
	return http.ListenAndServe(s.config.Port, s.mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleExtract accepts a statement PDF upload and returns the parsed,
// categorized result. Non-statements get a structured 422.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived request from %s", s.config.LogPrefix, r.RemoteAddr)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Printf("%sError parsing multipart form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not parse multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		log.Printf("%sError getting file from form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not get uploaded file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := extractor.Process(file, handler.Filename)
	if err != nil {
		if errors.Is(err, extractor.ErrNotAStatement) {
			writeJSONError(w, http.StatusUnprocessableEntity, "file does not look like a supported bank statement")
			return
		}
		log.Printf("%sError processing file: %v", s.config.LogPrefix, err)
		writeJSONError(w, http.StatusBadRequest, "could not read PDF: "+err.Error())
		return
	}

	// raw=true skips categorization so callers can run their own pass.
	if r.FormValue("raw") != "true" && r.URL.Query().Get("raw") != "true" {
		result.Transactions = extractor.CategorizeFromConfig(result.Transactions)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// CategorizeRequest carries transactions plus the collaborator inputs of
// the categorization engine.
type CategorizeRequest struct {
	Transactions      []common.Transaction `json:"transactions"`
	MerchantOverrides map[string]string    `json:"merchant_overrides"`
	SavingsAccounts   []string             `json:"savings_accounts"`
}

// handleCategorize runs the categorization engine over caller-supplied
// transactions and override/account config.
func (s *Server) handleCategorize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CategorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	categorized := categorize.Apply(req.Transactions, req.MerchantOverrides, req.SavingsAccounts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]common.Transaction{"transactions": categorized})
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
