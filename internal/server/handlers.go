package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/maya/adcopy-agent/internal/pipeline"
	"github.com/maya/adcopy-agent/internal/types"
)

var validate = validator.New()

// handleHealth reports service liveness and database connectivity.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	status := map[string]any{
		"status":   "ok",
		"database": s.db != nil,
		"time":     time.Now().UTC().Format(time.RFC3339),
	}
	jsonResponse(w, http.StatusOK, status)
}

// loginRequest is the payload for POST /api/v1/auth/login.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// handleLogin verifies credentials against the configured API user and
// returns a signed JWT on success. Credentials come from the API_USER and
// API_PASSWORD_HASH environment variables.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	expectedUser := os.Getenv("API_USER")
	expectedHash := os.Getenv("API_PASSWORD_HASH")
	if expectedUser == "" || expectedHash == "" {
		errorResponse(w, http.StatusServiceUnavailable, "authentication is not configured")
		return
	}

	if req.Username != expectedUser || !s.passwordCfg.VerifyPassword(req.Password, expectedHash) {
		errorResponse(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.jwtService.GenerateToken(req.Username)
	if err != nil {
		log.Printf("failed to generate token: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"token": token})
}

// generateResponse is the payload returned by POST /api/v1/generate.
type generateResponse struct {
	RunID      string                  `json:"run_id,omitempty"`
	AdCopy     *types.AdCopy           `json:"ad_copy"`
	Report     *types.ConstraintReport `json:"report"`
	Profile    *types.ClientProfile    `json:"profile,omitempty"`
	DurationMS int64                   `json:"duration_ms"`
}

// handleGenerate runs the full generation pipeline for a campaign request.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req types.CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if !req.CampaignType.IsValid() {
		errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown campaign type: %s", req.CampaignType))
		return
	}

	start := time.Now()
	result, err := pipeline.Run(r.Context(), pipeline.RunOptions{
		Request:  req,
		APIKey:   s.config.APIKey,
		Database: s.db,
	})
	if err != nil {
		log.Printf("generation failed for client %s: %v", req.ClientID, err)
		errorResponse(w, http.StatusInternalServerError, "generation failed")
		return
	}

	resp := generateResponse{
		AdCopy:     result.AdCopy,
		Report:     result.Report,
		Profile:    result.Profile,
		DurationMS: time.Since(start).Milliseconds(),
	}
	if s.db != nil {
		resp.RunID = result.RunID.String()
	}
	jsonResponse(w, http.StatusOK, resp)
}

// handleListRuns returns recent generation runs for a client.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.db == nil {
		errorResponse(w, http.StatusServiceUnavailable, "database is not configured")
		return
	}

	clientID := r.URL.Query().Get("client_id")
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	runs, err := s.db.ListRuns(r.Context(), clientID, limit)
	if err != nil {
		log.Printf("failed to list runs: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to list runs")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}
