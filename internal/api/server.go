// Package api exposes the verification pipeline over HTTP. It is a thin
// shim: identity, persistence and listing concerns belong to the
// collaborator service consuming these responses.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/healthfactguardian/verifier-node/internal/buildinfo"
	"github.com/healthfactguardian/verifier-node/internal/core/ports"
	"github.com/healthfactguardian/verifier-node/internal/log"
)

// Server handles the verification API routes.
type Server struct {
	verification ports.VerificationService
	registry     ports.RegistryGateway
	loadedFacts  int
}

// NewServer returns the API server for the given services.
func NewServer(verification ports.VerificationService, registry ports.RegistryGateway, loadedFacts int) *Server {
	return &Server{
		verification: verification,
		registry:     registry,
		loadedFacts:  loadedFacts,
	}
}

// Routes mounts the API on a chi router with request-id, logging and CORS
// middleware installed.
func (s *Server) Routes(ctx context.Context) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(log.CopyFromContext(ctx, r.Context())))
		})
	})
	mux.Use(log.ChiMiddleware(ctx))
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	mux.Post("/v1/claims/verify", s.verifyClaim)
	mux.Get("/status", s.status)
	return mux
}

// VerifyClaimRequest is the body of POST /v1/claims/verify.
type VerifyClaimRequest struct {
	Claim   string `json:"claim"`
	Channel string `json:"channel"`
}

func (s *Server) verifyClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VerifyClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Claim) == "" {
		writeError(w, http.StatusBadRequest, "claim must not be empty")
		return
	}
	if req.Channel == "" {
		req.Channel = "web"
	}

	result := s.verification.Verify(ctx, req.Claim, req.Channel)
	writeJSON(ctx, w, http.StatusOK, result)
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	RegistryAvailable bool   `json:"registry_available"`
	TotalOnChainFacts uint64 `json:"total_on_chain_facts"`
	LoadedLocalFacts  int    `json:"loaded_local_facts"`
	BuildRevision     string `json:"build_revision,omitempty"`
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := StatusResponse{
		RegistryAvailable: s.registry.IsAvailable(ctx),
		LoadedLocalFacts:  s.loadedFacts,
		BuildRevision:     buildinfo.Revision(),
	}
	if resp.RegistryAvailable {
		total, err := s.registry.TotalFacts(ctx)
		if err != nil {
			log.Warn(ctx, "cannot read total facts", "err", err)
		}
		resp.TotalOnChainFacts = total
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error(ctx, "writing response", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
