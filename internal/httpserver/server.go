// Package httpserver exposes the token service's read surface over HTTP:
// health, the current index, the supply breakdown, and per-account
// balances, plus a Prometheus scrape endpoint. Routing follows the
// teacher's httpserver.Server shape, upgraded from http.ServeMux to
// gorilla/mux for the path-parameterized /account/{address} route.
package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lumera-labs/yieldtoken/internal/cache"
	"github.com/lumera-labs/yieldtoken/internal/metrics"
	"github.com/lumera-labs/yieldtoken/internal/ratelimit"
	"github.com/lumera-labs/yieldtoken/pkg/types"
)

// Config bundles a Server's collaborators.
type Config struct {
	Cache      *cache.SnapshotCache
	Metrics    *metrics.Registry
	Logger     zerolog.Logger
	RatePerMin int
	Burst      int
}

// Server serves the read-only HTTP API.
type Server struct {
	cfg     Config
	router  *mux.Router
	limiter *ratelimit.Limiter
}

// New builds a Server and registers its routes.
func New(cfg Config) *Server {
	s := &Server{
		cfg:     cfg,
		router:  mux.NewRouter(),
		limiter: ratelimit.New(cfg.RatePerMin, cfg.Burst),
	}
	s.router.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	s.router.HandleFunc("/index", s.wrap(s.handleIndex)).Methods(http.MethodGet)
	s.router.HandleFunc("/supply", s.wrap(s.handleSupply)).Methods(http.MethodGet)
	s.router.HandleFunc("/account/{address}", s.wrap(s.handleAccount)).Methods(http.MethodGet)
	return s
}

// Router returns the underlying mux.Router for net/http.Server wiring.
func (s *Server) Router() *mux.Router { return s.router }

func (s *Server) wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(r) {
			w.Header().Set("Retry-After", "1")
			s.writeError(w, http.StatusTooManyRequests, "RateLimited", "rate limit exceeded", "")
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next(w, r)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message, address string) {
	s.writeJSON(w, status, types.ErrorResponse{Code: code, Message: message, Address: address})
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	_ = enc.Encode(struct {
		Status string `json:"status"`
		Time   string `json:"time"`
	}{"ok", time.Now().UTC().Format(time.RFC3339)})
}

func (s *Server) ensureFresh() error {
	if _, _, _, fresh := s.cfg.Cache.Get(); fresh {
		return nil
	}
	_, _, err := s.cfg.Cache.Refresh()
	return err
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := s.ensureFresh(); err != nil {
		s.cfg.Logger.Warn().Err(err).Msg("index refresh failed")
		s.writeError(w, http.StatusBadGateway, "UpstreamError", err.Error(), "")
		return
	}
	_, idx, etag, _ := s.cfg.Cache.Get()
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	s.writeJSON(w, http.StatusOK, idx)
}

func (s *Server) handleSupply(w http.ResponseWriter, r *http.Request) {
	if err := s.ensureFresh(); err != nil {
		s.cfg.Logger.Warn().Err(err).Msg("supply refresh failed")
		s.writeError(w, http.StatusBadGateway, "UpstreamError", err.Error(), "")
		return
	}
	supply, _, etag, _ := s.cfg.Cache.Get()
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	s.writeJSON(w, http.StatusOK, supply)
}

func (s *Server) handleAccount(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	if address == "" {
		s.writeError(w, http.StatusBadRequest, "InvalidRecipient", "missing address", "")
		return
	}
	acct, err := s.cfg.Cache.Account(address)
	if err != nil {
		s.cfg.Logger.Warn().Err(err).Str("address", address).Msg("account lookup failed")
		s.writeError(w, http.StatusBadGateway, "UpstreamError", err.Error(), address)
		return
	}
	s.writeJSON(w, http.StatusOK, acct)
}
