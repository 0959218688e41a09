// Package server exposes the simulation engine over a small JSON API for the
// intake application to call.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/config"
	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/simulation"
	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/store"
	"go.uber.org/zap"
)

type handler struct {
	logger         *zap.Logger
	simulationCfg  config.SimulationConfig
	configWarnings []string
	repo           store.SimulationRepository
	cache          store.ResultCache
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the simulation API.
// The repository and cache may be nil; saving and caching are then skipped.
func NewHandler(logger *zap.Logger, simulationCfg config.SimulationConfig,
	repo store.SimulationRepository, cache store.ResultCache,
	maxRequestSize int64, version string) http.Handler {

	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		simulationCfg:  simulationCfg,
		configWarnings: simulationCfg.Validate(),
		repo:           repo,
		cache:          cache,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/simulate", h.handleSimulate)
	mux.HandleFunc("/api/config", h.handleConfig)
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/healthz", h.handleHealth)

	return mux
}

type simulateResponse struct {
	Result   simulation.Result `json:"result"`
	Warnings []string          `json:"warnings,omitempty"`
	Duration string            `json:"duration"`
	Cached   bool              `json:"cached"`
}

type configResponse struct {
	Config   config.SimulationConfig `json:"config"`
	Warnings []string                `json:"warnings,omitempty"`
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var input simulation.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				"request body exceeds limit", "server.handleSimulate")
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest,
			"failed to decode simulation input: "+err.Error(), "server.handleSimulate")
		return
	}

	if h.cache != nil {
		if key, err := store.CacheKey(input, h.simulationCfg); err == nil {
			if cached, ok := h.cache.Get(key); ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(cached))
				return
			}
		}
	}

	result, err := simulation.Calculate(h.logger, input, h.simulationCfg)
	if err != nil {
		// Only malformed numeric input errors; infeasible scenarios respond
		// 200 with warning flags set.
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleSimulate")
		return
	}

	if h.repo != nil {
		if saveErr := h.repo.Save(r.Context(), input, result); saveErr != nil {
			h.logger.Warn("failed to save simulation record",
				zap.String("op", "server.handleSimulate"),
				zap.Error(saveErr),
			)
		}
	}

	elapsed := time.Since(start)
	response := simulateResponse{
		Result:   result,
		Warnings: h.configWarnings,
		Duration: elapsed.String(),
	}

	if h.cache != nil {
		if key, keyErr := store.CacheKey(input, h.simulationCfg); keyErr == nil {
			cachedCopy := response
			cachedCopy.Cached = true
			if data, marshalErr := json.Marshal(cachedCopy); marshalErr == nil {
				if setErr := h.cache.Set(key, string(data)); setErr != nil {
					h.logger.Warn("failed to cache simulation result",
						zap.String("op", "server.handleSimulate"),
						zap.Error(setErr),
					)
				}
			}
		}
	}

	h.logger.Info("simulation computed",
		zap.String("op", "server.handleSimulate"),
		zap.Bool("exceedsMaxLoan", result.Warnings.ExceedsMaxLoan),
		zap.Bool("exceedsMaxTerm", result.Warnings.ExceedsMaxTerm),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, configResponse{
		Config:   h.simulationCfg,
		Warnings: h.configWarnings,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("simulation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
