package achievement

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
)

type Handler struct {
	svc *achievement.Service
}

func NewHandler(svc *achievement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/recompute", h.recompute)
}

type userResult struct {
	Points int    `json:"points,omitempty"`
	Error  string `json:"error,omitempty"`
}

type recomputeResponse struct {
	Users map[string]userResult `json:"users"`
}

func (h *Handler) recompute(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.RecomputeAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := recomputeResponse{Users: make(map[string]userResult, len(results))}

	for username, result := range results {
		if result.Err != nil {
			resp.Users[username] = userResult{Error: result.Err.Error()}
			continue
		}

		resp.Users[username] = userResult{Points: result.Snapshot.Points}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
