package leaderboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/budgetbadger/budgetbadger/internal/leaderboard"
)

type Handler struct {
	svc          *leaderboard.Service
	defaultLimit int
}

func NewHandler(svc *leaderboard.Service, defaultLimit int) *Handler {
	return &Handler{svc: svc, defaultLimit: defaultLimit}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type entryResponse struct {
	Rank         int             `json:"rank"`
	Username     string          `json:"username"`
	Points       int             `json:"points"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		limit = n
	}

	var (
		entries []leaderboard.Entry
		err     error
	)

	switch scope := r.URL.Query().Get("scope"); scope {
	case "", "global":
		entries, err = h.svc.Global(r.Context(), limit)
	case "followed":
		user := r.URL.Query().Get("user")
		if user == "" {
			http.Error(w, "user parameter is required for followed scope", http.StatusBadRequest)
			return
		}

		entries, err = h.svc.Followed(r.Context(), user, limit)
	default:
		http.Error(w, "unknown scope: "+scope, http.StatusBadRequest)
		return
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, entryResponse{
			Rank:         e.Rank,
			Username:     e.Username,
			Points:       e.Points,
			TotalIncome:  e.TotalIncome,
			TotalExpense: e.TotalExpense,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
