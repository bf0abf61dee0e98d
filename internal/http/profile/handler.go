package profile

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
	"github.com/budgetbadger/budgetbadger/internal/badge"
	"github.com/budgetbadger/budgetbadger/internal/social"
)

type Handler struct {
	scoreSvc  *achievement.Service
	badgeSvc  *badge.Service
	socialSvc *social.Service
}

func NewHandler(scoreSvc *achievement.Service, badgeSvc *badge.Service, socialSvc *social.Service) *Handler {
	return &Handler{
		scoreSvc:  scoreSvc,
		badgeSvc:  badgeSvc,
		socialSvc: socialSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{user}", h.get)
}

type profileResponse struct {
	Username     string          `json:"username"`
	Points       int             `json:"points"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	PointsTier   badge.Tier      `json:"points_tier"`
	IncomeTier   badge.Tier      `json:"income_tier"`
	ExpenseTier  badge.Tier      `json:"expense_tier"`
	Followers    int             `json:"followers"`
	Following    int             `json:"following"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "user")

	snapshot, err := h.scoreSvc.Snapshot(r.Context(), username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	assignment, err := h.badgeSvc.Classify(r.Context(), username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	followers, err := h.socialSvc.FollowerCount(r.Context(), username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	following, err := h.socialSvc.FollowingCount(r.Context(), username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := profileResponse{
		Username:     username,
		Points:       snapshot.Points,
		TotalIncome:  snapshot.TotalIncome,
		TotalExpense: snapshot.TotalExpense,
		PointsTier:   assignment.PointsTier,
		IncomeTier:   assignment.IncomeTier,
		ExpenseTier:  assignment.ExpenseTier,
		Followers:    followers,
		Following:    following,
		UpdatedAt:    snapshot.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
