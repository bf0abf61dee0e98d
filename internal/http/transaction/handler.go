package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

type Handler struct {
	svc      *transaction.Service
	scoreSvc *achievement.Service
}

func NewHandler(svc *transaction.Service, scoreSvc *achievement.Service) *Handler {
	return &Handler{svc: svc, scoreSvc: scoreSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Username string               `json:"username"`
	Kind     transaction.Kind     `json:"kind"`
	Category transaction.Category `json:"category"`
	Amount   decimal.Decimal      `json:"amount"`
	Date     time.Time            `json:"date"`
	Note     string               `json:"note"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		Username: req.Username,
		Kind:     req.Kind,
		Category: req.Category,
		Amount:   req.Amount,
		Date:     req.Date,
		Note:     req.Note,
	})
	if err != nil {
		if errors.Is(err, transaction.ErrMissingUsername) ||
			errors.Is(err, transaction.ErrAmountTooSmall) ||
			errors.Is(err, transaction.ErrCategoryMismatch) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	// Keep the snapshot warm so leaderboard reads stay cheap. A failed
	// recompute is recovered on the next leaderboard refresh.
	if _, err := h.scoreSvc.RecomputeUser(r.Context(), tx.Username); err != nil {
		slog.Warn("failed to recompute achievements", "username", tx.Username, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("user")
	if username == "" {
		http.Error(w, "user parameter is required", http.StatusBadRequest)
		return
	}

	filter := transaction.ListFilter{}

	if s := r.URL.Query().Get("kind"); s != "" {
		filter.Kind = new(transaction.Kind(s))
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	txs, err := h.svc.List(r.Context(), username, filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
