package social

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/budgetbadger/budgetbadger/internal/social"
)

type Handler struct {
	svc *social.Service
}

func NewHandler(svc *social.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Put("/{follower}/follows/{followee}", h.follow)
	r.Delete("/{follower}/follows/{followee}", h.unfollow)
	r.Get("/{follower}/follows", h.followees)
}

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	follower := chi.URLParam(r, "follower")
	followee := chi.URLParam(r, "followee")

	if err := h.svc.Follow(r.Context(), follower, followee); err != nil {
		if errors.Is(err, social.ErrSelfFollow) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	follower := chi.URLParam(r, "follower")
	followee := chi.URLParam(r, "followee")

	if err := h.svc.Unfollow(r.Context(), follower, followee); err != nil {
		if errors.Is(err, social.ErrNotFound) {
			http.Error(w, "follow edge not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) followees(w http.ResponseWriter, r *http.Request) {
	follower := chi.URLParam(r, "follower")

	followees, err := h.svc.Followees(r.Context(), follower)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if followees == nil {
		followees = []string{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(followees); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
