package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	achievementHandler "github.com/budgetbadger/budgetbadger/internal/http/achievement"
	"github.com/budgetbadger/budgetbadger/internal/http/importcsv"
	leaderboardHandler "github.com/budgetbadger/budgetbadger/internal/http/leaderboard"
	profileHandler "github.com/budgetbadger/budgetbadger/internal/http/profile"
	socialHandler "github.com/budgetbadger/budgetbadger/internal/http/social"
	transactionHandler "github.com/budgetbadger/budgetbadger/internal/http/transaction"
)

func New(
	transactionsV1 *transactionHandler.Handler,
	importV1 *importcsv.Handler,
	leaderboardV1 *leaderboardHandler.Handler,
	profileV1 *profileHandler.Handler,
	socialV1 *socialHandler.Handler,
	achievementsV1 *achievementHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/leaderboard", leaderboardV1.Routes)

		r.Route("/profile", profileV1.Routes)

		r.Route("/social", socialV1.Routes)

		r.Route("/achievements", achievementsV1.Routes)
	})

	return router
}
