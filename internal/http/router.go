package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/stock-ledger/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	r.Post("/login", handlers.LoginHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/alerts", handlers.GetAlertsHandler)
	r.Get("/report", handlers.GetReportHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/transactions", handlers.ApplyTransactionHandler)
		r.Post("/transactions/import", handlers.ImportTransactionsHandler)
	})

	return r
}
