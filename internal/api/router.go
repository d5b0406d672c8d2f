package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/midori-health/condition-tracker/docs"
	"github.com/midori-health/condition-tracker/internal/api/handler"
	"github.com/midori-health/condition-tracker/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler      *handler.UserHandler
	recordHandler    *handler.RecordHandler
	conditionHandler *handler.ConditionHandler
}

func NewRouter(userHandler *handler.UserHandler, recordHandler *handler.RecordHandler, conditionHandler *handler.ConditionHandler) *Router {
	return &Router{
		userHandler:      userHandler,
		recordHandler:    recordHandler,
		conditionHandler: conditionHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Daily records (nested under users)
			r.Route("/{userId}/records", func(r chi.Router) {
				r.Get("/", rt.recordHandler.List)
				r.Put("/{dateKey}", rt.recordHandler.Upsert)
				r.Get("/{dateKey}", rt.recordHandler.GetByDate)
			})

			// Derived condition (nested under users)
			r.Route("/{userId}/condition", func(r chi.Router) {
				r.Get("/features", rt.conditionHandler.GetFeatures)
				r.Get("/readiness", rt.conditionHandler.GetReadiness)
				r.Get("/advice", rt.conditionHandler.GetAdvice)
				r.Get("/summary", rt.conditionHandler.GetSummary)
			})
		})
	})

	return r
}
