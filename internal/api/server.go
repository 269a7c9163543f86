// Package api exposes the shopping-list engine over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/grocery-cli/internal/config"
	"github.com/sells-group/grocery-cli/internal/list"
	"github.com/sells-group/grocery-cli/internal/model"
	"github.com/sells-group/grocery-cli/internal/recipe"
)

// Server wires the aggregator and recipe store into HTTP handlers.
type Server struct {
	agg   *list.Aggregator
	store recipe.Store
	cfg   config.ServerConfig
}

// NewServer creates an API server.
func NewServer(agg *list.Aggregator, store recipe.Store, cfg config.ServerConfig) *Server {
	return &Server{agg: agg, store: store, cfg: cfg}
}

// Router builds the chi route tree with cors, request logging, and
// rate limiting applied to the API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(RequestLogger)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(RateLimit(s.cfg.RatePerSecond, s.cfg.RateBurst))

		r.Post("/shopping-list", s.handleShoppingList)
		r.Post("/shopping-list/export", s.handleShoppingListExport)

		r.Get("/recipes", s.handleListRecipes)
		r.Get("/recipes/{id}", s.handleGetRecipe)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleShoppingList(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeListRequest(w, r)
	if !ok {
		return
	}

	result, err := s.agg.Aggregate(r.Context(), req)
	if err != nil {
		writeAggregateError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleShoppingListExport(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeListRequest(w, r)
	if !ok {
		return
	}

	result, err := s.agg.Aggregate(r.Context(), req)
	if err != nil {
		writeAggregateError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(list.ExportText(result))) //nolint:errcheck
}

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.store.ListRecipes(r.Context(), 0, 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list recipes")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recipes": recipes})
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.GetRecipe(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, recipe.ErrNotFound) {
		writeError(w, http.StatusNotFound, "recipe not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load recipe")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func decodeListRequest(w http.ResponseWriter, r *http.Request) (model.ShoppingListRequest, bool) {
	var req model.ShoppingListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	return req, true
}

// writeAggregateError maps engine errors onto status codes: malformed
// requests are the caller's fault, unknown recipes are 404s, anything
// else is a server error.
func writeAggregateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, list.ErrMalformedRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, recipe.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		zap.L().Error("shopping list aggregation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
