package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/samuraistore/backend/internal/favorites/domain"
	"github.com/samuraistore/backend/internal/favorites/usecase/command"
	"github.com/samuraistore/backend/internal/favorites/usecase/query"
	"github.com/samuraistore/backend/pkg/logger"
)

// FavoriteHandler handles HTTP requests for favorites using CQRS pattern
type FavoriteHandler struct {
	// Command handlers
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler

	// Query handlers
	checkHandler *query.CheckFavoriteHandler
	listHandler  *query.ListFavoritesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewFavoriteHandler creates a new favorite handler (manual DI)
func NewFavoriteHandler(repo domain.FavoriteRepository) *FavoriteHandler {
	return NewFavoriteHandlerWithDI(
		command.NewAddFavoriteHandler(repo),
		command.NewRemoveFavoriteHandler(repo),
		query.NewCheckFavoriteHandler(repo),
		query.NewListFavoritesHandler(repo),
	)
}

// NewFavoriteHandlerWithDI creates a new favorite handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewFavoriteHandlerWithDI(
	addHandler *command.AddFavoriteHandler,
	removeHandler *command.RemoveFavoriteHandler,
	checkHandler *query.CheckFavoriteHandler,
	listHandler *query.ListFavoritesHandler,
) *FavoriteHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_requests_total",
			Help: "Total number of requests to the favorites endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "favorites_request_duration_seconds",
			Help:    "Duration of favorites requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &FavoriteHandler{
		addHandler:     addHandler,
		removeHandler:  removeHandler,
		checkHandler:   checkHandler,
		listHandler:    listHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *FavoriteHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/favorites", h.metricsMiddleware("/api/favorites", AuthMiddleware(h.ListFavorites))).Methods("GET")
	router.HandleFunc("/api/favorites", h.metricsMiddleware("/api/favorites", AuthMiddleware(h.AddFavorite))).Methods("POST")
	router.HandleFunc("/api/favorites/{productId}", h.metricsMiddleware("/api/favorites/{productId}", AuthMiddleware(h.CheckFavorite))).Methods("GET")
	router.HandleFunc("/api/favorites/{productId}", h.metricsMiddleware("/api/favorites/{productId}", AuthMiddleware(h.RemoveFavorite))).Methods("DELETE")
}

// principal pulls the authenticated user id out of the request context.
// The zero value means "no principal" and is rejected by the usecases too.
func principal(r *http.Request) uint {
	userID, ok := r.Context().Value(UserIDKey).(uint)
	if !ok {
		return 0
	}
	return userID
}

// AddFavorite handles POST /api/favorites
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID := principal(r)
	if userID == 0 {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Login required",
		})
		return
	}

	var req struct {
		ProductID uint `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.AddFavoriteCommand{
		UserID:    userID,
		ProductID: req.ProductID,
	}

	if err := h.addHandler.Handle(cmd); err != nil {
		h.respondCommandError(w, r, err, "Failed to add favorite")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Added to favorites",
	})
}

// RemoveFavorite handles DELETE /api/favorites/{productId}
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID := principal(r)
	if userID == 0 {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Login required",
		})
		return
	}

	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["productId"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	cmd := command.RemoveFavoriteCommand{
		UserID:    userID,
		ProductID: uint(productID),
	}

	if err := h.removeHandler.Handle(cmd); err != nil {
		h.respondCommandError(w, r, err, "Failed to remove favorite")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Removed from favorites",
	})
}

// CheckFavorite handles GET /api/favorites/{productId}
func (h *FavoriteHandler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	userID := principal(r)
	if userID == 0 {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Login required",
		})
		return
	}

	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["productId"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	q := query.CheckFavoriteQuery{
		UserID:    userID,
		ProductID: uint(productID),
	}

	favorited, err := h.checkHandler.Handle(q)
	if err != nil {
		h.respondCommandError(w, r, err, "Failed to check favorite")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    favorited,
	})
}

// ListFavorites handles GET /api/favorites
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID := principal(r)
	if userID == 0 {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Login required",
		})
		return
	}

	q := query.ListFavoritesQuery{UserID: userID}

	projections, err := h.listHandler.Handle(q)
	if err != nil {
		h.respondCommandError(w, r, err, "Failed to list favorites")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    projections,
	})
}

// respondCommandError maps domain errors to status codes. Anything that is
// not part of the taxonomy collapses to a generic 500; the cause is logged
// and never reaches the response body.
func (h *FavoriteHandler) respondCommandError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Login required",
		})
	case errors.Is(err, domain.ErrProductIDRequired):
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Product ID is required",
		})
	default:
		logger.Error(r.Context()).Err(err).Msg(logMsg)
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Internal server error",
		})
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
