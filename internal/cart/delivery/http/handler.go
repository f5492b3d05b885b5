package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/samuraistore/backend/internal/cart/domain"
	"github.com/samuraistore/backend/internal/cart/usecase/command"
	"github.com/samuraistore/backend/internal/cart/usecase/query"
	"github.com/samuraistore/backend/pkg/logger"
)

// CartHandler handles HTTP requests for the cart using CQRS pattern
type CartHandler struct {
	// Command handlers
	addHandler      *command.AddItemHandler
	removeHandler   *command.RemoveItemHandler
	checkoutHandler *command.CheckoutHandler

	// Query handlers
	getHandler *query.GetCartHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	checkouts      prometheus.Counter
}

// NewCartHandler creates a new cart handler using dependency injection
func NewCartHandler(
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
	checkoutHandler *command.CheckoutHandler,
	getHandler *query.GetCartHandler,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_service_requests_total",
			Help: "Total number of requests to cart endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_service_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	checkouts := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_service_checkouts_total",
			Help: "Total number of successful checkouts",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(checkouts)

	return &CartHandler{
		addHandler:      addHandler,
		removeHandler:   removeHandler,
		checkoutHandler: checkoutHandler,
		getHandler:      getHandler,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		checkouts:       checkouts,
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
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", AuthMiddleware(h.GetCart))).Methods("GET")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", AuthMiddleware(h.AddItem))).Methods("POST")
	router.HandleFunc("/api/cart/items/{productId}", h.metricsMiddleware("/api/cart/items/{productId}", AuthMiddleware(h.RemoveItem))).Methods("DELETE")
	router.HandleFunc("/api/cart/checkout", h.metricsMiddleware("/api/cart/checkout", AuthMiddleware(h.Checkout))).Methods("POST")
}

func principal(r *http.Request) uint {
	userID, ok := r.Context().Value(UserIDKey).(uint)
	if !ok {
		return 0
	}
	return userID
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.getHandler.Handle(r.Context(), query.GetCartQuery{UserID: principal(r)})
	if err != nil {
		h.respondCommandError(w, r, err, "Failed to load cart")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"cart":  cart,
			"total": cart.Total(),
		},
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cmd := command.AddItemCommand{
		UserID:    principal(r),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	cart, err := h.addHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondCommandError(w, r, err, "Failed to add cart item")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Added to cart",
		Data:    cart,
	})
}

// RemoveItem handles DELETE /api/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["productId"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	cmd := command.RemoveItemCommand{
		UserID:    principal(r),
		ProductID: uint(productID),
	}

	cart, err := h.removeHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondCommandError(w, r, err, "Failed to remove cart item")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Removed from cart",
		Data:    cart,
	})
}

// Checkout handles POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	cmd := command.CheckoutCommand{UserID: principal(r)}

	order, err := h.checkoutHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondCommandError(w, r, err, "Failed to check out")
		return
	}

	h.checkouts.Inc()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order placed",
		Data:    order,
	})
}

// respondCommandError maps domain errors to status codes. Unknown causes
// collapse to a logged 500 with a generic body.
func (h *CartHandler) respondCommandError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Login required"})
	case errors.Is(err, domain.ErrProductIDRequired),
		errors.Is(err, domain.ErrQuantityInvalid),
		errors.Is(err, domain.ErrCartEmpty):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrProductUnavailable):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
	default:
		logger.Error(r.Context()).Err(err).Msg(logMsg)
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Internal server error"})
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
