package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/samuraistore/backend/internal/inquiry/domain"
	"github.com/samuraistore/backend/internal/inquiry/usecase/command"
	"github.com/samuraistore/backend/internal/inquiry/usecase/query"
	"github.com/samuraistore/backend/pkg/logger"
)

// InquiryHandler handles HTTP requests for the contact form using CQRS pattern
type InquiryHandler struct {
	createHandler *command.CreateInquiryHandler
	listHandler   *query.ListInquiriesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	submissions    prometheus.Counter
}

// NewInquiryHandler creates a new inquiry handler using dependency injection
func NewInquiryHandler(
	createHandler *command.CreateInquiryHandler,
	listHandler *query.ListInquiriesHandler,
) *InquiryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiry_service_requests_total",
			Help: "Total number of requests to inquiry endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inquiry_service_request_duration_seconds",
			Help:    "Duration of inquiry requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	submissions := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "inquiry_service_submissions_total",
			Help: "Total number of accepted contact form submissions",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(submissions)

	return &InquiryHandler{
		createHandler:  createHandler,
		listHandler:    listHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		submissions:    submissions,
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
func (h *InquiryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *InquiryHandler) RegisterRoutes(router *mux.Router) {
	// Submitting an inquiry is public; reading the inbox is admin only
	router.HandleFunc("/api/inquiries", h.metricsMiddleware("/api/inquiries", h.CreateInquiry)).Methods("POST")
	router.HandleFunc("/api/inquiries", h.metricsMiddleware("/api/inquiries", AdminMiddleware(h.ListInquiries))).Methods("GET")
}

type createInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// decodeInquiryRequest reads the submission from either a JSON body or a
// form post; the contact page sends both depending on the client.
func decodeInquiryRequest(r *http.Request) (createInquiryRequest, error) {
	var req createInquiryRequest

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}

	req.Name = r.PostFormValue("name")
	req.Email = r.PostFormValue("email")
	req.Message = r.PostFormValue("message")
	return req, nil
}

// CreateInquiry handles POST /api/inquiries
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	req, err := decodeInquiryRequest(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateInquiryCommand{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	inquiry, err := h.createHandler.Handle(cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameRequired),
			errors.Is(err, domain.ErrEmailInvalid),
			errors.Is(err, domain.ErrMessageRequired),
			errors.Is(err, domain.ErrMessageTooLong):
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		default:
			logger.Error(r.Context()).Err(err).Msg("Failed to store inquiry")
			respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Internal server error"})
		}
		return
	}

	h.submissions.Inc()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Thank you for your inquiry",
		Data:    inquiry,
	})
}

// ListInquiries handles GET /api/inquiries
func (h *InquiryHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	result, err := h.listHandler.Handle(query.ListInquiriesQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list inquiries")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Internal server error"})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
