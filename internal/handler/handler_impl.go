// Package handler provides HTTP request handlers for the device-bridge API.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/middleware"
	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/service"
)

const (
	errorCodeInvalidRequest   = "INVALID_REQUEST"
	errorCodeInvalidParameter = "INVALID_PARAMETER"
)

const (
	errorMessageInvalidBody              = "Request body is not valid JSON"
	errorMessageFailedToRetrieveMessages = "Failed to retrieve forwarded messages"
	errorMessageFailedToRetrieveStats    = "Failed to retrieve message statistics"
	errorMessageFailedToRetrieveLogs     = "Failed to retrieve logs"
	errorMessageFailedToClearLogs        = "Failed to clear logs"
)

const (
	defaultPage     = 1
	defaultLimit    = 20
	defaultLogLimit = 100
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthResponse struct {
	*service.HealthStatus
	Timestamp time.Time `json:"timestamp"`
}

func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Routes mounts the API. Everything except the health check requires the
// device key.
func (h *Handler) Routes(deviceKey string) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	r.Group(func(r chi.Router) {
		r.Use(middleware.DeviceAuth(deviceKey))

		r.Route("/events", func(r chi.Router) {
			r.Post("/sms", h.ReceiveSMS)
			r.Post("/call", h.ReceiveCall)
			r.Post("/battery", h.ReceiveBattery)
			r.Post("/connectivity", h.ReceiveConnectivity)
			r.Post("/system", h.ReceiveSystem)
		})

		r.Put("/contacts", h.SyncContacts)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.Patch("/", h.UpdateSettings)
			r.Post("/verify", h.VerifySettings)
		})

		r.Get("/messages", h.GetMessages)
		r.Get("/messages/stats", h.GetMessageStats)

		r.Get("/logs", h.GetLogs)
		r.Delete("/logs", h.ClearLogs)
	})

	return r
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	page, err := intParam(r, "page", defaultPage)
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidParameter, service.ErrInvalidPage.Error())
		return
	}
	limit, err := intParam(r, "limit", defaultLimit)
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidParameter, service.ErrInvalidLimit.Error())
		return
	}

	query := service.MessageQuery{
		Page:  page,
		Limit: limit,
		Query: r.URL.Query().Get("q"),
		Type:  models.MessageType(r.URL.Query().Get("type")),
	}

	result, err := h.service.Message.GetMessages(r.Context(), query)
	if err != nil {
		if isParameterError(err) {
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidParameter, err.Error())
			return
		}
		h.internalError(w, r, err, errorMessageFailedToRetrieveMessages)
		return
	}

	render.JSON(w, r, result)
}

func (h *Handler) GetMessageStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Message.GetStats(r.Context())
	if err != nil {
		h.internalError(w, r, err, errorMessageFailedToRetrieveStats)
		return
	}

	render.JSON(w, r, stats)
}

func (h *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", defaultLogLimit)
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidParameter, service.ErrInvalidLimit.Error())
		return
	}

	entries, err := h.service.Message.GetLogs(r.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLimit) {
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidParameter, err.Error())
			return
		}
		h.internalError(w, r, err, errorMessageFailedToRetrieveLogs)
		return
	}

	render.JSON(w, r, map[string]interface{}{"logs": entries})
}

func (h *Handler) ClearLogs(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Message.ClearLogs(r.Context()); err != nil {
		h.internalError(w, r, err, errorMessageFailedToClearLogs)
		return
	}

	render.NoContent(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	// Degraded still answers 200 so monitoring can tell it from an outage.
	if health.Status == service.Unhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, HealthResponse{
		HealthStatus: health,
		Timestamp:    time.Now(),
	})
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func isParameterError(err error) bool {
	return errors.Is(err, service.ErrInvalidPage) ||
		errors.Is(err, service.ErrInvalidLimit) ||
		errors.Is(err, service.ErrInvalidType)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	h.logger.Error(message,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err))
	h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, message)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}
