package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/monitor"
)

const (
	errorCodeInvalidEvent = "INVALID_EVENT"
	errorCodeQueueFull    = "QUEUE_FULL"
)

const (
	errorMessageQueueFull           = "Event queue is full, retry later"
	errorMessageFailedToSubmit      = "Failed to accept event"
	errorMessageFailedToSync        = "Failed to sync contacts"
	errorMessageContactWithoutPhone = "Every contact needs a phone_number"
)

type SMSRequest struct {
	Sender string `json:"sender"`
	Body   string `json:"body"`
}

type SMSResponse struct {
	Forwarded bool `json:"forwarded"`
}

type ContactsRequest struct {
	Contacts []models.Contact `json:"contacts"`
}

type ContactsResponse struct {
	Synced int `json:"synced"`
}

type acceptedResponse struct {
	Status string `json:"status"`
}

func (h *Handler) ReceiveSMS(w http.ResponseWriter, r *http.Request) {
	var req SMSRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}

	forwarded := h.service.Forwarding.ForwardSMS(r.Context(), req.Sender, req.Body)
	render.JSON(w, r, SMSResponse{Forwarded: forwarded})
}

func (h *Handler) ReceiveCall(w http.ResponseWriter, r *http.Request) {
	var e monitor.CallEvent
	if !h.decode(w, r, &e) {
		return
	}
	h.submitted(w, r, h.service.Events.SubmitCall(e))
}

func (h *Handler) ReceiveBattery(w http.ResponseWriter, r *http.Request) {
	var s monitor.BatterySample
	if !h.decode(w, r, &s) {
		return
	}
	h.submitted(w, r, h.service.Events.SubmitBattery(s))
}

func (h *Handler) ReceiveConnectivity(w http.ResponseWriter, r *http.Request) {
	var e monitor.ConnectivityEvent
	if !h.decode(w, r, &e) {
		return
	}
	h.submitted(w, r, h.service.Events.SubmitConnectivity(e))
}

func (h *Handler) ReceiveSystem(w http.ResponseWriter, r *http.Request) {
	var e monitor.SystemEvent
	if !h.decode(w, r, &e) {
		return
	}
	h.submitted(w, r, h.service.Events.SubmitSystem(e))
}

func (h *Handler) SyncContacts(w http.ResponseWriter, r *http.Request) {
	var req ContactsRequest
	if !h.decode(w, r, &req) {
		return
	}

	for _, c := range req.Contacts {
		if strings.TrimSpace(c.PhoneNumber) == "" {
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, errorMessageContactWithoutPhone)
			return
		}
	}

	n, err := h.service.Contacts.Sync(r.Context(), req.Contacts)
	if err != nil {
		h.internalError(w, r, err, errorMessageFailedToSync)
		return
	}

	render.JSON(w, r, ContactsResponse{Synced: n})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, errorMessageInvalidBody)
		return false
	}
	return true
}

func (h *Handler) submitted(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case err == nil:
		render.Status(r, http.StatusAccepted)
		render.JSON(w, r, acceptedResponse{Status: "accepted"})
	case errors.Is(err, monitor.ErrInvalidEvent):
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidEvent, err.Error())
	case errors.Is(err, monitor.ErrQueueFull):
		h.sendError(w, r, http.StatusServiceUnavailable, errorCodeQueueFull, errorMessageQueueFull)
	default:
		h.internalError(w, r, err, errorMessageFailedToSubmit)
	}
}
