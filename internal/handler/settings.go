package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/popeskul/tg-forwarder/internal/service"
	"github.com/popeskul/tg-forwarder/internal/settings"
)

const (
	errorCodeInvalidSetting     = "INVALID_SETTING"
	errorCodeMissingCredentials = "MISSING_CREDENTIALS"
	errorCodeVerifyFailed       = "VERIFY_FAILED"
)

const (
	errorMessageFailedToUpdateSettings = "Failed to update settings"
	errorMessageFailedToVerify         = "Failed to verify credentials"
)

type VerifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Settings.Get())
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch map[string]interface{}
	if !h.decode(w, r, &patch) {
		return
	}

	values, err := h.service.Settings.Update(r.Context(), patch)
	if err != nil {
		if errors.Is(err, settings.ErrUnknownKey) || errors.Is(err, settings.ErrInvalidValue) {
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidSetting, err.Error())
			return
		}
		h.internalError(w, r, err, errorMessageFailedToUpdateSettings)
		return
	}

	render.JSON(w, r, values)
}

// VerifySettings saves the supplied credentials and sends a test message.
// A rejected send is reported with the Bot API's own error text.
func (h *Handler) VerifySettings(w http.ResponseWriter, r *http.Request) {
	var req service.VerifyRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.service.Settings.Verify(r.Context(), req)
	switch {
	case err == nil:
		render.JSON(w, r, VerifyResponse{Status: "verified", Message: "Test message delivered"})
	case errors.Is(err, settings.ErrInvalidValue):
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidSetting, err.Error())
	case errors.Is(err, service.ErrMissingCredentials):
		h.sendError(w, r, http.StatusBadRequest, errorCodeMissingCredentials, err.Error())
	case errors.Is(err, service.ErrVerifyFailed):
		h.sendError(w, r, http.StatusBadGateway, errorCodeVerifyFailed, err.Error())
	default:
		h.internalError(w, r, err, errorMessageFailedToVerify)
	}
}
