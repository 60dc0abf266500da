package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/popeskul/tg-forwarder/internal/handler"
)

func setupRouter(h *handler.Handler, deviceKey string) http.Handler {
	r := chi.NewRouter()

	r.Mount("/api/v1", h.Routes(deviceKey))

	return r
}
