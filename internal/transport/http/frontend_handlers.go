package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/you/hello-users/internal/client"
)

const backendPrefix = "Response from backend: "

type HelloFetcher interface {
	Hello(ctx context.Context) (string, error)
}

// FrontendHandlers forwards to the backend and prefixes its answer.
type FrontendHandlers struct {
	Backend HelloFetcher
	Log     *slog.Logger
}

func NewFrontendHandlers(backend HelloFetcher, log *slog.Logger) *FrontendHandlers {
	return &FrontendHandlers{Backend: backend, Log: log}
}

func (h *FrontendHandlers) Hello(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.Log)

	body, err := h.Backend.Hello(r.Context())
	if err != nil {
		log.Error("backend call failed", slog.Any("err", err))
		if errors.Is(err, client.ErrBackendTimeout) {
			errorText(w, http.StatusGatewayTimeout, "backend timed out")
			return
		}
		errorText(w, http.StatusBadGateway, "backend unavailable")
		return
	}

	writeHTML(w, http.StatusOK, []byte(backendPrefix+body))
}

func (h *FrontendHandlers) Health(w http.ResponseWriter, r *http.Request) {
	health(w, r)
}
