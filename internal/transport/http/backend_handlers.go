package http

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/you/hello-users/internal/domain"
	"github.com/you/hello-users/internal/render"
)

type UsersService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	Ping(ctx context.Context) error
}

// BackendHandlers serves the users table straight from the store.
type BackendHandlers struct {
	Users UsersService
	Log   *slog.Logger
}

func NewBackendHandlers(users UsersService, log *slog.Logger) *BackendHandlers {
	return &BackendHandlers{Users: users, Log: log}
}

func (h *BackendHandlers) Hello(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.Log)

	users, err := h.Users.ListUsers(r.Context())
	if err != nil {
		log.Error("failed to list users", slog.Any("err", err))
		errorText(w, http.StatusInternalServerError, "failed to load users")
		return
	}

	var buf bytes.Buffer
	if err := render.UsersPage(&buf, users); err != nil {
		log.Error("failed to render users page", slog.Any("err", err))
		errorText(w, http.StatusInternalServerError, "failed to load users")
		return
	}

	log.Debug("rendered users page", slog.Int("rows", len(users)))
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (h *BackendHandlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.Ping(r.Context()); err != nil {
		requestLogger(r, h.Log).Warn("database ping failed", slog.Any("err", err))
		errorResp(w, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "database unavailable")
		return
	}
	health(w, r)
}
