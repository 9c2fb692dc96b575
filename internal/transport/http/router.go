package http

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

func NewBackendRouter(h *BackendHandlers, log *slog.Logger) http.Handler {
	r := newRouter(log)
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/hello", h.Hello).Methods("GET")
	return r
}

func NewFrontendRouter(h *FrontendHandlers, log *slog.Logger) http.Handler {
	r := newRouter(log)
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/", h.Hello).Methods("GET")
	r.HandleFunc("/hello", h.Hello).Methods("GET")
	return r
}

func newRouter(log *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID, accessLog(log), recoverer(log))
	return r
}
