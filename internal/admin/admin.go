// Package admin is the local HTTP sidecar: a liveness probe and a notify
// endpoint that relays an arbitrary message into the owner's chat.
package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/dispatch"
)

// Notifier delivers one message to the owner's conversation.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// SessionNotifier delivers through the conversation session, so relayed
// messages pick up an active personality overlay like any other outbound
// line.
type SessionNotifier struct {
	Sess *dispatch.Session
}

func (n SessionNotifier) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.Sess.Say(ctx, text)
	return nil
}

type Server struct {
	notifier Notifier
	log      *zap.Logger
}

func NewServer(notifier Notifier, log *zap.Logger) *Server {
	return &Server{notifier: notifier, log: log}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealthz)
	r.Post("/notify", s.handleNotify)
	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type notifyPayload struct {
	Message string `json:"message"`
}

func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	var p notifyPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Message == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := s.notifier.Send(r.Context(), p.Message); err != nil {
		s.log.Error("notify relay failed", zap.Error(err))
		http.Error(w, "delivery failed", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
