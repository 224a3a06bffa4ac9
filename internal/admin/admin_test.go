package admin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/dispatch"
)

type fakeNotifier struct {
	msgs []string
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, text)
	return nil
}

func TestHealthz(t *testing.T) {
	srv := NewServer(&fakeNotifier{}, zap.NewNop())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestNotifyRelays(t *testing.T) {
	n := &fakeNotifier{}
	srv := NewServer(n, zap.NewNop())
	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"message":"deploy finished"}`)
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notify", body))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, []string{"deploy finished"}, n.msgs)
}

func TestNotifyRejectsBadPayload(t *testing.T) {
	srv := NewServer(&fakeNotifier{}, zap.NewNop())
	for _, body := range []string{"", "{}", `{"message":""}`, "not json"} {
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader(body)))
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

type chatRecorder struct {
	msgs []string
}

func (r *chatRecorder) Send(_ context.Context, text string) error {
	r.msgs = append(r.msgs, text)
	return nil
}

func TestNotifyGoesThroughSessionOverlay(t *testing.T) {
	rec := &chatRecorder{}
	sess := dispatch.NewSession(1, rec, clock.New(), zap.NewNop())
	sess.SetMode("shout", 5, strings.ToUpper)

	srv := NewServer(SessionNotifier{Sess: sess}, zap.NewNop())
	recHTTP := httptest.NewRecorder()
	body := strings.NewReader(`{"message":"deploy finished"}`)
	srv.Router().ServeHTTP(recHTTP, httptest.NewRequest(http.MethodPost, "/notify", body))

	require.Equal(t, http.StatusNoContent, recHTTP.Code)
	require.Equal(t, []string{"DEPLOY FINISHED"}, rec.msgs)
	require.Equal(t, 4, sess.ModeRemaining(), "relayed message consumes one overlay use")
}

func TestNotifyDeliveryFailure(t *testing.T) {
	srv := NewServer(&fakeNotifier{err: errors.New("chat unreachable")}, zap.NewNop())
	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"message":"hello"}`)
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notify", body))

	require.Equal(t, http.StatusBadGateway, rec.Code)
}
