package timer

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/dispatch"
	"github.com/eliasnika/calliope/internal/personality"
)

type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) Send(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, text)
	return nil
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

func (r *recorder) joined() string { return strings.Join(r.messages(), "\n") }

type fixture struct {
	feat *Feature
	sess *dispatch.Session
	mock *clock.Mock
	rec  *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mock := clock.NewMock()
	rec := &recorder{}
	log := zap.NewNop()
	sess := dispatch.NewSession(owner, rec, mock, log)
	pers := personality.New(rand.New(rand.NewSource(3)))
	eng := NewEngine(mock)
	feat := NewFeature(eng, pers, sess, log)
	return &fixture{feat: feat, sess: sess, mock: mock, rec: rec}
}

// handle runs the feature handler in a goroutine (it may sleep on the mock
// clock for pacing) and drains until it returns.
func (f *fixture) handle(t *testing.T, text string) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		f.feat.Handle(context.Background(), f.sess, text)
		close(done)
	}()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-done:
			return
		case <-deadline:
			t.Fatal("handler did not finish")
		default:
			f.mock.Add(250 * time.Millisecond)
			time.Sleep(time.Millisecond)
		}
	}
}

func TestStartStudyConfirms(t *testing.T) {
	f := newFixture(t)
	f.handle(t, "study for 25 minutes")

	msgs := f.rec.messages()
	require.NotEmpty(t, msgs)
	require.Contains(t, msgs[0], "25")
}

func TestStartOutOfRangeReplies(t *testing.T) {
	f := newFixture(t)
	f.handle(t, "break for 500 minutes")

	msgs := f.rec.messages()
	require.Len(t, msgs, 1)
	require.Contains(t, msgs[0], "1-240")
}

func TestSecondStartRepliesAlreadyActive(t *testing.T) {
	f := newFixture(t)
	f.handle(t, "study for 25 minutes")
	before := len(f.rec.messages())

	f.handle(t, "study for 10 minutes")
	msgs := f.rec.messages()
	require.Greater(t, len(msgs), before)
	require.Contains(t, strings.ToLower(msgs[len(msgs)-1]), "timer")
}

func TestStatusNoTimer(t *testing.T) {
	f := newFixture(t)
	f.handle(t, "time left")

	require.Len(t, f.rec.messages(), 1)
	require.Contains(t, f.rec.joined(), "No timers running")
}

func TestCompletionAnnounced(t *testing.T) {
	f := newFixture(t)
	f.handle(t, "study for 25 minutes")
	before := len(f.rec.messages())

	f.mock.Add(25 * time.Minute)
	// Completion plays a two-beat script with a one second pause.
	require.Eventually(t, func() bool {
		f.mock.Add(time.Second)
		return len(f.rec.messages()) >= before+2
	}, 2*time.Second, time.Millisecond)

	joined := f.rec.joined()
	require.Contains(t, joined, "25 minutes of")
	// Break-after-study suggestion follows a completed study session.
	require.Contains(t, strings.ToLower(joined), "break")
}

func TestStopSilencesCompletion(t *testing.T) {
	f := newFixture(t)
	f.handle(t, "study for 25 minutes")
	f.handle(t, "stop")
	count := len(f.rec.messages())

	f.mock.Add(time.Hour)
	require.Len(t, f.rec.messages(), count, "no completion after stop")
}

func TestUnparsedTimerTextGetsHint(t *testing.T) {
	f := newFixture(t)
	f.handle(t, "i love timers")
	require.Contains(t, f.rec.joined(), "study for 25 minutes")
}
