package support

import (
	"context"
	"math/rand"
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

type fixture struct {
	sc   *Scripts
	sess *dispatch.Session
	mock *clock.Mock
	rec  *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mock := clock.NewMock()
	rec := &recorder{}
	sess := dispatch.NewSession(1, rec, mock, zap.NewNop())
	sc := NewScripts(personality.New(rand.New(rand.NewSource(11))), zap.NewNop())
	return &fixture{sc: sc, sess: sess, mock: mock, rec: rec}
}

func (f *fixture) run(t *testing.T, feat dispatch.Feature, text string) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		feat.Handle(context.Background(), f.sess, text)
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
			f.mock.Add(500 * time.Millisecond)
			time.Sleep(time.Millisecond)
		}
	}
}

func TestClassification(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"i need to vent", "rant"},
		{"rant zone please", "rant"},
		{"this is bullshit", "rant"},
		{"ok i'm done ranting", "end-rant"},
		{"thanks for listening", "end-rant"},
		{"check on me", "check-in"},
		{"how are you", "check-in"},
		{"self care tips please", "wellness"},
		{"help me relax", "wellness"},
		{"i'm feeling sad", "comfort"},
		{"comfort me", "comfort"},
		{"having a rough day", "comfort"},
	}
	sc := NewScripts(personality.New(rand.New(rand.NewSource(1))), zap.NewNop())
	feats := sc.Features()
	for _, c := range cases {
		matched := ""
		for _, f := range feats {
			if f.CanHandle(c.text) {
				matched = f.Name()
				break
			}
		}
		require.Equal(t, c.want, matched, "text %q", c.text)
	}
}

func TestRantScriptAndFollowUp(t *testing.T) {
	f := newFixture(t)
	rant := &Rant{f.sc}
	f.run(t, rant, "i need to vent")

	require.Len(t, f.rec.messages(), 3, "opening, encouragement, listening line")
	require.True(t, f.sess.RantActive())

	// The one-shot follow-up fires ~30s after entry.
	f.mock.Add(RantFollowUpDelay)
	require.Eventually(t, func() bool { return len(f.rec.messages()) == 4 }, time.Second, time.Millisecond)

	// And only once.
	f.mock.Add(time.Hour)
	require.Len(t, f.rec.messages(), 4)
}

func TestEndRantCancelsFollowUp(t *testing.T) {
	f := newFixture(t)
	f.run(t, &Rant{f.sc}, "rant zone")
	require.True(t, f.sess.RantActive())

	f.run(t, &EndRant{f.sc}, "done ranting")
	require.False(t, f.sess.RantActive())
	count := len(f.rec.messages())
	require.Equal(t, 5, count, "3 rant lines + closing + next step")

	f.mock.Add(time.Hour)
	require.Len(t, f.rec.messages(), count, "cancelled follow-up must not fire")
}

func TestEndRantWithoutRant(t *testing.T) {
	f := newFixture(t)
	f.run(t, &EndRant{f.sc}, "thanks for listening")
	require.Len(t, f.rec.messages(), 1)
}

func TestWellnessTipsDistinct(t *testing.T) {
	f := newFixture(t)
	f.run(t, &Wellness{f.sc}, "self care")

	msgs := f.rec.messages()
	// intro + 2..3 tips + closing
	require.GreaterOrEqual(t, len(msgs), 4)
	require.LessOrEqual(t, len(msgs), 5)
	tips := msgs[1 : len(msgs)-1]
	seen := map[string]bool{}
	for _, tip := range tips {
		require.Contains(t, wellnessTips, tip)
		require.False(t, seen[tip], "tip repeated within one invocation")
		seen[tip] = true
	}
}

func TestComfortScriptShape(t *testing.T) {
	f := newFixture(t)
	f.run(t, &Comfort{f.sc}, "i'm feeling sad")
	require.Len(t, f.rec.messages(), 3)
}

func TestComfortKeywordOnlyFallsBack(t *testing.T) {
	f := newFixture(t)
	c := &Comfort{f.sc}
	text := "my friend gave me a hug today"
	require.True(t, c.CanHandle(text))
	f.run(t, c, text)
	msgs := f.rec.messages()
	require.Len(t, msgs, 1)
	require.Contains(t, msgs[0], "♡")
}

func TestReenteringRantReplacesFollowUp(t *testing.T) {
	f := newFixture(t)
	f.run(t, &Rant{f.sc}, "need to rant")
	f.mock.Add(20 * time.Second)
	f.run(t, &Rant{f.sc}, "need to rant again")
	count := len(f.rec.messages())

	// Old follow-up (due at +30s from first entry) must not fire at +10s.
	f.mock.Add(10 * time.Second)
	time.Sleep(5 * time.Millisecond)
	require.Len(t, f.rec.messages(), count)

	// New follow-up fires 30s after re-entry.
	f.mock.Add(20 * time.Second)
	require.Eventually(t, func() bool { return len(f.rec.messages()) == count+1 }, time.Second, time.Millisecond)
}
