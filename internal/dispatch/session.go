package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// Sender emits one discrete outbound chat message.
type Sender interface {
	Send(ctx context.Context, text string) error
}

// Step is one beat of a scripted sequence: wait, then speak. Scripts are data
// so tests can inspect them and the driver can simulate time.
type Step struct {
	Delay time.Duration
	Text  string
}

// Transform rewrites an outgoing line while a personality mode is active.
type Transform func(string) string

// Session is the per-conversation context passed to every handler. It owns
// the only mutable shared state in the system: the active personality mode
// and the rant flag.
type Session struct {
	owner int64
	clk   clock.Clock
	snd   Sender
	log   *zap.Logger

	mu        sync.Mutex
	modeName  string
	modeLeft  int
	transform Transform

	rantActive bool
	rantFollow *clock.Timer
}

func NewSession(owner int64, snd Sender, clk clock.Clock, log *zap.Logger) *Session {
	return &Session{owner: owner, clk: clk, snd: snd, log: log, modeName: "normal"}
}

// Owner is the authorized identity this conversation belongs to.
func (s *Session) Owner() int64 { return s.owner }

// Say emits one outbound message through the mode overlay. Each transformed
// message consumes one remaining use; at zero the mode reverts to normal.
// Send failures are logged, never propagated: no error is fatal at this layer.
func (s *Session) Say(ctx context.Context, text string) {
	s.mu.Lock()
	if s.modeLeft > 0 {
		text = s.transform(text)
		s.modeLeft--
		if s.modeLeft == 0 {
			s.modeName = "normal"
			s.transform = nil
		}
	}
	s.mu.Unlock()

	if err := s.snd.Send(ctx, text); err != nil {
		s.log.Error("send failed", zap.Error(err))
	}
}

// SayRaw bypasses the mode overlay. Used for bare links, which no overlay
// should mangle.
func (s *Session) SayRaw(ctx context.Context, text string) {
	if err := s.snd.Send(ctx, text); err != nil {
		s.log.Error("send failed", zap.Error(err))
	}
}

// Play drives a scripted sequence, sleeping between beats to simulate typing
// cadence. The clock is injected, so tests advance it instead of waiting.
func (s *Session) Play(ctx context.Context, steps []Step) {
	for _, st := range steps {
		if ctx.Err() != nil {
			return
		}
		if st.Delay > 0 {
			s.clk.Sleep(st.Delay)
		}
		s.Say(ctx, st.Text)
	}
}

// SetMode activates a personality overlay for the next uses outgoing messages.
func (s *Session) SetMode(name string, uses int, t Transform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modeName = name
	s.modeLeft = uses
	s.transform = t
}

// Mode reports the active overlay name, "normal" when none.
func (s *Session) Mode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.modeLeft <= 0 {
		return "normal"
	}
	return s.modeName
}

// ModeRemaining reports how many transformed messages are left.
func (s *Session) ModeRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modeLeft
}

// BeginRant flags the rant state and schedules a one-shot follow-up. The
// follow-up fires unconditionally after delay unless the rant is explicitly
// ended first; a new BeginRant replaces the pending one.
func (s *Session) BeginRant(delay time.Duration, followUp func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rantActive = true
	if s.rantFollow != nil {
		s.rantFollow.Stop()
	}
	s.rantFollow = s.clk.AfterFunc(delay, func() {
		s.mu.Lock()
		active := s.rantActive
		s.mu.Unlock()
		if active {
			followUp()
		}
	})
}

// EndRant clears the rant state and cancels the pending follow-up. Reports
// whether a rant was actually active.
func (s *Session) EndRant() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	was := s.rantActive
	s.rantActive = false
	if s.rantFollow != nil {
		s.rantFollow.Stop()
		s.rantFollow = nil
	}
	return was
}

func (s *Session) RantActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rantActive
}
