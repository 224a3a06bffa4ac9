// Package dispatch routes inbound DM text to feature modules. Each feature
// exposes a yes/no capability check and a handling routine; the dispatcher
// tries them in a fixed priority order and stops at the first match. The
// order is a design choice, not derived from message semantics: modules
// overlap in keyword space, so it must stay stable for reproducible behavior.
package dispatch

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/personality"
)

// Feature is an independently classifiable request-handling unit.
type Feature interface {
	Name() string
	// CanHandle receives normalized (lowercased, trimmed) text.
	CanHandle(text string) bool
	Handle(ctx context.Context, s *Session, text string)
	// Help contributes this feature's section to the /help reply.
	Help() string
}

type Dispatcher struct {
	features []Feature
	pers     *personality.Responder
	log      *zap.Logger
}

// New builds a dispatcher over features in priority order:
// rant → end-of-rant → check-in → wellness → comfort → timer → easter eggs →
// digest. Help is answered by the dispatcher itself, ahead of the features;
// anything unclaimed falls back to a casual reply.
func New(pers *personality.Responder, log *zap.Logger, features ...Feature) *Dispatcher {
	return &Dispatcher{features: features, pers: pers, log: log}
}

var helpRe = regexp.MustCompile(`\b(help|commands|what can you do)\b`)

// surpriseChance is the odds an otherwise-unclassified message gets a
// spontaneous encouragement instead of the plain casual reply.
const surpriseChance = 0.05

// Normalize prepares inbound text for the capability predicates.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Dispatch routes one inbound message. Every path emits at least one reply.
func (d *Dispatcher) Dispatch(ctx context.Context, s *Session, raw string) {
	text := Normalize(raw)
	if text == "" {
		return
	}

	if helpRe.MatchString(text) {
		s.Say(ctx, d.helpText())
		return
	}

	for _, f := range d.features {
		if f.CanHandle(text) {
			d.log.Debug("dispatch", zap.String("feature", f.Name()))
			f.Handle(ctx, s, text)
			return
		}
	}

	d.log.Debug("dispatch", zap.String("feature", "casual"))
	if d.pers.Roll(surpriseChance) {
		s.Say(ctx, d.pers.RandomEncouragement())
		return
	}
	s.Say(ctx, d.pers.Casual())
}

func (d *Dispatcher) helpText() string {
	var b strings.Builder
	b.WriteString("🌟 *Hiya! I'm your kawaii study buddy!* ")
	b.WriteString(d.pers.Emoji())
	b.WriteString("\n\n*✨ What I can do:*\n")
	for _, f := range d.features {
		if h := f.Help(); h != "" {
			b.WriteString("\n")
			b.WriteString(h)
		}
	}
	b.WriteString("\n\n*💡 Tips:*\n• Just talk naturally! I understand lots of ways to say things~\n• I'll cheer you on and keep you motivated! ")
	b.WriteString(d.pers.Emoji())
	return b.String()
}
