package eggs

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/dispatch"
	"github.com/eliasnika/calliope/internal/personality"
)

// Feature activates temporary personality modes and answers one-shot
// playful prompts (greetings, jokes, songs, compliments).
type Feature struct {
	pers *personality.Responder
	log  *zap.Logger
}

func NewFeature(pers *personality.Responder, log *zap.Logger) *Feature {
	return &Feature{pers: pers, log: log}
}

func (f *Feature) Name() string { return "eggs" }

// CanHandle is pure pattern matching over the trigger tables; messages none
// of them claim fall through to the features behind this one.
func (f *Feature) CanHandle(text string) bool {
	if _, ok := matchMode(text); ok {
		return true
	}
	_, ok := matchSpecial(text)
	return ok
}

func (f *Feature) Handle(ctx context.Context, s *dispatch.Session, text string) {
	if m, ok := matchMode(text); ok {
		f.activate(ctx, s, m)
		return
	}
	if kind, ok := matchSpecial(text); ok {
		f.special(ctx, s, kind)
	}
}

// activate announces the switch and then installs the overlay, so the
// announcement itself does not consume one of the mode's uses.
func (f *Feature) activate(ctx context.Context, s *dispatch.Session, m Mode) {
	f.log.Info("mode activated", zap.String("mode", string(m)))

	switch m {
	case ModeTsundere:
		s.Say(ctx, fmt.Sprintf(f.pers.Pick(tsundereActivations), f.pers.Emoji()))
	case ModeAlexa:
		s.Say(ctx, f.pers.Pick(alexaActivations))
	case ModeKawaii:
		s.Say(ctx, f.pers.Pick(kawaiiActivations))
		s.SayRaw(ctx, f.pers.Pick(celebrationGifs))
	case ModeCat:
		s.Say(ctx, fmt.Sprintf(f.pers.Pick(catActivations), f.pers.Excited()))
	case ModeSleepy:
		s.Say(ctx, fmt.Sprintf(f.pers.Pick(sleepyActivations), f.pers.Emoji()))
		s.SayRaw(ctx, f.pers.Pick(sleepyGifs))
	}

	mode := m
	s.SetMode(string(mode), ModeUses, func(text string) string {
		return Transform(mode, text)
	})
}

func (f *Feature) special(ctx context.Context, s *dispatch.Session, kind specialKind) {
	switch kind {
	case specialGreeting:
		s.Say(ctx, f.pers.Greeting())
	case specialMorningNight:
		s.Say(ctx, fmt.Sprintf(f.pers.Pick(morningNightReplies), f.pers.Emoji()))
	case specialThanks:
		s.Say(ctx, fmt.Sprintf(f.pers.Pick(thanksReplies), f.pers.Emoji()))
		if f.pers.Roll(0.3) {
			s.SayRaw(ctx, f.pers.Pick(comfortGifs))
		}
	case specialCompliment:
		s.Say(ctx, fmt.Sprintf(f.pers.Pick(complimentReplies), f.pers.Excited()))
		s.SayRaw(ctx, f.pers.Pick(celebrationGifs))
	case specialLove:
		s.Say(ctx, fmt.Sprintf(f.pers.Pick(loveReplies), f.pers.Excited()))
	case specialFavorite:
		s.Say(ctx, fmt.Sprintf(f.pers.Pick(favoriteReplies), f.pers.Emoji()))
	case specialJoke:
		s.Say(ctx, f.pers.Pick(jokes))
	case specialSong:
		s.Say(ctx, fmt.Sprintf(f.pers.Pick(songs), f.pers.Emoji()))
	case specialDance:
		s.Say(ctx, f.pers.Pick(danceReplies))
		s.SayRaw(ctx, f.pers.Pick(celebrationGifs))
	}
}

func (f *Feature) Help() string {
	return "*🎭 Fun stuff:*\n" +
		"• \"tsundere mode\" / \"cat mode\" / \"kawaii overload\" - personality switches\n" +
		"• \"tell me a joke\", \"sing\", \"dance\" - silly requests\n" +
		"• Say hi, thank me, or just chat! ♡"
}
