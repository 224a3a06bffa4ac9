package timer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/dispatch"
	"github.com/eliasnika/calliope/internal/personality"
)

// Feature wires the engine into the dispatcher: parses timer commands out of
// natural language and announces completions back into the conversation.
type Feature struct {
	eng  *Engine
	pers *personality.Responder
	sess *dispatch.Session
	log  *zap.Logger
}

func NewFeature(eng *Engine, pers *personality.Responder, sess *dispatch.Session, log *zap.Logger) *Feature {
	f := &Feature{eng: eng, pers: pers, sess: sess, log: log}
	eng.OnComplete(f.announceCompletion)
	return f
}

func (f *Feature) Name() string { return "timer" }

func (f *Feature) Help() string {
	return "*🍅 Pomodoro Timer:*\n" +
		"• *Study:* \"let's study for 25 minutes\", \"focus for 30 min\", \"pomo 25\"\n" +
		"• *Break:* \"take a 5 minute break\", \"chill for 10 minutes\"\n" +
		"• *Status:* \"time left?\", \"progress check\"\n" +
		"• *Stop:* \"stop timer\", \"done\", \"cancel\""
}

func (f *Feature) CanHandle(text string) bool {
	return containsAny(text, keywords)
}

func (f *Feature) Handle(ctx context.Context, s *dispatch.Session, text string) {
	owner := s.Owner()

	if minutes, ok := matchMinutes(studyPatterns, text); ok {
		f.start(ctx, s, owner, minutes, KindStudy)
		return
	}
	if minutes, ok := matchMinutes(breakPatterns, text); ok {
		f.start(ctx, s, owner, minutes, KindBreak)
		return
	}
	if matchAny(statusPatterns, text) {
		f.status(ctx, s, owner)
		return
	}
	if matchAny(stopPatterns, text) {
		f.stop(ctx, s, owner)
		return
	}

	s.Say(ctx, fmt.Sprintf("I think you want to do something with timers! %s\nTry saying: 'study for 25 minutes' or 'take a 5 minute break'!", f.pers.Emoji()))
}

func (f *Feature) start(ctx context.Context, s *dispatch.Session, owner int64, minutes int, kind Kind) {
	t, err := f.eng.Start(owner, minutes, kind)
	switch {
	case errors.Is(err, ErrAlreadyActive):
		s.Say(ctx, f.pers.ErrorReply(personality.ErrAlreadyActive))
		return
	case errors.Is(err, ErrInvalidDuration):
		s.Say(ctx, f.pers.ErrorReply(personality.ErrDuration))
		return
	case err != nil:
		f.log.Error("timer start", zap.Error(err))
		s.Say(ctx, f.pers.ErrorReply(personality.ErrGeneral))
		return
	}

	f.log.Info("timer started",
		zap.Int64("owner", t.Owner),
		zap.String("kind", string(t.Kind)),
		zap.Int("minutes", t.Minutes))
	s.Say(ctx, f.pers.TimerStarted(t.Minutes, t.Kind == KindStudy))

	// A little cheer, most of the time.
	if f.pers.Roll(0.7) {
		s.Play(ctx, []dispatch.Step{{Delay: time.Second, Text: f.pers.Encouragement()}})
	}
}

func (f *Feature) status(ctx context.Context, s *dispatch.Session, owner int64) {
	_, remaining, err := f.eng.Status(owner)
	if errors.Is(err, ErrNoTimer) {
		s.Say(ctx, f.pers.NoTimer())
		return
	}
	if remaining <= 0 {
		s.Say(ctx, fmt.Sprintf("Perfect timing! %s Your timer just finished!", f.pers.Emoji()))
		return
	}
	s.Say(ctx, f.pers.TimerStatus(formatRemaining(remaining)))
}

func (f *Feature) stop(ctx context.Context, s *dispatch.Session, owner int64) {
	t, err := f.eng.Stop(owner)
	if errors.Is(err, ErrNoTimer) {
		s.Say(ctx, f.pers.NoTimer())
		return
	}
	f.log.Info("timer stopped", zap.Int64("owner", t.Owner), zap.String("kind", string(t.Kind)))
	s.Say(ctx, f.pers.TimerStopped(string(t.Kind)))
}

func (f *Feature) announceCompletion(t Timer) {
	ctx := context.Background()
	f.log.Info("timer completed",
		zap.Int64("owner", t.Owner),
		zap.String("kind", string(t.Kind)),
		zap.Int("minutes", t.Minutes))
	f.sess.Play(ctx, []dispatch.Step{
		{Text: f.pers.TimerCompleted(t.Minutes, t.Kind == KindStudy)},
		{Delay: time.Second, Text: f.pers.Suggestion(t.Kind == KindStudy)},
	})
}

// formatRemaining renders a remaining duration as friendly minutes/seconds.
func formatRemaining(d time.Duration) string {
	total := int(d.Seconds())
	mins, secs := total/60, total%60
	if mins > 0 {
		out := fmt.Sprintf("%d minute%s", mins, plural(mins))
		if secs > 0 {
			out += fmt.Sprintf(" and %d second%s", secs, plural(secs))
		}
		return out
	}
	return fmt.Sprintf("%d second%s", secs, plural(secs))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
