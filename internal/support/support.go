// Package support implements the emotional-support scripts: comfort,
// check-in, wellness tips, and the rant zone. Each classification plays a
// fixed multi-step sequence with pacing delays; the rant zone additionally
// keeps a session flag with a one-shot delayed follow-up.
package support

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/dispatch"
	"github.com/eliasnika/calliope/internal/personality"
)

// RantFollowUpDelay is how long after entering the rant zone the one-shot
// check-in fires, unless the rant is explicitly ended first.
const RantFollowUpDelay = 30 * time.Second

// Scripts owns the banks and builds the paced sequences shared by the
// sub-features.
type Scripts struct {
	pers *personality.Responder
	log  *zap.Logger
}

func NewScripts(pers *personality.Responder, log *zap.Logger) *Scripts {
	return &Scripts{pers: pers, log: log}
}

func (sc *Scripts) line(bank []string) string {
	return fmt.Sprintf(sc.pers.Pick(bank), sc.pers.Emoji())
}

func (sc *Scripts) sadLine(bank []string) string {
	return fmt.Sprintf(sc.pers.Pick(bank), sc.pers.ErrorEmoji())
}

// Features returns the support handlers in their dispatch priority order:
// rant, end-of-rant, check-in, wellness, comfort.
func (sc *Scripts) Features() []dispatch.Feature {
	return []dispatch.Feature{
		&Rant{sc},
		&EndRant{sc},
		&CheckIn{sc},
		&Wellness{sc},
		&Comfort{sc},
	}
}

// Rant opens the rant zone.
type Rant struct{ *Scripts }

func (f *Rant) Name() string { return "rant" }

func (f *Rant) Help() string {
	return "*💝 Care & Comfort:*\n" +
		"• *Comfort:* \"I'm feeling sad\", \"comfort me\", \"having a rough day\"\n" +
		"• *Rant Zone:* \"need to rant\", \"let me vent\", \"I'm so frustrated\"\n" +
		"• *Check-in:* \"how am I doing?\", \"check on me\"\n" +
		"• *Wellness:* \"self care tips\", \"stress relief\", \"help me relax\""
}

func (f *Rant) CanHandle(text string) bool { return matchAny(rantPatterns, text) }

func (f *Rant) Handle(ctx context.Context, s *dispatch.Session, _ string) {
	f.log.Info("rant zone entered")
	s.Play(ctx, []dispatch.Step{
		{Text: f.line(rantOpenings)},
		{Delay: time.Second, Text: f.line(rantEncouragements)},
		{Delay: 2 * time.Second, Text: f.line(rantListening)},
	})
	// One-shot check-in while the rant is still open. Fires unconditionally
	// after the delay unless the rant is explicitly ended.
	s.BeginRant(RantFollowUpDelay, func() {
		s.Say(context.Background(), f.line(rantFollowUps))
	})
}

// EndRant closes the rant zone and cancels the pending follow-up.
type EndRant struct{ *Scripts }

func (f *EndRant) Name() string { return "end-rant" }
func (f *EndRant) Help() string { return "" }

func (f *EndRant) CanHandle(text string) bool { return matchAny(endRantPatterns, text) }

func (f *EndRant) Handle(ctx context.Context, s *dispatch.Session, _ string) {
	if !s.EndRant() {
		s.Say(ctx, f.line(generalCare))
		return
	}
	f.log.Info("rant zone closed")
	s.Play(ctx, []dispatch.Step{
		{Text: f.line(rantClosings)},
		{Delay: time.Second, Text: f.line(rantNextSteps)},
	})
}

// CheckIn asks how the user is doing.
type CheckIn struct{ *Scripts }

func (f *CheckIn) Name() string { return "check-in" }
func (f *CheckIn) Help() string { return "" }

func (f *CheckIn) CanHandle(text string) bool { return matchAny(checkinPatterns, text) }

func (f *CheckIn) Handle(ctx context.Context, s *dispatch.Session, _ string) {
	s.Play(ctx, []dispatch.Step{
		{Text: f.line(checkinOpenings)},
		{Delay: 2 * time.Second, Text: f.line(checkinQuestions)},
	})
}

// Wellness shares a few self-care tips, sampled without replacement.
type Wellness struct{ *Scripts }

func (f *Wellness) Name() string { return "wellness" }
func (f *Wellness) Help() string { return "" }

func (f *Wellness) CanHandle(text string) bool { return matchAny(wellnessPatterns, text) }

func (f *Wellness) Handle(ctx context.Context, s *dispatch.Session, _ string) {
	steps := []dispatch.Step{{Text: f.line(wellnessIntros)}}
	n := 2 + f.pers.IntN(2)
	for _, tip := range f.pers.Sample(wellnessTips, n) {
		steps = append(steps, dispatch.Step{Delay: time.Second, Text: tip})
	}
	steps = append(steps, dispatch.Step{Delay: time.Second, Text: f.line(wellnessClosings)})
	s.Play(ctx, steps)
}

// Comfort handles emotional distress; when only the broad keyword scan hits,
// it falls back to a single general caring line.
type Comfort struct{ *Scripts }

func (f *Comfort) Name() string { return "comfort" }
func (f *Comfort) Help() string { return "" }

func (f *Comfort) CanHandle(text string) bool {
	return matchAny(carePatterns, text) || containsAny(text, careKeywords)
}

func (f *Comfort) Handle(ctx context.Context, s *dispatch.Session, text string) {
	if !matchAny(carePatterns, text) {
		s.Say(ctx, f.line(generalCare))
		return
	}
	s.Play(ctx, []dispatch.Step{
		{Text: f.sadLine(comfortOpenings)},
		{Delay: 2 * time.Second, Text: f.line(comfortFollowUps)},
		{Delay: 3 * time.Second, Text: f.line(comfortOffers)},
	})
}
