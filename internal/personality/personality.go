// Package personality holds the emoji pools and phrase banks every other
// feature draws from. Selection is uniform-random with replacement; the rand
// source is injected so tests can seed it.
package personality

import (
	"fmt"
	"math/rand"
	"sync"
)

// Responder picks flavored text fragments. Safe for concurrent use; the timer
// completion callback and the update loop both reach it.
type Responder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(rng *rand.Rand) *Responder {
	return &Responder{rng: rng}
}

// Pick returns a uniform-random element of bank.
func (r *Responder) Pick(bank []string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return bank[r.rng.Intn(len(bank))]
}

// Sample returns n distinct elements of bank in random order. n is clamped to
// len(bank).
func (r *Responder) Sample(bank []string, n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > len(bank) {
		n = len(bank)
	}
	idx := r.rng.Perm(len(bank))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = bank[j]
	}
	return out
}

// Roll reports true with probability p.
func (r *Responder) Roll(p float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64() < p
}

// IntN exposes the locked rand for callers that need a bounded pick.
func (r *Responder) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

func (r *Responder) Emoji() string { return r.Pick(moodEmojis) }
func (r *Responder) Excited() string { return r.Pick(excitementEmojis) }
func (r *Responder) Supportive() string { return r.Pick(supportiveEmojis) }
func (r *Responder) ErrorEmoji() string { return r.Pick(errorEmojis) }

// WeatherEmoji matches the pool to the current temperature (Fahrenheit).
func (r *Responder) WeatherEmoji(tempF float64) string {
	switch {
	case tempF < 50:
		return r.Pick(coldWeatherEmojis)
	case tempF > 75:
		return r.Pick(warmWeatherEmojis)
	default:
		return r.Pick(moodEmojis)
	}
}

func (r *Responder) Greeting() string {
	return fmt.Sprintf(r.Pick(greetings), r.Emoji())
}

func (r *Responder) Casual() string {
	return fmt.Sprintf(r.Pick(casualResponses), r.Emoji())
}

func (r *Responder) Encouragement() string {
	return fmt.Sprintf(r.Pick(encouragements), r.Supportive())
}

// RandomEncouragement is the out-of-nowhere cheer sent in place of a casual
// reply once in a while.
func (r *Responder) RandomEncouragement() string {
	return fmt.Sprintf(r.Pick(surpriseEncouragements), r.Emoji())
}

func (r *Responder) Unauthorized() string {
	return fmt.Sprintf("Eh? %s Sorry, but I only talk to my senpai! You're not them, are you? (◞‸◟)", r.Emoji())
}

// ErrorReply renders a friendly reply for a user-input error kind.
func (r *Responder) ErrorReply(kind ErrorKind) string {
	var bank []string
	switch kind {
	case ErrDuration:
		bank = durationErrors
	case ErrAlreadyActive:
		bank = alreadyActiveErrors
	default:
		bank = generalErrors
	}
	return fmt.Sprintf(r.Pick(bank), r.Emoji())
}

type ErrorKind int

const (
	ErrGeneral ErrorKind = iota
	ErrDuration
	ErrAlreadyActive
)

// TimerStarted renders the confirmation for a freshly started timer.
func (r *Responder) TimerStarted(minutes int, study bool) string {
	bank := breakStarted
	if study {
		bank = studyStarted
	}
	return fmt.Sprintf(r.Pick(bank), r.Excited(), minutes)
}

// TimerCompleted renders the completion announcement.
func (r *Responder) TimerCompleted(minutes int, study bool) string {
	bank := breakCompleted
	if study {
		bank = studyCompleted
	}
	return fmt.Sprintf(r.Pick(bank), r.Excited(), minutes)
}

// TimerStatus renders the remaining-time reply.
func (r *Responder) TimerStatus(timeStr string) string {
	return fmt.Sprintf(r.Pick(timerStatus), timeStr, r.Supportive())
}

func (r *Responder) TimerStopped(kind string) string {
	return fmt.Sprintf(r.Pick(timerStopped), r.Emoji(), kind)
}

func (r *Responder) NoTimer() string {
	return fmt.Sprintf(r.Pick(noTimer), r.Emoji())
}

// Suggestion renders the follow-up after a completed timer: a break after
// study, a study session after a break.
func (r *Responder) Suggestion(afterStudy bool) string {
	bank := studyAfterBreak
	if afterStudy {
		bank = breakAfterStudy
	}
	return fmt.Sprintf(r.Pick(bank), r.Emoji())
}
