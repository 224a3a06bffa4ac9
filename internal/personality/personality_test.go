package personality

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newSeeded() *Responder {
	return New(rand.New(rand.NewSource(7)))
}

func TestPickStaysInBank(t *testing.T) {
	r := newSeeded()
	bank := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		require.Contains(t, bank, r.Pick(bank))
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	r := newSeeded()
	bank := []string{"one", "two", "three", "four", "five"}
	got := r.Sample(bank, 3)
	require.Len(t, got, 3)
	seen := map[string]bool{}
	for _, s := range got {
		require.Contains(t, bank, s)
		require.False(t, seen[s], "sampled %q twice", s)
		seen[s] = true
	}
}

func TestSampleClampsToBankSize(t *testing.T) {
	r := newSeeded()
	got := r.Sample([]string{"x", "y"}, 10)
	require.Len(t, got, 2)
}

func TestTemplatesRenderWithoutVerbLeftovers(t *testing.T) {
	r := newSeeded()
	out := []string{
		r.Greeting(),
		r.Casual(),
		r.Encouragement(),
		r.Unauthorized(),
		r.ErrorReply(ErrDuration),
		r.ErrorReply(ErrAlreadyActive),
		r.ErrorReply(ErrGeneral),
		r.TimerStarted(25, true),
		r.TimerStarted(5, false),
		r.TimerCompleted(25, true),
		r.TimerStatus("3 minutes"),
		r.TimerStopped("study"),
		r.NoTimer(),
		r.Suggestion(true),
		r.Suggestion(false),
	}
	for _, s := range out {
		require.NotEmpty(t, s)
		require.NotContains(t, s, "%s")
		require.NotContains(t, s, "%d")
		require.NotContains(t, s, "%!")
	}
}

func TestTimerStartedMentionsDuration(t *testing.T) {
	r := newSeeded()
	for i := 0; i < 10; i++ {
		require.Contains(t, r.TimerStarted(25, true), "25")
	}
}

func TestWeatherEmojiPools(t *testing.T) {
	r := newSeeded()
	require.Contains(t, coldWeatherEmojis, r.WeatherEmoji(30))
	require.Contains(t, warmWeatherEmojis, r.WeatherEmoji(90))
	require.Contains(t, moodEmojis, r.WeatherEmoji(60))
}

func TestRollProbabilityBounds(t *testing.T) {
	r := newSeeded()
	require.False(t, r.Roll(0))
	require.True(t, r.Roll(1))
	hits := 0
	for i := 0; i < 2000; i++ {
		if r.Roll(0.05) {
			hits++
		}
	}
	// Loose bounds; the point is that 5% is neither never nor always.
	require.Greater(t, hits, 20)
	require.Less(t, hits, 400)
}

func TestUnauthorizedIsFixedShape(t *testing.T) {
	r := newSeeded()
	require.True(t, strings.HasPrefix(r.Unauthorized(), "Eh? "))
	require.Contains(t, r.Unauthorized(), "senpai")
}
