package eggs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransformTsundere(t *testing.T) {
	out := Transform(ModeTsundere, "Great job senpai! ♡")
	require.Contains(t, out, "b-baka")
	require.NotContains(t, out, "senpai")
	require.NotContains(t, out, "♡")

	var hasEnding bool
	for _, e := range tsundereEndings {
		if strings.HasSuffix(out, e) {
			hasEnding = true
		}
	}
	require.True(t, hasEnding, "expected a tsundere ending, got %q", out)
}

func TestTransformDeterministic(t *testing.T) {
	for _, m := range []Mode{ModeTsundere, ModeAlexa, ModeKawaii, ModeCat, ModeSleepy} {
		in := "You did it! Time for a break~ ♡"
		require.Equal(t, Transform(m, in), Transform(m, in), "mode %s", m)
	}
}

func TestTransformAlexa(t *testing.T) {
	out := Transform(ModeAlexa, "Great work! ♡ Keep going~")
	require.Equal(t, strings.ToUpper(out), out)
	require.NotContains(t, out, "!")
	require.NotContains(t, out, "♡")
	require.NotContains(t, out, "~")
	require.Contains(t, out, "GREAT WORK.")
}

func TestTransformCat(t *testing.T) {
	out := Transform(ModeCat, "Nice work! Keep it up.")
	require.Contains(t, out, "nya!")
	require.Contains(t, out, "nya.")
	require.True(t, strings.HasSuffix(out, "*purr*"))
}

func TestTransformSleepy(t *testing.T) {
	out := Transform(ModeSleepy, "You finished!")
	require.Contains(t, out, "...")
	require.True(t, strings.HasSuffix(out, "*yawn*"))
}

func TestTransformKawaiiAppendsOnly(t *testing.T) {
	in := "Good luck out there."
	out := Transform(ModeKawaii, in)
	require.True(t, strings.HasPrefix(out, in))
	require.Greater(t, len(out), len(in))
}

func TestTransformNormalPassthrough(t *testing.T) {
	require.Equal(t, "hello", Transform(ModeNormal, "hello"))
}
