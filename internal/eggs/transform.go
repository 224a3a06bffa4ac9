package eggs

import "strings"

// Mode is a temporary personality overlay applied to outgoing text.
type Mode string

const (
	ModeNormal   Mode = "normal"
	ModeTsundere Mode = "tsundere"
	ModeAlexa    Mode = "alexa"
	ModeKawaii   Mode = "kawaii"
	ModeCat      Mode = "cat"
	ModeSleepy   Mode = "sleepy"
)

// ModeUses is how many outgoing messages an activated mode lasts.
const ModeUses = 5

var tsundereEndings = []string{" ...b-baka!", " It's not like I care!", " Hmph!", " ...idiot!"}

// Transform rewrites one outgoing line for the given mode. Cosmetic string
// substitutions only, but deterministic for a fixed mode and input: where the
// original flavor calls for a random ending, the pick is keyed off the input.
func Transform(m Mode, text string) string {
	switch m {
	case ModeTsundere:
		out := strings.ReplaceAll(text, "senpai", "b-baka")
		out = strings.ReplaceAll(out, "♡", "")
		return out + tsundereEndings[len(text)%len(tsundereEndings)]
	case ModeAlexa:
		out := strings.ToUpper(text)
		out = strings.ReplaceAll(out, "(◕‿◕)", "")
		out = strings.ReplaceAll(out, "♡", "")
		out = strings.ReplaceAll(out, "~", "")
		return strings.ReplaceAll(out, "!", ".")
	case ModeKawaii:
		return text + " ✧･ﾟ: *✧･ﾟ:* ♡♡♡ Desu desu~!"
	case ModeCat:
		out := strings.ReplaceAll(text, "!", " nya!")
		out = strings.ReplaceAll(out, ".", " nya.")
		return out + " *purr*"
	case ModeSleepy:
		return strings.ReplaceAll(text, "!", "...") + " *yawn*"
	default:
		return text
	}
}
