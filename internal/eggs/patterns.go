package eggs

import "regexp"

type modeTrigger struct {
	mode     Mode
	patterns []*regexp.Regexp
}

// Mode activations, checked before the one-shot specials.
var modeTriggers = []modeTrigger{
	{ModeTsundere, compile(`tsundere mode`, `be tsundere`, `act tsundere`, `tsundere time`, `go tsundere`)},
	{ModeAlexa, compile(`alexa mode`, `be alexa`, `business mode`, `professional mode`, `serious mode`)},
	{ModeKawaii, compile(`kawaii overload`, `maximum kawaii`, `ultra kawaii`, `kawaii mode`, `be extra cute`)},
	{ModeCat, compile(`cat mode`, `be a cat`, `meow mode`, `neko mode`)},
	{ModeSleepy, compile(`sleepy mode`, `tired mode`, `bed time`, `getting sleepy`)},
}

type specialKind int

const (
	specialGreeting specialKind = iota
	specialMorningNight
	specialThanks
	specialCompliment
	specialLove
	specialFavorite
	specialJoke
	specialSong
	specialDance
)

type special struct {
	kind    specialKind
	pattern *regexp.Regexp
}

// One-shot special replies, checked in order.
var specials = []special{
	{specialGreeting, regexp.MustCompile(`\b(hi|hello|hey|hiya|yo|ohayo|konnichiwa)\b`)},
	{specialMorningNight, regexp.MustCompile(`\bgood (morning|night)\b`)},
	{specialThanks, regexp.MustCompile(`\bthank you\b`)},
	{specialCompliment, regexp.MustCompile(`\byou'?re (cute|adorable|sweet|awesome|amazing)\b`)},
	{specialLove, regexp.MustCompile(`\bi love you\b`)},
	{specialFavorite, regexp.MustCompile(`\bwhat'?s your favorite\b`)},
	{specialJoke, regexp.MustCompile(`\btell me a joke\b`)},
	{specialSong, regexp.MustCompile(`\bsing\b`)},
	{specialDance, regexp.MustCompile(`\bdance\b`)},
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

func matchMode(text string) (Mode, bool) {
	for _, t := range modeTriggers {
		for _, p := range t.patterns {
			if p.MatchString(text) {
				return t.mode, true
			}
		}
	}
	return ModeNormal, false
}

func matchSpecial(text string) (specialKind, bool) {
	for _, s := range specials {
		if s.pattern.MatchString(text) {
			return s.kind, true
		}
	}
	return 0, false
}
