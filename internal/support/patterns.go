package support

import (
	"regexp"
	"strings"
)

// Classification tables. Kept as data so they can be unit-tested without
// going through the dispatcher.

var rantPatterns = compile(
	`rant zone`,
	`need to rant`,
	`let me rant`,
	`i need to vent`,
	`need to vent`,
	`vent to you`,
	`listen to me rant`,
	`just listen`,
	`need to get this out`,
	`so frustrated`,
	`this is bullshit`,
	`i hate`,
	`this sucks`,
	`i'?m so angry`,
	`pissed off`,
	`fed up`,
	`can'?t stand`,
	`driving me crazy`,
	`makes me mad`,
)

var endRantPatterns = compile(
	`done ranting`,
	`done venting`,
	`rant over`,
	`end rant`,
	`i feel better now`,
	`thanks for listening`,
	`that'?s all of it`,
	`got it all out`,
)

var checkinPatterns = compile(
	`how are you`,
	`how'?s it going`,
	`check in`,
	`check on me`,
	`how am i doing`,
	`daily check`,
	`mental health check`,
)

var wellnessPatterns = compile(
	`self care`,
	`take care of myself`,
	`wellness tips`,
	`feeling better`,
	`improve mood`,
	`stress relief`,
	`relax`,
	`calm down`,
)

var carePatterns = compile(
	`i need comfort`,
	`comfort me`,
	`i need support`,
	`care about me`,
	`be caring`,
	`need care`,
	`hug me`,
	`make me feel better`,
	`i'?m (sad|depressed|down|upset|hurt|lonely|anxious|stressed)`,
	`feeling (sad|down|upset|hurt|lonely|anxious|stressed|overwhelmed)`,
	`i feel (sad|down|upset|hurt|lonely|anxious|stressed|terrible|awful|bad)`,
	`having a (bad|rough|hard|tough) (day|time)`,
	`i'?m having a hard time`,
	`everything is overwhelming`,
	`i can'?t handle this`,
	`i'?m struggling`,
	`i'?m tired`,
	`i'?m exhausted`,
	`i feel overwhelmed`,
	`too much (work|homework|studying)`,
	`(exams?|tests?) (are|is) stressing me`,
	`deadline pressure`,
	`can'?t focus`,
	`procrastinating`,
	`burnt out`,
	`burned out`,
)

var careKeywords = []string{
	"comfort", "care", "support", "hug", "sad", "down", "upset",
	"stressed", "anxious", "overwhelmed", "tired", "exhausted",
	"struggling", "hard time", "rough day", "lonely", "hurt",
	"feel bad", "feeling bad",
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
