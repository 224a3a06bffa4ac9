package timer

import (
	"regexp"
	"strconv"
	"strings"
)

// Natural-language pattern tables, kept as data so they can be unit-tested
// independently of dispatch order. The study and break tables capture the
// minute count in group 1.

var studyPatterns = compile(
	`let'?s study for (\d+) minutes?`,
	`study for (\d+) minutes?`,
	`study (\d+) minutes?`,
	`study (\d+) min`,
	`study (\d+)m`,
	`(\d+) min study`,
	`(\d+)m study`,
	`focus for (\d+) minutes?`,
	`focus (\d+) minutes?`,
	`work for (\d+) minutes?`,
	`pomo (\d+)`,
	`pomodoro (\d+)`,
	`timer for (\d+)`,
	`(\d+) minute timer`,
	`start timer for (\d+)`,
	`(\d+) minute study`,
	`grind for (\d+)`,
	`i want to study for (\d+)`,
	`gonna study for (\d+)`,
	`studying for (\d+)`,
)

var breakPatterns = compile(
	`let'?s take a (\d+) minute break`,
	`break for (\d+) minutes?`,
	`(\d+) minute break`,
	`break (\d+) minutes?`,
	`break (\d+) min`,
	`break (\d+)m`,
	`(\d+) min break`,
	`(\d+)m break`,
	`chill for (\d+) minutes?`,
	`rest for (\d+) minutes?`,
	`relax for (\d+) minutes?`,
	`i need a (\d+) minute break`,
	`take a (\d+) minute break`,
)

var statusPatterns = compile(
	`time left`,
	`time remaining`,
	`how much left`,
	`how long left`,
	`status`,
	`progress`,
	`timer status`,
	`check timer`,
	`how much time`,
	`how long until`,
	`when will i be done`,
)

var stopPatterns = compile(
	`stop`,
	`cancel`,
	`end`,
	`done`,
	`finished`,
	`quit`,
	`abort`,
	`halt`,
	`i'?m done`,
	`that'?s enough`,
)

var keywords = []string{
	"study", "focus", "work", "timer", "pomodoro", "pomo", "break",
	"rest", "chill", "relax", "status", "progress", "stop", "done",
	"finished", "cancel", "time", "minutes", "min", "grind",
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// matchMinutes returns the first pattern's captured minute count.
func matchMinutes(patterns []*regexp.Regexp, text string) (int, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return n, true
		}
	}
	return 0, false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
