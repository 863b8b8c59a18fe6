package engine

import (
	"strings"

	"golang.org/x/text/cases"
)

// Intent is what a free-text message asks for outside the plan prompt.
type Intent int

const (
	IntentNone Intent = iota
	IntentDone
	IntentTried
	IntentPenalty
)

func (i Intent) String() string {
	switch i {
	case IntentDone:
		return "done"
	case IntentTried:
		return "tried"
	case IntentPenalty:
		return "penalty"
	default:
		return "none"
	}
}

var (
	yesWords     = []string{"есть", "да", "готов", "yes"}
	noWords      = []string{"нет", "нету", "не", "no"}
	doneWords    = []string{"сделал", "готово", "сделала", "done"}
	triedWords   = []string{"попробовал", "старался", "пыт", "tried"}
	penaltyWords = []string{"неудач", "плохо", "failed"}
)

func fold(text string) string {
	return cases.Fold().String(strings.TrimSpace(text))
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// PlanAnswer reads a reply to the daily plan prompt. ok is false when the
// text is neither a yes nor a no. Yes wins when both match.
func PlanAnswer(text string) (yes, ok bool) {
	t := fold(text)
	switch {
	case containsAny(t, yesWords):
		return true, true
	case containsAny(t, noWords):
		return false, true
	default:
		return false, false
	}
}

// Classify maps free text to an operation by substring vocabulary.
func Classify(text string) Intent {
	t := fold(text)
	switch {
	case containsAny(t, doneWords):
		return IntentDone
	case containsAny(t, triedWords):
		return IntentTried
	case containsAny(t, penaltyWords):
		return IntentPenalty
	default:
		return IntentNone
	}
}
