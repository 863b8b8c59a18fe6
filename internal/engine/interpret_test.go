package engine

import "testing"

func TestPlanAnswer(t *testing.T) {
	tests := []struct {
		text    string
		yes, ok bool
	}{
		{"Есть", true, true},
		{"да, конечно", true, true},
		{"YES", true, true},
		{"нет", false, true},
		{"No plans today", false, true},
		{"не знаю", false, true},
		{"maybe", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		yes, ok := PlanAnswer(tt.text)
		if yes != tt.yes || ok != tt.ok {
			t.Errorf("PlanAnswer(%q) = %v, %v; want %v, %v", tt.text, yes, ok, tt.yes, tt.ok)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"Сделал!", IntentDone},
		{"сделала наконечник", IntentDone},
		{"Done", IntentDone},
		{"попробовал", IntentTried},
		{"пытался весь вечер", IntentTried},
		{"I TRIED", IntentTried},
		{"всё плохо", IntentPenalty},
		{"неудачный день", IntentPenalty},
		{"failed again", IntentPenalty},
		{"hello", IntentNone},
	}
	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIntentString(t *testing.T) {
	for intent, want := range map[Intent]string{
		IntentNone:    "none",
		IntentDone:    "done",
		IntentTried:   "tried",
		IntentPenalty: "penalty",
	} {
		if got := intent.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", intent, got, want)
		}
	}
}
