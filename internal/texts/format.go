package texts

import (
	"fmt"
	"strings"

	"github.com/keshon/toolmaker/internal/hunger"
	"github.com/keshon/toolmaker/internal/state"
)

// Goals formats the goal codes offered when the subject has no plan.
func Goals(codes []string) string {
	var b strings.Builder
	b.WriteString("⚒️ Then here are your goals for today:\n")
	for _, c := range codes {
		fmt.Fprintf(&b, "• `%s`\n", c)
	}
	b.WriteString("\nShow the hunters the way.")
	return b.String()
}

// Produced announces a new tool.
func Produced(number int, tool, material string, milestone bool, bonus float64) string {
	if milestone {
		return fmt.Sprintf("⚡ RITUAL ITEM! (#%d)\n⚒️ Made: %s %s\n✨ Decorated with herringbone ornament and notches\n⏳ +%.0f hours of satiety",
			number, material, strings.ToLower(tool), bonus)
	}
	return fmt.Sprintf("⚒️ Made: %s %s\n⏳ +%.0f hours of satiety", material, strings.ToLower(tool), bonus)
}

// Progress reports the lifetime counter against the goal.
func Progress(total, goal int) string {
	return fmt.Sprintf("📊 Made in total: %d/%d", total, goal)
}

// WeeklyReport lists up to limit most recent entries of the week.
func WeeklyReport(log []state.Tool, limit int) string {
	recent := log
	if len(recent) > limit {
		recent = recent[len(recent)-limit:]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📊 WEEKLY REPORT\nTools made: %d\n\n", len(log))
	for i, t := range recent {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "• %s %s", t.Variant, strings.ToLower(t.Category))
		if t.Milestone {
			b.WriteString(" (ritual)")
		}
	}
	return b.String()
}

// Status renders the supplies report.
func Status(total, goal int, idle float64, mode hunger.Mode, left float64) string {
	var line, face string
	switch mode {
	case hunger.Normal:
		line = fmt.Sprintf("✅ The workshop is running\n⏳ Until the crisis: %.1f h.", left)
		face = "😊"
	case hunger.Warning:
		line = fmt.Sprintf("⚠️ The tools are getting dull\n⏳ Until the riot: %.1f h.", left)
		face = "😟"
	default:
		line = fmt.Sprintf("🔥 RIOT! The hunters have been unarmed for %.1f h.!", left)
		face = "😡"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📊 TOOLMAKER STATUS %s\n\n", face)
	fmt.Fprintf(&b, "⚒️ Tools made: %d/%d\n", total, goal)
	fmt.Fprintf(&b, "⏱️ Idle: %.1f h.\n", idle)
	b.WriteString(line + "\n\n")
	if total >= goal {
		b.WriteString("🟡 Baltic amber received!")
	} else {
		fmt.Fprintf(&b, "🎯 Left until amber: %d", goal-total)
	}
	return b.String()
}
