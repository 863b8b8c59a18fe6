// Package arsenal tracks the lifetime production counter, the weekly log and
// the milestone effects of each produced tool.
package arsenal

import (
	"fmt"
	"time"

	"github.com/keshon/toolmaker/internal/clock"
	"github.com/keshon/toolmaker/internal/hunger"
	"github.com/keshon/toolmaker/internal/state"
)

const (
	MilestoneEvery     = 10
	GrandAchievementAt = 52

	ProductionBonusHours = 12.0
	MilestoneBonusHours  = 18.0
	AttemptBonusHours    = 4.0
	PenaltyHours         = 1.0

	RareChance = 0.10
)

// Source is the randomness the draws consume. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Outcome describes one recorded production for the caller to render.
type Outcome struct {
	Number           int
	Tool             Kind
	Material         Kind
	Milestone        bool
	BonusHours       float64
	GrandAchievement bool
}

// Record registers the next production event on s at now.
func Record(s *state.State, now time.Time, rnd Source) Outcome {
	next := s.ProductionTotal + 1
	milestone := next%MilestoneEvery == 0
	tool, material := DrawTool(rnd)

	bonus := ProductionBonusHours
	if milestone {
		bonus = MilestoneBonusHours
	}
	hunger.Replenish(s, now, bonus)
	s.DecayWarningSent = false

	s.ProductionTotal = next
	s.WeeklyLog = append(s.WeeklyLog, state.Tool{
		Date:      clock.DateString(now),
		Category:  tool.Name,
		Variant:   material.Name,
		Milestone: milestone,
	})

	out := Outcome{
		Number:     next,
		Tool:       tool,
		Material:   material,
		Milestone:  milestone,
		BonusHours: bonus,
	}
	if next == GrandAchievementAt && !s.GrandAchievementReached {
		s.GrandAchievementReached = true
		out.GrandAchievement = true
	}
	return out
}

// DrawTool picks a tool and a material uniformly, then independently
// overrides the material with the rare one.
func DrawTool(rnd Source) (tool, material Kind) {
	tool = Tools[rnd.Intn(len(Tools))]
	material = Materials[rnd.Intn(len(Materials))]
	if rnd.Float64() < RareChance {
		material = RareMaterial
	}
	return tool, material
}

// DrawReward rolls 1..100 against the cumulative tier thresholds, then
// picks uniformly inside the tier.
func DrawReward(rnd Source) Reward {
	roll := rnd.Intn(100) + 1
	tier := Legendary
	switch {
	case roll <= commonCeil:
		tier = Common
	case roll <= rareCeil:
		tier = Rare
	}
	texts := rewardCatalog[tier]
	return Reward{Tier: tier, Text: texts[rnd.Intn(len(texts))]}
}

// DrawDailyGoals returns the four goal codes offered to a subject without a
// plan, in random order.
func DrawDailyGoals(rnd Source) []string {
	goals := []string{
		fmt.Sprintf("G%d", rnd.Intn(20)+1),
		fmt.Sprintf("G%d", rnd.Intn(20)+21),
		fmt.Sprintf("P%d", rnd.Intn(20)+1),
		fmt.Sprintf("M%d", rnd.Intn(20)+1),
	}
	for i := len(goals) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		goals[i], goals[j] = goals[j], goals[i]
	}
	return goals
}

// Pick returns a uniformly chosen element of items.
func Pick(rnd Source, items []string) string {
	return items[rnd.Intn(len(items))]
}
