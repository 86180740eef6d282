// Package progression projects completed task XP onto a level and a
// progress bar. Every function here is pure: the same completed XP always
// yields the same State, regardless of item order.
package progression

import (
	"math"
	"math/rand/v2"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/task"
)

const (
	baseXP     int64 = 100
	xpPerLevel int64 = 50

	// MinRewardXP and MaxRewardXP bound the XP rolled for a new task (inclusive).
	MinRewardXP int64 = 5
	MaxRewardXP int64 = 24
)

// State is the derived level projection of a set of tasks. It is never
// persisted; recompute it from the task list after every change.
type State struct {
	TotalXP         int64
	Level           int64
	ProgressPercent float64
}

// Initial is the State of a user with no completed work.
var Initial = State{TotalXP: 0, Level: 1, ProgressPercent: 0}

// RequiredXP returns the XP needed to advance from level to level+1.
func RequiredXP(level int64) int64 {
	return baseXP + level*xpPerLevel
}

// Compute derives the State from items. Only completed items contribute.
// Negative XP counts as zero and the total saturates at math.MaxInt64.
func Compute(items []task.Task) State {
	return FromTotal(completedXP(items))
}

func completedXP(items []task.Task) int64 {
	var total int64
	for i := range items {
		if !items[i].Completed || items[i].XP <= 0 {
			continue
		}
		if total > math.MaxInt64-items[i].XP {
			total = math.MaxInt64
			continue
		}
		total += items[i].XP
	}
	return total
}

// FromTotal derives the State for a known total XP. The level comes from the
// closed form of the threshold sum, so the cost does not grow with the total.
func FromTotal(total int64) State {
	total = max(total, 0)
	level := levelFor(uint64(total))
	remaining := total - int64(xpBefore(level))

	return State{
		TotalXP:         total,
		Level:           level,
		ProgressPercent: float64(remaining) / float64(RequiredXP(level)) * 100,
	}
}

// XPToNextLevel returns how much more XP s needs to reach the next level.
func XPToNextLevel(s State) int64 {
	level := max(s.Level, 1)
	return RequiredXP(level) - (s.TotalXP - int64(xpBefore(level)))
}

// xpBefore is the XP spent on levels 1 through level-1:
// base*(level-1) + perLevel*(level-1)*level/2. Unsigned arithmetic keeps it
// exact for every level an int64 total can reach.
func xpBefore(level int64) uint64 {
	l := uint64(level)
	return uint64(baseXP)*(l-1) + uint64(xpPerLevel)*((l-1)*l/2)
}

// levelFor returns the highest level whose xpBefore does not exceed total.
// The quadratic root gives a float estimate; the loops correct rounding.
func levelFor(total uint64) int64 {
	a := float64(xpPerLevel) / 2
	b := float64(baseXP) - a
	c := float64(baseXP) + float64(total)
	level := int64((math.Sqrt(b*b+4*a*c) - b) / (2 * a))
	level = max(level, 1)

	for level > 1 && xpBefore(level) > total {
		level--
	}
	for xpBefore(level+1) <= total {
		level++
	}
	return level
}

// LeveledUp reports whether after sits on a higher level than before.
func LeveledUp(before, after State) bool {
	return after.Level > before.Level
}

// RollXP picks the reward for a newly created task, uniform in
// [MinRewardXP, MaxRewardXP]. A nil r uses the global source.
func RollXP(r *rand.Rand) int64 {
	n := MaxRewardXP - MinRewardXP + 1
	if r == nil {
		return MinRewardXP + rand.Int64N(n)
	}
	return MinRewardXP + r.Int64N(n)
}
