// Package streak derives consecutive-day streak state from an owner's
// calendar day keys. The computation is a pure projection: it can be
// rerun at any time from the raw entry log and never drifts.
package streak

import (
	"sort"

	"github.com/songbird/backend/internal/contracts"
	"github.com/songbird/backend/internal/engine/calendar"
)

// Compute walks the owner's distinct day keys backward from today and
// returns the current streak state.
//
// The anchor is today when an entry exists for it, otherwise yesterday:
// a user who simply hasn't logged yet today keeps their streak. From
// the anchor the count extends while each preceding key is exactly one
// day earlier than the last counted key, stopping at the first gap.
//
// Backdating a past day never repairs a broken streak. Only the
// contiguous run ending at the anchor counts; an entry inserted into
// the middle of an already-broken run stays visible in history but
// invisible here. This is a deliberate anti-gaming rule.
//
// Empty input is a valid terminal state: {0, "", 0}, not an error.
func Compute(dates []contracts.DayKey, today contracts.DayKey) contracts.StreakState {
	days := distinctDescending(dates)

	state := contracts.StreakState{
		LongestStreak: longestRun(days),
	}
	if len(days) == 0 {
		return state
	}

	anchor := today
	if !contains(days, anchor) {
		anchor = calendar.Prev(today)
		if !contains(days, anchor) {
			// Most recent entry is older than yesterday: broken.
			return state
		}
	}

	state.AnchorDate = anchor
	state.CurrentStreak = 1

	expect := calendar.Prev(anchor)
	for _, d := range days {
		if d >= anchor {
			continue
		}
		if d != expect {
			break
		}
		state.CurrentStreak++
		expect = calendar.Prev(d)
	}

	return state
}

// Longest returns the longest consecutive run anywhere in the history,
// alive or not. Used by the yearly summary.
func Longest(dates []contracts.DayKey) int {
	return longestRun(distinctDescending(dates))
}

// longestRun expects distinct keys in descending order.
func longestRun(days []contracts.DayKey) int {
	longest := 0
	run := 0
	var prev contracts.DayKey

	for _, d := range days {
		if run == 0 || calendar.Prev(prev) != d {
			run = 1
		} else {
			run++
		}
		if run > longest {
			longest = run
		}
		prev = d
	}

	return longest
}

// distinctDescending dedups and sorts defensively. Callers are supposed
// to hand over sorted distinct keys already, but the walk is cheap and
// a mis-sorted snapshot would silently zero a streak.
func distinctDescending(dates []contracts.DayKey) []contracts.DayKey {
	seen := make(map[contracts.DayKey]struct{}, len(dates))
	out := make([]contracts.DayKey, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

func contains(sortedDesc []contracts.DayKey, key contracts.DayKey) bool {
	i := sort.Search(len(sortedDesc), func(i int) bool { return sortedDesc[i] <= key })
	return i < len(sortedDesc) && sortedDesc[i] == key
}
