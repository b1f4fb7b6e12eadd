package timetable

import (
	"math"
	"time"
)

// SelectUpcoming reduces projected blocks to the single best next or ongoing
// class relative to now, or nil when nothing qualifies.
//
// Each block is scored as dayDiff*1440 + startMinuteOfDay where dayDiff is
// the forward day distance in the convention's cycle. A block that has
// already started but not yet ended today is ongoing and beats every merely
// upcoming block; among simultaneously ongoing blocks the first in projection
// order wins. A block that already ended today is pushed a full week out
// instead of being dropped. Ties between upcoming blocks keep the earlier
// candidate (strict less-than). Blocks with unknown weekday tokens are
// skipped.
func (c Convention) SelectUpcoming(blocks []ClassBlock, now time.Time) *UpcomingClass {
	curIdx := c.DayIndex(dayTokens[now.Weekday()])
	nowMin := now.Hour()*60 + now.Minute()

	var best *UpcomingClass
	bestScore := math.MaxInt

	for i := range blocks {
		block := blocks[i]
		blockIdx := c.DayIndex(block.Day)
		if blockIdx < 0 {
			continue
		}

		dayDiff := (blockIdx - curIdx + 7) % 7
		startMin := block.StartHour*60 + block.StartMinute

		if dayDiff == 0 && startMin <= nowMin {
			endMin := block.EndHour*60 + block.EndMinute
			if endMin > nowMin {
				if best == nil || bestScore > 0 {
					best = &UpcomingClass{ClassBlock: block, Ongoing: true}
					bestScore = -1
				}
				continue
			}
			// Finished earlier today: next occurrence is a week away.
			dayDiff = 7
		}

		score := dayDiff*1440 + startMin
		if score < bestScore {
			bestScore = score
			best = &UpcomingClass{ClassBlock: block}
		}
	}

	return best
}
