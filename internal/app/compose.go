package app

import (
	"fmt"
	"strings"
	"time"
)

// ComposeMessage builds the human-readable summary for a civil date and its
// resolved events. Pure function: same inputs, same string.
//
// Events are grouped by category, not by origin, so a floating holiday reads
// the same as a catalog one. Up to three sentence fragments are emitted in
// the order holidays, observances, facts.
func ComposeMessage(date time.Time, events []SpecialEvent) string {
	if len(events) == 0 {
		return fmt.Sprintf(
			"Today is %s. While there are no widely recognized holidays or observances, every day is an opportunity to make something special happen!",
			date.Format(LongDateLayout),
		)
	}

	var holidays, observances, facts []string
	for _, event := range events {
		switch event.Category {
		case CategoryPublicHoliday:
			holidays = append(holidays, event.Name)
		case CategoryObservance, CategoryInternationalDay:
			observances = append(observances, event.Name)
		case CategoryHistoricalFact:
			facts = append(facts, "on this day: "+event.Name)
		}
	}

	var fragments []string
	if len(holidays) > 0 {
		fragments = append(fragments, fmt.Sprintf("Today is %s!", strings.Join(holidays, " and ")))
	}
	if len(observances) > 0 {
		joined := strings.Join(observances, ", ")
		if len(holidays) > 0 {
			fragments = append(fragments, fmt.Sprintf("It's also %s.", joined))
		} else {
			fragments = append(fragments, fmt.Sprintf("Today marks %s.", joined))
		}
	}
	if len(facts) > 0 {
		fragments = append(fragments, fmt.Sprintf("Historical note - %s.", strings.Join(facts, " Also, ")))
	}

	return strings.Join(fragments, " ")
}
