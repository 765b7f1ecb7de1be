// Package calendar maps raw timestamps and caller-supplied local date
// strings to canonical day keys, and provides the day arithmetic the
// rest of the engine builds on. All "same day" decisions in the system
// go through this package.
package calendar

import (
	"fmt"
	"time"

	"github.com/songbird/backend/internal/contracts"
)

// Resolve returns the canonical day key for an entry. A non-empty
// localDateHint is authoritative over the timestamp: clients report
// their own local "today" and day boundaries must match the user's wall
// clock, not the server's. The timestamp is used only when no hint was
// supplied (batch or offline contexts), interpreted in UTC.
func Resolve(loggedAt time.Time, localDateHint string) (contracts.DayKey, error) {
	if localDateHint != "" {
		if _, err := time.Parse(contracts.DayKeyLayout, localDateHint); err != nil {
			return "", fmt.Errorf("%w: %q", contracts.ErrInvalidDateFormat, localDateHint)
		}
		return contracts.DayKey(localDateHint), nil
	}
	return contracts.DayKey(loggedAt.UTC().Format(contracts.DayKeyLayout)), nil
}

// Today resolves the caller-supplied "today" hint, falling back to the
// given clock reading. Handlers pass the client's hint straight through
// so streak boundaries never depend on the server timezone.
func Today(now time.Time, hint string) (contracts.DayKey, error) {
	return Resolve(now, hint)
}

// Valid reports whether key parses as a day key.
func Valid(key contracts.DayKey) bool {
	_, err := time.Parse(contracts.DayKeyLayout, string(key))
	return err == nil
}

// Prev returns the day before key. Invalid keys return an empty key;
// callers validate at the boundary via Resolve.
func Prev(key contracts.DayKey) contracts.DayKey {
	return shift(key, -1)
}

// Next returns the day after key.
func Next(key contracts.DayKey) contracts.DayKey {
	return shift(key, 1)
}

func shift(key contracts.DayKey, days int) contracts.DayKey {
	t, err := time.Parse(contracts.DayKeyLayout, string(key))
	if err != nil {
		return ""
	}
	return contracts.DayKey(t.AddDate(0, 0, days).Format(contracts.DayKeyLayout))
}

// Year returns the year component of key, or 0 for invalid keys.
func Year(key contracts.DayKey) int {
	t, err := time.Parse(contracts.DayKeyLayout, string(key))
	if err != nil {
		return 0
	}
	return t.Year()
}

// Month returns the month component of key (1–12), or 0 for invalid
// keys.
func Month(key contracts.DayKey) int {
	t, err := time.Parse(contracts.DayKeyLayout, string(key))
	if err != nil {
		return 0
	}
	return int(t.Month())
}

// SeasonOf assigns key to its seasonal bucket by month: Jan–Mar winter,
// Apr–Jun spring, Jul–Sep summer, Oct–Dec fall.
func SeasonOf(key contracts.DayKey) contracts.Season {
	switch m := Month(key); {
	case m >= 1 && m <= 3:
		return contracts.SeasonWinter
	case m >= 4 && m <= 6:
		return contracts.SeasonSpring
	case m >= 7 && m <= 9:
		return contracts.SeasonSummer
	default:
		return contracts.SeasonFall
	}
}
