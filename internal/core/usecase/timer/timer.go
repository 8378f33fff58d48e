package timer

import (
	"time"

	"github.com/raksitnongbua/office-bot/constants"
)

// Clock is swapped out in tests.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

// Today formats the calendar date of now as seen in loc.
func Today(clock Clock, loc *time.Location) string {
	if clock == nil {
		clock = SystemClock
	}
	if loc == nil {
		loc = time.Local
	}
	return clock().In(loc).Format(constants.DateLayout)
}

// ParseDate validates a YYYY-MM-DD date given on the command line.
func ParseDate(value string) (string, error) {
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return "", err
	}
	return t.Format(constants.DateLayout), nil
}
