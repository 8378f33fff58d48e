package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayUsesLocation(t *testing.T) {
	// 23:30 UTC is already the next day in Bangkok.
	clock := func() time.Time { return time.Date(2026, 10, 19, 23, 30, 0, 0, time.UTC) }
	bangkok := time.FixedZone("ICT", 7*60*60)

	assert.Equal(t, "2026-10-19", Today(clock, time.UTC))
	assert.Equal(t, "2026-10-20", Today(clock, bangkok))
}

func TestTodayDefaults(t *testing.T) {
	got := Today(nil, nil)
	_, err := time.Parse("2006-01-02", got)
	assert.NoError(t, err)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", got)

	_, err = ParseDate("19/10/2026")
	assert.Error(t, err)
}
