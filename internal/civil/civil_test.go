package civil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid("2025-10-13"))
	assert.True(t, Valid("2024-02-29"))
	assert.False(t, Valid("2025-02-29"))
	assert.False(t, Valid("2025-13-01"))
	assert.False(t, Valid("25-10-13"))
	assert.False(t, Valid("2025-10-13 "))
	assert.False(t, Valid(""))
}

func TestToday(t *testing.T) {
	// 23:30 UTC on Oct 13 is already Oct 14 in Berlin (CEST, UTC+2).
	now := time.Date(2025, 10, 13, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-10-14", Today(now))

	// 22:30 UTC in winter is 23:30 CET, same day.
	now = time.Date(2025, 12, 1, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-12-01", Today(now))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2025-10-26", AddDays("2025-10-25", 1))
	assert.Equal(t, "2025-03-31", AddDays("2025-03-30", 1))
	assert.Equal(t, "2024-12-31", AddDays("2025-01-01", -1))
	assert.Equal(t, "2024-02-29", AddDays("2024-03-01", -1))
	assert.Equal(t, "", AddDays("nope", 1))
}

func TestMondayOf(t *testing.T) {
	cases := map[string]string{
		"2025-10-13": "2025-10-13", // Monday
		"2025-10-15": "2025-10-13", // Wednesday
		"2025-10-19": "2025-10-13", // Sunday belongs to the preceding Monday
		"2025-10-20": "2025-10-20",
		"2026-01-01": "2025-12-29",
	}
	for in, want := range cases {
		assert.Equal(t, want, MondayOf(in), in)
	}
}

func TestFirstOfMonth(t *testing.T) {
	assert.Equal(t, "2025-10-01", FirstOfMonth("2025-10-13"))
	assert.Equal(t, "2025-10-01", FirstOfMonth("2025-10-01"))
}

func TestBetween(t *testing.T) {
	assert.True(t, Between("2025-10-01", "2025-10-01", "2025-10-07"))
	assert.True(t, Between("2025-10-07", "2025-10-01", "2025-10-07"))
	assert.False(t, Between("2025-10-08", "2025-10-01", "2025-10-07"))
	assert.False(t, Between("2025-09-30", "2025-10-01", "2025-10-07"))
}

func TestInclusiveRange(t *testing.T) {
	start, end, err := InclusiveRange("2025-10-15", 7)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-08", start)
	assert.Equal(t, "2025-10-14", end)

	start, end, err = InclusiveRange("2025-10-15", 30)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-15", start)
	assert.Equal(t, "2025-10-14", end)

	_, _, err = InclusiveRange("2025-10-15", 0)
	assert.Error(t, err)

	_, _, err = InclusiveRange("15.10.2025", 7)
	assert.Error(t, err)
}
