package datemath_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inbox-planner/pkg/datemath"
)

func TestResolveDue(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		phrase string
		want   time.Time
	}{
		{"by Friday", day(2024, 5, 3)},
		{"Thu", day(2024, 5, 2)},
		{"by fri", day(2024, 5, 3)},
		{"sat down, send by monday", day(2024, 5, 6)},
		{"by Wednesday", day(2024, 5, 1)},
		{"next Wednesday", day(2024, 5, 8)},
		{"within 5 days", day(2024, 5, 6)},
		{"in two weeks", day(2024, 5, 15)},
		{"in the next 3 days", day(2024, 5, 4)},
		{"EOD", day(2024, 5, 1)},
		{"tomorrow EOD", day(2024, 5, 2)},
		{"day after tomorrow", day(2024, 5, 3)},
		{"end of the week", day(2024, 5, 3)},
		{"end of month", day(2024, 5, 31)},
		{"next week", day(2024, 5, 8)},
		{"2024-06-15", day(2024, 6, 15)},
		{"June 3rd", day(2024, 6, 3)},
		{"Jan 10", day(2025, 1, 10)},
		{"3rd of June, 2025", day(2025, 6, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, ok := parser.ResolveDue(tt.phrase, now)
			require.True(t, ok)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestResolveDueUnresolvable(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	for _, phrase := range []string{"", "   ", "whenever you can", "2024-02-30", "soonish", "sat down with the team", "sun is out"} {
		_, ok := parser.ResolveDue(phrase, now)
		assert.False(t, ok, "phrase %q", phrase)
	}
}

func TestResolveDueUsesParserLocation(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	loc := parser.Location()

	// 20:00 UTC is already the next morning in UTC+7.
	now := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	got, ok := parser.ResolveDue("today", now)
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, loc)))
}
