package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func ymd(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtractDatesGrammars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"iso year first", "packed on 2023-01-15 ok", ymd(2023, time.January, 15)},
		{"day first numeric", "use by 15-01-2023", ymd(2023, time.January, 15)},
		{"day month-name year", "Mfg Date 15 Jan 2023", ymd(2023, time.January, 15)},
		{"month-name day comma year", "Jan 15, 2023", ymd(2023, time.January, 15)},
		{"month-name glued to year", "exp Jan2023", ymd(2023, time.January, 1)},
		{"full month name", "15 January 2023", ymd(2023, time.January, 15)},
		{"dotted separators", "15.01.2023", ymd(2023, time.January, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDates(tt.input, testNow)
			require.Len(t, got, 1)
			assert.True(t, got[0].Time.Equal(tt.want), "got %v want %v", got[0].Time, tt.want)
		})
	}
}

func TestExtractDatesOrderOfAppearance(t *testing.T) {
	got := ExtractDates("mfg 15 Jan 2023 exp 15 Jan 2025", testNow)
	require.Len(t, got, 2)
	assert.True(t, got[0].Time.Equal(ymd(2023, time.January, 15)))
	assert.True(t, got[1].Time.Equal(ymd(2025, time.January, 15)))
}

func TestExtractDatesRejectsImplausible(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"year below window", "15-01-1850"},
		{"year above window", "15-01-2045"},
		{"tiny year", "0099-01-15"},
		{"zero day", "00-01-2023"},
		{"zero month", "15-00-2023"},
		{"no date at all", "Net Wt 500g"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ExtractDates(tt.input, testNow))
		})
	}
}

func TestAssembleDate(t *testing.T) {
	tests := []struct {
		groups []string
		want   string
		ok     bool
	}{
		{[]string{"15-01-2023"}, "15-01-2023", true},
		{[]string{"Jan", "2023"}, "Jan 2023", true},
		{[]string{"15", "Jan", "2023"}, "15 Jan 2023", true},
		{[]string{"15", "01", "2023", "junk"}, "15-01-2023", true},
		{[]string{}, "", false},
	}
	for _, tt := range tests {
		got, ok := assembleDate(tt.groups)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.want, got)
	}
}
