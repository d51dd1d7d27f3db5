package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-03-10")
	assert.NoError(t, err)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, 10, date.Day())

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.True(t, date.IsZero())

	_, err = ParseDate("10/03/2025")
	assert.Error(t, err)
}

func TestSameCalendarMonth(t *testing.T) {
	a := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameCalendarMonth(a, b))
	assert.False(t, SameCalendarMonth(a, c))
}
