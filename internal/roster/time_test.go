package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	parsed, err := ParseTimeOfDay("08:30:15")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 8, Minute: 30, Second: 15}, parsed)
	assert.Equal(t, "08:30:15", parsed.String())
}

func TestParseTimeOfDayRejectsBadFormat(t *testing.T) {
	inputs := []string{"", "8:00:00", "08:00", "08-00-00", "ab:cd:ef", "08:00:00 ", "0800:00"}

	for _, input := range inputs {
		_, err := ParseTimeOfDay(input)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", input)
	}
}

func TestParseTimeOfDayRejectsOutOfRange(t *testing.T) {
	inputs := []string{"24:00:00", "12:60:00", "12:00:60", "99:99:99"}

	for _, input := range inputs {
		_, err := ParseTimeOfDay(input)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", input)
	}
}

func TestDurationHours(t *testing.T) {
	start, err := ParseTimeOfDay("08:00:00")
	require.NoError(t, err)
	end, err := ParseTimeOfDay("16:30:00")
	require.NoError(t, err)

	hours, err := DurationHours(start, end)
	require.NoError(t, err)
	assert.Equal(t, 8.5, hours)
}

func TestDurationHoursRejectsNonPositive(t *testing.T) {
	start, _ := ParseTimeOfDay("16:00:00")
	end, _ := ParseTimeOfDay("08:00:00")

	_, err := DurationHours(start, end)
	assert.ErrorIs(t, err, ErrNonPositiveDuration)

	_, err = DurationHours(start, start)
	assert.ErrorIs(t, err, ErrNonPositiveDuration)
}

func TestOverlapsIsSymmetric(t *testing.T) {
	aStart, _ := ParseTimeOfDay("08:00:00")
	aEnd, _ := ParseTimeOfDay("12:00:00")
	bStart, _ := ParseTimeOfDay("11:00:00")
	bEnd, _ := ParseTimeOfDay("15:00:00")

	assert.True(t, Overlaps(aStart, aEnd, bStart, bEnd))
	assert.True(t, Overlaps(bStart, bEnd, aStart, aEnd))
}

func TestOverlapsHalfOpenBoundary(t *testing.T) {
	// 一个班次在 12:00:00 结束，另一个在 12:00:00 开始，不算冲突
	aStart, _ := ParseTimeOfDay("08:00:00")
	aEnd, _ := ParseTimeOfDay("12:00:00")
	bStart, _ := ParseTimeOfDay("12:00:00")
	bEnd, _ := ParseTimeOfDay("16:00:00")

	assert.False(t, Overlaps(aStart, aEnd, bStart, bEnd))
	assert.False(t, Overlaps(bStart, bEnd, aStart, aEnd))
}

func TestOverlapsContainment(t *testing.T) {
	aStart, _ := ParseTimeOfDay("08:00:00")
	aEnd, _ := ParseTimeOfDay("18:00:00")
	bStart, _ := ParseTimeOfDay("10:00:00")
	bEnd, _ := ParseTimeOfDay("11:00:00")

	assert.True(t, Overlaps(aStart, aEnd, bStart, bEnd))
}
