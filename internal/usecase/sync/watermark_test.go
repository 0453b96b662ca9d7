//go:build unit

package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const caracasOffset = -4 * 60 * 60

func TestComputeWatermark(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	t.Run("prior success minus skew", func(t *testing.T) {
		last := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		got := ComputeWatermark(&last, now, 15*time.Minute, caracasOffset)
		assert.True(t, got.Equal(time.Date(2026, 3, 10, 11, 45, 0, 0, time.UTC)))
	})

	t.Run("first run floors to remote midnight", func(t *testing.T) {
		got := ComputeWatermark(nil, now, 15*time.Minute, caracasOffset)
		// 18:00 UTC is 14:00 in UTC-4, so the boundary is 00:00 that day.
		assert.Equal(t, "2026-03-10 00:00:00", FormatInRemoteTZ(got, caracasOffset))
	})

	t.Run("first run near UTC midnight stays on remote calendar day", func(t *testing.T) {
		lateUTC := time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC) // still Mar 10 in UTC-4
		got := ComputeWatermark(nil, lateUTC, 0, caracasOffset)
		assert.Equal(t, "2026-03-10 00:00:00", FormatInRemoteTZ(got, caracasOffset))
	})
}

func TestFormatInRemoteTZ(t *testing.T) {
	instant := time.Date(2026, 3, 10, 16, 30, 45, 0, time.UTC)
	assert.Equal(t, "2026-03-10 12:30:45", FormatInRemoteTZ(instant, caracasOffset))
	assert.Equal(t, "2026-03-10 17:30:45", FormatInRemoteTZ(instant, 60*60))
}
