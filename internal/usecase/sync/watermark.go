package sync

import "time"

// The PMS filters "modified since" against timestamps rendered in its own
// reporting timezone, which is a deployment fact supplied via configuration
// rather than a constant. These helpers keep the conversion pure.

const watermarkLayout = "2006-01-02 15:04:05"

// RemoteZone builds the fixed zone the PMS reports timestamps in.
func RemoteZone(offsetSeconds int) *time.Location {
	return time.FixedZone("pms", offsetSeconds)
}

// FormatInRemoteTZ renders an instant the way the PMS expects filter values.
func FormatInRemoteTZ(t time.Time, offsetSeconds int) string {
	return t.In(RemoteZone(offsetSeconds)).Format(watermarkLayout)
}

// ComputeWatermark returns the "modified since" boundary for an incremental
// pull. With a prior successful run the boundary is that run's completion
// minus a skew allowance for clock drift between us and the remote. Without
// one, the boundary is the start of the current day in the remote timezone,
// a bounded default that avoids an unbounded first pull.
func ComputeWatermark(lastSuccess *time.Time, now time.Time, skew time.Duration, offsetSeconds int) time.Time {
	if lastSuccess != nil {
		return lastSuccess.Add(-skew)
	}
	local := now.In(RemoteZone(offsetSeconds))
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
