package base

import (
	"strconv"
	"time"
)

// BlockHeight counts blocks in a chain.
type BlockHeight uint64

func (h BlockHeight) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// Timestamp is a point in time in microseconds since the Unix epoch.
type Timestamp uint64

// TimestampFromMicros wraps a raw microsecond count.
func TimestampFromMicros(micros uint64) Timestamp {
	return Timestamp(micros)
}

// TimestampFromTime converts t, clamping instants before the epoch to zero.
func TimestampFromTime(t time.Time) Timestamp {
	us := t.UnixMicro()
	if us < 0 {
		return 0
	}
	return Timestamp(us)
}

// Micros returns the raw microsecond count.
func (t Timestamp) Micros() uint64 {
	return uint64(t)
}

// Time returns the timestamp as a UTC time.Time.
func (t Timestamp) Time() time.Time {
	return time.UnixMicro(int64(t)).UTC()
}

func (t Timestamp) String() string {
	return t.Time().Format(time.RFC3339Nano)
}

// TimeDelta is a non-negative duration in microseconds.
type TimeDelta uint64

// TimeDeltaFromMicros wraps a raw microsecond count.
func TimeDeltaFromMicros(micros uint64) TimeDelta {
	return TimeDelta(micros)
}

// TimeDeltaFromDuration converts d, clamping negative durations to zero.
func TimeDeltaFromDuration(d time.Duration) TimeDelta {
	if d < 0 {
		return 0
	}
	return TimeDelta(d.Microseconds())
}

// Micros returns the raw microsecond count.
func (d TimeDelta) Micros() uint64 {
	return uint64(d)
}

// Duration returns the delta as a time.Duration.
func (d TimeDelta) Duration() time.Duration {
	return time.Duration(d) * time.Microsecond
}

func (d TimeDelta) String() string {
	return d.Duration().String()
}
