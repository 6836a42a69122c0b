package core

import "time"

// NanosPerSecond is the number of nanoseconds in one second.
const NanosPerSecond int64 = 1_000_000_000

// gpsUTCOffset is GPS minus UTC. It has been 18 s since 2017-01-01; earlier
// epochs are off by at most that many seconds, which only matters for the
// sidereal angle.
const gpsUTCOffset = 18 * time.Second

var gpsEpoch = time.Date(1980, time.January, 6, 0, 0, 0, 0, time.UTC)

// Seconds converts integer nanoseconds to seconds.
func Seconds(ns int64) float64 {
	return float64(ns) / float64(NanosPerSecond)
}

// Nanos converts seconds to integer nanoseconds, truncating toward zero.
func Nanos(sec float64) int64 {
	return int64(sec * float64(NanosPerSecond))
}

// GPSNanos joins a GPS seconds/nanoseconds pair.
func GPSNanos(sec, nsec int64) int64 {
	return sec*NanosPerSecond + nsec
}

// SplitGPS splits GPS nanoseconds into whole seconds and the nanosecond
// remainder, truncating toward zero like the integer division it uses.
func SplitGPS(ns int64) (sec, nsec int64) {
	sec = ns / NanosPerSecond
	return sec, ns - sec*NanosPerSecond
}

// GPSToUTC converts GPS nanoseconds to a UTC wall-clock time.
func GPSToUTC(ns int64) time.Time {
	return gpsEpoch.Add(time.Duration(ns) - gpsUTCOffset)
}
