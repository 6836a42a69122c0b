package detector

import (
	"math"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/cwbudde/algo-cw/internal/core"
)

// EarthRotationRate is the sidereal rotation rate of the Earth in rad/s.
const EarthRotationRate = 7.2921158553e-5

const nanosPerDay = 86400 * 1e9

// GreenwichSiderealAngle returns the Greenwich mean sidereal angle (rad) at
// the given GPS time in nanoseconds, in [0, 2*pi).
func GreenwichSiderealAngle(gpsNanos int64) float64 {
	utc := core.GPSToUTC(gpsNanos)
	year, month, day := utc.Date()
	hour, minute, sec := utc.Clock()

	jd := satellite.JDay(year, int(month), day, hour, minute, sec)
	jd += float64(utc.Nanosecond()) / nanosPerDay

	theta := math.Mod(satellite.ThetaG_JD(jd), 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}
