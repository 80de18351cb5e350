package trackfile

import (
	"fmt"
	"math"
	"os"

	"github.com/tormoder/fit"

	"github.com/aldavis0101/gpx-interval/internal/track"
)

// loadFIT keeps the record messages that carry a position fix and a
// real timestamp; anything else (gaps, device events) is skipped.
func loadFIT(path string) ([]track.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FIT file: %w", err)
	}
	defer f.Close()

	decoded, err := fit.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode FIT file: %w", err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("FIT activity file expected: %w", err)
	}

	var points []track.Point
	for _, rec := range activity.Records {
		if rec == nil {
			continue
		}
		lat := rec.PositionLat.Degrees()
		lon := rec.PositionLong.Degrees()
		if math.IsNaN(lat) || math.IsNaN(lon) {
			continue
		}
		if rec.Timestamp.IsZero() || fit.IsBaseTime(rec.Timestamp) {
			continue
		}

		p := track.Point{Lon: lon, Lat: lat, Time: rec.Timestamp}
		if alt := recordAltitude(rec); !math.IsNaN(alt) {
			val := alt
			p.Altitude = &val
		}
		points = append(points, p)
	}
	return points, nil
}

// recordAltitude prefers the enhanced altitude field over the basic
// one; both come back NaN when the device did not record them.
func recordAltitude(rec *fit.RecordMsg) float64 {
	if alt := rec.GetEnhancedAltitudeScaled(); !math.IsNaN(alt) {
		return alt
	}
	return rec.GetAltitudeScaled()
}
