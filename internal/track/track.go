package track

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ErrEmptyTrack reports an input that produced no track points.
var ErrEmptyTrack = errors.New("empty track")

// DistanceMode selects whether altitude contributes to point distances.
type DistanceMode int

const (
	// Mode3D folds altitude changes into point distances.
	Mode3D DistanceMode = iota
	// Mode2D uses horizontal distance only, ignoring altitude.
	Mode2D
)

func (m DistanceMode) String() string {
	if m == Mode2D {
		return "2d"
	}
	return "3d"
}

// Point is one recorded GPS fix as read from the input file.
type Point struct {
	Lon      float64
	Lat      float64
	Altitude *float64 // nil when the source carries no elevation
	Time     time.Time
}

// Sample is one row of the built table: a recorded fix plus the derived
// cumulative series the scanner runs on.
type Sample struct {
	Lon             float64
	Lat             float64
	Altitude        float64
	Time            time.Time
	ElapsedTime     float64 // seconds since the first sample
	PointDistance   float64 // meters from the previous sample
	ElapsedDistance float64 // meters from the first sample
}

// Table is the ordered sample series built from one track. It is built
// once per file and read-only afterward; scans over different targets
// share it freely.
type Table struct {
	Samples []Sample
	Mode    DistanceMode
}

// Build sorts the points by timestamp, fills missing altitudes from
// their neighbors and derives the cumulative time and distance series.
// Both series are non-decreasing, which the scanner depends on. The
// input slice is left untouched.
func Build(points []Point, mode DistanceMode) (*Table, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTrack
	}

	ordered := make([]Point, len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Time.Before(ordered[j].Time)
	})

	altitudes := fillAltitudes(ordered)

	start := ordered[0].Time
	samples := make([]Sample, len(ordered))
	for i, p := range ordered {
		s := Sample{
			Lon:         p.Lon,
			Lat:         p.Lat,
			Altitude:    altitudes[i],
			Time:        p.Time,
			ElapsedTime: p.Time.Sub(start).Seconds(),
		}
		if i > 0 {
			prev := samples[i-1]
			s.PointDistance = pointDistance(prev, s, mode)
			s.ElapsedDistance = prev.ElapsedDistance + s.PointDistance
		}
		samples[i] = s
	}

	return &Table{Samples: samples, Mode: mode}, nil
}

// Len returns the number of samples.
func (t *Table) Len() int { return len(t.Samples) }

// Start returns the timestamp of the first sample.
func (t *Table) Start() time.Time { return t.Samples[0].Time }

// TotalTime returns the full track duration in seconds.
func (t *Table) TotalTime() float64 { return t.Samples[len(t.Samples)-1].ElapsedTime }

// TotalDistance returns the full track length in meters.
func (t *Table) TotalDistance() float64 { return t.Samples[len(t.Samples)-1].ElapsedDistance }

// pointDistance returns the straight-line distance between consecutive
// samples: the horizontal geodesic distance, combined with the altitude
// change in 3D mode.
func pointDistance(prev, cur Sample, mode DistanceMode) float64 {
	horizontal := geo.Distance(
		orb.Point{prev.Lon, prev.Lat},
		orb.Point{cur.Lon, cur.Lat},
	)
	if mode == Mode2D {
		return horizontal
	}
	climb := cur.Altitude - prev.Altitude
	return math.Sqrt(horizontal*horizontal + climb*climb)
}

// fillAltitudes carries the nearest recorded elevation forward, and
// backward over a leading run without one. A track with no elevation at
// all is treated as flat.
func fillAltitudes(points []Point) []float64 {
	altitudes := make([]float64, len(points))

	first := -1
	for i, p := range points {
		if p.Altitude != nil {
			first = i
			break
		}
	}
	if first < 0 {
		return altitudes
	}

	value := *points[first].Altitude
	for i := 0; i < first; i++ {
		altitudes[i] = value
	}
	for i := first; i < len(points); i++ {
		if points[i].Altitude != nil {
			value = *points[i].Altitude
		}
		altitudes[i] = value
	}
	return altitudes
}
