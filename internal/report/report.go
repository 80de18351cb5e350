package report

import (
	"fmt"
	"io"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/ringsaturn/tzf"

	"github.com/aldavis0101/gpx-interval/internal/scan"
	"github.com/aldavis0101/gpx-interval/internal/track"
)

// milesPerMeter is the same conversion the interval unit table uses.
const milesPerMeter = 0.0006213712

const dateLayout = "2006-01-02 15:04:05PM (UTC-0700, MST)"

var (
	finderOnce sync.Once
	finder     tzf.F
)

// Location resolves the IANA time zone at a coordinate so timestamps
// can be shown in the track's local time. Lookup failures fall back to
// the system's local zone. The finder is built once per process.
func Location(lon, lat float64) *time.Location {
	finderOnce.Do(func() {
		f, err := tzf.NewDefaultFinder()
		if err != nil {
			return
		}
		finder = f
	})
	if finder == nil {
		return time.Local
	}

	name := finder.GetTimezoneName(lon, lat)
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// WriteSummary prints the track-level header: local start date and the
// full track's distance and duration.
func WriteSummary(w io.Writer, t *track.Table, loc *time.Location) {
	fmt.Fprintf(w, "date: %s\n", t.Start().In(loc).Format(dateLayout))
	fmt.Fprintf(w, "total distance: %.1f m (%s)\n", t.TotalDistance(), t.Mode)
	fmt.Fprintf(w, "total time: %.1f sec\n", t.TotalTime())
}

// WriteBest prints the winning window block for one target.
func WriteBest(w io.Writer, t *track.Table, win scan.Window, loc *time.Location) {
	start := t.Samples[win.Start]
	end := t.Samples[win.End]
	distance := end.ElapsedDistance - start.ElapsedDistance
	elapsed := end.ElapsedTime - start.ElapsedTime

	fmt.Fprintf(w, "start=%s (T+%s) (index=%d)\n",
		start.Time.In(loc).Format("15:04:05"), formatElapsed(start.ElapsedTime), win.Start)
	fmt.Fprintf(w, "end=%s (T+%s) (index=%d)\n",
		end.Time.In(loc).Format("15:04:05"), formatElapsed(end.ElapsedTime), win.End)
	fmt.Fprintf(w, "time=%.2f sec\n", elapsed)
	fmt.Fprintf(w, "dist=%.1f m (%.3f mi)\n", distance, distance*milesPerMeter)
	fmt.Fprintf(w, "speed=%.2f m/s (%.2f mph)\n", win.Speed, win.Speed*milesPerMeter*3600)
}

// formatElapsed renders seconds since track start as HH:MM:SS. Unlike a
// clock it does not wrap at 24 hours.
func formatElapsed(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s%3600/60, s%60)
}
