package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/aldavis0101/gpx-interval/internal/interval"
	"github.com/aldavis0101/gpx-interval/internal/scan"
	"github.com/aldavis0101/gpx-interval/internal/track"
)

// WindowFeature pairs a target with its winning window for export.
type WindowFeature struct {
	Target interval.Target
	Window scan.Window
}

// WriteGeoJSON writes the winning windows as a feature collection, one
// LineString per target, for map visualization.
func WriteGeoJSON(path string, t *track.Table, wins []WindowFeature) error {
	fc := geojson.NewFeatureCollection()
	for _, wf := range wins {
		start := t.Samples[wf.Window.Start]
		end := t.Samples[wf.Window.End]

		line := make(orb.LineString, 0, wf.Window.End-wf.Window.Start+1)
		for i := wf.Window.Start; i <= wf.Window.End; i++ {
			line = append(line, orb.Point{t.Samples[i].Lon, t.Samples[i].Lat})
		}

		f := geojson.NewFeature(line)
		f.Properties["target"] = wf.Target.String()
		f.Properties["kind"] = wf.Target.Kind.String()
		f.Properties["start_index"] = wf.Window.Start
		f.Properties["end_index"] = wf.Window.End
		f.Properties["speed_ms"] = wf.Window.Speed
		f.Properties["time_sec"] = end.ElapsedTime - start.ElapsedTime
		f.Properties["distance_m"] = end.ElapsedDistance - start.ElapsedDistance
		fc.Append(f)
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write GeoJSON file: %w", err)
	}
	return nil
}
