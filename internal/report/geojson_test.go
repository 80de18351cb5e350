package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldavis0101/gpx-interval/internal/interval"
	"github.com/aldavis0101/gpx-interval/internal/scan"
	"github.com/aldavis0101/gpx-interval/internal/track"
)

func TestWriteGeoJSONRoundTrip(t *testing.T) {
	start := time.Date(2023, 7, 15, 9, 0, 0, 0, time.UTC)
	table := &track.Table{
		Mode: track.Mode3D,
		Samples: []track.Sample{
			{Lon: 7.0, Lat: 46.0, Time: start},
			{Lon: 7.001, Lat: 46.001, Time: start.Add(10 * time.Second),
				ElapsedTime: 10, ElapsedDistance: 140},
			{Lon: 7.002, Lat: 46.002, Time: start.Add(20 * time.Second),
				ElapsedTime: 20, ElapsedDistance: 280},
		},
	}

	target, err := interval.Parse("100m")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fastest.geojson")
	err = WriteGeoJSON(path, table, []WindowFeature{
		{Target: target, Window: scan.Window{Start: 0, End: 2, Speed: 14}},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	feat := fc.Features[0]
	line, ok := feat.Geometry.(orb.LineString)
	require.True(t, ok, "geometry should be a LineString")
	require.Len(t, line, 3)
	assert.InDelta(t, 7.0, line[0][0], 1e-9)
	assert.InDelta(t, 46.0, line[0][1], 1e-9)
	assert.InDelta(t, 7.002, line[2][0], 1e-9)

	assert.Equal(t, "100 m", feat.Properties["target"])
	assert.Equal(t, "distance", feat.Properties["kind"])
	assert.InDelta(t, 0, feat.Properties.MustFloat64("start_index"), 1e-9)
	assert.InDelta(t, 2, feat.Properties.MustFloat64("end_index"), 1e-9)
	assert.InDelta(t, 14, feat.Properties.MustFloat64("speed_ms"), 1e-9)
	assert.InDelta(t, 20, feat.Properties.MustFloat64("time_sec"), 1e-9)
	assert.InDelta(t, 280, feat.Properties.MustFloat64("distance_m"), 1e-9)
}

func TestWriteGeoJSONBadPath(t *testing.T) {
	table := &track.Table{Samples: []track.Sample{{Lon: 7, Lat: 46}}}
	err := WriteGeoJSON(filepath.Join(t.TempDir(), "missing", "out.geojson"), table, nil)
	assert.ErrorContains(t, err, "failed to write GeoJSON file")
}
