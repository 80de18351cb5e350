package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldavis0101/gpx-interval/internal/scan"
	"github.com/aldavis0101/gpx-interval/internal/track"
)

var reportStart = time.Date(2023, 7, 15, 16, 30, 0, 0, time.UTC)

func summaryTable() *track.Table {
	return &track.Table{
		Mode: track.Mode3D,
		Samples: []track.Sample{
			{Lon: 2.3522, Lat: 48.8566, Time: reportStart},
			{Lon: 2.3530, Lat: 48.8570, Time: reportStart.Add(290 * time.Second),
				ElapsedTime: 290, ElapsedDistance: 500},
			{Lon: 2.3540, Lat: 48.8575, Time: reportStart.Add(300 * time.Second),
				ElapsedTime: 300, ElapsedDistance: 600},
		},
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, summaryTable(), time.UTC)

	want := "date: 2023-07-15 16:30:00PM (UTC+0000, UTC)\n" +
		"total distance: 600.0 m (3d)\n" +
		"total time: 300.0 sec\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSummary2DTag(t *testing.T) {
	table := summaryTable()
	table.Mode = track.Mode2D

	var buf bytes.Buffer
	WriteSummary(&buf, table, time.UTC)
	assert.Contains(t, buf.String(), "total distance: 600.0 m (2d)\n")
}

func TestWriteBest(t *testing.T) {
	var buf bytes.Buffer
	WriteBest(&buf, summaryTable(), scan.Window{Start: 1, End: 2, Speed: 10}, time.UTC)

	want := "start=16:34:50 (T+00:04:50) (index=1)\n" +
		"end=16:35:00 (T+00:05:00) (index=2)\n" +
		"time=10.00 sec\n" +
		"dist=100.0 m (0.062 mi)\n" +
		"speed=10.00 m/s (22.37 mph)\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteBestLocalTime(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteBest(&buf, summaryTable(), scan.Window{Start: 1, End: 2, Speed: 10}, loc)

	// Paris is UTC+2 in July.
	assert.Contains(t, buf.String(), "start=18:34:50 (T+00:04:50) (index=1)\n")
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00:00", formatElapsed(0))
	assert.Equal(t, "00:00:04", formatElapsed(4.9))
	assert.Equal(t, "01:01:01", formatElapsed(3661))
	// Long tracks keep counting hours instead of wrapping at 24.
	assert.Equal(t, "27:46:40", formatElapsed(100000))
}

func TestLocationResolvesZone(t *testing.T) {
	assert.Equal(t, "Europe/Paris", Location(2.3522, 48.8566).String())
	assert.Equal(t, "America/New_York", Location(-74.0060, 40.7128).String())
}
