package trackfile

import (
	"fmt"

	gogpx "github.com/tkrajina/gpxgo/gpx"

	"github.com/aldavis0101/gpx-interval/internal/track"
)

func loadGPX(path string) ([]track.Point, error) {
	parsed, err := gogpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	var points []track.Point
	for _, trk := range parsed.Tracks {
		for _, segment := range trk.Segments {
			for _, pt := range segment.Points {
				p := track.Point{
					Lon:  pt.GetLongitude(),
					Lat:  pt.GetLatitude(),
					Time: pt.Timestamp,
				}
				if ele := pt.GetElevation(); ele.NotNull() {
					val := ele.Value()
					p.Altitude = &val
				}
				points = append(points, p)
			}
		}
	}
	return points, nil
}
