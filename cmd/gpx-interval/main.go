package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aldavis0101/gpx-interval/internal/interval"
	"github.com/aldavis0101/gpx-interval/internal/report"
	"github.com/aldavis0101/gpx-interval/internal/scan"
	"github.com/aldavis0101/gpx-interval/internal/track"
	"github.com/aldavis0101/gpx-interval/internal/trackfile"
)

var defaultIntervals = []string{"100m", "1mi", "5mi"}

// intervalList collects repeated -i/-interval flags, validating each
// specification as it is parsed.
type intervalList []interval.Target

func (l *intervalList) String() string {
	specs := make([]string, len(*l))
	for i, t := range *l {
		specs[i] = fmt.Sprintf("%d%s", t.Value, t.Unit)
	}
	return strings.Join(specs, ",")
}

func (l *intervalList) Set(spec string) error {
	target, err := interval.Parse(spec)
	if err != nil {
		return err
	}
	*l = append(*l, target)
	return nil
}

func main() {
	var intervals intervalList
	var (
		use2D   = flag.Bool("2d", false, "Ignore GPS altitude")
		geoJSON = flag.String("geojson", "", "Write fastest intervals to a GeoJSON file")
		version = flag.Bool("version", false, "Show version information")
	)
	flag.Var(&intervals, "i", "Target interval, e.g. 100m or 5min (repeatable)")
	flag.Var(&intervals, "interval", "Alias for -i")

	flag.Usage = func() {
		fmt.Printf("gpx-interval - Find the fastest intervals in a GPS track\n\n")
		fmt.Printf("usage: gpx-interval [options] /path/to/file.gpx\n\n")
		fmt.Printf("examples:\n")
		fmt.Printf("  gpx-interval track.gpx\n")
		fmt.Printf("  gpx-interval -i 400m -i 1mi track.gpx\n")
		fmt.Printf("  gpx-interval -i 10min -2d ride.fit\n")
		fmt.Printf("  gpx-interval -geojson fastest.geojson \"My Activity.gpx\"\n\n")
		fmt.Printf("options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Println("gpx-interval v1.0.0 - fastest-interval finder for GPS tracks")
		fmt.Println("https://github.com/aldavis0101/gpx-interval")
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if len(intervals) == 0 {
		for _, spec := range defaultIntervals {
			target, err := interval.Parse(spec)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error in default interval %q: %v\n", spec, err)
				os.Exit(1)
			}
			intervals = append(intervals, target)
		}
	}

	mode := track.Mode3D
	if *use2D {
		mode = track.Mode2D
	}

	path := flag.Arg(0)
	points, err := trackfile.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading track file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("parsed file: %s\n", path)
	fmt.Printf("processed %d points\n", len(points))

	table, err := track.Build(points, mode)
	if err != nil {
		if errors.Is(err, track.ErrEmptyTrack) {
			fmt.Println("empty track")
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error building track table: %v\n", err)
		os.Exit(1)
	}

	first := table.Samples[0]
	loc := report.Location(first.Lon, first.Lat)
	report.WriteSummary(os.Stdout, table, loc)

	var exported []report.WindowFeature
	for _, target := range intervals {
		fmt.Printf("\ntarget interval: %s (%.1f %s):\n",
			target, target.Magnitude, target.Kind.BaseUnit())

		win, err := scan.Best(table, target)
		if err != nil {
			if errors.Is(err, scan.ErrTrackTooShort) || errors.Is(err, scan.ErrNoWindow) {
				fmt.Println(err)
				continue
			}
			fmt.Fprintf(os.Stderr, "Error scanning track: %v\n", err)
			os.Exit(1)
		}

		report.WriteBest(os.Stdout, table, win, loc)
		exported = append(exported, report.WindowFeature{Target: target, Window: win})
	}

	if *geoJSON != "" && len(exported) > 0 {
		if err := report.WriteGeoJSON(*geoJSON, table, exported); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing GeoJSON file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nwrote %d interval(s) to %s\n", len(exported), *geoJSON)
	}
}
