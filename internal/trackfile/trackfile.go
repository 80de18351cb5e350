package trackfile

import (
	"path/filepath"
	"strings"

	"github.com/aldavis0101/gpx-interval/internal/track"
)

// Load reads a track file into raw points, flattening every track and
// segment in file order. Ordering by timestamp is left to the table
// builder. Files ending in .fit are decoded as FIT activities; anything
// else is parsed as GPX.
func Load(path string) ([]track.Point, error) {
	if strings.EqualFold(filepath.Ext(path), ".fit") {
		return loadFIT(path)
	}
	return loadGPX(path)
}
