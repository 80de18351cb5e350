package scan

import (
	"errors"

	"github.com/aldavis0101/gpx-interval/internal/interval"
	"github.com/aldavis0101/gpx-interval/internal/track"
)

// ErrTrackTooShort reports a track whose total span is below the
// target, so no window can qualify.
var ErrTrackTooShort = errors.New("no intervals found (track too short)")

// ErrNoWindow reports a scan that finished without a qualifying window.
// On a track that passed the length pre-check this indicates a bug in
// the table builder or the scanner, not a property of the track.
var ErrNoWindow = errors.New("no interval found")

// Window is the result of one scan: the winning interval's sample
// indices and its average speed in m/s.
type Window struct {
	Start int
	End   int
	Speed float64
}

// Best returns the highest-average-speed window [i, j] whose span meets
// or exceeds the target, considering for each start index only the
// earliest qualifying end index. Both cumulative series are
// non-decreasing, so once j qualifies for some i it also covers every
// later start; the frontier never retreats and the scan stays linear.
func Best(t *track.Table, target interval.Target) (Window, error) {
	n := t.Len()
	if n < 2 {
		return Window{}, ErrNoWindow
	}
	if span(t, target, 0, n-1) < target.Magnitude {
		return Window{}, ErrTrackTooShort
	}

	best := Window{Start: -1}
	j := 1
	for i := 0; i <= n-2; i++ {
		if j < i+1 {
			j = i + 1
		}
		for j < n {
			if span(t, target, i, j) < target.Magnitude {
				j++
				continue
			}
			elapsed := t.Samples[j].ElapsedTime - t.Samples[i].ElapsedTime
			if elapsed > 0 {
				distance := t.Samples[j].ElapsedDistance - t.Samples[i].ElapsedDistance
				speed := distance / elapsed
				if best.Start < 0 || speed > best.Speed {
					best = Window{Start: i, End: j, Speed: speed}
				}
			}
			// Leave j where it is: [i+1, j] may be the next minimal
			// qualifying window.
			break
		}
	}

	if best.Start < 0 {
		return Window{}, ErrNoWindow
	}
	return best, nil
}

// span measures the window [i, j] in the target's kind.
func span(t *track.Table, target interval.Target, i, j int) float64 {
	if target.Kind == interval.Time {
		return t.Samples[j].ElapsedTime - t.Samples[i].ElapsedTime
	}
	return t.Samples[j].ElapsedDistance - t.Samples[i].ElapsedDistance
}
