package interval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat reports an interval specification that does not match
// <number><unit> with a known unit suffix.
var ErrFormat = errors.New("interval specification should be NNN[ft|yd|mi|m|km|sec|min|hr]")

// Kind separates distance-denominated targets from time-denominated ones.
type Kind int

const (
	Distance Kind = iota
	Time
)

func (k Kind) String() string {
	if k == Time {
		return "time"
	}
	return "distance"
}

// BaseUnit returns the unit a normalized magnitude of this kind is
// expressed in.
func (k Kind) BaseUnit() string {
	if k == Time {
		return "sec"
	}
	return "m"
}

// Factors are target units per base unit, so a parsed value converts to
// base units as value/factor. E.g. one meter is 0.0006213712 miles, so
// "1mi" normalizes to 1/0.0006213712 = 1609.34 m.
var unitTable = []struct {
	suffix string
	kind   Kind
	factor float64
}{
	{"ft", Distance, 3.28084},
	{"yd", Distance, 1.093613},
	{"mi", Distance, 0.0006213712},
	{"m", Distance, 1.0},
	{"km", Distance, 0.001},
	{"sec", Time, 1.0},
	{"min", Time, 1.0 / 60},
	{"hr", Time, 1.0 / 3600},
}

// Target is a parsed interval specification, normalized to meters for
// distance units and seconds for time units.
type Target struct {
	Value     int
	Unit      string
	Kind      Kind
	Magnitude float64
}

// Parse converts a specification like "100m", "1mi" or "5min" into a
// Target. The unit suffix decides the kind; everything before it must
// be a non-negative integer. Requiring the rest of the string to be all
// digits keeps the overlapping suffixes (m, mi, min, km) unambiguous.
func Parse(spec string) (Target, error) {
	for _, u := range unitTable {
		number, ok := strings.CutSuffix(spec, u.suffix)
		if !ok || !allDigits(number) {
			continue
		}
		value, err := strconv.Atoi(number)
		if err != nil {
			continue
		}
		return Target{
			Value:     value,
			Unit:      u.suffix,
			Kind:      u.kind,
			Magnitude: float64(value) / u.factor,
		}, nil
	}
	return Target{}, fmt.Errorf("%w: %q", ErrFormat, spec)
}

// String restates the target the way reports print it, e.g. "1 mi".
func (t Target) String() string {
	return strconv.Itoa(t.Value) + " " + t.Unit
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
