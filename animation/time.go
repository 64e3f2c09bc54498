package animation

import (
	"fmt"
	"math"
)

// Time is a point on the animation time line, in seconds since a host chosen epoch.
type Time struct {
	v float64
}

var (
	timeMin = Time{v: -math.MaxFloat64}
	timeMax = Time{v: math.MaxFloat64}
)

// TimeMin is the earliest representable time.
func TimeMin() Time {
	return timeMin
}

// TimeMax is the latest representable time.
func TimeMax() Time {
	return timeMax
}

func TimeFromNumber(n float64) (Time, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Time{}, fmt.Errorf("%w: time %v is not finite", ErrInvalidArgument, n)
	}

	return Time{v: n}, nil
}

func MustTimeFromNumber(n float64) Time {
	t, err := TimeFromNumber(n)
	if err != nil {
		panic(err)
	}

	return t
}

func (t Time) ToNumber() float64 {
	return t.v
}

// Compare returns -1, 0 or 1.
func (t Time) Compare(o Time) int {
	switch {
	case t.v < o.v:
		return -1
	case t.v > o.v:
		return 1
	default:
		return 0
	}
}

func (t Time) Equals(o Time) bool {
	return t.v == o.v
}

func (t Time) LessThan(o Time) bool {
	return t.v < o.v
}

func (t Time) LessEqual(o Time) bool {
	return t.v <= o.v
}

func (t Time) GreaterThan(o Time) bool {
	return t.v > o.v
}

func (t Time) GreaterEqual(o Time) bool {
	return t.v >= o.v
}

func (t Time) String() string {
	return fmt.Sprintf("%g", t.v)
}
