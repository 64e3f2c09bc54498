package animation

import "fmt"

// Interval is a range of Time with independently inclusive or exclusive bounds.
// lower == upper is a single point only when both bounds are inclusive.
type Interval struct {
	lower        Time
	upper        Time
	includeLower bool
	includeUpper bool
}

func NewInterval(lower, upper Time, includeLower, includeUpper bool) (Interval, error) {
	if lower.GreaterThan(upper) {
		return Interval{}, fmt.Errorf("%w: interval lower %v > upper %v", ErrInvalidArgument, lower, upper)
	}

	return Interval{
		lower:        lower,
		upper:        upper,
		includeLower: includeLower,
		includeUpper: includeUpper,
	}, nil
}

func MustNewInterval(lower, upper Time, includeLower, includeUpper bool) Interval {
	i, err := NewInterval(lower, upper, includeLower, includeUpper)
	if err != nil {
		panic(err)
	}

	return i
}

// ClosedInterval returns [lower, upper].
func ClosedInterval(lower, upper Time) (Interval, error) {
	return NewInterval(lower, upper, true, true)
}

func UniversalInterval() Interval {
	return Interval{lower: TimeMin(), upper: TimeMax(), includeLower: true, includeUpper: true}
}

func EmptyInterval() Interval {
	return Interval{}
}

func SingleInterval(t Time) Interval {
	return Interval{lower: t, upper: t, includeLower: true, includeUpper: true}
}

func (i Interval) Lower() Time {
	return i.lower
}

func (i Interval) Upper() Time {
	return i.upper
}

func (i Interval) IncludeLower() bool {
	return i.includeLower
}

func (i Interval) IncludeUpper() bool {
	return i.includeUpper
}

func (i Interval) IsEmpty() bool {
	if i.lower.GreaterThan(i.upper) {
		return true
	}

	return i.lower.Equals(i.upper) && !(i.includeLower && i.includeUpper)
}

func (i Interval) IsSingle() bool {
	return i.lower.Equals(i.upper) && i.includeLower && i.includeUpper
}

// IsProper reports whether the interval holds more than one point.
func (i Interval) IsProper() bool {
	return i.lower.LessThan(i.upper)
}

func (i Interval) IsUniversal() bool {
	return i.includeLower && i.includeUpper && i.lower.Equals(TimeMin()) && i.upper.Equals(TimeMax())
}

func (i Interval) IncludesTime(t Time) bool {
	if i.IsEmpty() {
		return false
	}

	if t.LessThan(i.lower) || (t.Equals(i.lower) && !i.includeLower) {
		return false
	}

	if t.GreaterThan(i.upper) || (t.Equals(i.upper) && !i.includeUpper) {
		return false
	}

	return true
}

func (i Interval) Includes(o Interval) bool {
	if o.IsEmpty() {
		return true
	}

	if i.IsEmpty() {
		return false
	}

	if o.lower.LessThan(i.lower) || (o.lower.Equals(i.lower) && o.includeLower && !i.includeLower) {
		return false
	}

	if o.upper.GreaterThan(i.upper) || (o.upper.Equals(i.upper) && o.includeUpper && !i.includeUpper) {
		return false
	}

	return true
}

func (i Interval) HasIntersection(o Interval) bool {
	return !i.GetIntersection(o).IsEmpty()
}

func (i Interval) GetIntersection(o Interval) Interval {
	r := Interval{
		lower:        i.lower,
		upper:        i.upper,
		includeLower: i.includeLower,
		includeUpper: i.includeUpper,
	}

	switch i.lower.Compare(o.lower) {
	case -1:
		r.lower, r.includeLower = o.lower, o.includeLower
	case 0:
		r.includeLower = i.includeLower && o.includeLower
	}

	switch i.upper.Compare(o.upper) {
	case 1:
		r.upper, r.includeUpper = o.upper, o.includeUpper
	case 0:
		r.includeUpper = i.includeUpper && o.includeUpper
	}

	if r.IsEmpty() {
		return EmptyInterval()
	}

	return r
}

// GetPrecedings returns every time strictly before the interval.
func (i Interval) GetPrecedings() Interval {
	if i.IsEmpty() {
		return EmptyInterval()
	}

	r := Interval{lower: TimeMin(), upper: i.lower, includeLower: true, includeUpper: !i.includeLower}
	if r.IsEmpty() {
		return EmptyInterval()
	}

	return r
}

// GetFollowings returns every time strictly after the interval.
func (i Interval) GetFollowings() Interval {
	if i.IsEmpty() {
		return EmptyInterval()
	}

	r := Interval{lower: i.upper, upper: TimeMax(), includeLower: !i.includeUpper, includeUpper: true}
	if r.IsEmpty() {
		return EmptyInterval()
	}

	return r
}

func (i Interval) Equals(o Interval) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return i.IsEmpty() && o.IsEmpty()
	}

	return i == o
}

func (i Interval) String() string {
	if i.IsEmpty() {
		return "{}"
	}

	l, u := "(", ")"
	if i.includeLower {
		l = "["
	}

	if i.includeUpper {
		u = "]"
	}

	return fmt.Sprintf("%s%v, %v%s", l, i.lower, i.upper, u)
}
