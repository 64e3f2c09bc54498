package animation

import (
	"sort"
	"strings"
)

// Invariance is a set of disjoint intervals over which a curve's value is known not to
// change. Callers may ignore it; it only lets them skip re-evaluation.
type Invariance struct {
	intervals []Interval
}

func NewInvariance() *Invariance {
	return &Invariance{}
}

// Write adds interval to the set. Overlapping or touching intervals are merged.
func (inv *Invariance) Write(interval Interval) *Invariance {
	if interval.IsEmpty() {
		return inv
	}

	inv.intervals = append(inv.intervals, interval)
	inv.normalize()

	return inv
}

func (inv *Invariance) normalize() {
	if len(inv.intervals) < 2 {
		return
	}

	sort.SliceStable(inv.intervals, func(i, j int) bool {
		return lowerBefore(inv.intervals[i], inv.intervals[j])
	})

	merged := inv.intervals[:1]

	for _, next := range inv.intervals[1:] {
		cur := &merged[len(merged)-1]

		if !touches(*cur, next) {
			merged = append(merged, next)

			continue
		}

		switch cur.upper.Compare(next.upper) {
		case -1:
			cur.upper, cur.includeUpper = next.upper, next.includeUpper
		case 0:
			cur.includeUpper = cur.includeUpper || next.includeUpper
		}
	}

	inv.intervals = merged
}

func lowerBefore(a, b Interval) bool {
	if c := a.lower.Compare(b.lower); c != 0 {
		return c < 0
	}

	return a.includeLower && !b.includeLower
}

// touches reports whether b, which does not start before a, overlaps or abuts a.
func touches(a, b Interval) bool {
	switch a.upper.Compare(b.lower) {
	case 1:
		return true
	case 0:
		return a.includeUpper || b.includeLower
	default:
		return false
	}
}

// GetNarrowed returns a new Invariance clipped to bound.
func (inv *Invariance) GetNarrowed(bound Interval) *Invariance {
	r := NewInvariance()

	for _, interval := range inv.intervals {
		if x := interval.GetIntersection(bound); !x.IsEmpty() {
			r.intervals = append(r.intervals, x)
		}
	}

	return r
}

// Intersect returns the times covered by both inv and o.
func (inv *Invariance) Intersect(o *Invariance) *Invariance {
	r := NewInvariance()

	if o == nil {
		return r
	}

	for _, a := range inv.intervals {
		for _, b := range o.intervals {
			if x := a.GetIntersection(b); !x.IsEmpty() {
				r.intervals = append(r.intervals, x)
			}
		}
	}

	r.normalize()

	return r
}

func (inv *Invariance) Clone() *Invariance {
	return &Invariance{intervals: inv.Intervals()}
}

func (inv *Invariance) IsEmpty() bool {
	return len(inv.intervals) == 0
}

func (inv *Invariance) Intervals() []Interval {
	return append([]Interval(nil), inv.intervals...)
}

func (inv *Invariance) IncludesTime(t Time) bool {
	_, ok := inv.FindInterval(t)

	return ok
}

// Covers reports whether interval lies entirely within one invariant interval.
func (inv *Invariance) Covers(interval Interval) bool {
	if interval.IsEmpty() {
		return true
	}

	for _, x := range inv.intervals {
		if x.Includes(interval) {
			return true
		}
	}

	return false
}

// FindInterval returns the invariant interval holding t.
func (inv *Invariance) FindInterval(t Time) (Interval, bool) {
	for _, x := range inv.intervals {
		if x.IncludesTime(t) {
			return x, true
		}
	}

	return EmptyInterval(), false
}

func (inv *Invariance) String() string {
	ss := make([]string, 0, len(inv.intervals))
	for _, x := range inv.intervals {
		ss = append(ss, x.String())
	}

	return "{" + strings.Join(ss, " ") + "}"
}
