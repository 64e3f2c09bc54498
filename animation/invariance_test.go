package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvarianceMergeAdjacent(t *testing.T) {
	inv := NewInvariance().
		Write(MustNewInterval(tm(0), tm(1), true, false)).
		Write(MustNewInterval(tm(1), tm(2), true, true))

	is := inv.Intervals()
	assert.Len(t, is, 1)
	assert.True(t, is[0].Equals(MustNewInterval(tm(0), tm(2), true, true)))
}

func TestInvarianceKeepsGapAtOpenPoint(t *testing.T) {
	inv := NewInvariance().
		Write(MustNewInterval(tm(1), tm(2), false, true)).
		Write(MustNewInterval(tm(0), tm(1), true, false))

	is := inv.Intervals()
	assert.Len(t, is, 2)
	assert.True(t, is[0].Equals(MustNewInterval(tm(0), tm(1), true, false)))
	assert.False(t, inv.IncludesTime(tm(1)))
	assert.True(t, inv.IncludesTime(tm(1.5)))
}

func TestInvarianceOverlapAndOrder(t *testing.T) {
	inv := NewInvariance().
		Write(MustNewInterval(tm(10), tm(12), true, true)).
		Write(MustNewInterval(tm(3), tm(8), true, false)).
		Write(MustNewInterval(tm(0), tm(5), true, true)).
		Write(EmptyInterval())

	is := inv.Intervals()
	assert.Len(t, is, 2)
	assert.True(t, is[0].Equals(MustNewInterval(tm(0), tm(8), true, false)))
	assert.True(t, is[1].Equals(MustNewInterval(tm(10), tm(12), true, true)))

	found, ok := inv.FindInterval(tm(11))
	assert.True(t, ok)
	assert.True(t, found.Equals(is[1]))

	_, ok = inv.FindInterval(tm(9))
	assert.False(t, ok)

	assert.True(t, inv.Covers(MustNewInterval(tm(1), tm(7), true, true)))
	assert.False(t, inv.Covers(MustNewInterval(tm(7), tm(11), true, true)))
}

func TestInvarianceNarrowed(t *testing.T) {
	inv := NewInvariance().
		Write(MustNewInterval(TimeMin(), tm(0), true, true)).
		Write(MustNewInterval(tm(10), TimeMax(), true, true))

	n := inv.GetNarrowed(MustNewInterval(tm(-5), tm(5), true, false))
	is := n.Intervals()
	assert.Len(t, is, 1)
	assert.True(t, is[0].Equals(MustNewInterval(tm(-5), tm(0), true, true)))

	assert.Len(t, inv.Intervals(), 2)
	assert.True(t, inv.GetNarrowed(MustNewInterval(tm(1), tm(9), true, true)).IsEmpty())
}

func TestInvarianceIntersect(t *testing.T) {
	a := NewInvariance().
		Write(MustNewInterval(tm(0), tm(4), true, true)).
		Write(MustNewInterval(tm(6), tm(10), true, true))
	b := NewInvariance().Write(MustNewInterval(tm(3), tm(7), false, true))

	is := a.Intersect(b).Intervals()
	assert.Len(t, is, 2)
	assert.True(t, is[0].Equals(MustNewInterval(tm(3), tm(4), false, true)))
	assert.True(t, is[1].Equals(MustNewInterval(tm(6), tm(7), true, true)))

	assert.True(t, a.Intersect(NewInvariance()).IsEmpty())

	c := a.Clone()
	c.Write(MustNewInterval(tm(4), tm(6), true, true))
	assert.Len(t, c.Intervals(), 1)
	assert.Len(t, a.Intervals(), 2)
}
