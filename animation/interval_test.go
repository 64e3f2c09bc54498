package animation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tm(n float64) Time {
	return MustTimeFromNumber(n)
}

func TestTime(t *testing.T) {
	_, err := TimeFromNumber(math.NaN())
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = TimeFromNumber(math.Inf(-1))
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	a, err := TimeFromNumber(1.5)
	assert.Nil(t, err)
	assert.EqualValues(t, 1.5, a.ToNumber())

	b := tm(2)
	assert.True(t, a.LessThan(b))
	assert.True(t, a.LessEqual(b))
	assert.True(t, b.GreaterThan(a))
	assert.True(t, b.GreaterEqual(b))
	assert.EqualValues(t, -1, a.Compare(b))
	assert.EqualValues(t, 1, b.Compare(a))
	assert.EqualValues(t, 0, a.Compare(tm(1.5)))
	assert.True(t, a.Equals(tm(1.5)))
	assert.True(t, TimeMin().LessThan(a) && a.LessThan(TimeMax()))

	assert.Equal(t, -math.MaxFloat64, TimeMin().ToNumber())
	assert.Equal(t, math.MaxFloat64, TimeMax().ToNumber())
	assert.True(t, UniversalInterval().IncludesTime(TimeMin()) && UniversalInterval().IncludesTime(TimeMax()))
}

func TestIntervalConstruction(t *testing.T) {
	_, err := NewInterval(tm(2), tm(1), true, true)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	i, err := NewInterval(tm(1), tm(1), true, false)
	assert.Nil(t, err)
	assert.True(t, i.IsEmpty())

	i = MustNewInterval(tm(1), tm(1), true, true)
	assert.False(t, i.IsEmpty())
	assert.True(t, i.IsSingle())
	assert.False(t, i.IsProper())

	i = MustNewInterval(tm(1), tm(3), false, true)
	assert.True(t, i.IsProper())
	assert.False(t, i.IncludesTime(tm(1)))
	assert.True(t, i.IncludesTime(tm(2)))
	assert.True(t, i.IncludesTime(tm(3)))
	assert.False(t, i.IncludesTime(tm(3.5)))

	assert.True(t, UniversalInterval().IsUniversal())
	assert.True(t, EmptyInterval().IsEmpty())
	assert.EqualValues(t, "(1, 3]", i.String())
}

func TestIntervalPrecedingsFollowings(t *testing.T) {
	closed := MustNewInterval(tm(1), tm(2), true, true)

	p := closed.GetPrecedings()
	assert.True(t, p.Equals(MustNewInterval(TimeMin(), tm(1), true, false)))
	assert.False(t, p.IncludesTime(tm(1)))
	assert.True(t, p.IncludesTime(tm(0.999)))

	f := closed.GetFollowings()
	assert.True(t, f.Equals(MustNewInterval(tm(2), TimeMax(), false, true)))

	open := MustNewInterval(tm(1), tm(2), false, false)
	assert.True(t, open.GetPrecedings().IncludesTime(tm(1)))
	assert.True(t, open.GetFollowings().IncludesTime(tm(2)))

	assert.True(t, UniversalInterval().GetPrecedings().IsEmpty())
	assert.True(t, UniversalInterval().GetFollowings().IsEmpty())
	assert.True(t, EmptyInterval().GetPrecedings().IsEmpty())
}

func TestIntervalIntersection(t *testing.T) {
	a := MustNewInterval(tm(0), tm(2), true, false)
	b := MustNewInterval(tm(1), tm(3), false, true)

	x := a.GetIntersection(b)
	assert.True(t, x.Equals(MustNewInterval(tm(1), tm(2), false, false)))
	assert.True(t, a.HasIntersection(b))

	c := MustNewInterval(tm(2), tm(4), true, true)
	assert.False(t, a.HasIntersection(c))
	assert.True(t, a.GetIntersection(c).IsEmpty())

	d := MustNewInterval(tm(0), tm(2), true, true)
	assert.True(t, d.GetIntersection(c).IsSingle())

	assert.True(t, UniversalInterval().Includes(a))
	assert.False(t, a.Includes(d))
	assert.True(t, d.Includes(a))
	assert.True(t, a.Includes(EmptyInterval()))
}
