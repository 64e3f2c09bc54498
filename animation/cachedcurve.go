package animation

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const DefaultCachedCurveCapacity = 4096

// CachedCurve memoizes the values of an expensive curve. It relies on the wrapped
// curve being pure; configuration changes announced through ValueChangeNotifier flush it.
//
// Times inside an invariant interval of the wrapped curve share one entry. Other times
// are keyed exactly. Expired entries are dropped in GetValue once the entry count passes
// the capacity; no janitor goroutine is started.
type CachedCurve struct {
	CurveBase

	curve      Curve
	capacity   int
	cachedVs   *cache.Cache
	invariance *Invariance
}

type cachedCurveListener struct {
	owner *CachedCurve
}

func (l *cachedCurveListener) OnValueChange(interval Interval) {
	l.owner.flush()
	l.owner.NotifyValueChange(interval)
}

func NewCachedCurve(curve Curve, ttl time.Duration) (*CachedCurve, error) {
	return NewCachedCurveEx(curve, ttl, DefaultCachedCurveCapacity)
}

func NewCachedCurveEx(curve Curve, ttl time.Duration, capacity int) (*CachedCurve, error) {
	if curve == nil {
		return nil, wrapf(ErrInvalidArgument, "nil curve")
	}

	if ttl <= 0 {
		ttl = time.Minute
	}

	if capacity <= 0 {
		capacity = DefaultCachedCurveCapacity
	}

	c := &CachedCurve{
		curve:    curve,
		capacity: capacity,
		cachedVs: cache.New(ttl, cache.NoExpiration),
	}

	if n, ok := curve.(ValueChangeNotifier); ok {
		n.AddValueChangeListener(&cachedCurveListener{owner: c})
	}

	return c, nil
}

func (c *CachedCurve) Curve() Curve {
	return c.curve
}

func (c *CachedCurve) flush() {
	c.cachedVs.Flush()
	c.invariance = nil
}

func (c *CachedCurve) genCachedKey(at Time, t Type) string {
	if c.invariance == nil {
		c.invariance = c.curve.GetInvariance(UniversalInterval())
		if c.invariance == nil {
			c.invariance = NewInvariance()
		}
	}

	if interval, ok := c.invariance.FindInterval(at); ok {
		return t.Name() + "@" + interval.String()
	}

	return t.Name() + "@" + strconv.FormatFloat(at.ToNumber(), 'g', -1, 64)
}

func (c *CachedCurve) IsTypeSupported(t Type) bool {
	return c.curve.IsTypeSupported(t)
}

func (c *CachedCurve) GetValue(at Time, t Type) (interface{}, error) {
	if err := checkTypeSupported(c, t); err != nil {
		return nil, err
	}

	key := c.genCachedKey(at, t)

	if v, ok := c.cachedVs.Get(key); ok {
		return v, nil
	}

	v, err := c.curve.GetValue(at, t)
	if err != nil {
		return nil, err
	}

	if c.cachedVs.ItemCount() >= c.capacity {
		c.cachedVs.DeleteExpired()

		if c.cachedVs.ItemCount() >= c.capacity {
			c.cachedVs.Flush()
		}
	}

	c.cachedVs.SetDefault(key, v)

	return v, nil
}

func (c *CachedCurve) GetInvariance(interval Interval) *Invariance {
	return c.curve.GetInvariance(interval)
}

// CachedCount returns the number of memoized values.
func (c *CachedCurve) CachedCount() int {
	return c.cachedVs.ItemCount()
}
