package animation

// Curve maps a Time to a value of a requested Type.
//
// GetValue must be a pure function of its arguments and of configuration set between
// ticks. GetInvariance may under-report but must never claim invariance over an interval
// where the value changes; an empty Invariance is always a valid answer.
type Curve interface {
	IsTypeSupported(t Type) bool
	GetValue(at Time, t Type) (interface{}, error)
	GetInvariance(interval Interval) *Invariance
}

type ValueChangeListener interface {
	OnValueChange(interval Interval)
}

// ValueChangeNotifier is implemented by curves whose configuration can change after
// construction.
type ValueChangeNotifier interface {
	AddValueChangeListener(listener ValueChangeListener)
	RemoveValueChangeListener(listener ValueChangeListener)
}

// CurveBase keeps the value change listeners of a curve. Embed it in custom curves and
// call NotifyValueChange from configuration setters.
type CurveBase struct {
	listeners []ValueChangeListener
}

func (cb *CurveBase) AddValueChangeListener(listener ValueChangeListener) {
	if listener == nil {
		return
	}

	for _, l := range cb.listeners {
		if l == listener {
			return
		}
	}

	cb.listeners = append(cb.listeners, listener)
}

func (cb *CurveBase) RemoveValueChangeListener(listener ValueChangeListener) {
	for idx, l := range cb.listeners {
		if l == listener {
			cb.listeners = append(cb.listeners[:idx:idx], cb.listeners[idx+1:]...)

			return
		}
	}
}

// NotifyValueChange tells every listener that values over interval may have changed.
func (cb *CurveBase) NotifyValueChange(interval Interval) {
	if interval.IsEmpty() {
		return
	}

	for _, l := range append([]ValueChangeListener(nil), cb.listeners...) {
		l.OnValueChange(interval)
	}
}

func checkTypeSupported(c Curve, t Type) error {
	if t == nil || !c.IsTypeSupported(t) {
		return newUnsupportedTypeError(t)
	}

	return nil
}

func newUnsupportedTypeError(t Type) error {
	return wrapf(ErrUnsupportedType, "%s", typeName(t))
}
