package animation

import "github.com/godruoyi/go-snowflake"

// Setter applies an animated value to its target.
type Setter func(value interface{}) error

// Binder links a curve, the type it is evaluated in and a setter to an updater.
type Binder struct {
	id        uint64
	updater   *Updater
	curve     Curve
	valueType Type
	setter    Setter
	bound     bool

	listener  *binderCurveListener
	evaluated bool
	validity  Interval
}

type binderCurveListener struct {
	binder *Binder
}

func (l *binderCurveListener) OnValueChange(interval Interval) {
	b := l.binder
	if b.evaluated && b.validity.HasIntersection(interval) {
		b.evaluated = false
	}
}

// NewBinder checks that curve can supply valueType and registers the binder into
// updater. Nothing is registered when an error is returned.
func NewBinder(updater *Updater, curve Curve, valueType Type, setter Setter) (*Binder, error) {
	if updater == nil || curve == nil || valueType == nil || setter == nil {
		return nil, wrapf(ErrInvalidArgument, "nil updater, curve, type or setter")
	}

	if !curve.IsTypeSupported(valueType) {
		return nil, wrapf(ErrTypeMismatch, "curve does not supply %s", valueType.Name())
	}

	b := &Binder{
		id:        snowflake.ID(),
		updater:   updater,
		curve:     curve,
		valueType: valueType,
		setter:    setter,
		bound:     true,
	}
	b.listener = &binderCurveListener{binder: b}

	if err := updater.Register(b); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Binder) ID() uint64 {
	return b.id
}

func (b *Binder) Updater() *Updater {
	return b.updater
}

func (b *Binder) Curve() Curve {
	return b.curve
}

func (b *Binder) Type() Type {
	return b.valueType
}

func (b *Binder) IsBound() bool {
	return b.bound
}

// Unbind removes the binder from its updater. Further calls do nothing.
func (b *Binder) Unbind() {
	b.updater.Unregister(b)
}

func (b *Binder) attach() {
	if n, ok := b.curve.(ValueChangeNotifier); ok {
		n.AddValueChangeListener(b.listener)
	}
}

func (b *Binder) detach() {
	b.bound = false
	b.evaluated = false

	if n, ok := b.curve.(ValueChangeNotifier); ok {
		n.RemoveValueChangeListener(b.listener)
	}
}

// update evaluates the curve at at and hands the value to the setter.
func (b *Binder) update(at Time, skipInvariant bool) error {
	if skipInvariant && b.evaluated && b.validity.IncludesTime(at) {
		return nil
	}

	b.evaluated = false

	v, err := b.curve.GetValue(at, b.valueType)
	if err != nil {
		return err
	}

	if err = b.setter(v); err != nil {
		return err
	}

	if skipInvariant && b.bound {
		b.validity, b.evaluated = b.curve.GetInvariance(UniversalInterval()).FindInterval(at)
	}

	return nil
}
