package animation

import "errors"

// ComboVectorCurve assembles a vector from one number curve per component.
type ComboVectorCurve struct {
	CurveBase

	vectorType Type
	children   []Curve
	listener   *comboChildListener
}

type comboChildListener struct {
	owner *ComboVectorCurve
}

func (l *comboChildListener) OnValueChange(interval Interval) {
	l.owner.NotifyValueChange(interval)
}

func vectorDimension(t Type) int {
	switch t {
	case TypeVector2:
		return 2
	case TypeVector3:
		return 3
	case TypeVector4:
		return 4
	}

	return 0
}

func NewComboVectorCurve(vectorType Type, children []Curve) (*ComboVectorCurve, error) {
	dim := vectorDimension(vectorType)
	if dim == 0 {
		return nil, wrapf(ErrInvalidArgument, "%s is not a vector type", typeName(vectorType))
	}

	if len(children) != dim {
		return nil, wrapf(ErrInvalidArgument, "%d children for %s", len(children), vectorType.Name())
	}

	for idx, child := range children {
		if err := checkComboChild(idx, child); err != nil {
			return nil, err
		}
	}

	c := &ComboVectorCurve{
		vectorType: vectorType,
		children:   append([]Curve(nil), children...),
	}
	c.listener = &comboChildListener{owner: c}

	for _, child := range c.children {
		c.watchChild(child)
	}

	return c, nil
}

func checkComboChild(idx int, child Curve) error {
	if child == nil {
		return wrapf(ErrInvalidArgument, "child %d is nil", idx)
	}

	if !child.IsTypeSupported(TypeNumber) {
		return wrapf(ErrChildTypeMismatch, "child %d does not supply number", idx)
	}

	return nil
}

func (c *ComboVectorCurve) watchChild(child Curve) {
	if n, ok := child.(ValueChangeNotifier); ok {
		n.AddValueChangeListener(c.listener)
	}
}

func (c *ComboVectorCurve) unwatchChild(child Curve) {
	if n, ok := child.(ValueChangeNotifier); ok {
		n.RemoveValueChangeListener(c.listener)
	}
}

func (c *ComboVectorCurve) hasChild(child Curve) bool {
	for _, cc := range c.children {
		if cc == child {
			return true
		}
	}

	return false
}

func (c *ComboVectorCurve) VectorType() Type {
	return c.vectorType
}

func (c *ComboVectorCurve) Children() []Curve {
	return append([]Curve(nil), c.children...)
}

// SetChild replaces the curve of component idx. Call it between ticks only.
func (c *ComboVectorCurve) SetChild(idx int, child Curve) error {
	if idx < 0 || idx >= len(c.children) {
		return wrapf(ErrInvalidArgument, "child index %d out of range", idx)
	}

	if err := checkComboChild(idx, child); err != nil {
		return err
	}

	old := c.children[idx]
	c.children[idx] = child

	if !c.hasChild(old) {
		c.unwatchChild(old)
	}

	c.watchChild(child)

	c.NotifyValueChange(UniversalInterval())

	return nil
}

func (c *ComboVectorCurve) IsTypeSupported(t Type) bool {
	return t != nil && t.IsConvertible(c.vectorType)
}

func (c *ComboVectorCurve) GetValue(at Time, t Type) (interface{}, error) {
	if err := checkTypeSupported(c, t); err != nil {
		return nil, err
	}

	components := make([]float64, 0, len(c.children))

	for idx, child := range c.children {
		v, err := child.GetValue(at, TypeNumber)
		if err != nil {
			if errors.Is(err, ErrUnsupportedType) {
				return nil, wrapf(ErrChildTypeMismatch, "child %d: %v", idx, err)
			}

			return nil, err
		}

		f, ok := v.(float64)
		if !ok {
			return nil, wrapf(ErrChildTypeMismatch, "child %d returned %T", idx, v)
		}

		components = append(components, f)
	}

	vec, err := c.vectorType.ConvertValue(c.vectorType, components)
	if err != nil {
		return nil, err
	}

	return t.ConvertValue(c.vectorType, vec)
}

// GetInvariance is the intersection of the children's invariances.
func (c *ComboVectorCurve) GetInvariance(interval Interval) *Invariance {
	inv := NewInvariance().Write(interval)

	for _, child := range c.children {
		if inv.IsEmpty() {
			break
		}

		inv = inv.Intersect(child.GetInvariance(interval).GetNarrowed(interval))
	}

	return inv
}
