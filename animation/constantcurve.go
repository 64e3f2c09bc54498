package animation

// ConstantCurve returns the same value at every time.
type ConstantCurve struct {
	CurveBase

	valueType Type
	value     interface{}
}

// NewConstantCurve creates a curve of valueType. A nil value means valueType's default.
func NewConstantCurve(valueType Type, value interface{}) (*ConstantCurve, error) {
	if valueType == nil {
		return nil, wrapf(ErrInvalidArgument, "nil value type")
	}

	c := &ConstantCurve{
		valueType: valueType,
	}

	if err := c.setValue(value); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *ConstantCurve) setValue(value interface{}) error {
	if value == nil {
		value = c.valueType.DefaultValue()
	}

	v, err := c.valueType.ConvertValue(c.valueType, value)
	if err != nil {
		return err
	}

	c.value = v

	return nil
}

func (c *ConstantCurve) ValueType() Type {
	return c.valueType
}

// SetConstantValue replaces the value. Call it between ticks only.
func (c *ConstantCurve) SetConstantValue(value interface{}) error {
	if err := c.setValue(value); err != nil {
		return err
	}

	c.NotifyValueChange(UniversalInterval())

	return nil
}

func (c *ConstantCurve) IsTypeSupported(t Type) bool {
	return t != nil && t.IsConvertible(c.valueType)
}

func (c *ConstantCurve) GetValue(_ Time, t Type) (interface{}, error) {
	if err := checkTypeSupported(c, t); err != nil {
		return nil, err
	}

	return t.ConvertValue(c.valueType, c.value)
}

func (c *ConstantCurve) GetInvariance(interval Interval) *Invariance {
	return NewInvariance().Write(interval)
}
