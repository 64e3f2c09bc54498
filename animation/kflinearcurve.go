package animation

import "reflect"

// KFLinearCurve interpolates linearly between keyframes and holds the first and last
// keyframe values outside them. Vector values are interpolated per component.
type KFLinearCurve struct {
	CurveBase

	valueType Type
	keyframes []Keyframe
}

func NewKFLinearCurve(valueType Type, keyframes []Keyframe) (*KFLinearCurve, error) {
	if valueType == nil {
		return nil, wrapf(ErrInvalidArgument, "nil value type")
	}

	if !isInterpolable(valueType) {
		return nil, wrapf(ErrUnsupportedType, "%s can not be interpolated", valueType.Name())
	}

	kfs, err := normalizeKeyframes(valueType, keyframes)
	if err != nil {
		return nil, err
	}

	return &KFLinearCurve{
		valueType: valueType,
		keyframes: kfs,
	}, nil
}

func (c *KFLinearCurve) ValueType() Type {
	return c.valueType
}

func (c *KFLinearCurve) KeyFrames() []Keyframe {
	return copyKeyframes(c.keyframes)
}

// SetKeyFrames replaces every keyframe. Call it between ticks only.
func (c *KFLinearCurve) SetKeyFrames(keyframes []Keyframe) error {
	kfs, err := normalizeKeyframes(c.valueType, keyframes)
	if err != nil {
		return err
	}

	c.keyframes = kfs

	c.NotifyValueChange(UniversalInterval())

	return nil
}

func (c *KFLinearCurve) IsTypeSupported(t Type) bool {
	return t != nil && t.IsConvertible(c.valueType)
}

func (c *KFLinearCurve) GetValue(at Time, t Type) (interface{}, error) {
	if err := checkTypeSupported(c, t); err != nil {
		return nil, err
	}

	return t.ConvertValue(c.valueType, c.valueAt(at))
}

func (c *KFLinearCurve) valueAt(at Time) interface{} {
	idx := searchKeyframe(c.keyframes, at)

	if idx == 0 {
		return c.keyframes[0].Value
	}

	if idx == len(c.keyframes) {
		return c.keyframes[idx-1].Value
	}

	k0, k1 := c.keyframes[idx-1], c.keyframes[idx]
	// halved so that finite times far apart do not overflow
	r := (at.ToNumber()/2 - k0.At.ToNumber()/2) / (k1.At.ToNumber()/2 - k0.At.ToNumber()/2)

	return lerp(k0.Value, k1.Value, r)
}

// GetInvariance reports the clamped half-lines and every segment whose two keyframe
// values are equal.
func (c *KFLinearCurve) GetInvariance(interval Interval) *Invariance {
	inv := NewInvariance()

	first, last := c.keyframes[0], c.keyframes[len(c.keyframes)-1]

	inv.Write(Interval{lower: TimeMin(), upper: first.At, includeLower: true, includeUpper: true})
	inv.Write(Interval{lower: last.At, upper: TimeMax(), includeLower: true, includeUpper: true})

	for idx := 1; idx < len(c.keyframes); idx++ {
		k0, k1 := c.keyframes[idx-1], c.keyframes[idx]
		if reflect.DeepEqual(k0.Value, k1.Value) {
			inv.Write(Interval{lower: k0.At, upper: k1.At, includeLower: true, includeUpper: true})
		}
	}

	return inv.GetNarrowed(interval)
}
