package animation

import "reflect"

// KFStepCurve holds each keyframe value until the next keyframe. Before the first
// keyframe the first value is used. Values of any type are accepted.
type KFStepCurve struct {
	CurveBase

	valueType Type
	keyframes []Keyframe
}

func NewKFStepCurve(valueType Type, keyframes []Keyframe) (*KFStepCurve, error) {
	if valueType == nil {
		return nil, wrapf(ErrInvalidArgument, "nil value type")
	}

	kfs, err := normalizeKeyframes(valueType, keyframes)
	if err != nil {
		return nil, err
	}

	return &KFStepCurve{
		valueType: valueType,
		keyframes: kfs,
	}, nil
}

func (c *KFStepCurve) ValueType() Type {
	return c.valueType
}

func (c *KFStepCurve) KeyFrames() []Keyframe {
	return copyKeyframes(c.keyframes)
}

func (c *KFStepCurve) SetKeyFrames(keyframes []Keyframe) error {
	kfs, err := normalizeKeyframes(c.valueType, keyframes)
	if err != nil {
		return err
	}

	c.keyframes = kfs

	c.NotifyValueChange(UniversalInterval())

	return nil
}

func (c *KFStepCurve) IsTypeSupported(t Type) bool {
	return t != nil && t.IsConvertible(c.valueType)
}

func (c *KFStepCurve) GetValue(at Time, t Type) (interface{}, error) {
	if err := checkTypeSupported(c, t); err != nil {
		return nil, err
	}

	idx := searchKeyframe(c.keyframes, at)
	if idx > 0 {
		idx--
	}

	return t.ConvertValue(c.valueType, c.keyframes[idx].Value)
}

// GetInvariance reports one interval per run of equal values. Runs after the first
// exclude their starting keyframe so neighbouring runs never touch.
func (c *KFStepCurve) GetInvariance(interval Interval) *Invariance {
	inv := NewInvariance()

	n := len(c.keyframes)
	start := 0

	for start < n {
		end := start + 1
		for end < n && reflect.DeepEqual(c.keyframes[end].Value, c.keyframes[start].Value) {
			end++
		}

		run := Interval{lower: c.keyframes[start].At, includeLower: false}
		if start == 0 {
			run.lower, run.includeLower = TimeMin(), true
		}

		if end == n {
			run.upper, run.includeUpper = TimeMax(), true
		} else {
			run.upper, run.includeUpper = c.keyframes[end].At, false
		}

		inv.Write(run)

		start = end
	}

	return inv.GetNarrowed(interval)
}
