package animation

import "strings"

const (
	InterpolationConstant = "constant"
	InterpolationLinear   = "linear"
	InterpolationStep     = "step"
)

type KeyframeDef struct {
	At    float64     `json:"at" yaml:"at"`
	Value interface{} `json:"value" yaml:"value"`
}

// CurveDef is the serializable form of a constant or keyframe curve.
type CurveDef struct {
	Type          string        `json:"type" yaml:"type"`
	Interpolation string        `json:"interpolation,omitempty" yaml:"interpolation,omitempty"`
	Keyframes     []KeyframeDef `json:"keyframes,omitempty" yaml:"keyframes,omitempty"`
}

// KeyframeStorage keeps curve definitions by name.
type KeyframeStorage interface {
	SaveCurve(name string, def CurveDef) error
	LoadCurve(name string) (CurveDef, error)
	DelCurve(name string) error
	ListCurves() ([]string, error)
}

// BuildCurve creates the curve described by def. Types are looked up in registry.
// An empty interpolation means linear for numbers and vectors and step otherwise.
func BuildCurve(registry *TypeRegistry, def CurveDef) (Curve, error) {
	if registry == nil {
		return nil, wrapf(ErrInvalidArgument, "nil type registry")
	}

	t, err := registry.Find(def.Type)
	if err != nil {
		return nil, err
	}

	interpolation := strings.ToLower(def.Interpolation)
	if interpolation == "" {
		interpolation = InterpolationStep
		if isInterpolable(t) {
			interpolation = InterpolationLinear
		}
	}

	kfs := make([]Keyframe, 0, len(def.Keyframes))

	for _, kd := range def.Keyframes {
		at, err := TimeFromNumber(kd.At)
		if err != nil {
			return nil, err
		}

		kfs = append(kfs, Keyframe{At: at, Value: kd.Value})
	}

	switch interpolation {
	case InterpolationConstant:
		if len(kfs) > 1 {
			return nil, wrapf(ErrInvalidArgument, "constant curve with %d keyframes", len(kfs))
		}

		var v interface{}
		if len(kfs) == 1 {
			v = kfs[0].Value
		}

		c, err := NewConstantCurve(t, v)
		if err != nil {
			return nil, err
		}

		return c, nil
	case InterpolationLinear:
		c, err := NewKFLinearCurve(t, kfs)
		if err != nil {
			return nil, err
		}

		return c, nil
	case InterpolationStep:
		c, err := NewKFStepCurve(t, kfs)
		if err != nil {
			return nil, err
		}

		return c, nil
	}

	return nil, wrapf(ErrInvalidArgument, "unknown interpolation %q", def.Interpolation)
}

// CurveDefOf returns the definition of a constant or keyframe curve.
func CurveDefOf(c Curve) (CurveDef, error) {
	switch cv := c.(type) {
	case *ConstantCurve:
		return CurveDef{
			Type:          cv.valueType.Name(),
			Interpolation: InterpolationConstant,
			Keyframes:     []KeyframeDef{{Value: cv.value}},
		}, nil
	case *KFLinearCurve:
		return CurveDef{
			Type:          cv.valueType.Name(),
			Interpolation: InterpolationLinear,
			Keyframes:     keyframeDefs(cv.keyframes),
		}, nil
	case *KFStepCurve:
		return CurveDef{
			Type:          cv.valueType.Name(),
			Interpolation: InterpolationStep,
			Keyframes:     keyframeDefs(cv.keyframes),
		}, nil
	}

	return CurveDef{}, wrapf(ErrInvalidArgument, "%T has no definition", c)
}

func keyframeDefs(kfs []Keyframe) []KeyframeDef {
	kds := make([]KeyframeDef, 0, len(kfs))
	for _, kf := range kfs {
		kds = append(kds, KeyframeDef{At: kf.At.ToNumber(), Value: kf.Value})
	}

	return kds
}
