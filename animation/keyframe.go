package animation

import "sort"

type Keyframe struct {
	At    Time
	Value interface{}
}

// normalizeKeyframes checks that times are strictly increasing and converts every value
// to valueType's representation.
func normalizeKeyframes(valueType Type, keyframes []Keyframe) ([]Keyframe, error) {
	if len(keyframes) == 0 {
		return nil, wrapf(ErrInvalidArgument, "no keyframes")
	}

	kfs := make([]Keyframe, 0, len(keyframes))

	for idx, kf := range keyframes {
		if idx > 0 && !kf.At.GreaterThan(keyframes[idx-1].At) {
			return nil, wrapf(ErrInvalidArgument, "keyframe %d at %v is not after %v", idx, kf.At, keyframes[idx-1].At)
		}

		v, err := valueType.ConvertValue(valueType, kf.Value)
		if err != nil {
			return nil, err
		}

		kfs = append(kfs, Keyframe{At: kf.At, Value: v})
	}

	return kfs, nil
}

// searchKeyframe returns the index of the first keyframe after at.
func searchKeyframe(kfs []Keyframe, at Time) int {
	return sort.Search(len(kfs), func(i int) bool {
		return kfs[i].At.GreaterThan(at)
	})
}

func copyKeyframes(kfs []Keyframe) []Keyframe {
	return append([]Keyframe(nil), kfs...)
}

// isInterpolable reports whether lerp understands values of t.
func isInterpolable(t Type) bool {
	return t == TypeNumber || t == TypeVector2 || t == TypeVector3 || t == TypeVector4
}

func lerp(a, b interface{}, r float64) interface{} {
	switch av := a.(type) {
	case float64:
		return av + (b.(float64)-av)*r
	case Vector2:
		bv := b.(Vector2)

		return Vector2{av[0] + (bv[0]-av[0])*r, av[1] + (bv[1]-av[1])*r}
	case Vector3:
		bv := b.(Vector3)

		return Vector3{av[0] + (bv[0]-av[0])*r, av[1] + (bv[1]-av[1])*r, av[2] + (bv[2]-av[2])*r}
	case Vector4:
		bv := b.(Vector4)

		return Vector4{av[0] + (bv[0]-av[0])*r, av[1] + (bv[1]-av[1])*r, av[2] + (bv[2]-av[2])*r, av[3] + (bv[3]-av[3])*r}
	}

	return a
}
