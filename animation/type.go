package animation

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cast"
)

// Type is a kind of animated value.
type Type interface {
	Name() string

	// IsConvertible reports whether values of from can be converted to this type.
	// Every type is convertible from itself.
	IsConvertible(from Type) bool
	ConvertValue(from Type, value interface{}) (interface{}, error)

	DefaultValue() interface{}
}

type (
	Vector2 [2]float64
	Vector3 [3]float64
	Vector4 [4]float64

	// Matrix is a 4x4 matrix in column-major order.
	Matrix [16]float64
)

type converter func(v interface{}) interface{}

type predefinedType struct {
	name         string
	defaultValue func() interface{}
	normalize    func(v interface{}) (interface{}, error)
}

var (
	TypeBoolean Type = &predefinedType{name: "boolean", defaultValue: func() interface{} { return false }, normalize: normalizeBoolean}
	TypeNumber  Type = &predefinedType{name: "number", defaultValue: func() interface{} { return 0.0 }, normalize: normalizeNumber}
	TypeString  Type = &predefinedType{name: "string", defaultValue: func() interface{} { return "" }, normalize: normalizeString}
	TypeVector2 Type = &predefinedType{name: "vector2", defaultValue: func() interface{} { return Vector2{} }, normalize: normalizeVector2}
	TypeVector3 Type = &predefinedType{name: "vector3", defaultValue: func() interface{} { return Vector3{} }, normalize: normalizeVector3}
	TypeVector4 Type = &predefinedType{name: "vector4", defaultValue: func() interface{} { return Vector4{} }, normalize: normalizeVector4}
	TypeMatrix  Type = &predefinedType{name: "matrix", defaultValue: func() interface{} { return IdentityMatrix() }, normalize: normalizeMatrix}
)

// conversions[to][from]
var conversions map[Type]map[Type]converter

func init() {
	conversions = map[Type]map[Type]converter{
		TypeBoolean: {
			TypeNumber: func(v interface{}) interface{} {
				return v.(float64) >= 0.5
			},
		},
		TypeNumber: {
			TypeBoolean: func(v interface{}) interface{} {
				if v.(bool) {
					return 1.0
				}

				return 0.0
			},
		},
		TypeString: {
			TypeNumber: func(v interface{}) interface{} {
				return cast.ToString(v)
			},
			TypeBoolean: func(v interface{}) interface{} {
				return cast.ToString(v)
			},
		},
	}
}

func PredefinedTypes() []Type {
	return []Type{TypeBoolean, TypeNumber, TypeString, TypeVector2, TypeVector3, TypeVector4, TypeMatrix}
}

func IdentityMatrix() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (pt *predefinedType) Name() string {
	return pt.name
}

func (pt *predefinedType) DefaultValue() interface{} {
	return pt.defaultValue()
}

func (pt *predefinedType) IsConvertible(from Type) bool {
	if from == nil {
		return false
	}

	if Type(pt) == from {
		return true
	}

	_, ok := conversions[pt][from]

	return ok
}

func (pt *predefinedType) ConvertValue(from Type, value interface{}) (interface{}, error) {
	if !pt.IsConvertible(from) {
		return nil, fmt.Errorf("%w: %s is not convertible to %s", ErrConversion, typeName(from), pt.name)
	}

	if Type(pt) == from {
		return pt.normalize(value)
	}

	src, ok := from.(*predefinedType)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not convertible to %s", ErrConversion, from.Name(), pt.name)
	}

	v, err := src.normalize(value)
	if err != nil {
		return nil, err
	}

	return conversions[pt][from](v), nil
}

func (pt *predefinedType) String() string {
	return pt.name
}

func typeName(t Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.Name()
}

func normalizeBoolean(v interface{}) (interface{}, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a boolean", ErrConversion, v)
	}

	return b, nil
}

func normalizeNumber(v interface{}) (interface{}, error) {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
	default:
		return nil, fmt.Errorf("%w: %T is not a number", ErrConversion, v)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	return f, nil
}

func normalizeString(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a string", ErrConversion, v)
	}

	return s, nil
}

func normalizeVector2(v interface{}) (interface{}, error) {
	if vec, ok := v.(Vector2); ok {
		return vec, nil
	}

	fs, err := toFloats(v, 2)
	if err != nil {
		return nil, err
	}

	return Vector2{fs[0], fs[1]}, nil
}

func normalizeVector3(v interface{}) (interface{}, error) {
	if vec, ok := v.(Vector3); ok {
		return vec, nil
	}

	fs, err := toFloats(v, 3)
	if err != nil {
		return nil, err
	}

	return Vector3{fs[0], fs[1], fs[2]}, nil
}

func normalizeVector4(v interface{}) (interface{}, error) {
	if vec, ok := v.(Vector4); ok {
		return vec, nil
	}

	fs, err := toFloats(v, 4)
	if err != nil {
		return nil, err
	}

	return Vector4{fs[0], fs[1], fs[2], fs[3]}, nil
}

func normalizeMatrix(v interface{}) (interface{}, error) {
	if m, ok := v.(Matrix); ok {
		return m, nil
	}

	fs, err := toFloats(v, 16)
	if err != nil {
		return nil, err
	}

	var m Matrix

	copy(m[:], fs)

	return m, nil
}

// toFloats accepts fixed arrays, []float64 and generic slices decoded from JSON or YAML.
func toFloats(v interface{}, n int) ([]float64, error) {
	var fs []float64

	switch vv := v.(type) {
	case []float64:
		fs = vv
	case [2]float64:
		fs = vv[:]
	case [3]float64:
		fs = vv[:]
	case [4]float64:
		fs = vv[:]
	case [16]float64:
		fs = vv[:]
	case []interface{}:
		fs = make([]float64, 0, len(vv))

		for _, e := range vv {
			f, err := normalizeNumber(e)
			if err != nil {
				return nil, err
			}

			fs = append(fs, f.(float64))
		}
	default:
		return nil, fmt.Errorf("%w: %T is not a %d component vector", ErrConversion, v, n)
	}

	if len(fs) != n {
		return nil, fmt.Errorf("%w: %d components, want %d", ErrConversion, len(fs), n)
	}

	return append([]float64(nil), fs...), nil
}

//
//
//

// TypeRegistry maps names to types. Lookups are safe from any goroutine.
type TypeRegistry struct {
	lock  sync.RWMutex
	types map[string]Type
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types: make(map[string]Type),
	}
}

// NewStandardTypeRegistry returns a registry holding the predefined types.
func NewStandardTypeRegistry() *TypeRegistry {
	r := NewTypeRegistry()

	for _, t := range PredefinedTypes() {
		_ = r.Register(t)
	}

	return r
}

func (r *TypeRegistry) Register(t Type) error {
	if t == nil || t.Name() == "" {
		return fmt.Errorf("%w: nil or unnamed type", ErrInvalidArgument)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.types[t.Name()]; ok {
		return fmt.Errorf("%w: type %s already registered", ErrInvalidArgument, t.Name())
	}

	r.types[t.Name()] = t

	return nil
}

func (r *TypeRegistry) Find(name string) (Type, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	t, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}

	return t, nil
}

func (r *TypeRegistry) Names() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
