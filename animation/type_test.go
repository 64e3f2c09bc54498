package animation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeIdentityConversion(t *testing.T) {
	samples := map[Type]interface{}{
		TypeBoolean: true,
		TypeNumber:  12.25,
		TypeString:  "mapray",
		TypeVector2: Vector2{1, 2},
		TypeVector3: Vector3{1, 2, 3},
		TypeVector4: Vector4{1, 2, 3, 4},
		TypeMatrix:  IdentityMatrix(),
	}

	for _, tp := range PredefinedTypes() {
		assert.True(t, tp.IsConvertible(tp), tp.Name())

		v, err := tp.ConvertValue(tp, samples[tp])
		assert.Nil(t, err, tp.Name())
		assert.Equal(t, samples[tp], v, tp.Name())

		v, err = tp.ConvertValue(tp, tp.DefaultValue())
		assert.Nil(t, err, tp.Name())
		assert.Equal(t, tp.DefaultValue(), v, tp.Name())
	}
}

func TestTypeConversions(t *testing.T) {
	v, err := TypeString.ConvertValue(TypeNumber, 1.5)
	assert.Nil(t, err)
	assert.EqualValues(t, "1.5", v)

	v, err = TypeString.ConvertValue(TypeNumber, 100.0)
	assert.Nil(t, err)
	assert.EqualValues(t, "100", v)

	v, err = TypeNumber.ConvertValue(TypeBoolean, true)
	assert.Nil(t, err)
	assert.EqualValues(t, 1.0, v)

	v, err = TypeBoolean.ConvertValue(TypeNumber, 0.25)
	assert.Nil(t, err)
	assert.Equal(t, false, v)

	v, err = TypeNumber.ConvertValue(TypeNumber, 7)
	assert.Nil(t, err)
	assert.Equal(t, 7.0, v)

	v, err = TypeVector3.ConvertValue(TypeVector3, []interface{}{1, 2.5, 3})
	assert.Nil(t, err)
	assert.Equal(t, Vector3{1, 2.5, 3}, v)

	assert.False(t, TypeNumber.IsConvertible(TypeString))
	assert.False(t, TypeVector3.IsConvertible(TypeVector2))

	_, err = TypeNumber.ConvertValue(TypeString, "1")
	assert.True(t, errors.Is(err, ErrConversion))

	_, err = TypeNumber.ConvertValue(TypeNumber, "1")
	assert.True(t, errors.Is(err, ErrConversion))

	_, err = TypeVector3.ConvertValue(TypeVector3, []float64{1, 2})
	assert.True(t, errors.Is(err, ErrConversion))
}

func TestTypeRegistry(t *testing.T) {
	r := NewStandardTypeRegistry()

	tp, err := r.Find("number")
	assert.Nil(t, err)
	assert.Equal(t, TypeNumber, tp)

	_, err = r.Find("quaternion")
	assert.True(t, errors.Is(err, ErrUnknownType))

	err = r.Register(TypeNumber)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	assert.Equal(t, []string{"boolean", "matrix", "number", "string", "vector2", "vector3", "vector4"}, r.Names())

	empty := NewTypeRegistry()
	_, err = empty.Find("number")
	assert.True(t, errors.Is(err, ErrUnknownType))
	assert.Nil(t, empty.Register(TypeString))
	assert.Equal(t, []string{"string"}, empty.Names())
}
