// nolint
package yamlstorage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libanimation/animation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	utRoot = "ut-data-yaml"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(utRoot)

	code := m.Run()

	_ = os.RemoveAll(utRoot)

	os.Exit(code)
}

func TestYAMLStorage(t *testing.T) {
	_ = os.RemoveAll(utRoot)

	s := NewYAMLStorage(utRoot)

	names, err := s.ListCurves()
	assert.Nil(t, err)
	assert.Empty(t, names)

	_, err = s.LoadCurve("label")
	assert.Equal(t, commerr.ErrNotFound, err)

	err = s.SaveCurve("label", animation.CurveDef{
		Type:          "string",
		Interpolation: animation.InterpolationStep,
		Keyframes: []animation.KeyframeDef{
			{At: 0, Value: "start"},
			{At: 5, Value: "end"},
		},
	})
	require.Nil(t, err)

	err = s.SaveCurve("move", animation.CurveDef{
		Type: "vector3",
		Keyframes: []animation.KeyframeDef{
			{At: 0, Value: animation.Vector3{0, 0, 0}},
			{At: 2, Value: animation.Vector3{2, 4, 6}},
		},
	})
	require.Nil(t, err)

	assert.Equal(t, animation.ErrInvalidArgument, s.SaveCurve("../escape", animation.CurveDef{}))

	names, err = s.ListCurves()
	assert.Nil(t, err)
	assert.Equal(t, []string{"label", "move"}, names)

	r := animation.NewStandardTypeRegistry()

	def, err := s.LoadCurve("move")
	require.Nil(t, err)

	c, err := animation.BuildCurve(r, def)
	require.Nil(t, err)

	v, err := c.GetValue(animation.MustTimeFromNumber(1), animation.TypeVector3)
	assert.Nil(t, err)
	assert.Equal(t, animation.Vector3{1, 2, 3}, v)

	def, err = s.LoadCurve("label")
	require.Nil(t, err)

	c, err = animation.BuildCurve(r, def)
	require.Nil(t, err)

	v, err = c.GetValue(animation.MustTimeFromNumber(6), animation.TypeString)
	assert.Nil(t, err)
	assert.Equal(t, "end", v)

	err = os.WriteFile(filepath.Join(utRoot, "handwritten.yaml"), []byte(`type: number
interpolation: linear
keyframes:
  - at: 0
    value: 5
  - at: 1
    value: 40
`), 0600)
	require.Nil(t, err)

	def, err = s.LoadCurve("handwritten")
	require.Nil(t, err)

	c, err = animation.BuildCurve(r, def)
	require.Nil(t, err)

	v, err = c.GetValue(animation.MustTimeFromNumber(0.5), animation.TypeNumber)
	assert.Nil(t, err)
	assert.Equal(t, 22.5, v)

	assert.Nil(t, s.DelCurve("label"))
	assert.Equal(t, commerr.ErrNotFound, s.DelCurve("label"))
}
