package scene

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/gl_teapot/mesh"
	"github.com/mogaika/gl_teapot/r3d"
	"github.com/mogaika/gl_teapot/render"
	"github.com/mogaika/gl_teapot/render/rendertest"
)

func TestNewUploadsMesh(t *testing.T) {
	d := rendertest.NewDevice()
	m := mesh.Teapot()

	o, err := New(d, m)
	require.NoError(t, err)
	require.Len(t, d.Buffers, 3)

	b := o.Buffers()
	assert.Equal(t, len(m.Positions), b.Vertices.Len())
	assert.Equal(t, len(m.Normals), b.Normals.Len())
	assert.Equal(t, len(m.Indices), b.Indices.Len())
	assert.Equal(t, m.Positions, d.Buffers[0].Vertices)
	assert.Equal(t, m.Normals, d.Buffers[1].Vertices)
	assert.Equal(t, m.Indices, d.Buffers[2].Indices)

	assert.Equal(t, r3d.Transform{Scale: 1}, o.Transform())
	assert.Equal(t, mgl32.Ident4(), o.ModelMatrix())
}

func TestNewAllocationFailureReleasesBuffers(t *testing.T) {
	for _, tc := range []struct {
		kind     string
		n        int
		resource string
		made     int
	}{
		{"vertex", 0, "vertex buffer", 0},
		{"vertex", 1, "normal buffer", 1},
		{"index", 0, "index buffer", 2},
	} {
		t.Run(tc.resource, func(t *testing.T) {
			d := rendertest.NewDevice()
			outOfMemory := fmt.Errorf("out of memory")
			d.AllocHook = func(kind string, n int) error {
				if kind == tc.kind && n == tc.n {
					return outOfMemory
				}
				return nil
			}

			o, err := New(d, mesh.Teapot())
			assert.Nil(t, o)

			var rae *render.ResourceAllocationError
			require.True(t, errors.As(err, &rae))
			assert.Equal(t, tc.resource, rae.Resource)
			assert.True(t, errors.Is(err, outOfMemory))

			assert.Len(t, d.Buffers, tc.made)
			assert.Empty(t, d.Live())
		})
	}
}

func TestTeapotScale(t *testing.T) {
	o, err := Teapot(rendertest.NewDevice())
	require.NoError(t, err)
	assert.Equal(t, mgl32.Diag4(mgl32.Vec4{0.01, 0.01, 0.01, 1}), o.ModelMatrix())
	assert.Equal(t, "teapot", o.Name)
}

func TestScaleUpDown(t *testing.T) {
	o, err := New(rendertest.NewDevice(), mesh.Teapot())
	require.NoError(t, err)

	for _, start := range []float32{1, 0.01, 42} {
		o.SetScale(start)
		o.ScaleUp()
		assert.InEpsilon(t, start*1.01, o.Transform().Scale, 1e-6)
		o.ScaleDown()
		assert.InEpsilon(t, start, o.Transform().Scale, 1e-6)
	}
}

func TestScaleUnbounded(t *testing.T) {
	o, err := New(rendertest.NewDevice(), mesh.Teapot())
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		o.ScaleUp()
	}
	assert.Greater(t, o.Transform().Scale, float32(20000))

	o.SetScale(1)
	for i := 0; i < 1000; i++ {
		o.ScaleDown()
	}
	assert.Less(t, o.Transform().Scale, float32(1e-4))
	assert.Greater(t, o.Transform().Scale, float32(0))

	// sign is not validated
	o.SetScale(-2)
	assert.Equal(t, mgl32.Diag4(mgl32.Vec4{-2, -2, -2, 1}), o.ModelMatrix())
}

func TestPositionNotInModelMatrix(t *testing.T) {
	o, err := New(rendertest.NewDevice(), mesh.Teapot())
	require.NoError(t, err)

	o.SetPosition(mgl32.Vec3{1, 2, 3})
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, o.Transform().Position)
	assert.Equal(t, mgl32.Ident4(), o.ModelMatrix())

	o.SetTransform(r3d.Transform{Position: mgl32.Vec3{5, 5, 5}, Scale: 3})
	assert.Equal(t, mgl32.Diag4(mgl32.Vec4{3, 3, 3, 1}), o.ModelMatrix())
}

func TestReleaseIsIdempotent(t *testing.T) {
	d := rendertest.NewDevice()
	o, err := New(d, mesh.Teapot())
	require.NoError(t, err)

	o.Release()
	o.Release()
	for _, b := range d.Buffers {
		assert.Equal(t, 1, b.Released)
	}
	assert.Nil(t, o.Buffers().Vertices)
}

func TestTeapots(t *testing.T) {
	d := rendertest.NewDevice()
	objects, err := Teapots(d, 2)
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.NotSame(t, objects[0], objects[1])
	assert.Len(t, d.Buffers, 6)

	objects, err = Teapots(rendertest.NewDevice(), 0)
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestTeapotsFailureReleasesEarlierOnes(t *testing.T) {
	d := rendertest.NewDevice()
	d.AllocHook = func(kind string, n int) error {
		if kind == "index" && n == 2 {
			return fmt.Errorf("out of memory")
		}
		return nil
	}

	objects, err := Teapots(d, 3)
	assert.Nil(t, objects)
	var rae *render.ResourceAllocationError
	require.True(t, errors.As(err, &rae))
	assert.Equal(t, "index buffer", rae.Resource)
	assert.Contains(t, err.Error(), "Teapot 2")
	assert.Empty(t, d.Live())
}
