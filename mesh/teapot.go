package mesh

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	teapotSegments       = 32
	teapotSpoutSegments  = 16
	teapotHandleSegments = 12

	// moves the body centre to the origin
	teapotYOffset = -53
)

// body and lid, bottom pole to knob top
var teapotProfile = []profilePoint{
	{0, 0},
	{38, 0},
	{50, 2},
	{60, 8},
	{67, 18},
	{70, 30},
	{69, 42},
	{65, 54},
	{58, 64},
	{52, 70},
	{50, 74},
	{47, 76},
	{42, 79},
	{32, 83},
	{18, 86},
	{8, 88},
	{7, 92},
	{11, 97},
	{10, 102},
	{5, 105},
	{0, 106},
}

var teapotSpout = []mgl32.Vec3{
	{58, 22, 0},
	{72, 26, 0},
	{84, 34, 0},
	{94, 46, 0},
	{102, 60, 0},
	{110, 72, 0},
	{118, 79, 0},
	{126, 82, 0},
}

var teapotSpoutRadius = []float32{15, 13, 11, 9, 7.5, 6.5, 6, 7}

var teapotHandle = []mgl32.Vec3{
	{-56, 62, 0},
	{-72, 67, 0},
	{-88, 66, 0},
	{-100, 58, 0},
	{-104, 44, 0},
	{-99, 30, 0},
	{-86, 19, 0},
	{-72, 14, 0},
	{-58, 14, 0},
}

var teapotHandleRadius = []float32{6, 5.5, 5, 5, 5, 5, 5, 5.5, 6}

var (
	teapot     *Mesh
	teapotOnce sync.Once
)

// Teapot returns the demo mesh, about 240 units across with the spout.
// The mesh is shared and must not be modified.
func Teapot() *Mesh {
	teapotOnce.Do(func() {
		b := builder{m: &Mesh{Name: "teapot"}}
		b.lathe(teapotProfile, teapotSegments, teapotYOffset)

		offset := mgl32.Vec3{0, teapotYOffset, 0}
		b.tube(translate(teapotSpout, offset), teapotSpoutRadius, teapotSpoutSegments)
		b.tube(translate(teapotHandle, offset), teapotHandleRadius, teapotHandleSegments)

		teapot = b.m
	})
	return teapot
}

func translate(curve []mgl32.Vec3, by mgl32.Vec3) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(curve))
	for i, p := range curve {
		out[i] = p.Add(by)
	}
	return out
}
