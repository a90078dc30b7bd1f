// Package mesh holds the static demo geometry.
package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle list. Triangles are wound clockwise when seen
// from outside, so they are counter-clockwise on screen for the camera
// convention of package r3d.
type Mesh struct {
	Name      string
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint16
}

func (m *Mesh) TrianglesCount() int { return len(m.Indices) / 3 }

func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for i := 0; i < 3; i++ {
			min[i] = float32(math.Min(float64(min[i]), float64(p[i])))
			max[i] = float32(math.Max(float64(max[i]), float64(p[i])))
		}
	}
	return
}

type builder struct {
	m *Mesh
}

func (b *builder) vertex(p, n mgl32.Vec3) uint16 {
	if len(b.m.Positions) >= math.MaxUint16 {
		panic("mesh: too many vertices for 16 bit indices")
	}
	b.m.Positions = append(b.m.Positions, p)
	b.m.Normals = append(b.m.Normals, n.Normalize())
	return uint16(len(b.m.Positions) - 1)
}

func (b *builder) triangle(i0, i1, i2 uint16) {
	if i0 == i1 || i1 == i2 || i0 == i2 {
		return
	}
	b.m.Indices = append(b.m.Indices, i0, i1, i2)
}

// quad takes corners in counter-clockwise order seen from outside
func (b *builder) quad(a, bb, c, d uint16) {
	b.triangle(a, d, c)
	b.triangle(a, c, bb)
}

// profilePoint is a (radius, height) pair of a surface of revolution around Y
type profilePoint [2]float32

// lathe revolves the profile around the Y axis. The profile must run with
// the outside on its right hand, from the bottom pole to the top pole.
func (b *builder) lathe(profile []profilePoint, segments int, yOffset float32) {
	rings := make([][]uint16, len(profile))
	for i, pp := range profile {
		prev, next := profile[max(i-1, 0)], profile[min(i+1, len(profile)-1)]
		tr, ty := next[0]-prev[0], next[1]-prev[1]
		nr, ny := ty, -tr

		if pp[0] == 0 {
			pole := b.vertex(mgl32.Vec3{0, pp[1] + yOffset, 0}, mgl32.Vec3{0, sign(ny), 0})
			rings[i] = make([]uint16, segments)
			for j := range rings[i] {
				rings[i][j] = pole
			}
			continue
		}

		rings[i] = make([]uint16, segments)
		for j := 0; j < segments; j++ {
			theta := 2 * math.Pi * float64(j) / float64(segments)
			cos, sin := float32(math.Cos(theta)), float32(math.Sin(theta))
			rings[i][j] = b.vertex(
				mgl32.Vec3{pp[0] * cos, pp[1] + yOffset, pp[0] * sin},
				mgl32.Vec3{nr * cos, ny, nr * sin},
			)
		}
	}

	for i := 0; i+1 < len(rings); i++ {
		for j := 0; j < segments; j++ {
			k := (j + 1) % segments
			b.quad(rings[i][j], rings[i+1][j], rings[i+1][k], rings[i][k])
		}
	}
}

// tube sweeps a circle along a curve lying in the XY plane.
// radius holds one entry per curve point.
func (b *builder) tube(curve []mgl32.Vec3, radius []float32, segments int) {
	binormal := mgl32.Vec3{0, 0, 1}
	rings := make([][]uint16, len(curve))
	for i, c := range curve {
		prev, next := curve[max(i-1, 0)], curve[min(i+1, len(curve)-1)]
		tangent := next.Sub(prev).Normalize()
		normal := binormal.Cross(tangent).Normalize()

		rings[i] = make([]uint16, segments)
		for j := 0; j < segments; j++ {
			phi := 2 * math.Pi * float64(j) / float64(segments)
			dir := normal.Mul(float32(math.Cos(phi))).Add(binormal.Mul(float32(math.Sin(phi))))
			rings[i][j] = b.vertex(c.Add(dir.Mul(radius[i])), dir)
		}
	}

	for i := 0; i+1 < len(rings); i++ {
		for j := 0; j < segments; j++ {
			k := (j + 1) % segments
			b.quad(rings[i][j], rings[i][k], rings[i+1][k], rings[i+1][j])
		}
	}
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
