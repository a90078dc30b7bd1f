package r3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Smallest vector length Normalize will accept
const NormEpsilon = 1e-6

// DegenerateVectorError is returned when a vector is too short to have a direction.
type DegenerateVectorError struct {
	Vector mgl32.Vec3
	Length float32
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("degenerate vector %v: length %g is below %g", e.Vector, e.Length, NormEpsilon)
}

// UnitVector3 is a direction of length 1. The zero value is not valid,
// use Normalize to obtain one.
type UnitVector3 struct {
	v mgl32.Vec3
}

// Normalize returns v scaled to unit length.
func Normalize(v mgl32.Vec3) (UnitVector3, error) {
	l := v.Len()
	if l < NormEpsilon {
		return UnitVector3{}, &DegenerateVectorError{Vector: v, Length: l}
	}
	return UnitVector3{v: v.Mul(1.0 / l)}, nil
}

// MustNormalize is Normalize for vectors known to be valid, like package constants.
func MustNormalize(v mgl32.Vec3) UnitVector3 {
	u, err := Normalize(v)
	if err != nil {
		panic(err)
	}
	return u
}

func (u UnitVector3) Vec3() mgl32.Vec3 { return u.v }

func (u UnitVector3) X() float32 { return u.v[0] }
func (u UnitVector3) Y() float32 { return u.v[1] }
func (u UnitVector3) Z() float32 { return u.v[2] }

func (u UnitVector3) Dot(v mgl32.Vec3) float32 { return u.v.Dot(v) }

// Cross is the right-handed cross product u × v. The result is not unit length in general.
func (u UnitVector3) Cross(v mgl32.Vec3) mgl32.Vec3 { return u.v.Cross(v) }

func (u UnitVector3) String() string {
	return fmt.Sprintf("Unit(%g, %g, %g)", u.v[0], u.v[1], u.v[2])
}
