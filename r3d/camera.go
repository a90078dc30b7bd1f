package r3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const (
	DefaultNear = 0.1
	DefaultFar  = 1024.0
)

// World up used when no other is supplied
var DefaultUp = mgl32.Vec3{0, 1, 0}

var (
	ErrEmptyResolution = errors.New("resolution width or height is zero")
	ErrInvalidFOV = errors.New("field of view must be in (0, 180) degrees")
)

type Resolution struct {
	Width, Height uint32
}

func (r Resolution) AspectRatio() float32 {
	return float32(r.Width) / float32(r.Height)
}

type ClippingPlanes struct {
	Near, Far float32
}

type Camera struct {
	position    mgl32.Vec3
	direction   UnitVector3
	up          mgl32.Vec3
	resolution  Resolution
	fov         float32 // degrees
	aspectRatio float32
	clipping    ClippingPlanes
}

type CameraOption func(c *Camera)

// WithWorldUp replaces the up vector the view basis is built against.
func WithWorldUp(up mgl32.Vec3) CameraOption {
	return func(c *Camera) { c.up = up }
}

func NewCamera(position, direction mgl32.Vec3, resolution Resolution, fov float32, opts ...CameraOption) (*Camera, error) {
	if !(fov > 0 && fov < 180) {
		return nil, errors.Wrapf(ErrInvalidFOV, "fov %v", fov)
	}
	if resolution.Width == 0 || resolution.Height == 0 {
		return nil, ErrEmptyResolution
	}
	dir, err := Normalize(direction)
	if err != nil {
		return nil, errors.Wrap(err, "camera direction")
	}

	c := &Camera{
		position:    position,
		direction:   dir,
		up:          DefaultUp,
		resolution:  resolution,
		fov:         fov,
		aspectRatio: resolution.AspectRatio(),
		clipping:    ClippingPlanes{Near: DefaultNear, Far: DefaultFar},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// UpdateResolution is called every frame with the real framebuffer size,
// which may differ from the window size on scaled displays.
func (c *Camera) UpdateResolution(resolution Resolution) error {
	if resolution.Width == 0 || resolution.Height == 0 {
		return ErrEmptyResolution
	}
	c.resolution = resolution
	c.aspectRatio = resolution.AspectRatio()
	return nil
}

func (c *Camera) SetPosition(position mgl32.Vec3) { c.position = position }

func (c *Camera) SetDirection(direction mgl32.Vec3) error {
	dir, err := Normalize(direction)
	if err != nil {
		return errors.Wrap(err, "camera direction")
	}
	c.direction = dir
	return nil
}

func (c *Camera) Position() mgl32.Vec3     { return c.position }
func (c *Camera) Direction() UnitVector3   { return c.direction }
func (c *Camera) WorldUp() mgl32.Vec3      { return c.up }
func (c *Camera) Resolution() Resolution   { return c.resolution }
func (c *Camera) FOV() float32             { return c.fov }
func (c *Camera) AspectRatio() float32     { return c.aspectRatio }
func (c *Camera) Clipping() ClippingPlanes { return c.clipping }

// GetPerspectiveMatrix builds the frame projection from fov, aspect ratio and
// clipping planes. Depth maps near to -1 and far to +1 with w = view z.
func (c *Camera) GetPerspectiveMatrix() mgl32.Mat4 {
	fov := float64(mgl32.DegToRad(c.fov))
	f := float32(1.0 / math.Tan(fov/2.0))
	znear, zfar := c.clipping.Near, c.clipping.Far

	// columns
	return mgl32.Mat4{
		f / c.aspectRatio, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (zfar + znear) / (zfar - znear), 1,
		0, 0, -(2 * zfar * znear) / (zfar - znear), 0,
	}
}

// GetViewMatrix builds the world to camera transform by orthogonalizing the
// camera direction against world up. It fails when the camera looks along up.
func (c *Camera) GetViewMatrix() (mgl32.Mat4, error) {
	s, err := Normalize(c.up.Cross(c.direction.Vec3()))
	if err != nil {
		return mgl32.Mat4{}, errors.Wrap(err, "camera direction is parallel to world up")
	}
	f := c.direction.Vec3()
	u := f.Cross(s.Vec3())
	r := s.Vec3()

	p := mgl32.Vec3{
		-c.position.Dot(r),
		-c.position.Dot(u),
		-c.position.Dot(f),
	}

	return mgl32.Mat4{
		r[0], u[0], f[0], 0,
		r[1], u[1], f[1], 0,
		r[2], u[2], f[2], 0,
		p[0], p[1], p[2], 1,
	}, nil
}
