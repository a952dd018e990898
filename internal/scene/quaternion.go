package scene

import (
	"github.com/Faultbox/gamemath/internal/config"
	gm "github.com/Faultbox/gamemath/pkg/math"
)

// QuatTool rotates a unit cube around an axis with the quaternion kernel.
type QuatTool struct {
	Angle float64 // degrees
	Axis  gm.Vec3
}

// NewQuatTool returns a quaternion tool at its default inputs.
func NewQuatTool() *QuatTool {
	t := &QuatTool{}
	t.Reset()
	return t
}

// Name implements Tool.
func (t *QuatTool) Name() string { return "quat" }

// Reset restores angle 0 around +Y.
func (t *QuatTool) Reset() {
	t.Angle = 0
	t.Axis = gm.Vec3{X: 0, Y: 1, Z: 0}
}

// Frame implements Tool.
func (t *QuatTool) Frame() (Frame, error) {
	angle := clamp(t.Angle, config.MaxQuaternionAngle)

	cube := Cube()
	for i, v := range cube.Vertices {
		r, err := gm.QuatRotate(v, t.Axis, angle)
		if err != nil {
			return Frame{}, err
		}
		cube.Vertices[i] = r
	}

	f := newFrame(t.Name())
	f.Scalars["angle"] = angle
	f.Vectors["axis"] = t.Axis

	f.markers(cube.Vertices, 0.1, White)
	f.Segments = append(f.Segments, cube.Segments(White)...)
	return f, nil
}
