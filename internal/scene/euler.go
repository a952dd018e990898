package scene

import (
	"github.com/Faultbox/gamemath/internal/config"
	gm "github.com/Faultbox/gamemath/pkg/math"
)

// EulerTool rotates three guide circles and an arrow by Euler angles.
//
// The circles show the gimbal: the Y circle only follows pitch, the X and Z
// circles follow roll then pitch, and the arrow takes the full
// yaw, roll, pitch chain.
type EulerTool struct {
	AngleX, AngleY, AngleZ float64 // degrees
}

// NewEulerTool returns an Euler tool with all angles at zero.
func NewEulerTool() *EulerTool {
	return &EulerTool{}
}

// Name implements Tool.
func (t *EulerTool) Name() string { return "euler" }

// Reset zeroes the angles.
func (t *EulerTool) Reset() {
	t.AngleX, t.AngleY, t.AngleZ = 0, 0, 0
}

// Frame implements Tool. Angles are clamped to the slider range first.
func (t *EulerTool) Frame() (Frame, error) {
	x := clamp(t.AngleX, config.MaxEulerAngle)
	y := clamp(t.AngleY, config.MaxEulerAngle)
	z := clamp(t.AngleZ, config.MaxEulerAngle)

	em, err := gm.NewEulerMatrices(x, y, z)
	if err != nil {
		return Frame{}, err
	}
	pitchRoll := em.Pitch.Mul(em.Roll)

	circleY := CircleY().Transform(em.Pitch)
	circleX := CircleX().Transform(pitchRoll)
	circleZ := CircleZ().Transform(pitchRoll)
	arrow := Arrow().Transform(em.Compose())

	f := newFrame(t.Name())
	f.Scalars["angle_x"] = x
	f.Scalars["angle_y"] = y
	f.Scalars["angle_z"] = z

	f.markers(circleY, 0.05, Green)
	f.markers(circleX, 0.05, Red)
	f.markers(circleZ, 0.05, Cyan)

	f.outline(circleY, Green)
	f.outline(circleX, Red)
	f.outline(circleZ, Blue)
	f.outline(arrow, White)

	f.Vectors["arrow_tip"] = arrow[3]
	return f, nil
}
