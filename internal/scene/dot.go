package scene

import (
	"fmt"
	"math"

	gm "github.com/Faultbox/gamemath/pkg/math"
)

// DotTool measures the angle at vertex C between the rays towards P0 and P1.
type DotTool struct {
	P0, P1, C gm.Vec3
}

// NewDotTool returns a dot product tool at its default inputs.
func NewDotTool() *DotTool {
	t := &DotTool{}
	t.Reset()
	return t
}

// Name implements Tool.
func (t *DotTool) Name() string { return "dot" }

// Reset restores the 45 degree starting angle at the origin.
func (t *DotTool) Reset() {
	t.P0 = gm.Vec3{X: 0, Y: 1, Z: 0}
	t.P1 = gm.Vec3{X: 0.5, Y: 0.5, Z: 0}
	t.C = gm.Vec3{}
}

// Frame implements Tool. The label at C shows the cosine with one decimal.
func (t *DotTool) Frame() (Frame, error) {
	cos, err := gm.AngleCosine(t.P0, t.P1, t.C)
	if err != nil {
		return Frame{}, err
	}

	left, err := WorldRotation(t.P0, t.C, gm.Vec3{X: 0, Y: 1, Z: 0})
	if err != nil {
		return Frame{}, err
	}
	right, err := WorldRotation(t.P0, t.C, gm.Vec3{X: 0, Y: -1, Z: 0})
	if err != nil {
		return Frame{}, err
	}

	f := newFrame(t.Name())
	f.Vectors["p0"] = t.P0
	f.Vectors["p1"] = t.P1
	f.Vectors["c"] = t.C
	f.Scalars["cosine"] = cos

	f.markers([]gm.Vec3{t.P0}, 0.15, Red)
	f.markers([]gm.Vec3{t.P1}, 0.15, Green)
	f.markers([]gm.Vec3{t.C}, 0.15, White)

	f.label(t.C, fmt.Sprintf("%.1f", cos), White)
	f.line(t.P0, t.C, Black)
	f.line(t.P1, t.C, Black)
	f.line(t.C, left, Black)
	f.line(t.C, right, Black)
	return f, nil
}

// WorldRotation turns offset by the heading of p - c in the XY plane, about
// +Z, and places it at c. A p directly above or below c has heading 0.
func WorldRotation(p, c, offset gm.Vec3) (gm.Vec3, error) {
	d := p.Sub(c)
	heading := gm.Degrees(math.Atan2(d.Y, d.X))

	r, err := gm.QuatRotate(offset, gm.Vec3{X: 0, Y: 0, Z: 1}, heading)
	if err != nil {
		return gm.Vec3{}, err
	}
	return c.Add(r), nil
}
