package scene

import gm "github.com/Faultbox/gamemath/pkg/math"

// CrossTool shows p, q and p × q as lines from the origin.
type CrossTool struct {
	P, Q gm.Vec3
}

// NewCrossTool returns a cross product tool at its default inputs.
func NewCrossTool() *CrossTool {
	t := &CrossTool{}
	t.Reset()
	return t
}

// Name implements Tool.
func (t *CrossTool) Name() string { return "cross" }

// Reset restores p = +Y and q = +X.
func (t *CrossTool) Reset() {
	t.P = gm.Vec3{X: 0, Y: 1, Z: 0}
	t.Q = gm.Vec3{X: 1, Y: 0, Z: 0}
}

// Frame implements Tool.
func (t *CrossTool) Frame() (Frame, error) {
	pxq := gm.CrossViaMatrix(t.P, t.Q)

	f := newFrame(t.Name())
	f.Vectors["p"] = t.P
	f.Vectors["q"] = t.Q
	f.Vectors["pxq"] = pxq

	f.Markers = append(f.Markers, Marker{At: pxq, Radius: 0.05, Color: Blue})

	var origin gm.Vec3
	for _, v := range []struct {
		at    gm.Vec3
		text  string
		color Color
	}{
		{t.P, "P", Green},
		{t.Q, "Q", Red},
		{pxq, "PXQ", Blue},
	} {
		f.label(v.at, v.text, v.color)
		f.line(v.at, origin, v.color)
	}
	return f, nil
}
