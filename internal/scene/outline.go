package scene

import gm "github.com/Faultbox/gamemath/pkg/math"

// Outline is a closed polyline: consecutive points are joined and the last
// point connects back to the first.
type Outline []gm.Vec3

// Edges returns index pairs (i, i+1 mod n).
func (o Outline) Edges() [][2]int {
	if len(o) < 2 {
		return nil
	}
	edges := make([][2]int, len(o))
	for i := range o {
		edges[i] = [2]int{i, (i + 1) % len(o)}
	}
	return edges
}

// Segments returns the outline's edges as colored segments.
func (o Outline) Segments(color Color) []Segment {
	edges := o.Edges()
	segs := make([]Segment, len(edges))
	for i, e := range edges {
		segs[i] = Segment{From: o[e[0]], To: o[e[1]], Color: color}
	}
	return segs
}

// Transform applies m to every point, keeping order.
func (o Outline) Transform(m gm.Mat3) Outline {
	return Outline(gm.ApplyToSequence(m, o))
}

// Mesh is a set of vertices joined by explicit edges.
type Mesh struct {
	Vertices []gm.Vec3
	Edges    [][2]int
}

// Segments returns the mesh edges as colored segments.
func (m Mesh) Segments(color Color) []Segment {
	segs := make([]Segment, len(m.Edges))
	for i, e := range m.Edges {
		segs[i] = Segment{From: m.Vertices[e[0]], To: m.Vertices[e[1]], Color: color}
	}
	return segs
}

func scaled(points []gm.Vec3, s float64) []gm.Vec3 {
	out := make([]gm.Vec3, len(points))
	for i, p := range points {
		out[i] = p.Scale(s)
	}
	return out
}

// Guide circles of the Euler tool: eight vertices each, 0.71 ≈ √2/2.

// CircleY lies in the XZ plane, radius 1.
func CircleY() Outline {
	return Outline{
		{X: 0.00, Y: 0, Z: -1.00},
		{X: 0.71, Y: 0, Z: -0.71},
		{X: 1.00, Y: 0, Z: 0.00},
		{X: 0.71, Y: 0, Z: 0.71},
		{X: 0.00, Y: 0, Z: 1.00},
		{X: -0.71, Y: 0, Z: 0.71},
		{X: -1.00, Y: 0, Z: 0.00},
		{X: -0.71, Y: 0, Z: -0.71},
	}
}

// CircleX lies in the YZ plane, radius 0.9.
func CircleX() Outline {
	return Outline(scaled([]gm.Vec3{
		{X: 0, Y: 1.00, Z: 0.00},
		{X: 0, Y: 0.71, Z: -0.71},
		{X: 0, Y: 0.00, Z: -1.00},
		{X: 0, Y: -0.71, Z: -0.71},
		{X: 0, Y: -1.00, Z: 0.00},
		{X: 0, Y: -0.71, Z: 0.71},
		{X: 0, Y: 0.00, Z: 1.00},
		{X: 0, Y: 0.71, Z: 0.71},
	}, 0.9))
}

// CircleZ lies in the XY plane, radius 0.8.
func CircleZ() Outline {
	return Outline(scaled([]gm.Vec3{
		{X: 0.00, Y: 1.00, Z: 0},
		{X: 0.71, Y: 0.71, Z: 0},
		{X: 1.00, Y: 0.00, Z: 0},
		{X: 0.71, Y: -0.71, Z: 0},
		{X: 0.00, Y: -1.00, Z: 0},
		{X: -0.71, Y: -0.71, Z: 0},
		{X: -1.00, Y: 0.00, Z: 0},
		{X: -0.71, Y: 0.71, Z: 0},
	}, 0.8))
}

// Arrow is a flat arrow in the XZ plane pointing down -Z.
func Arrow() Outline {
	return Outline(scaled([]gm.Vec3{
		{X: 0.20, Y: 0, Z: 0.00},
		{X: 0.20, Y: 0, Z: -0.50},
		{X: 0.35, Y: 0, Z: -0.50},
		{X: 0.00, Y: 0, Z: -1.00},
		{X: -0.35, Y: 0, Z: -0.50},
		{X: -0.20, Y: 0, Z: -0.50},
		{X: -0.20, Y: 0, Z: 0.00},
	}, 0.5))
}

// Cube returns the unit cube centered at the origin.
func Cube() Mesh {
	return Mesh{
		Vertices: []gm.Vec3{
			{X: -0.5, Y: 0.5, Z: 0.5},
			{X: 0.5, Y: 0.5, Z: 0.5},
			{X: 0.5, Y: -0.5, Z: 0.5},
			{X: -0.5, Y: -0.5, Z: 0.5},
			{X: -0.5, Y: 0.5, Z: -0.5},
			{X: 0.5, Y: 0.5, Z: -0.5},
			{X: 0.5, Y: -0.5, Z: -0.5},
			{X: -0.5, Y: -0.5, Z: -0.5},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{4, 0}, {5, 1}, {6, 2}, {7, 3},
		},
	}
}
