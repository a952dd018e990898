package scene

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Faultbox/gamemath/internal/config"
	gm "github.com/Faultbox/gamemath/pkg/math"
)

const tol = 1e-9

func assertVec(t *testing.T, name string, got, want gm.Vec3) {
	t.Helper()
	if !got.ApproxEqual(want, tol) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func mustFrame(t *testing.T, tool Tool) Frame {
	t.Helper()
	f, err := tool.Frame()
	if err != nil {
		t.Fatalf("%s frame: %v", tool.Name(), err)
	}
	return f
}

func TestOutlineEdgesWrap(t *testing.T) {
	o := Outline{{X: 0}, {X: 1}, {X: 2}}
	want := [][2]int{{0, 1}, {1, 2}, {2, 0}}

	edges := o.Edges()
	if len(edges) != len(want) {
		t.Fatalf("got %d edges, want %d", len(edges), len(want))
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Errorf("edge %d = %v, want %v", i, edges[i], want[i])
		}
	}

	segs := o.Segments(Red)
	if segs[2].From != o[2] || segs[2].To != o[0] || segs[2].Color != Red {
		t.Errorf("closing segment = %+v", segs[2])
	}

	if (Outline{{X: 1}}).Edges() != nil {
		t.Error("a single point has no edges")
	}
}

func TestFixtures(t *testing.T) {
	tests := []struct {
		name   string
		o      Outline
		n      int
		radius float64
	}{
		{"circle y", CircleY(), 8, 1},
		{"circle x", CircleX(), 8, 0.9},
		{"circle z", CircleZ(), 8, 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.o) != tt.n {
				t.Fatalf("got %d points, want %d", len(tt.o), tt.n)
			}
			// 0.71 is rounded, so the radius only holds to two digits.
			for _, p := range tt.o {
				if math.Abs(p.Length()-tt.radius) > 0.01 {
					t.Errorf("point %v off radius %v", p, tt.radius)
				}
			}
		})
	}

	if n := len(Arrow()); n != 7 {
		t.Errorf("arrow has %d points, want 7", n)
	}
	cube := Cube()
	if len(cube.Vertices) != 8 || len(cube.Edges) != 12 {
		t.Errorf("cube has %d vertices and %d edges", len(cube.Vertices), len(cube.Edges))
	}
	for _, e := range cube.Edges {
		if d := cube.Vertices[e[0]].Distance(cube.Vertices[e[1]]); math.Abs(d-1) > tol {
			t.Errorf("cube edge %v has length %v", e, d)
		}
	}
}

func TestCrossToolDefault(t *testing.T) {
	f := mustFrame(t, NewCrossTool())

	assertVec(t, "pxq", f.Vectors["pxq"], gm.Vec3{X: 0, Y: 0, Z: -1})
	if len(f.Segments) != 3 || len(f.Labels) != 3 || len(f.Markers) != 1 {
		t.Fatalf("unexpected geometry: %d segments, %d labels, %d markers",
			len(f.Segments), len(f.Labels), len(f.Markers))
	}
	if f.Labels[2].Text != "PXQ" || f.Labels[2].Color != Blue {
		t.Errorf("unexpected label %+v", f.Labels[2])
	}
	if f.Segments[0].To != (gm.Vec3{}) {
		t.Errorf("lines should end at the origin, got %v", f.Segments[0].To)
	}
}

func TestCrossToolMatchesDirect(t *testing.T) {
	tool := &CrossTool{P: gm.Vec3{X: 1, Y: 2, Z: 3}, Q: gm.Vec3{X: -4, Y: 0.5, Z: 2}}
	f := mustFrame(t, tool)
	assertVec(t, "pxq", f.Vectors["pxq"], tool.P.Cross(tool.Q))
	assertVec(t, "marker", f.Markers[0].At, tool.P.Cross(tool.Q))
}

func TestDotToolDefault(t *testing.T) {
	f := mustFrame(t, NewDotTool())

	if got := f.Scalars["cosine"]; math.Abs(got-math.Sqrt2/2) > tol {
		t.Errorf("cosine = %v, want %v", got, math.Sqrt2/2)
	}
	if f.Labels[0].Text != "0.7" {
		t.Errorf("label = %q, want 0.7", f.Labels[0].Text)
	}
	if len(f.Segments) != 4 {
		t.Fatalf("got %d segments, want 4", len(f.Segments))
	}
	// P0 is straight up from C, so the guide arms point along -X and +X.
	assertVec(t, "left arm", f.Segments[2].To, gm.Vec3{X: -1})
	assertVec(t, "right arm", f.Segments[3].To, gm.Vec3{X: 1})
}

func TestDotToolDegenerate(t *testing.T) {
	tool := NewDotTool()
	tool.C = tool.P1

	_, err := tool.Frame()
	if !errors.Is(err, gm.ErrDegenerateVector) {
		t.Errorf("expected ErrDegenerateVector, got %v", err)
	}
}

func TestWorldRotation(t *testing.T) {
	c := gm.Vec3{X: 1, Y: 1, Z: 0}

	got, err := WorldRotation(gm.Vec3{X: 3, Y: 1, Z: 5}, c, gm.Vec3{Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	assertVec(t, "heading 0", got, gm.Vec3{X: 1, Y: 2})

	got, err = WorldRotation(gm.Vec3{X: 0, Y: 0, Z: 0}, c, gm.Vec3{Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	// Heading -135 degrees turns +Y to (sqrt2/2, -sqrt2/2).
	assertVec(t, "heading -135", got, gm.Vec3{X: 1 + math.Sqrt2/2, Y: 1 - math.Sqrt2/2})

	got, err = WorldRotation(c, c, gm.Vec3{Y: -1})
	if err != nil {
		t.Fatal(err)
	}
	assertVec(t, "coincident", got, gm.Vec3{X: 1, Y: 0})
}

func TestEulerToolZero(t *testing.T) {
	f := mustFrame(t, NewEulerTool())

	if len(f.Markers) != 24 {
		t.Errorf("got %d markers, want 24", len(f.Markers))
	}
	if len(f.Segments) != 8+8+8+7 {
		t.Errorf("got %d segments, want 31", len(f.Segments))
	}
	for i, p := range CircleY() {
		assertVec(t, "circle y", f.Markers[i].At, p)
	}
	assertVec(t, "arrow tip", f.Vectors["arrow_tip"], gm.Vec3{Z: -0.5})
}

func TestEulerToolYawOnlyMovesArrow(t *testing.T) {
	f := mustFrame(t, &EulerTool{AngleZ: 90})

	for i, p := range append(append(CircleY(), CircleX()...), CircleZ()...) {
		assertVec(t, "circle", f.Markers[i].At, p)
	}
	// First arrow segment starts at arrow[0] = (0.1, 0, 0), yawed to +Y.
	assertVec(t, "arrow start", f.Segments[24].From, gm.Vec3{Y: 0.1})
	assertVec(t, "arrow tip", f.Vectors["arrow_tip"], gm.Vec3{Z: -0.5})
}

func TestEulerToolPitch(t *testing.T) {
	f := mustFrame(t, &EulerTool{AngleY: 90})

	// Pitch turns -Z to +X.
	assertVec(t, "circle y start", f.Markers[0].At, gm.Vec3{X: 1})
	assertVec(t, "arrow tip", f.Vectors["arrow_tip"], gm.Vec3{X: 0.5})
}

func TestEulerToolArrowUsesComposedOrder(t *testing.T) {
	tool := &EulerTool{AngleX: 30, AngleY: -60, AngleZ: 120}
	f := mustFrame(t, tool)

	m, err := gm.ComposeEuler(30, -60, 120)
	if err != nil {
		t.Fatal(err)
	}
	assertVec(t, "arrow tip", f.Vectors["arrow_tip"], m.MulVec(Arrow()[3]))
}

func TestEulerToolClampAndInvalid(t *testing.T) {
	f := mustFrame(t, &EulerTool{AngleX: 500, AngleY: -200})
	if f.Scalars["angle_x"] != 180 || f.Scalars["angle_y"] != -180 {
		t.Errorf("angles not clamped: %v", f.Scalars)
	}

	_, err := (&EulerTool{AngleZ: math.NaN()}).Frame()
	if !errors.Is(err, gm.ErrInvalidAngle) {
		t.Errorf("expected ErrInvalidAngle, got %v", err)
	}
}

func TestQuatTool(t *testing.T) {
	f := mustFrame(t, NewQuatTool())
	if len(f.Markers) != 8 || len(f.Segments) != 12 {
		t.Fatalf("got %d markers and %d segments", len(f.Markers), len(f.Segments))
	}
	for i, v := range Cube().Vertices {
		assertVec(t, "identity", f.Markers[i].At, v)
	}

	f = mustFrame(t, &QuatTool{Angle: 90, Axis: gm.Vec3{Y: 1}})
	assertVec(t, "vertex 0", f.Markers[0].At, gm.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
	for _, m := range f.Markers {
		if math.Abs(m.At.Length()-math.Sqrt(0.75)) > tol {
			t.Errorf("vertex %v moved off the cube's sphere", m.At)
		}
	}
}

func TestQuatToolClampAndErrors(t *testing.T) {
	f := mustFrame(t, &QuatTool{Angle: 400, Axis: gm.Vec3{Z: 1}})
	if f.Scalars["angle"] != 360 {
		t.Errorf("angle not clamped: %v", f.Scalars["angle"])
	}

	_, err := (&QuatTool{Angle: 10}).Frame()
	if !errors.Is(err, gm.ErrDegenerateAxis) {
		t.Errorf("expected ErrDegenerateAxis, got %v", err)
	}
}

func TestReset(t *testing.T) {
	cross := &CrossTool{}
	cross.Reset()
	if cross.P != (gm.Vec3{Y: 1}) || cross.Q != (gm.Vec3{X: 1}) {
		t.Errorf("cross reset: %+v", cross)
	}

	euler := &EulerTool{AngleX: 1, AngleY: 2, AngleZ: 3}
	euler.Reset()
	if *euler != (EulerTool{}) {
		t.Errorf("euler reset: %+v", euler)
	}

	q := &QuatTool{Angle: 20}
	q.Reset()
	if q.Angle != 0 || q.Axis != (gm.Vec3{Y: 1}) {
		t.Errorf("quat reset: %+v", q)
	}
}

func TestRegistry(t *testing.T) {
	want := []string{"cross", "dot", "euler", "quat"}
	names := Names()
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, want %v", names, want)
	}

	cfg := config.Default()
	cfg.Euler.AngleZ = 45
	tool, err := New("euler", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if e, ok := tool.(*EulerTool); !ok || e.AngleZ != 45 {
		t.Errorf("New(euler) = %#v", tool)
	}

	for _, name := range names {
		tool, err := New(name, config.Default())
		if err != nil {
			t.Fatal(err)
		}
		if tool.Name() != name {
			t.Errorf("tool %q reports name %q", name, tool.Name())
		}
		if _, err := Render(tool); err != nil {
			t.Errorf("Render(%s) with defaults: %v", name, err)
		}
	}

	if _, err := New("slerp", cfg); err == nil {
		t.Error("expected error for unknown tool")
	}
}

func TestRenderWrapsError(t *testing.T) {
	_, err := Render(&QuatTool{Angle: 10})
	if err == nil || !strings.HasPrefix(err.Error(), "quat: ") {
		t.Errorf("expected error prefixed with tool name, got %v", err)
	}
	if !errors.Is(err, gm.ErrDegenerateAxis) {
		t.Errorf("expected wrapped ErrDegenerateAxis, got %v", err)
	}
}
