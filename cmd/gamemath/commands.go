package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/gamemath/internal/config"
	"github.com/Faultbox/gamemath/internal/logger"
	"github.com/Faultbox/gamemath/internal/scene"
	gm "github.com/Faultbox/gamemath/pkg/math"
)

type crossResult struct {
	P      gm.Vec3 `yaml:"p" json:"p"`
	Q      gm.Vec3 `yaml:"q" json:"q"`
	Direct gm.Vec3 `yaml:"direct" json:"direct"`
	Matrix gm.Vec3 `yaml:"matrix" json:"matrix"`
}

func cmdCross(cfg *config.Config, out *printer, args []string) error {
	fs := flag.NewFlagSet("cross", flag.ContinueOnError)
	fs.Var(&cfg.Cross.P, "p", "First operand x,y,z")
	fs.Var(&cfg.Cross.Q, "q", "Second operand x,y,z")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, q := cfg.Cross.P.Vec3(), cfg.Cross.Q.Vec3()
	res := crossResult{P: p, Q: q, Direct: p.Cross(q), Matrix: gm.CrossViaMatrix(p, q)}

	return out.emit(res, func(w io.Writer) {
		fmt.Fprintf(w, "p          %s\n", out.vec(p))
		fmt.Fprintf(w, "q          %s\n", out.vec(q))
		fmt.Fprintf(w, "M(q)       %s\n", out.mat(gm.CrossMatrix(q)))
		fmt.Fprintf(w, "p x q      %s\n", out.vec(res.Direct))
		fmt.Fprintf(w, "M(q) * p   %s\n", out.vec(res.Matrix))
	})
}

type dotResult struct {
	P0     gm.Vec3 `yaml:"p0" json:"p0"`
	P1     gm.Vec3 `yaml:"p1" json:"p1"`
	C      gm.Vec3 `yaml:"c" json:"c"`
	Cosine float64 `yaml:"cosine" json:"cosine"`
	Angle  float64 `yaml:"angle_deg" json:"angle_deg"`
}

func cmdDot(cfg *config.Config, out *printer, args []string) error {
	fs := flag.NewFlagSet("dot", flag.ContinueOnError)
	fs.Var(&cfg.Dot.P0, "p0", "First ray target x,y,z")
	fs.Var(&cfg.Dot.P1, "p1", "Second ray target x,y,z")
	fs.Var(&cfg.Dot.C, "c", "Vertex x,y,z")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	res := dotResult{P0: cfg.Dot.P0.Vec3(), P1: cfg.Dot.P1.Vec3(), C: cfg.Dot.C.Vec3()}
	var err error
	if res.Cosine, err = gm.AngleCosine(res.P0, res.P1, res.C); err != nil {
		return err
	}
	if res.Angle, err = gm.AngleBetween(res.P0, res.P1, res.C); err != nil {
		return err
	}

	return out.emit(res, func(w io.Writer) {
		fmt.Fprintf(w, "cos  %s\n", out.num(res.Cosine))
		fmt.Fprintf(w, "deg  %s\n", out.num(res.Angle))
	})
}

type eulerResult struct {
	AngleX float64   `yaml:"angle_x" json:"angle_x"`
	AngleY float64   `yaml:"angle_y" json:"angle_y"`
	AngleZ float64   `yaml:"angle_z" json:"angle_z"`
	Matrix gm.Mat3   `yaml:"matrix" json:"matrix"`
	Points []gm.Vec3 `yaml:"points" json:"points"`
}

func cmdEuler(cfg *config.Config, out *printer, args []string) error {
	fs := flag.NewFlagSet("euler", flag.ContinueOnError)
	fs.Float64Var(&cfg.Euler.AngleX, "x", cfg.Euler.AngleX, "Roll angle in degrees")
	fs.Float64Var(&cfg.Euler.AngleY, "y", cfg.Euler.AngleY, "Pitch angle in degrees")
	fs.Float64Var(&cfg.Euler.AngleZ, "z", cfg.Euler.AngleZ, "Yaw angle in degrees")
	pointsFlag := fs.String("points", "", "Points to rotate, x,y,z;x,y,z;... (default: arrow outline)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	points := []gm.Vec3(scene.Arrow())
	if *pointsFlag != "" {
		var err error
		if points, err = parsePoints(*pointsFlag); err != nil {
			return err
		}
	}

	e := cfg.Euler
	m, err := gm.ComposeEuler(e.AngleX, e.AngleY, e.AngleZ)
	if err != nil {
		return err
	}
	res := eulerResult{AngleX: e.AngleX, AngleY: e.AngleY, AngleZ: e.AngleZ, Matrix: m, Points: gm.ApplyToSequence(m, points)}

	return out.emit(res, func(w io.Writer) {
		fmt.Fprintf(w, "Pitch(%s) * Roll(%s) * Yaw(%s)\n", out.num(e.AngleY), out.num(e.AngleX), out.num(e.AngleZ))
		fmt.Fprintf(w, "%s\n\n", out.mat(m))
		for i, p := range res.Points {
			fmt.Fprintf(w, "%3d  %s -> %s\n", i, out.vec(points[i]), out.vec(p))
		}
	})
}

type quatResult struct {
	Axis       gm.Vec3 `yaml:"axis" json:"axis"`
	Angle      float64 `yaml:"angle_deg" json:"angle_deg"`
	Quaternion gm.Quat `yaml:"quaternion" json:"quaternion"`
	Point      gm.Vec3 `yaml:"point" json:"point"`
	Rotated    gm.Vec3 `yaml:"rotated" json:"rotated"`
}

func cmdQuat(cfg *config.Config, out *printer, args []string) error {
	point := config.Vector{1, 0, 0}

	fs := flag.NewFlagSet("quat", flag.ContinueOnError)
	fs.Float64Var(&cfg.Quaternion.Angle, "angle", cfg.Quaternion.Angle, "Rotation angle in degrees")
	fs.Var(&cfg.Quaternion.Axis, "axis", "Rotation axis x,y,z")
	fs.Var(&point, "point", "Point to rotate x,y,z")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !point.Vec3().IsFinite() {
		return fmt.Errorf("point %v: non-finite component", point)
	}

	res := quatResult{Axis: cfg.Quaternion.Axis.Vec3(), Angle: cfg.Quaternion.Angle, Point: point.Vec3()}
	q, err := gm.QuatFromAxisAngle(res.Axis, gm.Radians(res.Angle))
	if err != nil {
		return err
	}
	res.Quaternion = q
	res.Rotated = q.Rotate(res.Point)

	return out.emit(res, func(w io.Writer) {
		fmt.Fprintf(w, "q        %s + %si + %sj + %sk\n", out.num(q.W), out.num(q.X), out.num(q.Y), out.num(q.Z))
		fmt.Fprintf(w, "point    %s\n", out.vec(res.Point))
		fmt.Fprintf(w, "rotated  %s\n", out.vec(res.Rotated))
	})
}

func cmdScene(cfg *config.Config, out *printer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: gamemath scene <%s>", strings.Join(scene.Names(), "|"))
	}

	tool, err := scene.New(args[0], cfg)
	if err != nil {
		return err
	}
	frame, err := scene.Render(tool)
	if err != nil {
		return err
	}

	return out.emit(frame, func(w io.Writer) {
		writeFrame(w, out, frame)
	})
}

func cmdConfig(cfg *config.Config, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	save := fs.Bool("save", false, "Save to the user config directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *save:
		if err := cfg.Save(); err != nil {
			return err
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		return nil
	case fs.NArg() > 0:
		if err := cfg.SaveTo(fs.Arg(0)); err != nil {
			return err
		}
		logger.Info("config written", zap.String("path", fs.Arg(0)))
		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func parsePoints(s string) ([]gm.Vec3, error) {
	var points []gm.Vec3
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := config.ParseVector(part)
		if err != nil {
			return nil, err
		}
		if !v.Vec3().IsFinite() {
			return nil, fmt.Errorf("point %v: non-finite component", v)
		}
		points = append(points, v.Vec3())
	}
	return points, nil
}
