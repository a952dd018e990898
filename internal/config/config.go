// Package config handles gamemath configuration loading and management.
package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	gm "github.com/Faultbox/gamemath/pkg/math"
	"go.uber.org/multierr"
)

// Angle limits of the interactive tools, in degrees.
const (
	MaxEulerAngle      = 180
	MaxQuaternionAngle = 360
)

// Config holds the inputs of every tool plus output and logging settings.
type Config struct {
	Cross      CrossConfig      `yaml:"cross"`
	Dot        DotConfig        `yaml:"dot"`
	Euler      EulerConfig      `yaml:"euler"`
	Quaternion QuaternionConfig `yaml:"quaternion"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Vector is a point written as a YAML sequence [x, y, z].
type Vector [3]float64

// Vec3 converts the vector to the kernel type.
func (v Vector) Vec3() gm.Vec3 {
	return gm.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// FromVec3 converts a kernel vector.
func FromVec3(v gm.Vec3) Vector {
	return Vector{v.X, v.Y, v.Z}
}

// ParseVector parses "x,y,z".
func ParseVector(s string) (Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vector{}, fmt.Errorf("vector %q: want x,y,z", s)
	}
	var v Vector
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Vector{}, fmt.Errorf("vector %q: %w", s, err)
		}
		v[i] = f
	}
	return v, nil
}

// String formats the vector the way ParseVector reads it.
func (v Vector) String() string {
	return fmt.Sprintf("%g,%g,%g", v[0], v[1], v[2])
}

// Set implements flag.Value.
func (v *Vector) Set(s string) error {
	parsed, err := ParseVector(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// CrossConfig holds the operands of the cross product tool.
type CrossConfig struct {
	P Vector `yaml:"p"`
	Q Vector `yaml:"q"`
}

// DotConfig holds the two ray targets and the vertex of the dot product tool.
type DotConfig struct {
	P0 Vector `yaml:"p0"`
	P1 Vector `yaml:"p1"`
	C  Vector `yaml:"c"`
}

// EulerConfig holds the Euler angles in degrees.
type EulerConfig struct {
	AngleX float64 `yaml:"angle_x"`
	AngleY float64 `yaml:"angle_y"`
	AngleZ float64 `yaml:"angle_z"`
}

// QuaternionConfig holds the axis-angle rotation of the quaternion tool.
type QuaternionConfig struct {
	Angle float64 `yaml:"angle"` // degrees
	Axis  Vector  `yaml:"axis"`
}

// OutputConfig controls how command results are printed.
type OutputConfig struct {
	Format    string `yaml:"format"` // text, yaml or json
	Precision int    `yaml:"precision"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with the tools' starting values.
func Default() *Config {
	return &Config{
		Cross: CrossConfig{
			P: Vector{0, 1, 0},
			Q: Vector{1, 0, 0},
		},
		Dot: DotConfig{
			P0: Vector{0, 1, 0},
			P1: Vector{0.5, 0.5, 0},
			C:  Vector{0, 0, 0},
		},
		Quaternion: QuaternionConfig{
			Angle: 0,
			Axis:  Vector{0, 1, 0},
		},
		Output: OutputConfig{
			Format:    "text",
			Precision: 3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every out-of-range or non-finite setting at once.
func (c *Config) Validate() error {
	var err error

	vectors := []struct {
		name string
		v    Vector
	}{
		{"cross.p", c.Cross.P},
		{"cross.q", c.Cross.Q},
		{"dot.p0", c.Dot.P0},
		{"dot.p1", c.Dot.P1},
		{"dot.c", c.Dot.C},
		{"quaternion.axis", c.Quaternion.Axis},
	}
	for _, nv := range vectors {
		if !nv.v.Vec3().IsFinite() {
			err = multierr.Append(err, fmt.Errorf("%s: non-finite component in %v", nv.name, nv.v))
		}
	}

	err = multierr.Append(err, checkRange("euler.angle_x", c.Euler.AngleX, MaxEulerAngle))
	err = multierr.Append(err, checkRange("euler.angle_y", c.Euler.AngleY, MaxEulerAngle))
	err = multierr.Append(err, checkRange("euler.angle_z", c.Euler.AngleZ, MaxEulerAngle))
	err = multierr.Append(err, checkRange("quaternion.angle", c.Quaternion.Angle, MaxQuaternionAngle))

	if c.Quaternion.Axis.Vec3().Length() == 0 {
		err = multierr.Append(err, fmt.Errorf("quaternion.axis: %w", gm.ErrDegenerateAxis))
	}

	switch c.Output.Format {
	case "text", "yaml", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("output.format: unknown format %q", c.Output.Format))
	}
	if c.Output.Precision < 0 || c.Output.Precision > 10 {
		err = multierr.Append(err, fmt.Errorf("output.precision: %d not in [0, 10]", c.Output.Precision))
	}

	return err
}

func checkRange(name string, deg, limit float64) error {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return fmt.Errorf("%s: %w", name, gm.ErrInvalidAngle)
	}
	if deg < -limit || deg > limit {
		return fmt.Errorf("%s: %v not in [%v, %v]", name, deg, -limit, limit)
	}
	return nil
}
