// Package scene holds the state of the interactive math tools and turns it
// into drawable geometry by calling the math kernel once per frame.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gamemath/internal/logger"
	gm "github.com/Faultbox/gamemath/pkg/math"
)

// Color names a display color. The frame only carries the name.
type Color string

// Colors used by the tools.
const (
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"
	Cyan  Color = "cyan"
	White Color = "white"
	Black Color = "black"
)

// Segment is a line between two points.
type Segment struct {
	From  gm.Vec3 `yaml:"from" json:"from"`
	To    gm.Vec3 `yaml:"to" json:"to"`
	Color Color   `yaml:"color" json:"color"`
}

// Marker is a sphere or disc drawn at a point.
type Marker struct {
	At     gm.Vec3 `yaml:"at" json:"at"`
	Radius float64 `yaml:"radius" json:"radius"`
	Color  Color   `yaml:"color" json:"color"`
}

// Label is text anchored at a point.
type Label struct {
	At    gm.Vec3 `yaml:"at" json:"at"`
	Text  string  `yaml:"text" json:"text"`
	Color Color   `yaml:"color" json:"color"`
}

// Frame is everything a display needs to draw one tool for one redraw.
type Frame struct {
	Tool     string             `yaml:"tool" json:"tool"`
	Vectors  map[string]gm.Vec3 `yaml:"vectors,omitempty" json:"vectors,omitempty"`
	Scalars  map[string]float64 `yaml:"scalars,omitempty" json:"scalars,omitempty"`
	Segments []Segment          `yaml:"segments,omitempty" json:"segments,omitempty"`
	Markers  []Marker           `yaml:"markers,omitempty" json:"markers,omitempty"`
	Labels   []Label            `yaml:"labels,omitempty" json:"labels,omitempty"`
}

func newFrame(tool string) Frame {
	return Frame{
		Tool:    tool,
		Vectors: make(map[string]gm.Vec3),
		Scalars: make(map[string]float64),
	}
}

func (f *Frame) line(from, to gm.Vec3, color Color) {
	f.Segments = append(f.Segments, Segment{From: from, To: to, Color: color})
}

func (f *Frame) outline(o Outline, color Color) {
	f.Segments = append(f.Segments, o.Segments(color)...)
}

func (f *Frame) markers(points []gm.Vec3, radius float64, color Color) {
	for _, p := range points {
		f.Markers = append(f.Markers, Marker{At: p, Radius: radius, Color: color})
	}
}

func (f *Frame) label(at gm.Vec3, text string, color Color) {
	f.Labels = append(f.Labels, Label{At: at, Text: text, Color: color})
}

// Tool is one interactive visualization. The display owns the tool, edits
// its inputs and calls Frame on every redraw.
type Tool interface {
	Name() string
	Reset()
	Frame() (Frame, error)
}

// Render builds the tool's frame and logs the outcome.
func Render(t Tool) (Frame, error) {
	log := logger.Named("scene", zap.String("tool", t.Name()))

	f, err := t.Frame()
	if err != nil {
		log.Warn("frame failed", zap.Error(err))
		return Frame{}, fmt.Errorf("%s: %w", t.Name(), err)
	}

	log.Debug("frame built",
		zap.Int("segments", len(f.Segments)),
		zap.Int("markers", len(f.Markers)),
		zap.Int("labels", len(f.Labels)),
	)
	return f, nil
}

func clamp(v, limit float64) float64 {
	if v < -limit {
		return -limit
	}
	if v > limit {
		return limit
	}
	return v
}
