package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/gamemath/internal/config"
	"github.com/Faultbox/gamemath/internal/scene"
	gm "github.com/Faultbox/gamemath/pkg/math"
)

// printer writes command results in the configured format.
type printer struct {
	w      io.Writer
	format string
	prec   int
}

func newPrinter(w io.Writer, cfg config.OutputConfig) *printer {
	return &printer{w: w, format: cfg.Format, prec: cfg.Precision}
}

// emit encodes v as yaml or json, or calls text for the text format.
func (p *printer) emit(v any, text func(io.Writer)) error {
	switch p.format {
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		text(p.w)
		return nil
	}
}

// num formats f, dropping the sign of values that round to zero.
func (p *printer) num(f float64) string {
	s := fmt.Sprintf("%.*f", p.prec, f)
	if strings.Trim(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}

func (p *printer) vec(v gm.Vec3) string {
	return fmt.Sprintf("(%s, %s, %s)", p.num(v.X), p.num(v.Y), p.num(v.Z))
}

func (p *printer) mat(m gm.Mat3) string {
	var s string
	for r := 0; r < 3; r++ {
		if r > 0 {
			s += "\n"
		}
		s += fmt.Sprintf("[%s %s %s]", p.num(m.At(r, 0)), p.num(m.At(r, 1)), p.num(m.At(r, 2)))
	}
	return s
}

func writeFrame(w io.Writer, p *printer, f scene.Frame) {
	fmt.Fprintf(w, "Tool: %s\n", f.Tool)

	for _, k := range sortedKeys(f.Scalars) {
		fmt.Fprintf(w, "  %-10s %s\n", k, p.num(f.Scalars[k]))
	}
	for _, k := range sortedKeys(f.Vectors) {
		fmt.Fprintf(w, "  %-10s %s\n", k, p.vec(f.Vectors[k]))
	}

	fmt.Fprintf(w, "\nSegments (%d):\n", len(f.Segments))
	for _, s := range f.Segments {
		fmt.Fprintf(w, "  %-6s %s -> %s\n", s.Color, p.vec(s.From), p.vec(s.To))
	}
	if len(f.Markers) > 0 {
		fmt.Fprintf(w, "\nMarkers (%d):\n", len(f.Markers))
		for _, m := range f.Markers {
			fmt.Fprintf(w, "  %-6s %s r=%s\n", m.Color, p.vec(m.At), p.num(m.Radius))
		}
	}
	if len(f.Labels) > 0 {
		fmt.Fprintf(w, "\nLabels (%d):\n", len(f.Labels))
		for _, l := range f.Labels {
			fmt.Fprintf(w, "  %-6s %s %q\n", l.Color, p.vec(l.At), l.Text)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
