package scene

import (
	"fmt"
	"sort"

	"github.com/Faultbox/gamemath/internal/config"
)

var constructors = map[string]func(*config.Config) Tool{
	"cross": func(cfg *config.Config) Tool {
		return &CrossTool{P: cfg.Cross.P.Vec3(), Q: cfg.Cross.Q.Vec3()}
	},
	"dot": func(cfg *config.Config) Tool {
		return &DotTool{P0: cfg.Dot.P0.Vec3(), P1: cfg.Dot.P1.Vec3(), C: cfg.Dot.C.Vec3()}
	},
	"euler": func(cfg *config.Config) Tool {
		return &EulerTool{AngleX: cfg.Euler.AngleX, AngleY: cfg.Euler.AngleY, AngleZ: cfg.Euler.AngleZ}
	},
	"quat": func(cfg *config.Config) Tool {
		return &QuatTool{Angle: cfg.Quaternion.Angle, Axis: cfg.Quaternion.Axis.Vec3()}
	},
}

// Names lists the registered tools in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the named tool with its inputs taken from cfg.
func New(name string, cfg *config.Config) (Tool, error) {
	build, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q (have %v)", name, Names())
	}
	return build(cfg), nil
}
