// gamemath is a CLI for the vector and rotation tools: it evaluates the
// cross product, dot product, Euler and quaternion kernels from the command
// line and dumps the geometry a display would draw.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gamemath/internal/config"
	"github.com/Faultbox/gamemath/internal/logger"
)

func main() {
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
		fileCfg.JSON = cfg.Logging.JSON
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	logger.Debug("running command", zap.String("command", command), zap.Strings("args", args[1:]))

	if err := run(cfg, os.Stdout, command, args[1:]); err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, w io.Writer, command string, args []string) error {
	out := newPrinter(w, cfg.Output)

	switch command {
	case "cross":
		return cmdCross(cfg, out, args)
	case "dot":
		return cmdDot(cfg, out, args)
	case "euler":
		return cmdEuler(cfg, out, args)
	case "quat", "quaternion":
		return cmdQuat(cfg, out, args)
	case "scene":
		return cmdScene(cfg, out, args)
	case "config":
		return cmdConfig(cfg, w, args)
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	default:
		printUsage(w)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `gamemath - vector and rotation teaching tools

Usage:
  gamemath [global options] <command> [options]

Global options:
  -config <file>     Config file (default ./gamemath.yaml or user config dir)
  -format <fmt>      Output format: text, yaml, json
  -precision <n>     Digits after the decimal point
  -debug             Enable debug logging
  -log-file <file>   Also write logs to file

Commands:
  cross  [-p x,y,z] [-q x,y,z]                  Cross product, direct and via matrix
  dot    [-p0 x,y,z] [-p1 x,y,z] [-c x,y,z]     Cosine of the angle at c
  euler  [-x deg] [-y deg] [-z deg] [-points "x,y,z;..."]
                                                Compose Euler angles and rotate points
  quat   [-angle deg] [-axis x,y,z] [-point x,y,z]
                                                Rotate a point with a quaternion
  scene  <cross|dot|euler|quat>                 Dump the geometry of a tool
  config [-save] [file]                         Write the effective config

Examples:
  gamemath cross -p 0,1,0 -q 1,0,0
  gamemath euler -x 30 -y 45 -z 10
  gamemath -format json quat -angle 90 -axis 0,1,0 -point 1,0,0
  gamemath -format yaml scene euler`)
}
