// frustumtool is a CLI utility for building and inspecting frustum meshes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/frustum/internal/config"
	"github.com/Faultbox/frustum/internal/logger"
	"github.com/Faultbox/frustum/pkg/frustum"
	"github.com/Faultbox/frustum/pkg/geometry"
)

var (
	flagLimit     = flag.Int("n", 16, "dump: maximum vertices and triangles to print (0 for all)")
	flagTolerance = flag.Float64("tolerance", 1e-6, "verify: numeric tolerance")
	flagOut       = flag.String("o", "", "config: output path (- for stdout, empty for the user config dir)")
)

// errProblems marks a verify run that found mesh problems.
var errProblems = errors.New("mesh has problems")

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	cmd, ok := commands[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err := config.ParseArgs(os.Args[2:]); err != nil {
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cmd(os.Stdout, cfg); err != nil {
		if !errors.Is(err, errProblems) {
			logger.Error(command+" failed", zap.Error(err))
		}
		logger.Sync()
		os.Exit(1)
	}
}

var commands = map[string]func(io.Writer, *config.Config) error{
	"info":   cmdInfo,
	"verify": cmdVerify,
	"dump":   cmdDump,
	"config": cmdConfig,
}

func printUsage() {
	fmt.Println(`frustumtool - frustum mesh builder utility

Usage:
  frustumtool <command> [options]

Commands:
  info     Build the configured frustum and show its layout
  verify   Build and check index, frame and bounds consistency
  dump     Print vertices per ring and triangles
  config   Write the effective configuration as YAML

Options:
  -config <file>          Config file (default ./frustum.yaml or user config dir)
  -height <h>             Height along +Z
  -top-radius <r>         Top radius (0 for a cone)
  -bottom-radius <r>      Bottom radius (0 for a cone)
  -slices <n>             Slices around the axis (min 3)
  -format <a,b,...>       Vertex attributes: position,normal,tangent,bitangent,st
  -offset <none|top|all>  Emit the applyOffset attribute
  -n <count>              dump: row limit
  -tolerance <eps>        verify: numeric tolerance
  -o <path>               config: output path
  -debug                  Debug logging

Examples:
  frustumtool info -height 10 -top-radius 5 -bottom-radius 0 -slices 6
  frustumtool verify -format all -slices 20000
  frustumtool dump -slices 4 -n 0
  frustumtool config -o -`)
}

// build constructs the configured mesh and logs its summary.
func build(cfg *config.Config) (frustum.Options, *geometry.Mesh, error) {
	opts, err := cfg.Shape.Options()
	if err != nil {
		return frustum.Options{}, nil, err
	}
	f, err := frustum.New(opts)
	if err != nil {
		return frustum.Options{}, nil, err
	}

	start := time.Now()
	mesh := f.Build()
	logger.Debug("mesh built", append(logger.MeshFields(mesh), zap.Duration("took", time.Since(start)))...)
	return f.Options(), mesh, nil
}

func cmdInfo(w io.Writer, cfg *config.Config) error {
	opts, mesh, err := build(cfg)
	if err != nil {
		return err
	}
	printInfo(w, opts, mesh)
	return nil
}

func cmdVerify(w io.Writer, cfg *config.Config) error {
	_, mesh, err := build(cfg)
	if err != nil {
		return err
	}
	return verify(w, mesh, *flagTolerance)
}

func cmdDump(w io.Writer, cfg *config.Config) error {
	opts, mesh, err := build(cfg)
	if err != nil {
		return err
	}
	printDump(w, opts.Slices, mesh, *flagLimit)
	return nil
}

func cmdConfig(w io.Writer, cfg *config.Config) error {
	switch *flagOut {
	case "-":
		return cfg.Encode(w)
	case "":
		path, err := cfg.Save()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Wrote %s\n", path)
	default:
		if err := cfg.SaveTo(*flagOut); err != nil {
			return err
		}
		fmt.Fprintf(w, "Wrote %s\n", *flagOut)
	}
	return nil
}
