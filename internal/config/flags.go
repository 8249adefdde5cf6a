package config

import (
	"flag"
	"strings"
)

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagHeight       = flag.Float64("height", 0, "Frustum height")
	flagTopRadius    = flag.Float64("top-radius", -1, "Top radius (0 for a cone)")
	flagBottomRadius = flag.Float64("bottom-radius", -1, "Bottom radius (0 for a cone)")
	flagSlices       = flag.Int("slices", 0, "Number of slices around the axis")
	flagFormat       = flag.String("format", "", "Comma separated vertex attributes (position,normal,tangent,bitangent,st)")
	flagOffset       = flag.String("offset", "", "applyOffset attribute: none, top or all")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ParseArgs parses the given arguments instead of os.Args, for tools that
// dispatch on a subcommand first.
func ParseArgs(args []string) error {
	return flag.CommandLine.Parse(args)
}

// Args returns the non-flag arguments left after parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config. Radius flags default
// to -1 so that an explicit 0 (a cone) still overrides the file.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagHeight > 0 {
		cfg.Shape.Height = *flagHeight
	}
	if *flagTopRadius >= 0 {
		cfg.Shape.TopRadius = *flagTopRadius
	}
	if *flagBottomRadius >= 0 {
		cfg.Shape.BottomRadius = *flagBottomRadius
	}
	if *flagSlices > 0 {
		cfg.Shape.Slices = *flagSlices
	}
	if *flagFormat != "" {
		cfg.Shape.VertexFormat = strings.Split(*flagFormat, ",")
	}
	if *flagOffset != "" {
		cfg.Shape.OffsetAttribute = *flagOffset
	}
}
