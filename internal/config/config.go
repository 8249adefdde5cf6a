// Package config handles frustum tool configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/frustum/pkg/frustum"
)

// Config holds all tool settings.
type Config struct {
	Shape   ShapeConfig   `yaml:"shape"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// ShapeConfig holds the frustum parameters.
type ShapeConfig struct {
	Height          float64  `yaml:"height"`
	TopRadius       float64  `yaml:"top_radius"`
	BottomRadius    float64  `yaml:"bottom_radius"`
	Slices          int      `yaml:"slices"`
	VertexFormat    []string `yaml:"vertex_format"`    // Attribute names, e.g. [position, normal, st]
	OffsetAttribute string   `yaml:"offset_attribute"` // "", none, top or all
}

// ViewerConfig holds preview window settings.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Wireframe  bool `yaml:"wireframe"`
	ShowBounds bool `yaml:"show_bounds"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Shape: ShapeConfig{
			Height:       2,
			TopRadius:    1,
			BottomRadius: 1,
			Slices:       frustum.DefaultSlices,
			VertexFormat: []string{"position", "normal", "st"},
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Wireframe:  false,
			ShowBounds: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Options converts the shape section into builder options. Parameter values
// are not range checked here; frustum.New does that.
func (s ShapeConfig) Options() (frustum.Options, error) {
	format, err := frustum.ParseVertexFormat(s.VertexFormat)
	if err != nil {
		return frustum.Options{}, fmt.Errorf("shape.vertex_format: %w", err)
	}
	offset, err := frustum.ParseOffsetAttribute(s.OffsetAttribute)
	if err != nil {
		return frustum.Options{}, fmt.Errorf("shape.offset_attribute: %w", err)
	}
	return frustum.Options{
		Height:          s.Height,
		TopRadius:       s.TopRadius,
		BottomRadius:    s.BottomRadius,
		Slices:          s.Slices,
		VertexFormat:    format,
		OffsetAttribute: offset,
	}, nil
}
