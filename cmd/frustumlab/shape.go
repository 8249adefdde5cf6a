package main

import (
	"github.com/Faultbox/frustum/internal/config"
	"github.com/Faultbox/frustum/pkg/frustum"
)

// formatToggles pairs each optional attribute with its label.
var formatToggles = []struct {
	label string
	flag  frustum.VertexFormat
}{
	{"Position", frustum.Position},
	{"Normal", frustum.Normal},
	{"Tangent", frustum.Tangent},
	{"Bitangent", frustum.Bitangent},
	{"ST", frustum.ST},
}

// offsetModes lists the applyOffset choices in display order.
var offsetModes = []frustum.OffsetAttribute{
	frustum.OffsetUnset,
	frustum.OffsetNone,
	frustum.OffsetTop,
	frustum.OffsetAll,
}

// shapeState is the editable form of the shape parameters, in the types
// the UI widgets bind to.
type shapeState struct {
	Height       float32
	TopRadius    float32
	BottomRadius float32
	Slices       int32
	Attributes   []bool // parallel to formatToggles
	Offset       frustum.OffsetAttribute
}

func newShapeState(opts frustum.Options) *shapeState {
	format := opts.VertexFormat
	if format == 0 {
		format = frustum.DefaultVertexFormat
	}
	slices := opts.Slices
	if slices == 0 {
		slices = frustum.DefaultSlices
	}

	s := &shapeState{
		Height:       float32(opts.Height),
		TopRadius:    float32(opts.TopRadius),
		BottomRadius: float32(opts.BottomRadius),
		Slices:       int32(slices),
		Attributes:   make([]bool, len(formatToggles)),
		Offset:       opts.OffsetAttribute,
	}
	for i, t := range formatToggles {
		s.Attributes[i] = format.Has(t.flag)
	}
	return s
}

func (s *shapeState) format() frustum.VertexFormat {
	var f frustum.VertexFormat
	for i, t := range formatToggles {
		if s.Attributes[i] {
			f |= t.flag
		}
	}
	return f
}

// Options converts the state to builder options. An empty attribute
// selection is kept as Position so the builder never falls back to its
// default format behind the user's back.
func (s *shapeState) Options() frustum.Options {
	format := s.format()
	if format == 0 {
		format = frustum.Position
	}
	return frustum.Options{
		Height:          float64(s.Height),
		TopRadius:       float64(s.TopRadius),
		BottomRadius:    float64(s.BottomRadius),
		Slices:          int(s.Slices),
		VertexFormat:    format,
		OffsetAttribute: s.Offset,
	}
}

// Config returns the shape section matching the state.
func (s *shapeState) Config() config.ShapeConfig {
	opts := s.Options()
	var names []string
	for _, t := range formatToggles {
		if opts.VertexFormat.Has(t.flag) {
			names = append(names, t.flag.String())
		}
	}
	return config.ShapeConfig{
		Height:          opts.Height,
		TopRadius:       opts.TopRadius,
		BottomRadius:    opts.BottomRadius,
		Slices:          opts.Slices,
		VertexFormat:    names,
		OffsetAttribute: s.Offset.String(),
	}
}
