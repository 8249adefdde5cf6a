package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/frustum/internal/config"
	"github.com/Faultbox/frustum/pkg/frustum"
)

func TestShapeStateDefaults(t *testing.T) {
	s := newShapeState(frustum.Options{Height: 2, TopRadius: 1, BottomRadius: 1})

	assert.Equal(t, int32(frustum.DefaultSlices), s.Slices)
	assert.Equal(t, []bool{true, true, false, false, true}, s.Attributes)

	opts := s.Options()
	assert.Equal(t, frustum.DefaultVertexFormat, opts.VertexFormat)
	assert.Equal(t, frustum.DefaultSlices, opts.Slices)
	require.NoError(t, opts.Validate())
}

func TestShapeStateEmptyFormat(t *testing.T) {
	s := newShapeState(frustum.Options{Height: 1, TopRadius: 1, Slices: 8})
	for i := range s.Attributes {
		s.Attributes[i] = false
	}
	assert.Equal(t, frustum.Position, s.Options().VertexFormat)
}

func TestShapeStateConfigRoundTrip(t *testing.T) {
	in := frustum.Options{
		Height:          10,
		TopRadius:       5,
		BottomRadius:    0,
		Slices:          6,
		VertexFormat:    frustum.Position | frustum.Tangent | frustum.Bitangent,
		OffsetAttribute: frustum.OffsetTop,
	}
	shape := newShapeState(in).Config()
	assert.Equal(t, []string{"position", "tangent", "bitangent"}, shape.VertexFormat)
	assert.Equal(t, "top", shape.OffsetAttribute)

	cfg := config.Default()
	cfg.Shape = shape
	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	assert.Contains(t, buf.String(), "offset_attribute: top")

	out, err := shape.Options()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
