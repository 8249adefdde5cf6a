package frustum

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	valid := Options{Height: 2, TopRadius: 1, BottomRadius: 1, Slices: 8}

	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr error
	}{
		{"valid", func(o *Options) {}, nil},
		{"zero height", func(o *Options) { o.Height = 0 }, ErrInvalidHeight},
		{"negative height", func(o *Options) { o.Height = -1 }, ErrInvalidHeight},
		{"NaN height", func(o *Options) { o.Height = math.NaN() }, ErrInvalidHeight},
		{"infinite height", func(o *Options) { o.Height = math.Inf(1) }, ErrInvalidHeight},
		{"negative top radius", func(o *Options) { o.TopRadius = -0.5 }, ErrInvalidRadius},
		{"negative bottom radius", func(o *Options) { o.BottomRadius = -0.5 }, ErrInvalidRadius},
		{"NaN radius", func(o *Options) { o.BottomRadius = math.NaN() }, ErrInvalidRadius},
		{"both radii zero", func(o *Options) { o.TopRadius, o.BottomRadius = 0, 0 }, ErrZeroRadii},
		{"cone", func(o *Options) { o.TopRadius = 0 }, nil},
		{"two slices", func(o *Options) { o.Slices = 2 }, ErrTooFewSlices},
		{"negative slices", func(o *Options) { o.Slices = -4 }, ErrTooFewSlices},
		{"three slices", func(o *Options) { o.Slices = 3 }, nil},
		{"bad offset", func(o *Options) { o.OffsetAttribute = 42 }, ErrUnknownOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)
			f, err := New(o)
			if tt.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, f)
				return
			}
			require.Error(t, err)
			assert.Nil(t, f)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
			assert.True(t, errors.Is(err, ErrInvalidParameter), "%v should be a parameter error", err)
		})
	}
}

func TestBuildPropagatesParameterError(t *testing.T) {
	m, err := Build(Options{Height: 1})
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrZeroRadii)
}

func TestDefaults(t *testing.T) {
	f, err := New(Options{Height: 1, BottomRadius: 1})
	require.NoError(t, err)
	assert.Equal(t, DefaultSlices, f.Options().Slices)
	assert.Equal(t, DefaultVertexFormat, f.Options().VertexFormat)
	assert.Equal(t, OffsetUnset, f.Options().OffsetAttribute)
}

func TestParseVertexFormat(t *testing.T) {
	tests := []struct {
		names   []string
		want    VertexFormat
		wantErr bool
	}{
		{[]string{"position"}, Position, false},
		{[]string{"position", "normal", "st"}, DefaultVertexFormat, false},
		{[]string{"Position", " texcoord "}, Position | ST, false},
		{[]string{"uv", "tangent", "bitangent"}, ST | Tangent | Bitangent, false},
		{[]string{"all"}, AllVertexFormat, false},
		{nil, 0, false},
		{[]string{"color"}, 0, true},
	}
	for _, tt := range tests {
		got, err := ParseVertexFormat(tt.names)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownAttribute)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "names=%v", tt.names)
	}
}

func TestVertexFormatString(t *testing.T) {
	assert.Equal(t, "position+normal+st", DefaultVertexFormat.String())
	assert.Equal(t, "none", VertexFormat(0).String())
}

func TestParseOffsetAttribute(t *testing.T) {
	for s, want := range map[string]OffsetAttribute{"": OffsetUnset, "none": OffsetNone, "TOP": OffsetTop, "all": OffsetAll} {
		got, err := ParseOffsetAttribute(s)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", s)
		if want != OffsetUnset {
			assert.Equal(t, want, mustParseOffset(t, got.String()))
		}
	}
	_, err := ParseOffsetAttribute("bottom")
	assert.ErrorIs(t, err, ErrUnknownOffset)
}

func mustParseOffset(t *testing.T, s string) OffsetAttribute {
	t.Helper()
	o, err := ParseOffsetAttribute(s)
	require.NoError(t, err)
	return o
}
