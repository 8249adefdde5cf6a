package frustum

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DefaultSlices is used when Options.Slices is zero.
const DefaultSlices = 100

// MinSlices is the fewest slices that still close a solid.
const MinSlices = 3

// ErrInvalidParameter is wrapped by every shape parameter error.
var ErrInvalidParameter = errors.New("invalid frustum parameter")

var (
	ErrInvalidHeight    = fmt.Errorf("%w: height must be positive and finite", ErrInvalidParameter)
	ErrInvalidRadius    = fmt.Errorf("%w: radius must be non-negative and finite", ErrInvalidParameter)
	ErrZeroRadii        = fmt.Errorf("%w: top and bottom radius are both zero", ErrInvalidParameter)
	ErrTooFewSlices     = fmt.Errorf("%w: slices must be at least %d", ErrInvalidParameter, MinSlices)
	ErrUnknownAttribute = fmt.Errorf("%w: unknown vertex attribute", ErrInvalidParameter)
	ErrUnknownOffset    = fmt.Errorf("%w: unknown offset attribute", ErrInvalidParameter)
)

// OffsetAttribute selects which vertices carry a 1 in the applyOffset
// attribute. OffsetUnset omits the attribute entirely.
type OffsetAttribute int

const (
	OffsetUnset OffsetAttribute = iota
	OffsetNone
	OffsetTop
	OffsetAll
)

func (o OffsetAttribute) String() string {
	switch o {
	case OffsetUnset:
		return ""
	case OffsetNone:
		return "none"
	case OffsetTop:
		return "top"
	case OffsetAll:
		return "all"
	default:
		return fmt.Sprintf("OffsetAttribute(%d)", int(o))
	}
}

// ParseOffsetAttribute parses "", "none", "top" or "all".
func ParseOffsetAttribute(s string) (OffsetAttribute, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return OffsetUnset, nil
	case "none":
		return OffsetNone, nil
	case "top":
		return OffsetTop, nil
	case "all":
		return OffsetAll, nil
	}
	return OffsetUnset, fmt.Errorf("%w: %q", ErrUnknownOffset, s)
}

// Options describes a frustum centred on the origin with its axis along +Z.
type Options struct {
	Height       float64
	TopRadius    float64
	BottomRadius float64

	// Slices is the number of points on each ring. Zero means DefaultSlices.
	Slices int

	// VertexFormat selects the emitted attributes. Zero means
	// DefaultVertexFormat.
	VertexFormat VertexFormat

	OffsetAttribute OffsetAttribute
}

// withDefaults fills zero-valued optional fields.
func (o Options) withDefaults() Options {
	if o.Slices == 0 {
		o.Slices = DefaultSlices
	}
	if o.VertexFormat == 0 {
		o.VertexFormat = DefaultVertexFormat
	}
	return o
}

// Validate reports the first parameter error in o, after defaults apply.
func (o Options) Validate() error {
	o = o.withDefaults()
	if !(o.Height > 0) || math.IsInf(o.Height, 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidHeight, o.Height)
	}
	if !(o.TopRadius >= 0) || math.IsInf(o.TopRadius, 0) {
		return fmt.Errorf("%w (top radius %v)", ErrInvalidRadius, o.TopRadius)
	}
	if !(o.BottomRadius >= 0) || math.IsInf(o.BottomRadius, 0) {
		return fmt.Errorf("%w (bottom radius %v)", ErrInvalidRadius, o.BottomRadius)
	}
	if o.TopRadius == 0 && o.BottomRadius == 0 {
		return ErrZeroRadii
	}
	if o.Slices < MinSlices {
		return fmt.Errorf("%w (got %d)", ErrTooFewSlices, o.Slices)
	}
	if o.OffsetAttribute < OffsetUnset || o.OffsetAttribute > OffsetAll {
		return fmt.Errorf("%w: %d", ErrUnknownOffset, int(o.OffsetAttribute))
	}
	return nil
}
