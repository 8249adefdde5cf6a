package frustum

import (
	"fmt"
	"strings"
)

// VertexFormat selects which vertex attributes Build emits.
type VertexFormat uint8

const (
	Position VertexFormat = 1 << iota
	Normal
	Tangent
	Bitangent
	ST
)

const (
	// DefaultVertexFormat is used when Options.VertexFormat is zero.
	DefaultVertexFormat = Position | Normal | ST
	// AllVertexFormat requests every attribute.
	AllVertexFormat = Position | Normal | Tangent | Bitangent | ST
)

var formatNames = []struct {
	flag VertexFormat
	name string
}{
	{Position, "position"},
	{Normal, "normal"},
	{Tangent, "tangent"},
	{Bitangent, "bitangent"},
	{ST, "st"},
}

// Has reports whether every flag in f2 is set in f.
func (f VertexFormat) Has(f2 VertexFormat) bool {
	return f&f2 == f2
}

func (f VertexFormat) String() string {
	var parts []string
	for _, fn := range formatNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// ParseVertexFormat builds a format from attribute names. "texcoord" and
// "uv" are accepted as aliases for "st".
func ParseVertexFormat(names []string) (VertexFormat, error) {
	var f VertexFormat
	for _, name := range names {
		switch n := strings.ToLower(strings.TrimSpace(name)); n {
		case "texcoord", "uv":
			f |= ST
		case "all":
			f |= AllVertexFormat
		default:
			found := false
			for _, fn := range formatNames {
				if fn.name == n {
					f |= fn.flag
					found = true
					break
				}
			}
			if !found {
				return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
			}
		}
	}
	return f, nil
}
