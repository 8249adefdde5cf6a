package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/frustum/internal/config"
	"github.com/Faultbox/frustum/pkg/frustum"
	"github.com/Faultbox/frustum/pkg/geometry"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Shape.Slices = 4
	return cfg
}

func TestCmdInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cmdInfo(&buf, testConfig()))

	out := buf.String()
	assert.Contains(t, out, "Vertices:  16")
	assert.Contains(t, out, "Indices:   36 (12 triangles, uint16)")
	assert.Contains(t, out, "radius=1.4142")
	assert.Contains(t, out, "position")
	assert.Contains(t, out, "normal")
	assert.Contains(t, out, "st")
	assert.NotContains(t, out, "tangent")
	assert.NotContains(t, out, "Offset:")
}

func TestCmdInfoInvalidShape(t *testing.T) {
	cfg := testConfig()
	cfg.Shape.Slices = 2

	err := cmdInfo(&bytes.Buffer{}, cfg)
	assert.ErrorIs(t, err, frustum.ErrTooFewSlices)
	assert.ErrorIs(t, err, frustum.ErrInvalidParameter)

	cfg = testConfig()
	cfg.Shape.VertexFormat = []string{"position", "colour"}
	assert.ErrorIs(t, cmdInfo(&bytes.Buffer{}, cfg), frustum.ErrUnknownAttribute)
}

func TestCmdVerify(t *testing.T) {
	cfg := testConfig()
	cfg.Shape.VertexFormat = []string{"all"}
	cfg.Shape.TopRadius = 0

	var buf bytes.Buffer
	require.NoError(t, cmdVerify(&buf, cfg))
	assert.Equal(t, "OK: 16 vertices, 12 triangles\n", buf.String())
}

func TestVerifyReportsProblems(t *testing.T) {
	m, err := frustum.Build(frustum.Options{Height: 2, TopRadius: 1, BottomRadius: 1, Slices: 4})
	require.NoError(t, err)
	m.Indices.Set(0, 99)

	var buf bytes.Buffer
	err = verify(&buf, m, 1e-6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errProblems))
	assert.Contains(t, buf.String(), geometry.IndexOutOfRange.String())
}

func TestPrintDump(t *testing.T) {
	opts := frustum.Options{Height: 2, TopRadius: 1, BottomRadius: 1, Slices: 4, OffsetAttribute: frustum.OffsetTop}
	m, err := frustum.Build(opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	printDump(&buf, opts.Slices, m, 0)
	out := buf.String()

	assert.Contains(t, out, "Vertices (16):")
	assert.Contains(t, out, "# bottom cap")
	assert.Contains(t, out, "# top cap")
	assert.Contains(t, out, "Triangles (12):")
	assert.Contains(t, out, "       0  0 2 3\n")
	assert.Contains(t, out, "offset=1")
	assert.NotContains(t, out, "more")

	buf.Reset()
	printDump(&buf, opts.Slices, m, 5)
	out = buf.String()
	assert.Contains(t, out, "... 11 more")
	assert.Contains(t, out, "... 7 more")
	assert.NotContains(t, out, "# bottom cap")
}

func TestCmdConfigWritesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "frustum.yaml")
	old := *flagOut
	*flagOut = path
	defer func() { *flagOut = old }()

	var buf bytes.Buffer
	require.NoError(t, cmdConfig(&buf, testConfig()))
	assert.True(t, strings.HasPrefix(buf.String(), "Wrote "))
	assert.FileExists(t, path)

	*flagOut = "-"
	buf.Reset()
	require.NoError(t, cmdConfig(&buf, testConfig()))
	assert.Contains(t, buf.String(), "slices: 4")
	assert.Contains(t, buf.String(), "top_radius: 1")
}
