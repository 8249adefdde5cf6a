package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/frustum/internal/logger"
	"github.com/Faultbox/frustum/pkg/geometry"
)

// Attribute locations shared with shader.MeshVertex.
const (
	locPosition = 0
	locNormal   = 1
	locST       = 2
)

// GPUMesh is a geometry.Mesh uploaded into a VAO with one VBO per attribute.
type GPUMesh struct {
	vao        uint32
	vbos       []uint32
	ebo        uint32
	indexCount int32
	indexType  uint32

	hasNormal bool
	hasST     bool
}

// UploadMesh copies positions, normals and st into GL buffers. Positions are
// narrowed to float32; the index buffer keeps its own datatype.
func UploadMesh(m *geometry.Mesh) (*GPUMesh, error) {
	if m.PrimitiveType != geometry.Triangles {
		return nil, fmt.Errorf("unsupported primitive type %s", m.PrimitiveType)
	}
	pos := m.Attribute(geometry.Position)
	if pos == nil {
		return nil, fmt.Errorf("mesh has no %s attribute", geometry.Position)
	}

	g := &GPUMesh{
		indexCount: int32(m.Indices.Len()),
		indexType:  GLIndexType(m.Indices.Datatype()),
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	g.addBuffer(locPosition, 3, Float32Components(pos))
	if n := m.Attribute(geometry.Normal); n != nil {
		g.addBuffer(locNormal, 3, Float32Components(n))
		g.hasNormal = true
	}
	if st := m.Attribute(geometry.ST); st != nil {
		g.addBuffer(locST, 2, Float32Components(st))
		g.hasST = true
	}

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	switch m.Indices.Datatype() {
	case geometry.Uint16:
		idx := m.Indices.Uint16()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx)*2, gl.Ptr(idx), gl.STATIC_DRAW)
	default:
		idx := m.Indices.Uint32()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx)*4, gl.Ptr(idx), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", g.vao),
		zap.Int("buffers", len(g.vbos)),
		zap.Int32("indices", g.indexCount),
		zap.Stringer("index_type", m.Indices.Datatype()),
	)
	return g, nil
}

func (g *GPUMesh) addBuffer(loc uint32, size int32, data []float32) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointer(loc, size, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(loc)
	g.vbos = append(g.vbos, vbo)
}

func (g *GPUMesh) draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, g.indexType, nil)
	gl.BindVertexArray(0)
}

// Delete releases the GL objects.
func (g *GPUMesh) Delete() {
	if len(g.vbos) > 0 {
		gl.DeleteBuffers(int32(len(g.vbos)), &g.vbos[0])
		g.vbos = nil
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
		g.ebo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}

// GPULines is a GL_LINES vertex list.
type GPULines struct {
	vao   uint32
	vbo   uint32
	count int32
}

// UploadLines uploads [x, y, z] line vertices.
func UploadLines(verts []float32) *GPULines {
	l := &GPULines{count: int32(len(verts) / 3)}
	gl.GenVertexArrays(1, &l.vao)
	gl.BindVertexArray(l.vao)
	gl.GenBuffers(1, &l.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	if len(verts) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	}
	gl.VertexAttribPointer(locPosition, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(locPosition)
	gl.BindVertexArray(0)
	return l
}

func (l *GPULines) draw() {
	if l.count == 0 {
		return
	}
	gl.BindVertexArray(l.vao)
	gl.DrawArrays(gl.LINES, 0, l.count)
	gl.BindVertexArray(0)
}

// Delete releases the GL objects.
func (l *GPULines) Delete() {
	if l.vbo != 0 {
		gl.DeleteBuffers(1, &l.vbo)
		l.vbo = 0
	}
	if l.vao != 0 {
		gl.DeleteVertexArrays(1, &l.vao)
		l.vao = 0
	}
}
