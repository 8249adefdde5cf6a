package renderer

import (
	"github.com/Faultbox/frustum/internal/engine/debug"
	"github.com/Faultbox/frustum/pkg/geometry"
)

var (
	meshColor   = [3]float32{0.85, 0.6, 0.3}
	boundsColor = [3]float32{0.3, 0.8, 0.4}
	normalColor = [3]float32{0.4, 0.6, 1.0}
)

// Scene holds one uploaded mesh with its debug overlays.
type Scene struct {
	Mesh *geometry.Mesh

	ShowBounds  bool
	ShowNormals bool

	gpuMesh *GPUMesh
	bounds  *GPULines
	normals *GPULines
}

// SetMesh uploads m and its overlays, replacing the previous mesh. On error
// the previous mesh stays in place.
func (s *Scene) SetMesh(m *geometry.Mesh) error {
	gpuMesh, err := UploadMesh(m)
	if err != nil {
		return err
	}
	s.Delete()

	s.Mesh = m
	s.gpuMesh = gpuMesh
	s.bounds = UploadLines(debug.SphereWireframe(m.BoundingSphere, debug.DefaultCircleSegments))
	s.normals = UploadLines(debug.NormalLines(m, float32(m.BoundingSphere.Radius*0.1)))
	return nil
}

// Draw renders the mesh and the enabled overlays. Call between Begin and
// the buffer swap.
func (s *Scene) Draw(r *Renderer) {
	if s.gpuMesh == nil {
		return
	}
	r.DrawMesh(s.gpuMesh, meshColor)
	if s.ShowBounds {
		r.DrawLines(s.bounds, boundsColor)
	}
	if s.ShowNormals {
		r.DrawLines(s.normals, normalColor)
	}
}

// Delete releases the GL objects of the current mesh.
func (s *Scene) Delete() {
	if s.gpuMesh != nil {
		s.gpuMesh.Delete()
		s.gpuMesh = nil
	}
	if s.bounds != nil {
		s.bounds.Delete()
		s.bounds = nil
	}
	if s.normals != nil {
		s.normals.Delete()
		s.normals = nil
	}
}
