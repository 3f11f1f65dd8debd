// Package primitives turns geometry shapes into raylib meshes and draws them with a single
// lit shader (ambient + directional diffuse + Blinn-Phong specular).
package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"storefront/internal/geometry"
	"storefront/internal/preview"
)

// meshKey identifies a generated mesh. Parts with equal dimensions share one GPU mesh.
type meshKey struct {
	kind                geometry.Kind
	w, h, d             float32
	radiusTop, radiusBt float32
	segments            int
}

func keyOf(p geometry.Part) meshKey {
	return meshKey{
		kind:      p.Kind,
		w:         p.Width,
		h:         p.Height,
		d:         p.Depth,
		radiusTop: p.RadiusTop,
		radiusBt:  p.RadiusBottom,
		segments:  p.Segments,
	}
}

// Registry owns meshes and the lit material. Meshes are created on first use so that GPU
// resources are allocated after the window/OpenGL context exists.
type Registry struct {
	meshes map[meshKey]rl.Mesh
	mtl    rl.Material
	loaded bool
	eye    [3]float32
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{meshes: make(map[meshKey]rl.Mesh)}
}

// SetEye sets the camera position used for specular highlights.
func (r *Registry) SetEye(eye [3]float32) {
	r.eye = eye
}

// Meshes returns the number of cached meshes.
func (r *Registry) Meshes() int {
	return len(r.meshes)
}

func (r *Registry) ensureMaterial() {
	if r.loaded {
		return
	}
	r.mtl = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
	}
	r.loaded = true
}

// mesh returns the cached mesh for p, generating it on first use.
func (r *Registry) mesh(p geometry.Part) rl.Mesh {
	k := keyOf(p)
	if m, ok := r.meshes[k]; ok {
		return m
	}
	var m rl.Mesh
	switch p.Kind {
	case geometry.Cylinder:
		// raylib has no tapered cylinder; RadiusTop is used for both ends
		m = rl.GenMeshCylinder(p.RadiusTop, p.Height, p.Segments)
	case geometry.Cone:
		m = rl.GenMeshCone(p.RadiusBottom, p.Height, p.Segments)
	default:
		m = rl.GenMeshCube(p.Width, p.Height, p.Depth)
	}
	r.meshes[k] = m
	return m
}

// centerOffset shifts meshes whose base sits at Y=0 so Offset names the part's center.
func centerOffset(p geometry.Part) float32 {
	switch p.Kind {
	case geometry.Cylinder, geometry.Cone:
		return -p.Height / 2
	}
	return 0
}

// DrawShape draws every part of s rotated by o about the shape origin.
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) DrawShape(s geometry.Shape, o preview.Orientation) {
	r.ensureMaterial()
	red, green, blue := s.Material.Color.RGB()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.NewColor(red, green, blue, 255)
	}
	r.applyLight(r.mtl.Shader, s.Material.Shininess)

	rot := rl.MatrixRotateXYZ(rl.NewVector3(o.Pitch, o.Yaw, 0))
	for _, p := range s.Parts {
		// Order: place the part in shape space, then rotate the whole shape.
		place := rl.MatrixTranslate(p.Offset[0], p.Offset[1]+centerOffset(p), p.Offset[2])
		rl.DrawMesh(r.mesh(p), r.mtl, rl.MatrixMultiply(place, rot))
	}
}

// Unload releases every mesh and the shader. The registry can be reused afterwards.
func (r *Registry) Unload() {
	for k, m := range r.meshes {
		rl.UnloadMesh(&m)
		delete(r.meshes, k)
	}
	if r.loaded {
		rl.UnloadShader(r.mtl.Shader)
		r.loaded = false
	}
}
