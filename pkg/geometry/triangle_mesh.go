package geometry

import "github.com/df07/rayforge/pkg/core"

// TriangleMesh owns a static position/index buffer plus the per-frame
// transformed caches and BVH built over them. Indices are grouped in
// triples; Normals holds one face normal per triangle.
type TriangleMesh struct {
	Positions []core.Vec3
	Indices   []int32
	Normals   []core.Vec3

	MaterialIndex byte
	CullMode      CullMode

	Translation core.Matrix
	Rotation    core.Matrix
	Scale       core.Matrix

	TransformedPositions []core.Vec3
	TransformedNormals   []core.Vec3

	Nodes     []BVHNode
	nodesUsed uint32
}

// NewTriangleMesh builds a mesh from raw positions/indices (as returned by
// an OBJ loader) and derives one face normal per triangle from the
// triangle's winding.
func NewTriangleMesh(positions []core.Vec3, indices []int32, cullMode CullMode) *TriangleMesh {
	m := &TriangleMesh{
		Positions:   positions,
		Indices:     indices,
		CullMode:    cullMode,
		Translation: core.Identity(),
		Rotation:    core.Identity(),
		Scale:       core.Identity(),
	}
	m.computeNormals()
	m.UpdateTransforms()
	return m
}

func (m *TriangleMesh) computeNormals() {
	m.Normals = make([]core.Vec3, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		v0 := m.Positions[m.Indices[i]]
		v1 := m.Positions[m.Indices[i+1]]
		v2 := m.Positions[m.Indices[i+2]]
		edge1 := v1.Sub(v0)
		edge2 := v2.Sub(v0)
		m.Normals = append(m.Normals, edge1.Cross(edge2).Normalize())
	}
}

// AppendTriangle appends a single triangle (as three positions plus an
// explicit face normal) to the mesh. The mesh's transforms and BVH are left
// stale until UpdateTransforms is called, so callers building a mesh out of
// many AppendTriangle calls should defer that call until the last one.
func (m *TriangleMesh) AppendTriangle(v0, v1, v2, normal core.Vec3) {
	start := int32(len(m.Positions))
	m.Positions = append(m.Positions, v0, v1, v2)
	m.Indices = append(m.Indices, start, start+1, start+2)
	m.Normals = append(m.Normals, normal.Normalize())
}

// UpdateTransforms recomputes TransformedPositions from the full
// scale*rotation*translation matrix and TransformedNormals from the
// rotation-plus-translation matrix (so normals are rotated but not
// translated, and not corrected for non-uniform scale), then rebuilds the
// BVH from the fresh positions.
func (m *TriangleMesh) UpdateTransforms() {
	full := m.Scale.Mul(m.Rotation).Mul(m.Translation)
	normalTransform := m.Rotation.Mul(m.Translation)

	if cap(m.TransformedPositions) < len(m.Positions) {
		m.TransformedPositions = make([]core.Vec3, len(m.Positions))
	} else {
		m.TransformedPositions = m.TransformedPositions[:len(m.Positions)]
	}
	for i, p := range m.Positions {
		m.TransformedPositions[i] = full.TransformPoint(p)
	}

	if cap(m.TransformedNormals) < len(m.Normals) {
		m.TransformedNormals = make([]core.Vec3, len(m.Normals))
	} else {
		m.TransformedNormals = m.TransformedNormals[:len(m.Normals)]
	}
	for i, n := range m.Normals {
		m.TransformedNormals[i] = normalTransform.TransformVector(n)
	}

	m.buildBVH()
}

// Bounds returns the mesh's world-space AABB, taken from the BVH root.
func (m *TriangleMesh) Bounds() core.AABB {
	if len(m.Nodes) == 0 {
		return core.EmptyAABB()
	}
	return m.Nodes[0].Bounds
}
