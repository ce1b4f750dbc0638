package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/rayforge/pkg/core"
)

// gridMesh builds an n x n grid of unit quads (two triangles each) on the
// z=5 plane, enough triangles to force several levels of BVH subdivision.
func gridMesh(n int) *TriangleMesh {
	var positions []core.Vec3
	var indices []int32

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			base := int32(len(positions))
			fx, fy := float32(x), float32(y)
			positions = append(positions,
				core.NewVec3(fx, fy, 5),
				core.NewVec3(fx+1, fy, 5),
				core.NewVec3(fx+1, fy+1, 5),
				core.NewVec3(fx, fy+1, 5),
			)
			indices = append(indices,
				base, base+1, base+2,
				base, base+2, base+3,
			)
		}
	}

	return NewTriangleMesh(positions, indices, CullNone)
}

func TestBVHContainment(t *testing.T) {
	mesh := gridMesh(6)

	var walk func(idx uint32)
	walk = func(idx uint32) {
		node := mesh.Nodes[idx]
		if !node.isLeaf() {
			walk(node.LeftChild)
			walk(node.LeftChild + 1)
			return
		}
		for i := node.FirstIndex; i < node.FirstIndex+node.IndexCount; i++ {
			v := mesh.TransformedPositions[mesh.Indices[i]]
			for axis := 0; axis < 3; axis++ {
				if v[axis] < node.Bounds.Min[axis]-1e-4 || v[axis] > node.Bounds.Max[axis]+1e-4 {
					t.Fatalf("vertex %v outside leaf bounds %v..%v on axis %d", v, node.Bounds.Min, node.Bounds.Max, axis)
				}
			}
		}
	}
	walk(0)
}

func TestBVHCoverage(t *testing.T) {
	mesh := gridMesh(5)
	triangleCount := len(mesh.Indices) / 3

	seen := make(map[int32]bool)
	var walk func(idx uint32)
	walk = func(idx uint32) {
		node := mesh.Nodes[idx]
		if !node.isLeaf() {
			walk(node.LeftChild)
			walk(node.LeftChild + 1)
			return
		}
		for i := node.FirstIndex; i < node.FirstIndex+node.IndexCount; i += 3 {
			seen[int32(i/3)] = true
		}
	}
	walk(0)

	if len(seen) != triangleCount {
		t.Fatalf("BVH covers %d triangles, want %d", len(seen), triangleCount)
	}
}

func TestBVHNormalsFollowTrianglesAfterPartition(t *testing.T) {
	mesh := gridMesh(6)

	var walk func(idx uint32)
	walk = func(idx uint32) {
		node := mesh.Nodes[idx]
		if !node.isLeaf() {
			walk(node.LeftChild)
			walk(node.LeftChild + 1)
			return
		}
		for i := node.FirstIndex; i < node.FirstIndex+node.IndexCount; i += 3 {
			triIdx := i / 3
			v0 := mesh.TransformedPositions[mesh.Indices[i]]
			v1 := mesh.TransformedPositions[mesh.Indices[i+1]]
			v2 := mesh.TransformedPositions[mesh.Indices[i+2]]
			recomputed := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()

			stored := mesh.TransformedNormals[triIdx]
			if recomputed.Sub(stored).Length() > 1e-3 {
				t.Fatalf("triangle %d: stored normal %v does not match its own vertices (recomputed %v) -- normal array desynced from index buffer", triIdx, stored, recomputed)
			}
		}
	}
	walk(0)
}

func TestBVHRebuildProducesIdenticalAABBs(t *testing.T) {
	mesh := gridMesh(4)
	want := make([]core.AABB, len(mesh.Nodes))
	for i, n := range mesh.Nodes {
		want[i] = n.Bounds
	}

	mesh.UpdateTransforms()

	if len(mesh.Nodes) != len(want) {
		t.Fatalf("rebuild changed node count: %d vs %d", len(mesh.Nodes), len(want))
	}
	for i, n := range mesh.Nodes {
		if n.Bounds.Min != want[i].Min || n.Bounds.Max != want[i].Max {
			t.Fatalf("node %d bounds changed after rebuild on an unchanged mesh: %v..%v vs %v..%v", i, n.Bounds.Min, n.Bounds.Max, want[i].Min, want[i].Max)
		}
	}
}

// TestBVHMatchesBruteForce is scenario S4: a mesh of two coplanar unit
// triangles forming a 1x1 square at z=5 returns the same t for the centre
// pixel whether tested via the BVH or via brute-force triangle iteration.
func TestBVHMatchesBruteForce(t *testing.T) {
	positions := []core.Vec3{
		core.NewVec3(0, 0, 5), core.NewVec3(1, 0, 5), core.NewVec3(1, 1, 5),
		core.NewVec3(0, 0, 5), core.NewVec3(1, 1, 5), core.NewVec3(0, 1, 5),
	}
	indices := []int32{0, 1, 2, 3, 4, 5}
	mesh := NewTriangleMesh(positions, indices, CullNone)

	ray := core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(0, 0, 1))

	var bvhHit core.HitRecord
	gotBVH := mesh.Hit(ray, ray.TMin, float32(math.Inf(1)), false, &bvhHit)

	var bruteHit core.HitRecord
	gotBrute := false
	tMax := float32(math.Inf(1))
	for i := 0; i < len(indices); i += 3 {
		v0 := mesh.TransformedPositions[mesh.Indices[i]]
		v1 := mesh.TransformedPositions[mesh.Indices[i+1]]
		v2 := mesh.TransformedPositions[mesh.Indices[i+2]]
		normal := mesh.TransformedNormals[i/3]
		if HitTriangle(ray, v0, v1, v2, normal, CullNone, 0, ray.TMin, tMax, &bruteHit) {
			tMax = bruteHit.T
			gotBrute = true
		}
	}

	if gotBVH != gotBrute {
		t.Fatalf("BVH hit=%v, brute force hit=%v", gotBVH, gotBrute)
	}
	if gotBVH && (bvhHit.T-bruteHit.T > 1e-4 || bvhHit.T-bruteHit.T < -1e-4) {
		t.Errorf("BVH t=%v, brute force t=%v", bvhHit.T, bruteHit.T)
	}
}

func TestBVHSlabTestConservativeAlongAncestors(t *testing.T) {
	mesh := gridMesh(6)
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		x := rng.Float32() * 6
		y := rng.Float32() * 6
		ray := core.NewRay(core.NewVec3(x, y, 0), core.NewVec3(0, 0, 1))

		var hit core.HitRecord
		if !mesh.Hit(ray, ray.TMin, float32(math.Inf(1)), false, &hit) {
			continue
		}

		var check func(idx uint32) bool
		check = func(idx uint32) bool {
			node := mesh.Nodes[idx]
			if !node.Bounds.Hit(ray, ray.TMin, float32(math.Inf(1))) {
				return false
			}
			if node.isLeaf() {
				return true
			}
			return check(node.LeftChild) || check(node.LeftChild+1)
		}
		if !check(0) {
			t.Fatalf("ray that hit a triangle failed the slab test at some ancestor node")
		}
	}
}
