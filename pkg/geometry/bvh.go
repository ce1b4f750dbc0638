package geometry

import (
	"math"

	"github.com/df07/rayforge/pkg/core"
)

// BVHNode is a single entry in the flat node array. A node is a leaf iff
// IndexCount > 0. Internal nodes store only LeftChild; the right child is
// always LeftChild+1 because subdivision allocates its two children as
// consecutive slots.
type BVHNode struct {
	Bounds     core.AABB
	LeftChild  uint32
	FirstIndex uint32
	IndexCount uint32
}

func (n BVHNode) isLeaf() bool { return n.IndexCount > 0 }

const bvhLeafThreshold = 5
const bvhBinCount = 8

// buildBVH rebuilds the mesh's BVH node array from its current transformed
// positions and index buffer. Nodes are preallocated to 2*triangleCount-1
// slots (never exceeded, since every subdivision adds exactly two nodes for
// each leaf it consumes).
func (m *TriangleMesh) buildBVH() {
	triangleCount := len(m.Indices) / 3
	if triangleCount == 0 {
		m.Nodes = nil
		m.nodesUsed = 0
		return
	}

	capacity := 2*triangleCount - 1
	if cap(m.Nodes) < capacity {
		m.Nodes = make([]BVHNode, capacity)
	} else {
		m.Nodes = m.Nodes[:capacity]
	}

	// Index 0 is reserved for the root; nodesUsed starts at 1 so that the
	// first pair of children allocated is {1, 2}, never overlapping the
	// root slot.
	m.nodesUsed = 1
	root := &m.Nodes[0]
	root.LeftChild = 0
	root.FirstIndex = 0
	root.IndexCount = uint32(len(m.Indices))
	m.updateNodeBounds(0)
	m.subdivide(0)

	m.Nodes = m.Nodes[:m.nodesUsed]
}

func (m *TriangleMesh) updateNodeBounds(nodeIdx uint32) {
	node := &m.Nodes[nodeIdx]
	bounds := core.EmptyAABB()
	for i := node.FirstIndex; i < node.FirstIndex+node.IndexCount; i++ {
		bounds = bounds.Grow(m.TransformedPositions[m.Indices[i]])
	}
	node.Bounds = bounds
}

func (m *TriangleMesh) subdivide(nodeIdx uint32) {
	node := &m.Nodes[nodeIdx]
	if node.IndexCount <= bvhLeafThreshold {
		return
	}

	axis, splitPos, splitCost := m.findBestSplitPlane(node)
	if axis < 0 {
		return
	}

	side := node.Bounds.Max.Sub(node.Bounds.Min)
	parentArea := side[0]*side[1] + side[1]*side[2] + side[2]*side[0]
	nodeCost := float32(node.IndexCount) * parentArea
	if splitCost >= nodeCost {
		return
	}

	i := int(node.FirstIndex)
	j := i + int(node.IndexCount) - 3
	for i <= j {
		centroid := m.triangleCentroid(uint32(i))
		if centroid[axis] < splitPos {
			i += 3
			continue
		}
		m.swapTriangles(uint32(i), uint32(j))
		j -= 3
	}

	leftCount := uint32(i) - node.FirstIndex
	if leftCount == 0 || leftCount == node.IndexCount {
		return
	}

	leftIdx := m.nodesUsed
	rightIdx := m.nodesUsed + 1
	m.nodesUsed += 2

	node.LeftChild = leftIdx
	firstIndex, indexCount := node.FirstIndex, node.IndexCount

	m.Nodes[leftIdx].FirstIndex = firstIndex
	m.Nodes[leftIdx].IndexCount = leftCount
	m.Nodes[rightIdx].FirstIndex = uint32(i)
	m.Nodes[rightIdx].IndexCount = indexCount - leftCount
	node.IndexCount = 0

	m.updateNodeBounds(leftIdx)
	m.updateNodeBounds(rightIdx)

	m.subdivide(leftIdx)
	m.subdivide(rightIdx)
}

// swapTriangles exchanges the triangles starting at index i and index j in
// the index buffer, permuting the per-triangle normal arrays in lockstep so
// transformedNormals[k/3] keeps addressing the triangle that was moved to
// position k.
func (m *TriangleMesh) swapTriangles(i, j uint32) {
	m.Indices[i], m.Indices[j] = m.Indices[j], m.Indices[i]
	m.Indices[i+1], m.Indices[j+1] = m.Indices[j+1], m.Indices[i+1]
	m.Indices[i+2], m.Indices[j+2] = m.Indices[j+2], m.Indices[i+2]
	ti, tj := i/3, j/3
	m.Normals[ti], m.Normals[tj] = m.Normals[tj], m.Normals[ti]
	m.TransformedNormals[ti], m.TransformedNormals[tj] = m.TransformedNormals[tj], m.TransformedNormals[ti]
}

func (m *TriangleMesh) triangleCentroid(firstIndex uint32) core.Vec3 {
	v0 := m.TransformedPositions[m.Indices[firstIndex]]
	v1 := m.TransformedPositions[m.Indices[firstIndex+1]]
	v2 := m.TransformedPositions[m.Indices[firstIndex+2]]
	return v0.Add(v1).Add(v2).Mul(1.0 / 3.0)
}

type bvhBin struct {
	bounds core.AABB
	count  uint32
}

// findBestSplitPlane scans all three axes, binning triangle centroids into
// bvhBinCount uniform bins per axis and evaluating the SAH cost of each of
// the resulting candidate split planes. Returns axis -1 if every axis has a
// degenerate (near-zero) centroid range.
func (m *TriangleMesh) findBestSplitPlane(node *BVHNode) (bestAxis int, bestSplitPos float32, bestCost float32) {
	bestAxis = -1
	bestCost = float32(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		boundsMin, boundsMax := float32(math.Inf(1)), float32(math.Inf(-1))
		for i := node.FirstIndex; i < node.FirstIndex+node.IndexCount; i += 3 {
			c := m.triangleCentroid(i)[axis]
			if c < boundsMin {
				boundsMin = c
			}
			if c > boundsMax {
				boundsMax = c
			}
		}
		if boundsMax-boundsMin < 1e-7 {
			continue
		}

		var bins [bvhBinCount]bvhBin
		for b := range bins {
			bins[b].bounds = core.EmptyAABB()
		}
		scale := float32(bvhBinCount) / (boundsMax - boundsMin)

		for i := node.FirstIndex; i < node.FirstIndex+node.IndexCount; i += 3 {
			v0 := m.TransformedPositions[m.Indices[i]]
			v1 := m.TransformedPositions[m.Indices[i+1]]
			v2 := m.TransformedPositions[m.Indices[i+2]]
			centroid := v0.Add(v1).Add(v2).Mul(1.0 / 3.0)

			binIdx := int((centroid[axis] - boundsMin) * scale)
			if binIdx >= bvhBinCount {
				binIdx = bvhBinCount - 1
			}

			bins[binIdx].count += 3
			bins[binIdx].bounds = bins[binIdx].bounds.Grow(v0)
			bins[binIdx].bounds = bins[binIdx].bounds.Grow(v1)
			bins[binIdx].bounds = bins[binIdx].bounds.Grow(v2)
		}

		var leftArea, rightArea [bvhBinCount - 1]float32
		var leftCount, rightCount [bvhBinCount - 1]uint32

		leftBox, rightBox := core.EmptyAABB(), core.EmptyAABB()
		var leftSum, rightSum uint32
		for i := 0; i < bvhBinCount-1; i++ {
			leftSum += bins[i].count
			leftCount[i] = leftSum
			leftBox = leftBox.GrowBox(bins[i].bounds)
			leftArea[i] = leftBox.Area()

			rightSum += bins[bvhBinCount-1-i].count
			rightCount[bvhBinCount-2-i] = rightSum
			rightBox = rightBox.GrowBox(bins[bvhBinCount-1-i].bounds)
			rightArea[bvhBinCount-2-i] = rightBox.Area()
		}

		binWidth := (boundsMax - boundsMin) / bvhBinCount
		for i := 0; i < bvhBinCount-1; i++ {
			planeCost := float32(leftCount[i])*leftArea[i] + float32(rightCount[i])*rightArea[i]
			if planeCost < bestCost {
				bestCost = planeCost
				bestAxis = axis
				bestSplitPos = boundsMin + binWidth*float32(i+1)
			}
		}
	}

	return bestAxis, bestSplitPos, bestCost
}

// Hit traverses the BVH depth-first from the root, testing each node's AABB
// with the slab test and descending into both children when an internal
// node is hit. Leaves are tested triangle-by-triangle with Möller-Trumbore.
// For a closest-hit query (ignoreHitRecord == false) the smallest t wins;
// for an any-hit query it returns true on the first intersection found,
// using the inverted cull mode.
func (m *TriangleMesh) Hit(ray core.Ray, tMin, tMax float32, ignoreHitRecord bool, hit *core.HitRecord) bool {
	if len(m.Nodes) == 0 {
		return false
	}
	cullMode := m.CullMode
	if ignoreHitRecord {
		cullMode = cullMode.Invert()
	}
	return m.hitNode(0, ray, tMin, tMax, ignoreHitRecord, cullMode, hit)
}

func (m *TriangleMesh) hitNode(nodeIdx uint32, ray core.Ray, tMin, tMax float32, ignoreHitRecord bool, cullMode CullMode, hit *core.HitRecord) bool {
	node := &m.Nodes[nodeIdx]
	if !node.Bounds.Hit(ray, tMin, tMax) {
		return false
	}

	if node.isLeaf() {
		found := false
		for i := node.FirstIndex; i < node.FirstIndex+node.IndexCount; i += 3 {
			triIdx := i / 3
			v0 := m.TransformedPositions[m.Indices[i]]
			v1 := m.TransformedPositions[m.Indices[i+1]]
			v2 := m.TransformedPositions[m.Indices[i+2]]
			normal := m.TransformedNormals[triIdx]

			if HitTriangle(ray, v0, v1, v2, normal, cullMode, m.MaterialIndex, tMin, tMax, hit) {
				if ignoreHitRecord {
					return true
				}
				tMax = hit.T
				found = true
			}
		}
		return found
	}

	left := node.LeftChild
	right := left + 1
	hitLeft := m.hitNode(left, ray, tMin, tMax, ignoreHitRecord, cullMode, hit)
	if hitLeft {
		if ignoreHitRecord {
			return true
		}
		tMax = hit.T
	}
	hitRight := m.hitNode(right, ray, tMin, tMax, ignoreHitRecord, cullMode, hit)
	return hitLeft || hitRight
}
