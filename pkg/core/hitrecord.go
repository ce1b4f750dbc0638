package core

import "math"

// HitRecord captures the result of an intersection query. It is
// stack-local to each worker and reused across primitive tests within a
// single query, so callers must not retain pointers past a frame.
type HitRecord struct {
	Origin        Vec3
	Normal        Vec3
	T             float32
	DidHit        bool
	MaterialIndex byte
}

// NewHitRecord returns a record in its initial, no-hit state.
func NewHitRecord() HitRecord {
	return HitRecord{T: float32(math.Inf(1)), DidHit: false}
}
