package renderer

import "time"

// RenderStats reports the shape and timing of a completed render, suitable
// for printing via a scene-info style CLI command.
type RenderStats struct {
	Width      int
	Height     int
	Spheres    int
	Planes     int
	Meshes     int
	Triangles  int
	BVHNodes   int
	Workers    int
	BVHBuild   time.Duration
	RenderTime time.Duration
}

// Timer captures a start time and yields the elapsed duration on Elapsed,
// used to fill in RenderStats.BVHBuild / RenderStats.RenderTime.
type Timer struct {
	start time.Time
}

func NewTimer() Timer { return Timer{start: time.Now()} }

func (t Timer) Elapsed() time.Duration { return time.Since(t.start) }
