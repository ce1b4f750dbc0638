package renderer

import (
	"runtime"
	"sync"
)

// pixelRange is a contiguous, half-open span of pixel indices a single
// worker owns for the duration of a render.
type pixelRange struct {
	start, end int
}

// partitionPixels splits [0, total) into contiguous ranges of size
// ceil(total/numWorkers), the last one shorter if total doesn't divide
// evenly. This yields at most numWorkers ranges, and fewer when the
// rounded-up chunk size covers total sooner (e.g. total 9, 4 workers
// gives 3 ranges). This is the task-parallel dispatch configuration: no
// pixel index is ever owned by more than one range.
func partitionPixels(total, numWorkers int) []pixelRange {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	chunk := (total + numWorkers - 1) / numWorkers

	ranges := make([]pixelRange, 0, numWorkers)
	for start := 0; start < total; start += chunk {
		end := start + chunk
		if end > total {
			end = total
		}
		ranges = append(ranges, pixelRange{start: start, end: end})
	}
	return ranges
}

// Render dispatches width*height pixels across numWorkers goroutines, each
// shading and writing a disjoint contiguous range of the framebuffer. If
// numWorkers <= 0, runtime.NumCPU() is used. The scene, camera and
// materials are read-only for the duration of the call; no synchronization
// beyond the final WaitGroup join is required because workers never touch
// each other's pixel indices.
func (r *Renderer) Render(fb *Framebuffer, numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	total := fb.Width * fb.Height
	ranges := partitionPixels(total, numWorkers)

	var wg sync.WaitGroup
	for _, rng := range ranges {
		wg.Add(1)
		go func(rng pixelRange) {
			defer wg.Done()
			r.renderRange(fb, rng)
		}(rng)
	}
	wg.Wait()
}

func (r *Renderer) renderRange(fb *Framebuffer, rng pixelRange) {
	for idx := rng.start; idx < rng.end; idx++ {
		px := idx % fb.Width
		py := idx / fb.Width
		color := r.ShadePixel(px, py, fb.Width, fb.Height)
		fb.SetPixel(px, py, color)
	}
}
