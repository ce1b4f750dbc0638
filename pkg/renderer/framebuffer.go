package renderer

import "github.com/df07/rayforge/pkg/core"

// Framebuffer is a non-owning, row-major 32-bit-per-pixel RGBA surface.
// The renderer only ever writes to it; ownership and presentation belong
// to the host.
type Framebuffer struct {
	Width, Height int
	Pixels        []uint32
}

// NewFramebuffer allocates a zeroed width x height buffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, Pixels: make([]uint32, width*height)}
}

// SetPixel tone-maps color via MaxToOne and packs it into 0xAARRGGBB at
// (px, py). Writes to distinct pixels never alias, so concurrent workers
// writing disjoint indices need no synchronization.
func (fb *Framebuffer) SetPixel(px, py int, color core.ColorRGB) {
	c := color.MaxToOne()
	r := uint32(clamp01(c.R) * 255)
	g := uint32(clamp01(c.G) * 255)
	b := uint32(clamp01(c.B) * 255)
	fb.Pixels[py*fb.Width+px] = 0xFF000000 | (r << 16) | (g << 8) | b
}

// Dimensions and PixelAt satisfy loaders.FramebufferSource, letting the
// export step read a rendered frame without this package depending on the
// image encoder.
func (fb *Framebuffer) Dimensions() (width, height int) { return fb.Width, fb.Height }

func (fb *Framebuffer) PixelAt(px, py int) uint32 { return fb.Pixels[py*fb.Width+px] }

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
