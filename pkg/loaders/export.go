package loaders

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"
)

// FramebufferSource is the minimal shape a renderer.Framebuffer exposes to
// the image exporter, kept narrow so this package never imports renderer.
type FramebufferSource interface {
	Dimensions() (width, height int)
	PixelAt(px, py int) uint32
}

// SaveBufferToImage persists the current framebuffer to a 24-bit bitmap
// file, the single output contract the core promises the host.
func SaveBufferToImage(fb FramebufferSource, path string) error {
	width, height := fb.Dimensions()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			packed := fb.PixelAt(x, y)
			img.Set(x, y, color.RGBA{
				R: uint8(packed >> 16),
				G: uint8(packed >> 8),
				B: uint8(packed),
				A: 0xFF,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loaders: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := bmp.Encode(f, img); err != nil {
		return fmt.Errorf("loaders: encoding bmp: %w", err)
	}
	return nil
}
