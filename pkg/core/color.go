package core

// ColorRGB is a floating-point RGB color. Values are unclamped until
// MaxToOne is applied right before framebuffer packing.
type ColorRGB struct {
	R, G, B float32
}

func NewColorRGB(r, g, b float32) ColorRGB { return ColorRGB{r, g, b} }

func (c ColorRGB) Add(o ColorRGB) ColorRGB {
	return ColorRGB{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c ColorRGB) MulColor(o ColorRGB) ColorRGB {
	return ColorRGB{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c ColorRGB) Sub(o ColorRGB) ColorRGB {
	return ColorRGB{c.R - o.R, c.G - o.G, c.B - o.B}
}

func (c ColorRGB) Mul(s float32) ColorRGB {
	return ColorRGB{c.R * s, c.G * s, c.B * s}
}

// MaxToOne tone-maps the color by dividing all channels by the largest
// channel whenever that channel exceeds 1, leaving colors under 1 alone.
func (c ColorRGB) MaxToOne() ColorRGB {
	m := c.R
	if c.G > m {
		m = c.G
	}
	if c.B > m {
		m = c.B
	}
	if m > 1 {
		inv := 1 / m
		return c.Mul(inv)
	}
	return c
}

// LerpColor linearly interpolates between two colors, used by the
// Cook-Torrance dielectric/metal f0 blend.
func LerpColor(a, b ColorRGB, t float32) ColorRGB {
	return ColorRGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}
