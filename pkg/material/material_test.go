package material

import (
	"testing"

	"github.com/df07/rayforge/pkg/core"
)

func TestSolidColorShade(t *testing.T) {
	m := NewSolidColor(core.NewColorRGB(0.2, 0.4, 0.6))
	hit := core.NewHitRecord()
	got := m.Shade(hit, core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))
	if got != core.NewColorRGB(0.2, 0.4, 0.6) {
		t.Errorf("Shade = %v, want the solid color unchanged", got)
	}
}

func TestLambertShadeMatchesFormula(t *testing.T) {
	cd := core.NewColorRGB(1, 1, 1)
	m := NewLambert(0.8, cd)
	hit := core.NewHitRecord()

	got := m.Shade(hit, core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))
	want := cd.Mul(0.8 / 3.14159265)

	if got.R-want.R > 1e-4 || got.R-want.R < -1e-4 {
		t.Errorf("Shade.R = %v, want %v", got.R, want.R)
	}
}

func TestCookTorranceGrazingReturnsNonNegative(t *testing.T) {
	m := NewCookTorrance(core.NewColorRGB(0.9, 0.9, 0.9), 0, 0.5)
	hit := core.NewHitRecord()
	hit.Normal = core.NewVec3(0, 0, 1)

	l := core.NewVec3(0.99, 0, 0.0141).Normalize()
	v := core.NewVec3(0, 0, 1)

	got := m.Shade(hit, l, v)
	if got.R < 0 || got.G < 0 || got.B < 0 {
		t.Errorf("CookTorrance.Shade at grazing angle went negative: %v", got)
	}
}

func TestCookTorranceBacklitReturnsZero(t *testing.T) {
	m := NewCookTorrance(core.NewColorRGB(0.9, 0.9, 0.9), 0, 0.5)
	hit := core.NewHitRecord()
	hit.Normal = core.NewVec3(0, 0, 1)

	l := core.NewVec3(0, 0, -1) // light behind the surface
	v := core.NewVec3(0, 0, 1)

	got := m.Shade(hit, l, v)
	if got != (core.ColorRGB{}) {
		t.Errorf("Shade with light behind surface = %v, want zero", got)
	}
}
