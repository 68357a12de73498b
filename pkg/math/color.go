package math

// Color is a linear RGBA color. Colors read from a host without an
// alpha channel carry A = 1.
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// IsFinite reports whether no channel is NaN or infinite.
func (c Color) IsFinite() bool {
	return finite(c.R) && finite(c.G) && finite(c.B) && finite(c.A)
}

// Slice returns the channels as a slice in RGBA order.
func (c Color) Slice() []float32 {
	return []float32{c.R, c.G, c.B, c.A}
}
