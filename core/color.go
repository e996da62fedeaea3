package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBWhite = RGB{255, 255, 255}
	RGBLabel = RGB{30, 30, 40}
)

// RGBFromSlice builds a color from a [r, g, b] table entry, missing or out-of-range channels clamp
func RGBFromSlice(ch []int) RGB {
	var out [3]uint8
	for i := 0; i < 3 && i < len(ch); i++ {
		out[i] = uint8(min(max(ch[i], 0), 255))
	}
	return RGB{out[0], out[1], out[2]}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}
