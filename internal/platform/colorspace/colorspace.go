// Package colorspace holds the pure color arithmetic shared by the
// calibration wizard and the profile adjuster: composing a clamped 8-bit
// RGB triple from a gray base plus white-balance, tint, and Kelvin offsets.
package colorspace

import (
	"fmt"
	"math"
)

// NeutralKelvin is the temperature at which the Kelvin bias is zero.
const NeutralKelvin = 6500

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as a #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Clamp rounds v to the nearest integer and pins it to [0, 255].
// Out-of-range arithmetic must clamp, never wrap.
func Clamp(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// Compose builds the display color from a gray base value and the combined
// white-balance and tint corrections. White balance pushes red up and blue
// down; tint moves the green channel.
func Compose(base, wb, tint float64) RGB {
	return RGB{
		R: Clamp(base + wb),
		G: Clamp(base + tint),
		B: Clamp(base - wb),
	}
}

// KelvinBias maps a color temperature to a white-balance shift. Lower
// temperatures are warmer: more red, less blue. The mapping is linear around
// the neutral point and monotonically decreasing in kelvin.
func KelvinBias(kelvin, neutral float64) float64 {
	if neutral <= 0 {
		neutral = NeutralKelvin
	}
	return (neutral - kelvin) / 100
}
