package math

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/spaghettifunk/gxmath/engine/core"
)

// ColorRGB is a linear colour with channels in [0, 1]. Values outside the
// range are carried through untouched.
type ColorRGB struct {
	R, G, B, A float32
}

// ColorHSV holds hue in [0, 360) and saturation, value and alpha in [0, 100].
type ColorHSV struct {
	H, S, V, A float32
}

func NewColorRGB(r, g, b, a float32) ColorRGB {
	return ColorRGB{R: r, G: g, B: b, A: a}
}

func NewColorHSV(h, s, v, a float32) ColorHSV {
	return ColorHSV{H: h, S: s, V: v, A: a}
}

func (c *ColorRGB) Init(r, g, b, a float32) {
	c.R = r
	c.G = g
	c.B = b
	c.A = a
}

/**
 * @brief Sets the colour from byte channels. alpha is scaled by the same
 * 1/255 factor, so it is expected in [0, 255] as well.
 */
func (c *ColorRGB) FromBytes(red, green, blue uint8, alpha float32) {
	c.R = float32(red) * colorToFloat
	c.G = float32(green) * colorToFloat
	c.B = float32(blue) * colorToFloat
	c.A = alpha * colorToFloat
}

// maxHueMagnitude bounds the hues that can be wrapped by repeated ±360
// steps. Past it the float32 spacing swallows the step.
const maxHueMagnitude float32 = 1 << 24

// ValidateHue rejects NaN, infinite and out of range hues.
func ValidateHue(hue float32) error {
	if math32.IsNaN(hue) || math32.IsInf(hue, 0) {
		return errors.Wrapf(core.ErrInvalidHue, "hue %v", hue)
	}
	if math32.Abs(hue) >= maxHueMagnitude {
		return errors.Wrapf(core.ErrInvalidHue, "hue %v is out of range (|h| < %v)", hue, maxHueMagnitude)
	}
	return nil
}

/**
 * @brief Converts from HSV. Hue is wrapped into [0, 360) first. A hue
 * rejected by ValidateHue leaves the colour untouched and returns an error.
 */
func (c *ColorRGB) FromHSV(color ColorHSV) error {
	correctedHue := color.H
	if err := ValidateHue(correctedHue); err != nil {
		return errors.Wrap(err, "rgb from hsv")
	}

	for correctedHue >= 360.0 {
		correctedHue -= 360.0
	}
	for correctedHue < 0.0 {
		correctedHue += 360.0
	}

	value := color.V
	hue := int32(correctedHue)

	selector := (hue / 60) % 6
	minValue := ((100.0 - color.S) * value) * 0.01
	delta := (value - minValue) * (float32(hue%60) * hsvaFactor)
	increment := minValue + delta
	decrement := value - delta

	var r, g, b float32
	switch selector {
	case 0:
		r, g, b = value, increment, minValue
	case 1:
		r, g, b = decrement, value, minValue
	case 2:
		r, g, b = minValue, value, increment
	case 3:
		r, g, b = minValue, decrement, value
	case 4:
		r, g, b = increment, minValue, value
	case 5:
		r, g, b = value, minValue, decrement
	default:
		return errors.Wrapf(core.ErrInvalidHue, "rgb from hsv: sector %d", selector)
	}

	c.R = r * hsvaToRGBAFloat
	c.G = g * hsvaToRGBAFloat
	c.B = b * hsvaToRGBAFloat
	c.A = color.A * hsvaToRGBAFloat
	return nil
}

/**
 * @brief Returns the channels scaled to bytes, rounding half away from zero.
 * Channels outside [0, 1] wrap around instead of saturating.
 */
func (c ColorRGB) ConvertToUByte() (red, green, blue, alpha uint8) {
	return toUbyte(c.R), toUbyte(c.G), toUbyte(c.B), toUbyte(c.A)
}

func toUbyte(channel float32) uint8 {
	scaled := channel * rgbaToUbyteFactor
	if scaled < 0.0 {
		return uint8(int32(scaled - 0.5))
	}
	return uint8(int32(scaled + 0.5))
}

func (c ColorRGB) ToVec4() Vec4 {
	return Vec4{c.R, c.G, c.B, c.A}
}

func (c *ColorHSV) Init(h, s, v, a float32) {
	c.H = h
	c.S = s
	c.V = v
	c.A = a
}

/**
 * @brief Converts from RGB. Ties between channels are resolved in the order
 * grey, red with green >= blue, red, green, blue.
 */
func (c *ColorHSV) FromRGB(color ColorRGB) error {
	if math32.IsNaN(color.R) || math32.IsNaN(color.G) || math32.IsNaN(color.B) {
		return errors.Wrapf(core.ErrInvalidColor, "hsv from rgb: %v", color)
	}

	maxValue := Max(Max(color.R, color.G), color.B)
	minValue := Min(Min(color.R, color.G), color.B)

	var hue float32
	switch {
	case maxValue == minValue:
		hue = 0.0
	case maxValue == color.R && color.G >= color.B:
		hue = 60.0 * ((color.G - color.B) / (maxValue - minValue))
	case maxValue == color.R && color.G < color.B:
		hue = 60.0*((color.G-color.B)/(maxValue-minValue)) + 360.0
	case maxValue == color.G:
		hue = 60.0*((color.B-color.R)/(maxValue-minValue)) + 120.0
	case maxValue == color.B:
		hue = 60.0*((color.R-color.G)/(maxValue-minValue)) + 240.0
	default:
		return errors.Wrapf(core.ErrInvalidColor, "hsv from rgb: %v", color)
	}

	c.H = hue
	if maxValue == 0.0 {
		c.S = 0.0
	} else {
		c.S = 100.0 * (1.0 - minValue/maxValue)
	}
	c.V = 100.0 * maxValue
	c.A = 100.0 * color.A
	return nil
}
