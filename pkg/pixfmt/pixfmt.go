// Package pixfmt describes native pixel encodings of display hardware.
//
// A ColorFormat captures the per-channel bit layout of a surface (offset and
// width of the red, green, blue and alpha components) plus an optional
// byte-swap for panels that expect big-endian 16-bit pixels. It converts
// 32-bit ARGB colors into the value the hardware stores per pixel.
package pixfmt

import "strings"

// Channel describes where one color component lives inside a native pixel.
type Channel struct {
	Offset uint32
	Width  uint32
}

// ColorFormat describes the native pixel layout of a surface. It is only
// meaningful for depths of 16 bits per pixel and above.
type ColorFormat struct {
	Red   Channel
	Green Channel
	Blue  Channel
	Alpha Channel

	// SwapBytes requests a byte swap of the composed 16-bit pixel, for
	// panels wired big-endian.
	SwapBytes bool
}

// Common hardware formats.
var (
	RGB565 = ColorFormat{
		Red:   Channel{Offset: 11, Width: 5},
		Green: Channel{Offset: 5, Width: 6},
		Blue:  Channel{Offset: 0, Width: 5},
	}

	RGB565BE = ColorFormat{
		Red:       Channel{Offset: 11, Width: 5},
		Green:     Channel{Offset: 5, Width: 6},
		Blue:      Channel{Offset: 0, Width: 5},
		SwapBytes: true,
	}

	ARGB8888 = ColorFormat{
		Alpha: Channel{Offset: 24, Width: 8},
		Red:   Channel{Offset: 16, Width: 8},
		Green: Channel{Offset: 8, Width: 8},
		Blue:  Channel{Offset: 0, Width: 8},
	}
)

// Encode converts a 32-bit ARGB color into the native pixel value.
//
// Each 8-bit channel is truncated to the channel's native width with a right
// shift, never rounded, to match what the hardware itself would latch.
func (f ColorFormat) Encode(argb uint32) uint32 {
	a := argb >> 24 & 0xff
	r := argb >> 16 & 0xff
	g := argb >> 8 & 0xff
	b := argb & 0xff

	v := a >> (8 - f.Alpha.Width) << f.Alpha.Offset
	v |= r >> (8 - f.Red.Width) << f.Red.Offset
	v |= g >> (8 - f.Green.Width) << f.Green.Offset
	v |= b >> (8 - f.Blue.Width) << f.Blue.Offset

	if f.SwapBytes {
		v = (v&0xff)<<8 | v>>8&0xff
	}
	return v
}

// ParsePanelFormat interprets the color-format name reported by a direct
// panel. A name starting with "RGB565" selects the 16-bit format; a trailing
// "B" tag selects the big-endian variant. Unknown tags fall back to
// little-endian, which is what every panel observed so far uses. Names
// without the prefix are rejected.
func ParsePanelFormat(name string) (ColorFormat, bool) {
	name = strings.TrimSpace(name)
	const prefix = "RGB565"
	if !strings.HasPrefix(name, prefix) {
		return ColorFormat{}, false
	}
	if strings.HasSuffix(name, "B") && len(name) > len(prefix) {
		return RGB565BE, true
	}
	return RGB565, true
}
