package pixfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFormat_EncodeRGB565(t *testing.T) {
	tests := []struct {
		name string
		argb uint32
		want uint32
	}{
		{"white", 0xffffffff, 0xffff},
		{"black", 0xff000000, 0x0000},
		{"red", 0xffff0000, 0xf800},
		{"green", 0xff00ff00, 0x07e0},
		{"blue", 0xff0000ff, 0x001f},
		{"truncated low bits", 0xff070307, 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGB565.Encode(tt.argb))
		})
	}
}

func TestColorFormat_EncodeSwapsBytes(t *testing.T) {
	// 0xf800 (pure red) byte-swapped is 0x00f8.
	assert.Equal(t, uint32(0x00f8), RGB565BE.Encode(0xffff0000))
	assert.Equal(t, uint32(0xffff), RGB565BE.Encode(0xffffffff))
}

func TestColorFormat_EncodeARGB8888(t *testing.T) {
	assert.Equal(t, uint32(0x80102030), ARGB8888.Encode(0x80102030))
}

// Encoding must be a deterministic truncation: decoding the native value with
// the same channel table reproduces the top channel-width bits of the input.
func TestColorFormat_EncodeTruncationRoundTrip(t *testing.T) {
	colors := []uint32{0x00000000, 0xffffffff, 0x12345678, 0xfedcba98, 0x80ff7f01}

	for _, argb := range colors {
		v := RGB565.Encode(argb)

		r := v >> RGB565.Red.Offset & (1<<RGB565.Red.Width - 1)
		g := v >> RGB565.Green.Offset & (1<<RGB565.Green.Width - 1)
		b := v >> RGB565.Blue.Offset & (1<<RGB565.Blue.Width - 1)

		assert.Equal(t, argb>>16&0xff>>(8-RGB565.Red.Width), r)
		assert.Equal(t, argb>>8&0xff>>(8-RGB565.Green.Width), g)
		assert.Equal(t, argb&0xff>>(8-RGB565.Blue.Width), b)
	}
}

func TestParsePanelFormat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   ColorFormat
		wantOK bool
	}{
		{"plain", "RGB565", RGB565, true},
		{"big endian tag", "RGB565B", RGB565BE, true},
		{"trailing newline", "RGB565\n", RGB565, true},
		{"unknown tag defaults to little endian", "RGB565X", RGB565, true},
		{"unrelated name", "YUV422", ColorFormat{}, false},
		{"empty", "", ColorFormat{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePanelFormat(tt.input)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
