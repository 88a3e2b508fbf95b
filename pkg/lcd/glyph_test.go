package lcd

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstb/rescuelcd/pkg/font"
	"github.com/openstb/rescuelcd/pkg/pixfmt"
)

// pixel16 reads back a native pixel from a 16bpp buffer.
func pixel16(l *LCD, x, y int) uint16 {
	return binary.LittleEndian.Uint16(l.data[y*l.stride+x*2:])
}

// nibble reads back one 4bpp pixel.
func nibble(l *LCD, x, y int) byte {
	b := l.data[y*l.stride+x/2]
	if x&1 == 0 {
		return b >> 4
	}
	return b & 0x0f
}

func TestPutChar_NibblePacked(t *testing.T) {
	l := newTestSurface(t, 128, 64, 4, 0, pixfmt.ColorFormat{})
	require.Equal(t, 64, l.stride)
	require.Equal(t, 4096, l.size)

	l.SetX(0)
	l.SetY(0)
	l.PutChar('A')

	for col := 0; col < font.Width; col++ {
		bits := font.Column('A', col)
		for row := 0; row < font.Height; row++ {
			want := byte(0)
			if bits&(1<<row) != 0 {
				want = 0x0f
			}
			assert.Equal(t, want, nibble(l, col, row), "col %d row %d", col, row)
		}
	}
	assert.Equal(t, font.Width, l.x)
}

func TestPutString_AdvancesOneCellPerChar(t *testing.T) {
	l := newTestSurface(t, 128, 64, 4, 0, pixfmt.ColorFormat{})
	l.SetX(2)
	l.PutString("ABC")
	assert.Equal(t, 2+3*l.FontWidth(), l.x)
}

func TestPutChar_ForegroundAndBackground16(t *testing.T) {
	l := newTestSurface(t, 64, 32, 16, 0, pixfmt.RGB565)
	l.SetFgColor(0xffffffff)

	// A recognizable background so off-pixels are provably restored from
	// the snapshot rather than cleared.
	for i := range l.bg {
		l.bg[i] = 0x5a
	}

	l.SetX(0)
	l.SetY(0)
	l.PutChar('!')

	for col := 0; col < font.Width; col++ {
		bits := font.Column('!', col)
		for row := 0; row < font.Height; row++ {
			got := pixel16(l, col, row)
			if bits&(1<<row) != 0 {
				assert.Equal(t, uint16(0xffff), got, "col %d row %d", col, row)
			} else {
				assert.Equal(t, uint16(0x5a5a), got, "col %d row %d", col, row)
			}
		}
	}
}

// Sweeping a glyph across and past both edges must never touch memory
// outside the pixel buffer and must clip per pixel.
func TestPutChar_ClippedSweep(t *testing.T) {
	l := newTestSurface(t, 64, 32, 16, 0, pixfmt.RGB565)
	l.SetFgColor(0xffffffff)

	fw := l.FontWidth()
	for x := -fw; x <= l.Width()+fw; x++ {
		l.SetX(x)
		l.SetY(-3)
		l.PutChar('W')
		l.SetY(l.Height() - 3)
		l.PutChar('W')
	}
}

func TestPutChar_PartialClipKeepsAlignment(t *testing.T) {
	l := newTestSurface(t, 64, 32, 16, 0, pixfmt.RGB565)
	l.SetFgColor(0xffffffff)

	// Start three columns off the left edge: the first visible column of
	// the glyph is font column 3.
	l.SetX(-3)
	l.SetY(0)
	l.PutChar('H')
	assert.Equal(t, -3+l.FontWidth(), l.x)

	bits := font.Column('H', 3)
	for row := 0; row < font.Height; row++ {
		want := uint16(0)
		if bits&(1<<row) != 0 {
			want = 0xffff
		}
		assert.Equal(t, want, pixel16(l, 0, row), "row %d", row)
	}
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		height int
		scale  int
	}{
		{64, 1},
		{119, 1},
		{120, 2},
		{240, 2},
		{480, 3},
		{1080, 6},
	}
	for _, tt := range tests {
		l := &LCD{height: tt.height}
		assert.Equal(t, tt.scale, l.scale(), "height %d", tt.height)
	}
}

func TestPutChar_Scaled(t *testing.T) {
	l := newTestSurface(t, 400, 240, 16, 0, pixfmt.RGB565)
	l.SetFgColor(0xffffffff)

	require.Equal(t, 12, l.FontWidth())
	require.Equal(t, 16, l.FontHeight())

	l.SetX(0)
	l.SetY(0)
	l.PutChar('|')

	// Every font pixel becomes a 2x2 block.
	for col := 0; col < font.Width; col++ {
		bits := font.Column('|', col)
		for row := 0; row < font.Height; row++ {
			want := uint16(0)
			if bits&(1<<row) != 0 {
				want = 0xffff
			}
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					assert.Equal(t, want, pixel16(l, col*2+dx, row*2+dy),
						"col %d row %d", col, row)
				}
			}
		}
	}
	assert.Equal(t, 12, l.x)
}

func TestPutChar_ReverseXMirrors(t *testing.T) {
	l := newTestSurface(t, 64, 32, 16, flagReverseX, pixfmt.RGB565)
	l.SetFgColor(0xffffffff)

	l.SetX(0)
	l.SetY(0)
	l.PutChar('!')

	for col := 0; col < font.Width; col++ {
		bits := font.Column('!', col)
		for row := 0; row < font.Height; row++ {
			want := uint16(0)
			if bits&(1<<row) != 0 {
				want = 0xffff
			}
			assert.Equal(t, want, pixel16(l, l.width-1-col, row), "col %d row %d", col, row)
		}
	}
}

func TestPutChar_SwapAxesTransposes(t *testing.T) {
	// 64x128 hardware buffer presented as a 128x64 logical panel.
	l := newTestSurface(t, 64, 128, 4, flagSwapAxes, pixfmt.ColorFormat{})

	l.SetX(0)
	l.SetY(0)
	l.PutChar('A')

	for col := 0; col < font.Width; col++ {
		bits := font.Column('A', col)
		for row := 0; row < font.Height; row++ {
			want := byte(0)
			if bits&(1<<row) != 0 {
				want = 0x0f
			}
			// Logical (col, row) lands at hardware (row, col).
			assert.Equal(t, want, nibble(l, row, col), "col %d row %d", col, row)
		}
	}
}

func TestPrintf(t *testing.T) {
	l := newTestSurface(t, 128, 64, 4, 0, pixfmt.ColorFormat{})
	l.SetX(0)
	l.SetY(0)
	n := l.Printf("http://%s/", "box")
	assert.Equal(t, len("http://box/"), n)
	assert.Equal(t, len("http://box/")*l.FontWidth(), l.x)
}
