package lcd

// The boot wordmark, 96x32, one bit per pixel. The layout matches the font:
// bytes are columns of eight rows, bit 0 on top, four row bands stacked top
// to bottom. Regenerate with cmd/mklogo.
const (
	monoLogoWidth  = 96
	monoLogoHeight = 32
)

// monoLogoBit reports whether the wordmark pixel at (x, y) is set.
func monoLogoBit(x, y int) bool {
	if x < 0 || x >= monoLogoWidth || y < 0 || y >= monoLogoHeight {
		return false
	}
	return monoLogoBits[y/8*monoLogoWidth+x]&(1<<(y%8)) != 0
}

var monoLogoBits = [monoLogoWidth * monoLogoHeight / 8]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xc0, 0xc0, 0x30, 0x30, 0x30, 0x30,
	0x30, 0x30, 0xc0, 0xc0, 0x00, 0x00, 0xf0, 0xf0, 0x30, 0x30, 0x30, 0x30,
	0x30, 0x30, 0xc0, 0xc0, 0x00, 0x00, 0xc0, 0xc0, 0x30, 0x30, 0x30, 0x30,
	0x30, 0x30, 0xc0, 0xc0, 0x00, 0x00, 0xf0, 0xf0, 0xc0, 0xc0, 0x30, 0x30,
	0x30, 0x30, 0xc0, 0xc0, 0x00, 0x00, 0x3c, 0x3c, 0xc3, 0xc3, 0xc3, 0xc3,
	0xc3, 0xc3, 0x03, 0x03, 0x00, 0x00, 0x03, 0x03, 0x03, 0x03, 0xff, 0xff,
	0x03, 0x03, 0x03, 0x03, 0x00, 0x00, 0xff, 0xff, 0xc3, 0xc3, 0xc3, 0xc3,
	0xc3, 0xc3, 0x3c, 0x3c, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0f, 0x0f, 0x30, 0x30, 0x30, 0x30,
	0x30, 0x30, 0x0f, 0x0f, 0x00, 0x00, 0x3f, 0x3f, 0x03, 0x03, 0x03, 0x03,
	0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x0f, 0x0f, 0x33, 0x33, 0x33, 0x33,
	0x33, 0x33, 0x03, 0x03, 0x00, 0x00, 0x3f, 0x3f, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x3f, 0x3f, 0x00, 0x00, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30,
	0x30, 0x30, 0x0f, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3f, 0x3f,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3f, 0x3f, 0x30, 0x30, 0x30, 0x30,
	0x30, 0x30, 0x0f, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x04, 0x04, 0x04,
	0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04,
	0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04,
	0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04,
	0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04,
	0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04,
	0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04,
	0x04, 0x04, 0x04, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}
