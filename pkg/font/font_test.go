package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumn_PrintableRange(t *testing.T) {
	for c := byte(0x20); c <= 0x7e; c++ {
		blank := true
		for col := 0; col < Width; col++ {
			if Column(c, col) != 0 {
				blank = false
			}
		}
		if c != ' ' && blank {
			t.Errorf("character %q has no pixels", c)
		}
	}
}

func TestColumn_GapColumn(t *testing.T) {
	// The sixth column separates characters and must stay empty.
	for c := byte(0x20); c <= 0x7e; c++ {
		assert.Zero(t, Column(c, Width-1), "character %q", c)
	}
}

func TestColumn_OutOfRange(t *testing.T) {
	assert.Zero(t, Column(0x00, 0))
	assert.Zero(t, Column(0x7f, 0))
	assert.Zero(t, Column(0xff, 2))
	assert.Zero(t, Column('A', -1))
	assert.Zero(t, Column('A', Width))
}

func TestGlyph_MatchesColumns(t *testing.T) {
	g := Glyph('A')
	for col := 0; col < Width; col++ {
		assert.Equal(t, Column('A', col), g[col])
	}
	assert.Equal(t, [Width]byte{}, Glyph(0x01))
}
