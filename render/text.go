package render

import (
	"github.com/mattn/go-runewidth"
)

// Align is horizontal text alignment relative to the anchor x
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle controls text placement and weight
type TextStyle struct {
	Align Align
	Bold  bool
}

// TextWidth returns the display width of s in terminal cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// alignStart returns the leftmost cell column for text of width w anchored at x
func alignStart(x float64, w int, a Align) float64 {
	switch a {
	case AlignCenter:
		return x - float64(w)/2
	case AlignRight:
		return x - float64(w)
	default:
		return x
	}
}
