// Package terminal presents rendered frames on a tcell screen and feeds keyboard, mouse and resize events back to the game.
//
// Each terminal cell shows two raster pixels with the upper half block rune:
// the top pixel is the foreground and the bottom pixel the background.
// Text glyphs from the raster replace the half block in their cell.
package terminal
