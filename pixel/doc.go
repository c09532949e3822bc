// Package pixel implements the color model and image type backing the
// Unicorn HAT HD frame buffer.
//
// The types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces, so the standard library and this module's draw
// helpers can paint straight into the display buffer.
package pixel
