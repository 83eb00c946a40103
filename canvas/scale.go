package canvas

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Scaled returns a copy of the pixmap resampled to the given dimensions
// using Catmull-Rom interpolation. The source pixmap is not modified.
func (p *Pixmap) Scaled(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		return NewPixmap(0, 0)
	}
	if width == p.width && height == p.height {
		out := NewPixmap(width, height)
		copy(out.data, p.data)
		return out
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), p.ToImage(), p.Bounds(), xdraw.Src, nil)

	out := NewPixmap(width, height)
	copy(out.data, dst.Pix)
	return out
}
