package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
)

func WritePPM(w io.Writer, buf []byte, width, height int) error {
	if _, err := fmt.Fprintf(w, "P6\n%d %d 255\n", width, height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}
	_, err := w.Write(buf)
	return err
}

// rgbImage exposes a packed 8-bit RGB buffer, rows top to bottom, as an
// opaque image without copying it.
type rgbImage struct {
	pix           []byte
	width, height int
}

func (im rgbImage) ColorModel() color.Model { return color.NRGBAModel }

func (im rgbImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.width, im.height)
}

func (im rgbImage) At(x, y int) color.Color {
	i := 3 * (y*im.width + x)
	return color.NRGBA{R: im.pix[i], G: im.pix[i+1], B: im.pix[i+2], A: 255}
}

func WriteJPG(w io.Writer, buf []byte, width, height int) error {
	err := jpeg.Encode(w, rgbImage{buf, width, height}, &jpeg.Options{Quality: 90})
	if err != nil {
		return fmt.Errorf("encoding jpeg: %w", err)
	}
	return nil
}

func WritePNG(w io.Writer, buf []byte, width, height int) error {
	if err := png.Encode(w, rgbImage{buf, width, height}); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
