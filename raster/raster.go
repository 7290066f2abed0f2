// Package raster implements the raster buffer and the BMP sink of spec
// §4.9: a W*H array of 24-bit BGR pixels, flushed as a little-endian,
// bottom-up, row-padded 24-bpp BMP file.
package raster

import (
	"encoding/binary"
	"io"
	"os"
)

// Color is a 24-bit RGB pixel (BMP stores it BGR on disk; Color itself is
// in the conventional R, G, B field order).
type Color struct {
	R, G, B byte
}

// Raster is a W*H array of pixels, written once by the color pass and then
// mutated by AA workers one pixel at a time.
type Raster struct {
	width, height int
	pixels        []Color
}

// New allocates a black width x height raster.
func New(width, height int) *Raster {
	return &Raster{width: width, height: height, pixels: make([]Color, width*height)}
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }

// Set writes the pixel at (i, j).
func (r *Raster) Set(i, j int, c Color) {
	r.pixels[j*r.width+i] = c
}

// Get reads the pixel at (i, j).
func (r *Raster) Get(i, j int) Color {
	return r.pixels[j*r.width+i]
}

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	headerSize     = fileHeaderSize + infoHeaderSize
)

// RowSize returns the unpadded byte length of one scanline (width * 3).
func (r *Raster) RowSize() int {
	return r.width * 3
}

// RowPadding returns the number of zero bytes appended to each scanline so
// its total length is a multiple of four.
func (r *Raster) RowPadding() int {
	return (4 - r.RowSize()%4) % 4
}

// ImageDataSize returns the total byte length of the pixel data, padding
// included.
func (r *Raster) ImageDataSize() int {
	return (r.RowSize() + r.RowPadding()) * r.height
}

// FileSize returns the total BMP file length: header plus image data.
func (r *Raster) FileSize() int {
	return headerSize + r.ImageDataSize()
}

// WriteBMP serializes the raster as a standard 14+40 byte BMP header
// followed by bottom-to-top, BGR, row-padded pixel data, per spec §4.9.
func (r *Raster) WriteBMP(w io.Writer) error {
	header := make([]byte, headerSize)
	header[0], header[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(header[2:6], uint32(r.FileSize()))
	// header[6:10] reserved, left zero
	binary.LittleEndian.PutUint32(header[10:14], uint32(headerSize))
	binary.LittleEndian.PutUint32(header[14:18], uint32(infoHeaderSize))
	binary.LittleEndian.PutUint32(header[18:22], uint32(r.width))
	binary.LittleEndian.PutUint32(header[22:26], uint32(r.height))
	binary.LittleEndian.PutUint16(header[26:28], 1)  // color planes
	binary.LittleEndian.PutUint16(header[28:30], 24) // bits per pixel
	binary.LittleEndian.PutUint32(header[30:34], 0)   // compression method
	binary.LittleEndian.PutUint32(header[34:38], uint32(r.ImageDataSize()))
	// horizontal/vertical resolution, palette counts left zero

	if _, err := w.Write(header); err != nil {
		return err
	}

	padding := r.RowPadding()
	padBytes := make([]byte, padding)
	row := make([]byte, r.RowSize())
	for out := 0; out < r.height; out++ {
		// BMP rows are bottom-to-top: the first scanline written is the
		// bottom of the displayed image.
		srcRow := r.height - 1 - out
		for i := 0; i < r.width; i++ {
			c := r.Get(i, srcRow)
			row[i*3+0] = c.B
			row[i*3+1] = c.G
			row[i*3+2] = c.R
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
		if padding > 0 {
			if _, err := w.Write(padBytes); err != nil {
				return err
			}
		}
	}
	return nil
}

// Write creates (or truncates) path and writes the BMP encoding of r to it.
func (r *Raster) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.WriteBMP(f)
}

// ByteSwap32 reverses the byte order of a uint32 — used by the original
// big-endian safety path this format's header never actually needs on a
// little-endian host, kept here since spec §8 tests it directly.
func ByteSwap32(v uint32) uint32 {
	return (v&0x000000ff)<<24 |
		(v&0x0000ff00)<<8 |
		(v&0x00ff0000)>>8 |
		(v&0xff000000)>>24
}

// ByteSwapColor reverses a pixel's byte order (R,G,B) -> (B,G,R).
func ByteSwapColor(c Color) Color {
	return Color{R: c.B, G: c.G, B: c.R}
}
