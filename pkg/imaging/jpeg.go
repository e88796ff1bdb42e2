package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
)

// jpegCodec is a baseline JPEG shim over the standard library, so the registry
// and the CLI have a working compressed codec without an external library.
type jpegCodec struct{}

func (jpegCodec) Decode(payload []byte, mode Mode, width, height int) ([]byte, error) {
	img, err := jpeg.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("imaging: decoding JPEG payload: %w", err)
	}
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return nil, fmt.Errorf("imaging: JPEG payload is %dx%d, header declares %dx%d", b.Dx(), b.Dy(), width, height)
	}
	pixels := make([]byte, 0, width*height*mode.Channels())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if mode == ModeGray {
				// ITU-R 601 luma, same weights the stdlib uses.
				pixels = append(pixels, byte((19595*r+38470*g+7471*bl+1<<15)>>24))
			} else {
				pixels = append(pixels, byte(r>>8), byte(g>>8), byte(bl>>8))
			}
		}
	}
	return pixels, nil
}

func (jpegCodec) Encode(pixels []byte, mode Mode, width, height int) ([]byte, error) {
	if err := checkSize(len(pixels), mode, width, height); err != nil {
		return nil, err
	}
	var img image.Image
	switch mode {
	case ModeGray:
		g := image.NewGray(image.Rect(0, 0, width, height))
		copy(g.Pix, pixels)
		img = g
	default:
		rgba := image.NewRGBA(image.Rect(0, 0, width, height))
		for i := 0; i < width*height; i++ {
			rgba.Pix[i*4+0] = pixels[i*3+0]
			rgba.Pix[i*4+1] = pixels[i*3+1]
			rgba.Pix[i*4+2] = pixels[i*3+2]
			rgba.Pix[i*4+3] = 0xFF
		}
		img = rgba
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
		return nil, fmt.Errorf("imaging: encoding JPEG payload: %w", err)
	}
	return buf.Bytes(), nil
}

func init() {
	Register("JPEG", jpegCodec{})
}
