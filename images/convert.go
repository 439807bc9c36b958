package images

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	_ "image/jpeg" // register decoder

	_ "golang.org/x/image/tiff" // register decoder
)

// Decode decodes encoded image bytes into a bitmap. fileType is the codec
// pdfcpu assigned when extracting the stream; codecs with no registered
// decoder (notably JPEG 2000) are reported as unsupported.
func Decode(data []byte, fileType string) (image.Image, error) {
	switch strings.ToLower(fileType) {
	case "", "png", "jpg", "jpeg", "tif", "tiff":
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unsupported image codec %q", fileType)
	}
}

// Normalize converts CMYK bitmaps to RGB. Downstream consumers (OCR, chart
// classification, transport encoding) assume RGB or grayscale input; CMYK
// must never reach them.
func Normalize(img image.Image) image.Image {
	cm, ok := img.(*image.CMYK)
	if !ok {
		return img
	}
	b := cm.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := cm.PixOffset(x, y)
			r, g, bb := color.CMYKToRGB(cm.Pix[i], cm.Pix[i+1], cm.Pix[i+2], cm.Pix[i+3])
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bb, A: 255})
		}
	}
	return out
}

// EncodePNG losslessly encodes a bitmap for transport.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
