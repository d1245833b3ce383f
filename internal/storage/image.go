package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// Largura máxima das imagens servidas na página pública.
	MaxImageWidth = 1600

	webpQuality = 82
)

// EncodeWebP decodifica JPEG/PNG, reduz para a largura máxima mantendo a
// proporção e reencoda como WebP.
func EncodeWebP(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("storage: decode image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() > MaxImageWidth {
		h := bounds.Dy() * MaxImageWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, MaxImageWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("storage: encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
