package wordimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// NormalizePNG decodes an image in any supported format and re-encodes it
// as an opaque RGB PNG. Alpha is dropped, not composited: each pixel keeps
// its straight (non-premultiplied) colour channels. A nil logger uses
// slog.Default.
func NormalizePNG(data []byte, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	logger.Debug("decoded image",
		"format", format,
		"color_model", fmt.Sprintf("%T", img),
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())

	var buf bytes.Buffer
	if err := png.Encode(&buf, toRGB(img)); err != nil {
		return nil, fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	logger.Debug("encoded RGB PNG", "output_size_bytes", buf.Len())
	return buf.Bytes(), nil
}

// toRGB copies img into a fully opaque RGBA canvas anchored at the origin.
// png.Encode writes an opaque *image.RGBA as truecolour without alpha.
func toRGB(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}

	return dst
}
