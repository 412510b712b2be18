package wordimage

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"
	"strings"
	"testing"
)

func TestNormalizePNG(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 3))
	gray.SetGray(1, 1, color.Gray{Y: 77})

	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, image.NewRGBA(image.Rect(0, 0, 8, 8)), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	var gf bytes.Buffer
	if err := gif.Encode(&gf, image.NewRGBA(image.Rect(0, 0, 5, 2)), nil); err != nil {
		t.Fatalf("encode gif: %v", err)
	}

	tests := []struct {
		name   string
		input  []byte
		width  int
		height int
	}{
		{name: "translucent rgba png", input: rgbaFixture(t, color.NRGBA{R: 1, G: 2, B: 3, A: 4}), width: 4, height: 3},
		{name: "paletted png", input: palettedFixture(t), width: 2, height: 2},
		{name: "grayscale png", input: encodePNG(t, gray), width: 3, height: 3},
		{name: "jpeg", input: jpg.Bytes(), width: 8, height: 8},
		{name: "gif", input: gf.Bytes(), width: 5, height: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NormalizePNG(tt.input, nil)
			if err != nil {
				t.Fatalf("NormalizePNG() error = %v", err)
			}
			if out[pngColorTypeOffset] != pngColorTypeRGB {
				t.Errorf("colour type = %d, want %d", out[pngColorTypeOffset], pngColorTypeRGB)
			}

			img, err := png.Decode(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("decode output: %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.width || b.Dy() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.width, tt.height)
			}
		})
	}
}

func TestNormalizePNG_DropsAlphaKeepsColour(t *testing.T) {
	out, err := NormalizePNG(rgbaFixture(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0}), nil)
	if err != nil {
		t.Fatalf("NormalizePNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}

	got := color.NRGBAModel.Convert(img.At(2, 1)).(color.NRGBA)
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}
	if got != want {
		t.Errorf("pixel = %+v, want %+v", got, want)
	}
}

func TestNormalizePNG_OffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src.SetRGBA(5, 5, color.RGBA{R: 0xff, A: 0xff})
	sub := src.SubImage(image.Rect(5, 5, 7, 7))

	out, err := NormalizePNG(encodePNG(t, sub), nil)
	if err != nil {
		t.Fatalf("NormalizePNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r>>8 != 0xff {
		t.Errorf("origin pixel red = %d, want 255", r>>8)
	}
}

func TestNormalizePNG_Invalid(t *testing.T) {
	for _, input := range [][]byte{nil, []byte("definitely not an image"), []byte("\x89PNG\r\n\x1a\n")} {
		_, err := NormalizePNG(input, nil)
		if !errors.Is(err, ErrImageDecode) {
			t.Errorf("input %q: expected ErrImageDecode, got %v", input, err)
		}
	}
}

func TestNormalizePNG_UsesGivenLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := NormalizePNG(rgbaFixture(t, color.NRGBA{R: 1, A: 0xff}), logger); err != nil {
		t.Fatalf("NormalizePNG() error = %v", err)
	}

	for _, want := range []string{"decoded image", "format=png", "encoded RGB PNG"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log output missing %q:\n%s", want, logs.String())
		}
	}
}
