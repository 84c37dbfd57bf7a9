package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, w, h int, paint func(x, y int) color.Color) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, paint(x, y))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeTestImage(t *testing.T, data []byte) image.Image {
	t.Helper()

	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestNewULIDFromTimestampIsSortable(t *testing.T) {
	u := New()

	earlier, err := u.NewULIDFromTimestamp(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	later, err := u.NewULIDFromTimestamp(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Len(t, earlier, 26)
	assert.Less(t, earlier, later)
}

func TestTransformAvatarCropsRegion(t *testing.T) {
	u := New()

	// Left half red, right half blue.
	src := encodeTestImage(t, 8, 8, func(x, y int) color.Color {
		if x < 4 {
			return color.RGBA{R: 255, A: 255}
		}
		return color.RGBA{B: 255, A: 255}
	})

	out, err := u.TransformAvatar(src, AvatarTransform{X: 4, Y: 0, Width: 4, Height: 8})
	require.NoError(t, err)

	img := decodeTestImage(t, out)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	_, _, b, _ := img.At(1, 1).RGBA()
	assert.NotZero(t, b, "cropped region should be the blue half")
}

func TestTransformAvatarRotatesQuarterTurn(t *testing.T) {
	u := New()

	src := encodeTestImage(t, 6, 2, func(x, y int) color.Color {
		return color.RGBA{G: 255, A: 255}
	})

	out, err := u.TransformAvatar(src, AvatarTransform{Rotate: 90})
	require.NoError(t, err)

	img := decodeTestImage(t, out)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
}

func TestTransformAvatarZoomScalesOutput(t *testing.T) {
	u := New()

	src := encodeTestImage(t, 4, 4, func(x, y int) color.Color {
		return color.RGBA{R: 128, G: 64, A: 255}
	})

	out, err := u.TransformAvatar(src, AvatarTransform{Zoom: 2.0})
	require.NoError(t, err)

	img := decodeTestImage(t, out)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestTransformAvatarRejectsOutOfBoundsCrop(t *testing.T) {
	u := New()

	src := encodeTestImage(t, 4, 4, func(x, y int) color.Color {
		return color.RGBA{A: 255}
	})

	_, err := u.TransformAvatar(src, AvatarTransform{X: 10, Y: 10, Width: 4, Height: 4})
	assert.Error(t, err)
}

func TestTransformAvatarRejectsGarbage(t *testing.T) {
	u := New()

	_, err := u.TransformAvatar([]byte("not an image"), AvatarTransform{})
	assert.Error(t, err)
}
