package utils

import (
	"bytes"
	"crypto/rand"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateImageFile(file *multipart.FileHeader) error
	TransformAvatar(imageData []byte, opts AvatarTransform) ([]byte, error)
}

// AvatarTransform describes the crop the profile editor performed client
// side: a rectangle in source pixels, a rotation in degrees (quarter turns)
// applied before cropping, and a zoom factor scaling the cropped region.
type AvatarTransform struct {
	X      int
	Y      int
	Width  int
	Height int
	Rotate int
	Zoom   float64
}

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: 5 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return errors.New("no file uploaded")
	}

	if file.Size > u.maxFileSize {
		return errors.New("file size exceeds limit")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return errors.New("uploaded file is not an image")
	}

	return nil
}

// TransformAvatar rotates, crops and zooms the uploaded avatar and re-encodes
// it. Rotation is snapped to the nearest quarter turn; zoom values at or
// below zero are treated as 1.0.
func (u *utils) TransformAvatar(imageData []byte, opts AvatarTransform) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, err
	}

	img = rotateQuarterTurns(img, opts.Rotate)

	bounds := img.Bounds()
	cropRect := image.Rect(opts.X, opts.Y, opts.X+opts.Width, opts.Y+opts.Height)
	if opts.Width <= 0 || opts.Height <= 0 {
		cropRect = bounds
	}
	cropRect = cropRect.Intersect(bounds)
	if cropRect.Empty() {
		return nil, errors.New("crop region outside image bounds")
	}

	cropped := image.NewRGBA(image.Rect(0, 0, cropRect.Dx(), cropRect.Dy()))
	for y := 0; y < cropRect.Dy(); y++ {
		for x := 0; x < cropRect.Dx(); x++ {
			cropped.Set(x, y, img.At(cropRect.Min.X+x, cropRect.Min.Y+y))
		}
	}

	var out image.Image = cropped
	zoom := opts.Zoom
	if zoom <= 0 {
		zoom = 1.0
	}
	if zoom != 1.0 {
		out = scaleNearest(cropped, zoom)
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, out)
	default:
		err = jpeg.Encode(&buf, out, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func rotateQuarterTurns(img image.Image, degrees int) image.Image {
	degrees = ((degrees % 360) + 360) % 360
	turns := ((degrees + 45) / 90) % 4
	if turns == 0 {
		return img
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var dst *image.RGBA
	if turns%2 == 0 {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			switch turns {
			case 1:
				dst.Set(h-1-y, x, c)
			case 2:
				dst.Set(w-1-x, h-1-y, c)
			case 3:
				dst.Set(y, w-1-x, c)
			}
		}
	}

	return dst
}

func scaleNearest(src *image.RGBA, factor float64) image.Image {
	srcBounds := src.Bounds()
	w := int(float64(srcBounds.Dx()) * factor)
	h := int(float64(srcBounds.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcX := int(float64(x) / factor)
			srcY := int(float64(y) / factor)
			if srcX >= srcBounds.Dx() {
				srcX = srcBounds.Dx() - 1
			}
			if srcY >= srcBounds.Dy() {
				srcY = srcBounds.Dy() - 1
			}
			dst.Set(x, y, src.At(srcBounds.Min.X+srcX, srcBounds.Min.Y+srcY))
		}
	}

	return dst
}
