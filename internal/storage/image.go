package storage

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const maxAvatarDim = 512

var ErrUnsupportedImage = errors.New("unsupported image format")

// NormalizeAvatar decodes a jpeg, png or webp upload, downscales it so the
// longest side is at most 512px and re-encodes it as webp.
func NormalizeAvatar(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if img, err = webp.Decode(bytes.NewReader(data)); err != nil {
			return nil, ErrUnsupportedImage
		}
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxAvatarDim || h > maxAvatarDim {
		if w >= h {
			h = h * maxAvatarDim / w
			w = maxAvatarDim
		} else {
			w = w * maxAvatarDim / h
			h = maxAvatarDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
