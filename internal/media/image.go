package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/washpoint/carwash-api/internal/httperr"
)

const (
	// Profile images are normalized to fit this bound before upload.
	maxDimension = 512

	webpQuality = 85
)

// NormalizeProfileImage decodes an uploaded jpeg/png/webp, scales it down to
// fit maxDimension (never upscales) and re-encodes as webp.
func NormalizeProfileImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if src, err = webp.Decode(bytes.NewReader(data)); err != nil {
			return nil, httperr.ErrBusiness("invalid_image")
		}
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	if w > maxDimension || h > maxDimension {
		scale := float64(maxDimension) / float64(w)
		if h > w {
			scale = float64(maxDimension) / float64(h)
		}
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
