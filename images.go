package seometa

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 85

// ErrUnsupportedImageType is returned when the configured og:image:type has no encoder.
var ErrUnsupportedImageType = errors.New("seometa: unsupported image type")

// ImageInfo describes a decoded image.
type ImageInfo struct {
	Width    int
	Height   int
	MIMEType string
}

var formatMIME = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// ReadImageInfo decodes only the header of an image to report its size and type.
func ReadImageInfo(r io.Reader) (ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("seometa: decode image config: %w", err)
	}
	return ImageInfo{Width: cfg.Width, Height: cfg.Height, MIMEType: formatMIME[format]}, nil
}

// PrepareShareImage decodes src, scales it to the configured og:image
// width and height, and encodes it as the configured og:image:type.
func (h *Head) PrepareShareImage(src io.Reader, dst io.Writer) (ImageInfo, error) {
	w, err := strconv.Atoi(h.Config.DefaultImageWidth)
	if err != nil || w <= 0 {
		return ImageInfo{}, fmt.Errorf("seometa: invalid default image width %q", h.Config.DefaultImageWidth)
	}
	ht, err := strconv.Atoi(h.Config.DefaultImageHeight)
	if err != nil || ht <= 0 {
		return ImageInfo{}, fmt.Errorf("seometa: invalid default image height %q", h.Config.DefaultImageHeight)
	}

	encode, err := encoderFor(h.Config.DefaultImageType)
	if err != nil {
		return ImageInfo{}, err
	}

	img, _, err := image.Decode(src)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("seometa: decode image: %w", err)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, ht))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)

	if err := encode(dst, scaled); err != nil {
		return ImageInfo{}, fmt.Errorf("seometa: encode image: %w", err)
	}
	return ImageInfo{Width: w, Height: ht, MIMEType: h.Config.DefaultImageType}, nil
}

func encoderFor(mime string) (func(io.Writer, image.Image) error, error) {
	switch mime {
	case "image/png":
		return png.Encode, nil
	case "image/jpeg", "image/jpg":
		return func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, &jpeg.Options{Quality: jpegQuality})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImageType, mime)
	}
}
