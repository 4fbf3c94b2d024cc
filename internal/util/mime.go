package util

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"food-delivery-api/internal/model"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

type ImageInfo struct {
	MIMEType  string
	Extension string
	Width     int
	Height    int
}

func DetectMIME(r io.ReadSeeker) (string, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	buffer := make([]byte, 512)
	n, err := io.ReadFull(r, buffer)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buffer[:n]), nil
}

func IsImageMIME(mimeType string) bool {
	_, ok := imageExtensions[strings.ToLower(strings.TrimSpace(mimeType))]
	return ok
}

// InspectImage sniffs r and decodes the image header. The reader is rewound
// before returning. Anything that is not a decodable raster image yields
// model.ErrNotAnImage.
func InspectImage(r io.ReadSeeker) (ImageInfo, error) {
	mimeType, err := DetectMIME(r)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("sniff content type: %w", err)
	}

	ext, ok := imageExtensions[mimeType]
	if !ok {
		return ImageInfo{}, fmt.Errorf("%w: %s", model.ErrNotAnImage, mimeType)
	}

	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("%w: %v", model.ErrNotAnImage, err)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return ImageInfo{}, err
	}

	return ImageInfo{MIMEType: mimeType, Extension: ext, Width: cfg.Width, Height: cfg.Height}, nil
}
