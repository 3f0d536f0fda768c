package sources

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"time"

	_ "golang.org/x/image/webp"

	"github.com/kerbaras/moviebox/pkg/data"
	"github.com/kerbaras/moviebox/pkg/utils"
)

// maxImageBytes caps a single artwork download.
const maxImageBytes = 8 << 20

// Images downloads and decodes artwork from the TMDB image CDN.
type Images struct {
	api  *utils.API
	size string
}

func NewImages(baseURL, size string, timeout time.Duration) *Images {
	return &Images{api: utils.NewAPI(baseURL, timeout, nil), size: size}
}

// Fetch downloads the image at path (e.g. "/abc.jpg") in the configured size.
func (i *Images) Fetch(ctx context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("empty image path")
	}
	// relative to the CDN base held by the client
	body, err := i.api.Bytes(ctx, data.ImageURL("", i.size, path), maxImageBytes)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
