package tools

import (
	"bytes"

	"github.com/disintegration/imaging"
)

// ImageBounds reports the pixel dimensions of an encoded image.
func ImageBounds(data []byte) (width, height int, err error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}
