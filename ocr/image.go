package ocr

import (
	"bytes"
	"fmt"
	"image"

	// Scanned input is commonly TIFF or BMP; register those decoders
	// alongside the stdlib PNG and JPEG ones.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ImageSize reports the pixel dimensions of an encoded image without
// decoding the full pixel data. The height is needed to flip OCR word
// positions from image coordinates (Y=0 at the top) to the layout
// convention (larger Y nearer the top of the page).
func ImageSize(imageData []byte) (width, height int, err error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read image dimensions: %w", err)
	}
	return config.Width, config.Height, nil
}
