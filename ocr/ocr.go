//go:build ocr

// Package ocr provides the upstream boundary that turns a scanned image
// into positioned text features for layout reconstruction.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/RyanAdamRojas/textgrid/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// ExtractFeatures performs OCR on image data (PNG, TIFF, JPEG, BMP) and
// returns one feature per recognized word, positioned at the word's top-left
// corner. Tesseract reports image coordinates (Y=0 at the top), so the
// vertical axis is flipped to the convention the layout algorithms expect
// (larger Y nearer the top of the page). Words that are empty after
// trimming whitespace are skipped. The returned features carry no
// particular order.
func (c *Client) ExtractFeatures(imageData []byte) ([]model.Feature, error) {
	_, height, err := ImageSize(imageData)
	if err != nil {
		return nil, err
	}

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	features := make([]model.Feature, 0, len(boxes))
	for _, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		features = append(features, model.Feature{
			Text: word,
			X:    box.Box.Min.X,
			Y:    height - box.Box.Min.Y,
		})
	}

	return features, nil
}

// RecognizeImage performs OCR on image data and returns only the recognized
// text with leading/trailing whitespace trimmed, without positions.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
