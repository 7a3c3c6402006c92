package qrcode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when content is empty or only whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrGenerate is returned when the encoder rejects the content.
	ErrGenerate = errors.New("failed to generate QR code")
)

// DefaultSize is the edge length in pixels used when size is not positive.
const DefaultSize = 256

// Generate encodes content as a square PNG image.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return png, nil
}

// WriteFile renders content and writes the PNG to path, creating parent
// directories as needed.
func WriteFile(path, content string, size int) error {
	png, err := Generate(content, size)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("write qr image: %w", err)
	}
	return nil
}
