package scanner

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"
	"golang.org/x/text/unicode/norm"
)

// ErrNoCode indicates the image held no readable QR code.
var ErrNoCode = errors.New("no qr code found")

// Result is one decoded code.
type Result struct {
	Text   string
	Format string
	Source string
}

// DecodeFile reads the image at path and decodes the QR code it contains.
func DecodeFile(ctx context.Context, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	res, err := DecodeReader(f)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	res.Source = path
	return res, nil
}

// DecodeReader decodes an encoded PNG, JPEG, or GIF stream.
func DecodeReader(r io.Reader) (Result, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Result{}, fmt.Errorf("decode image: %w", err)
	}
	return DecodeImage(img)
}

// DecodeImage locates and decodes a QR code in img.
func DecodeImage(img image.Image) (Result, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return Result{}, fmt.Errorf("prepare bitmap: %w", err)
	}
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	decoded, err := zxingqr.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrNoCode, err)
	}

	text := Normalize(decoded.GetText())
	if text == "" {
		return Result{}, ErrNoCode
	}
	return Result{
		Text:   text,
		Format: decoded.GetBarcodeFormat().String(),
	}, nil
}

// Normalize trims surrounding whitespace and applies Unicode NFC so the same
// label scanned from different encoders yields identical text.
func Normalize(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}
