// Package qrcode renders QR code labels as PNG images.
//
// It wraps github.com/skip2/go-qrcode with input validation and a default
// size. The CLI uses it for `qrqueue render` and the scanner tests use it to
// build fixtures.
package qrcode
