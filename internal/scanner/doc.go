// Package scanner decodes QR codes from still images.
//
// It stands in for a camera capture widget: callers hand it image files or
// decoded images and get back the normalized code text. Decoding uses the
// gozxing QR reader with the try-harder hint so slightly skewed photos still
// resolve.
package scanner
