// Package textutil turns decoded or user-supplied text into filesystem-safe
// names, such as the default file name for a rendered QR label.
package textutil
