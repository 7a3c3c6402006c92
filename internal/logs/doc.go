// Package logs reads the qrqueue log file for the `qrqueue logs` command.
//
// Last returns the trailing lines of the file, Since returns lines appended
// after a byte offset, and Follow polls for new lines until its context is
// cancelled. A missing log file reads as empty.
package logs
