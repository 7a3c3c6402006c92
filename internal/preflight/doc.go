// Package preflight provides readiness checks for the filesystem paths and
// the queue database that qrqueue depends on.
//
// The CLI "qrqueue health" command runs RunAll and prints one line per check.
// Checks never create anything; a database that has not been opened yet is
// reported as pending rather than failed.
package preflight
