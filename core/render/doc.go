// Package render prints tabular reports for the command line.
//
// It is deliberately dumb: it consumes already-ordered rows of display
// strings and lays them out, leaving sorting and value resolution to the
// caller.
package render
