// Package utils provides common utility functions for the difficulty
// analyzer. It includes display conversion helpers for the loosely-typed
// values decoded from the difficulty and descriptor JSON files.
package utils
