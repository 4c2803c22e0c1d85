// Package utils provides common utility functions for the loader.
// It includes helpers for converting the textual attribute values found in
// definition files into typed values.
package utils
