//go:build !cgo

package utils

// SetProcTitle is a no-op; gspt needs cgo.
func SetProcTitle(title string) {}
