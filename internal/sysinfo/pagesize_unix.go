//go:build unix

// Package sysinfo isolates the one platform-specific lookup lexkit needs:
// the host's memory page size, used to pick a sensible default buffer size
// for inputbuf without the caller having to know or care. The build-tag
// split here mirrors how coregx/coregex isolates GOARCH-only code paths
// (simd/*_amd64.go) behind their own files — this just gates on GOOS family
// instead of GOARCH.
package sysinfo

import "golang.org/x/sys/unix"

// PageSize returns the host's memory page size in bytes.
func PageSize() int {
	return unix.Getpagesize()
}
