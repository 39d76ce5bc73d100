//go:build !unix

package sysinfo

// PageSize returns a conservative fallback page size on platforms where
// golang.org/x/sys/unix.Getpagesize is unavailable.
func PageSize() int {
	return 4096
}
