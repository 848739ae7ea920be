//go:build !unix && !windows

package wol

// Platforms without socket options (js, wasip1, plan9) have nothing to set.
func setBroadcast(fd uintptr) error {
	return nil
}
