//go:build linux

package system

import (
	"fortio.org/safecast"
	"golang.org/x/sys/unix"
)

// AvailableRAM returns free physical memory in bytes, or 0 if unknown.
func AvailableRAM() uint64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}
	// Freeram is 32 bits wide on some architectures.
	free, err := safecast.Conv[uint64](info.Freeram)
	if err != nil {
		return 0
	}
	return free * uint64(info.Unit)
}
