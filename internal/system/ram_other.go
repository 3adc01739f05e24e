//go:build !linux

package system

// AvailableRAM returns 0; free memory is only queried on Linux.
func AvailableRAM() uint64 {
	return 0
}
