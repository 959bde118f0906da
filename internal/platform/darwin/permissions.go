//go:build darwin && cgo

package darwin

/*
#include "ax_bridge.h"
*/
import "C"

// IsProcessTrusted reports whether the process has macOS accessibility
// permission.
func (*Native) IsProcessTrusted() bool {
	return C.axb_is_trusted(0) != 0
}

// RequestTrust checks accessibility permission and, when it is missing, asks
// macOS to show the prompt that opens System Settings > Privacy & Security >
// Accessibility. It returns the permission state at the time of the call;
// granting access takes effect on the next launch.
func (*Native) RequestTrust() bool {
	return C.axb_is_trusted(1) != 0
}
