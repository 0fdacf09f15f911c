//go:build windows

package netutil

import "syscall"

// reuseControl is a no-op on Windows: SO_REUSEPORT has no equivalent,
// and Windows' own SO_REUSEADDR semantics differ enough (it permits
// binding to an address already in use by another socket outright)
// that setting it here would be actively wrong rather than merely
// unavailable. Port-reuse-dependent hole punching on Windows falls
// back to whatever the OS's default TIME_WAIT behavior allows.
func reuseControl(_, _ string, c syscall.RawConn) error {
	return nil
}
