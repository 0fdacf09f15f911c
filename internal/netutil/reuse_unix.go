//go:build linux || darwin || freebsd

package netutil

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// reuseControl sets SO_REUSEADDR and, best-effort, SO_REUSEPORT on the
// socket before it is bound/connected. Applied to both the client's
// peer dial and the server's listener.
func reuseControl(_, _ string, c syscall.RawConn) error {
	var opErr error
	err := c.Control(func(fd uintptr) {
		if err := unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
			opErr = fmt.Errorf("set SO_REUSEADDR: %w", err)
			return
		}
		// SO_REUSEPORT is not universally available; a failure here is
		// not fatal, SO_REUSEADDR alone is enough on most kernels to
		// let the freed rendezvous port be rebound for the peer dial.
		_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	})
	if err != nil {
		return err
	}
	return opErr
}
