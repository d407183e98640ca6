package server

import (
	"context"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// Listen opens the HTTP listener. With reusePort, SO_REUSEPORT is set so
// several driftdns processes can bind the same address and the kernel
// distributes incoming connections across them.
func Listen(ctx context.Context, addr string, reusePort bool) (net.Listener, error) {
	if !reusePort {
		var lc net.ListenConfig
		return lc.Listen(ctx, "tcp", addr)
	}

	lc := net.ListenConfig{
		Control: func(_, _ string, c syscall.RawConn) error {
			return c.Control(func(fd uintptr) {
				_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
			})
		},
	}
	return lc.Listen(ctx, "tcp", addr)
}
