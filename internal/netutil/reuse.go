// Package netutil provides the local-port-reuse dialing the client's
// peer-hole-punch attempts depend on: both the public and private dial
// race the same local port that was used toward the rendezvous server,
// so the NAT mapping created during registration is still warm when
// the peer's reciprocal SYN arrives.
package netutil

import (
	"context"
	"net"
	"time"
)

// DialReusingPort dials address from localPort with SO_REUSEADDR (and,
// where the platform supports it, SO_REUSEPORT) set on the socket
// before connect(2), and TCP keep-alive enabled on the resulting
// connection. localPort of 0 lets the kernel pick an ephemeral port, as
// an ordinary net.Dial would.
func DialReusingPort(ctx context.Context, localPort int, network, address string, timeout time.Duration) (net.Conn, error) {
	dialer := &net.Dialer{
		Timeout: timeout,
		Control: reuseControl,
	}
	if localPort > 0 {
		dialer.LocalAddr = &net.TCPAddr{Port: localPort}
	}

	conn, err := dialer.DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetKeepAlive(true)
		_ = tcpConn.SetKeepAlivePeriod(30 * time.Second)
	}

	return conn, nil
}

// ListenerReusingPort starts a TCP listener with SO_REUSEADDR (and
// SO_REUSEPORT where supported) set, matching the dial side so the
// rendezvous server's own listener survives a quick restart without
// waiting out TIME_WAIT.
func ListenerReusingPort(ctx context.Context, network, address string) (net.Listener, error) {
	lc := net.ListenConfig{Control: reuseControl}
	return lc.Listen(ctx, network, address)
}
