package rendezvous

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/dalbodeule/hopgate/internal/endpoint"
	"github.com/dalbodeule/hopgate/internal/forwarder"
	"github.com/dalbodeule/hopgate/internal/logging"
	"github.com/dalbodeule/hopgate/internal/multiplex"
	"github.com/dalbodeule/hopgate/internal/netutil"
	"github.com/dalbodeule/hopgate/internal/observability"
)

// retryInterval is the fixed wait between dial attempts on one leg of
// the race.
const retryInterval = 1 * time.Second

// dialAttemptTimeout bounds a single connect() call within a retry
// attempt; it is independent from (and much shorter than) the overall
// retry budget.
const dialAttemptTimeout = 5 * time.Second

// Client is the rendezvous driver: it registers with the server,
// races a public/private dial against whichever peer it is introduced
// to, and falls back to server relay on exhaustion.
type Client struct {
	ServerAddr  string
	ForwardPort int
	Timeout     time.Duration // retry budget per dial attempt

	Logger logging.Logger
}

// Run drives the client to completion: register, await introduction,
// race-dial or relay, then forward local TCP traffic over the
// resulting peer socket until it dies.
func (c *Client) Run(ctx context.Context) error {
	logger := c.Logger.With(logging.Fields{"component": "rendezvous_client"})

	conn, localPort, err := c.registerNew(ctx, false)
	if err != nil {
		return fmt.Errorf("connect and register with rendezvous server: %w", err)
	}

	dec := json.NewDecoder(conn)
	intro, err := readIntroduction(dec)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("read introduction from rendezvous server: %w", err)
	}

	switch intro.Command {
	case CommandInitiateRelayedCommunication:
		logger.Info("server requested immediate relay", nil)
		return c.runForwarder(ctx, promote(conn, dec), true)

	case CommandTryConnectToPeer:
		logger.Info("received peer introduction", logging.Fields{
			"public":  intro.Public,
			"private": intro.Private,
		})

		// Wait for the server to end the control socket before dialing:
		// some kernels won't let us reuse localPort for a new outbound
		// connection while the old 4-tuple to the server is still
		// alive. Closing our side too releases the port for the
		// reuse-bind below.
		waitForServerEnd(conn)
		_ = conn.Close()

		peerConn, err := c.raceDial(ctx, intro.Public, intro.Private, localPort)
		if err == nil {
			return c.runForwarder(ctx, peerConn, false)
		}

		logger.Warn("both dial legs exhausted, falling back to relay", logging.Fields{"error": err.Error()})
		observability.RelayFallbacksTotal.Inc()

		relayConn, _, err := c.registerNew(ctx, true)
		if err != nil {
			return fmt.Errorf("re-register for relay fallback: %w", err)
		}
		relayDec := json.NewDecoder(relayConn)
		if _, err := readIntroduction(relayDec); err != nil {
			_ = relayConn.Close()
			return fmt.Errorf("read relay handoff: %w", err)
		}
		return c.runForwarder(ctx, promote(relayConn, relayDec), true)

	default:
		_ = conn.Close()
		return fmt.Errorf("unexpected message from rendezvous server before introduction")
	}
}

// registerNew opens a fresh TCP connection to the rendezvous server and
// sends a register message, remembering the ephemeral local port the
// kernel assigned so it can be reused for the peer dial.
func (c *Client) registerNew(ctx context.Context, relay bool) (net.Conn, int, error) {
	conn, err := net.DialTimeout("tcp", c.ServerAddr, 10*time.Second)
	if err != nil {
		return nil, 0, err
	}

	localAddr, ok := conn.LocalAddr().(*net.TCPAddr)
	if !ok {
		_ = conn.Close()
		return nil, 0, fmt.Errorf("unexpected local address type %T", conn.LocalAddr())
	}

	if err := writeRegister(conn, localAddr.IP.String(), localAddr.Port, relay); err != nil {
		_ = conn.Close()
		return nil, 0, fmt.Errorf("write register message: %w", err)
	}

	return conn, localAddr.Port, nil
}

// promotedConn is a rendezvous control socket promoted to a peer
// multiplex socket after a relay handoff. Bytes the JSON decoder had
// already buffered past the handoff message are replayed ahead of
// fresh socket reads, so a peer frame that raced through the relay
// bridge right behind the handoff is not lost.
type promotedConn struct {
	net.Conn
	r io.Reader
}

func (p *promotedConn) Read(b []byte) (int, error) { return p.r.Read(b) }

func promote(conn net.Conn, dec *json.Decoder) net.Conn {
	return &promotedConn{Conn: conn, r: io.MultiReader(dec.Buffered(), conn)}
}

// waitForServerEnd blocks until the server closes its side of conn, the
// signal that it's safe to reuse localPort for the peer dial.
func waitForServerEnd(conn net.Conn) {
	buf := make([]byte, 256)
	for {
		if _, err := conn.Read(buf); err != nil {
			return
		}
	}
}

// raceDial runs the public and private dial attempts concurrently,
// keeping whichever succeeds first and cancelling the other. It
// returns ErrExhausted if both retry budgets run out.
func (c *Client) raceDial(ctx context.Context, public, private endpoint.Endpoint, localPort int) (net.Conn, error) {
	type result struct {
		conn net.Conn
		err  error
	}

	publicCancel := make(chan struct{})
	privateCancel := make(chan struct{})
	var publicCancelOnce, privateCancelOnce sync.Once
	cancelPublic := func() { publicCancelOnce.Do(func() { close(publicCancel) }) }
	cancelPrivate := func() { privateCancelOnce.Do(func() { close(privateCancel) }) }

	results := make(chan result, 2)

	go func() {
		conn, err := c.dialWithRetry(ctx, "public", public.String(), localPort, publicCancel)
		results <- result{conn, err}
	}()
	go func() {
		conn, err := c.dialWithRetry(ctx, "private", private.String(), localPort, privateCancel)
		results <- result{conn, err}
	}()

	var winner net.Conn
	for i := 0; i < 2; i++ {
		r := <-results
		switch {
		case r.err == nil && winner == nil:
			winner = r.conn
			cancelPublic()
			cancelPrivate()
		case r.err == nil:
			// The loser of the race still connected; it's redundant.
			r.conn.Close()
		}
	}

	if winner != nil {
		return winner, nil
	}
	return nil, ErrExhausted
}

// dialWithRetry is one leg of the race: on connection error, wait
// retryInterval then retry, bounded by c.Timeout seconds of retries.
// If cancel fires first (the other leg won), it aborts instead of
// retrying.
func (c *Client) dialWithRetry(ctx context.Context, kind, addr string, localPort int, cancel <-chan struct{}) (net.Conn, error) {
	budget := int(c.Timeout / retryInterval)
	if budget <= 0 {
		budget = 1
	}

	for attempt := 0; attempt < budget; attempt++ {
		select {
		case <-cancel:
			return nil, fmt.Errorf("%s dial cancelled: other leg of the race won", kind)
		default:
		}

		observability.DialAttemptsTotal.WithLabelValues(kind).Inc()

		conn, err := netutil.DialReusingPort(ctx, localPort, "tcp", addr, dialAttemptTimeout)
		if err == nil {
			observability.DialResultsTotal.WithLabelValues(kind, "success").Inc()
			return conn, nil
		}

		select {
		case <-cancel:
			observability.DialResultsTotal.WithLabelValues(kind, "cancelled").Inc()
			return nil, fmt.Errorf("%s dial cancelled: other leg of the race won", kind)
		case <-time.After(retryInterval):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	observability.DialResultsTotal.WithLabelValues(kind, "exhausted").Inc()
	return nil, ErrExhausted
}

// runForwarder builds a multiplex channel over peerConn and starts port
// forwarding on it. relay is true when peerConn is a promoted
// rendezvous control socket rather than a direct hole-punched
// connection: in that case its multiplex state is explicitly reset
// first, since nothing was ever sent on it as a multiplex peer.
func (c *Client) runForwarder(ctx context.Context, peerConn net.Conn, relay bool) error {
	logger := c.Logger.With(logging.Fields{"component": "rendezvous_client", "relay": relay})

	var mux *multiplex.Multiplexer
	var fwd *forwarder.Forwarder
	mux = multiplex.New(peerConn, logger, func(channelID string, data []byte) {
		fwd.HandleFrame(channelID, data)
	})
	fwd = forwarder.New(logger, c.ForwardPort, mux)

	if relay {
		mux.Flush()
	}

	mux.Start()
	if err := fwd.Start(ctx); err != nil {
		logger.Error("forwarder failed to start local listener", logging.Fields{"error": err.Error()})
	}

	select {
	case <-mux.Done():
		return mux.Err()
	case <-ctx.Done():
		_ = mux.Close()
		return ctx.Err()
	}
}
