// Package forwarder implements the local TCP listener and on-demand
// local dialer that sit on either side of a peer multiplex socket,
// relaying bytes between local application connections and multiplex
// frames.
package forwarder

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dalbodeule/hopgate/internal/logging"
	"github.com/dalbodeule/hopgate/internal/observability"
)

// PeerWriter is the subset of *multiplex.Multiplexer the forwarder
// needs; satisfied by the real peer socket (direct P2P or, after a
// relay handoff, the promoted server control socket).
type PeerWriter interface {
	Write(channelID string, data []byte) error
}

// sweepInterval is how often the pending-channel eviction sweep runs.
const sweepInterval = 5 * time.Second

// Forwarder owns the channel table shared between the outbound
// listener role and the inbound peer-frame role: a channel opened by
// the remote peer is indistinguishable from one opened locally once
// established.
type Forwarder struct {
	forwardPort int
	logger      logging.Logger
	peer        PeerWriter
	table       *table
	listener    net.Listener
}

// New builds a Forwarder that accepts local connections on
// forwardPort and relays their bytes to peer, and dials forwardPort
// locally for every inbound frame addressed to an unknown channel.
func New(logger logging.Logger, forwardPort int, peer PeerWriter) *Forwarder {
	return &Forwarder{
		forwardPort: forwardPort,
		logger:      logger.With(logging.Fields{"component": "forwarder"}),
		peer:        peer,
		table:       newTable(),
	}
}

// Start begins the outbound accept loop and the pending-channel sweep.
// A listener error (typically: the forward port already has a running
// service bound to it) is logged and swallowed, not fatal; the
// service is still reachable via the inbound dial path.
func (f *Forwarder) Start(ctx context.Context) error {
	addr := net.JoinHostPort("", strconv.Itoa(f.forwardPort))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		f.logger.Error("local forward listener failed to bind, outbound role disabled", logging.Fields{
			"addr":  addr,
			"error": err.Error(),
		})
		go f.sweepLoop(ctx)
		return nil
	}

	f.listener = listener
	go f.acceptLoop(ctx)
	go f.sweepLoop(ctx)
	return nil
}

// localDialAddr is the loopback address the inbound role dials for
// every new channel it's asked to open.
func (f *Forwarder) localDialAddr() string {
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(f.forwardPort))
}

// acceptLoop is the outbound role: accept a local application
// connection, assign it a fresh channel id, and pump its bytes to the
// peer.
func (f *Forwarder) acceptLoop(ctx context.Context) {
	defer f.listener.Close()
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
			}
			f.logger.Error("local listener accept failed", logging.Fields{"error": err.Error()})
			return
		}

		ch := newChannel(uuid.NewString(), conn, true)
		f.table.put(ch)
		observability.ActiveChannelsGauge.Inc()
		go f.pumpLocalToPeer(ch)
	}
}

// pumpLocalToPeer reads from a channel's local socket and writes each
// chunk to the peer as a multiplex frame, until the local socket
// closes, at which point the table entry is removed.
func (f *Forwarder) pumpLocalToPeer(ch *channel) {
	defer func() {
		_ = ch.conn.Close()
		f.table.remove(ch.id)
		observability.ActiveChannelsGauge.Dec()
	}()

	buf := make([]byte, 32*1024)
	for {
		n, err := ch.conn.Read(buf)
		if n > 0 {
			payload := append([]byte(nil), buf[:n]...)
			observability.FrameSizeBytes.Observe(float64(len(payload)))
			if werr := f.peer.Write(ch.id, payload); werr != nil {
				f.logger.Warn("write to peer failed, dropping channel", logging.Fields{
					"channel": ch.id, "error": werr.Error(),
				})
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// HandleFrame is the inbound role: invoked by the multiplexer for
// every decoded (channelID, data) pair. It must
// return quickly, so dialing a not-yet-seen channel's local target
// happens on its own goroutine while this call enqueues the frame.
func (f *Forwarder) HandleFrame(channelID string, data []byte) {
	ch, ok := f.table.get(channelID)
	if !ok {
		ch = newChannel(channelID, nil, false)
		f.table.put(ch)
		observability.ActiveChannelsGauge.Inc()
		go f.dialAndActivate(ch)
	}

	if err := ch.deliver(data); err != nil {
		f.logger.Warn("write to local socket failed", logging.Fields{"channel": channelID, "error": err.Error()})
	}
}

// dialAndActivate opens the local connection for a channel the peer
// opened first, then drains whatever arrived while the dial was in
// flight, in FIFO order, before any frame that arrives after.
func (f *Forwarder) dialAndActivate(ch *channel) {
	conn, err := net.DialTimeout("tcp", f.localDialAddr(), 10*time.Second)
	if err != nil {
		f.logger.Warn("failed to dial local forward target for inbound channel", logging.Fields{
			"channel": ch.id, "error": err.Error(),
		})
		f.table.remove(ch.id)
		observability.ActiveChannelsGauge.Dec()
		return
	}

	if err := ch.activate(conn); err != nil {
		f.logger.Warn("failed to flush pending frames to local socket", logging.Fields{
			"channel": ch.id, "error": err.Error(),
		})
		_ = conn.Close()
		f.table.remove(ch.id)
		observability.ActiveChannelsGauge.Dec()
		return
	}

	f.pumpLocalToPeer(ch)
}

// sweepLoop evicts channels whose local dial never completed within
// pendingChannelTimeout, bounding the wait instead of accumulating
// pending frames forever.
func (f *Forwarder) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, ch := range f.table.snapshot() {
				if !ch.isReady() && ch.age() > pendingChannelTimeout {
					f.logger.Warn("evicting channel stuck waiting for local dial", logging.Fields{"channel": ch.id})
					f.table.remove(ch.id)
					observability.ActiveChannelsGauge.Dec()
				}
			}
		}
	}
}

// writeAll writes data to conn, reporting any short write as an error
// (net.Conn.Write already guarantees this for TCP, but the check keeps
// the contract explicit for any other io.Writer a test might plug in).
func writeAll(conn net.Conn, data []byte) error {
	n, err := conn.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("forwarder: short write: wrote %d of %d bytes", n, len(data))
	}
	return nil
}
