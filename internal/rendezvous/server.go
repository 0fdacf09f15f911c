package rendezvous

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"github.com/dalbodeule/hopgate/internal/endpoint"
	"github.com/dalbodeule/hopgate/internal/logging"
	"github.com/dalbodeule/hopgate/internal/observability"
)

// endDrainTimeout bounds how long endControlSocket waits for the
// peer's own close after the server-side half-close.
const endDrainTimeout = 5 * time.Second

// PairingRecorder is the optional audit hook the server calls when a
// pair completes, direct or relayed. A nil recorder disables it.
type PairingRecorder interface {
	RecordPairing(public, private, peerPublic, peerPrivate endpoint.Endpoint, relay bool)
}

// OriginDescriptor is the server-side record of one registered client:
// its control socket plus the public endpoint the server observed and
// the private endpoint the client self-reported.
type OriginDescriptor struct {
	Conn    net.Conn
	Public  endpoint.Endpoint
	Private endpoint.Endpoint
	Relay   bool
}

// valid reports whether all four address fields a registration
// requires are non-empty/in-range.
func (d OriginDescriptor) valid() bool {
	return d.Public.Valid() && d.Private.Valid()
}

// clientPair is exactly two optional slots, A and B. It is
// process-wide mutable state; every mutation happens under mu, which
// serializes the accept-loop goroutines that share it.
type clientPair struct {
	mu   sync.Mutex
	a, b *OriginDescriptor
}

// findByPublic returns the slot letter and descriptor matching pub, if
// any. Caller must hold mu.
func (p *clientPair) findByPublic(pub endpoint.Endpoint) (slot string, desc *OriginDescriptor) {
	if p.a != nil && p.a.Public.Equal(pub) {
		return "A", p.a
	}
	if p.b != nil && p.b.Public.Equal(pub) {
		return "B", p.b
	}
	return "", nil
}

// add places desc into the first empty slot. justCompleted reports
// whether this registration filled the second slot; fill and
// completion are decided under one lock so that when two clients
// register at the same moment, exactly one of the registering
// goroutines dispatches the introduction. It returns ErrCapacity if
// both slots are already filled.
func (p *clientPair) add(desc *OriginDescriptor) (slot string, justCompleted bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.a == nil {
		p.a = desc
		return "A", p.b != nil, nil
	}
	if p.b == nil {
		p.b = desc
		return "B", p.a != nil, nil
	}
	return "", false, ErrCapacity
}

// removeByPublic empties whichever slot's descriptor has this public
// endpoint. It reports whether a slot was cleared.
func (p *clientPair) removeByPublic(pub endpoint.Endpoint) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.a != nil && p.a.Public.Equal(pub) {
		p.a = nil
		return true
	}
	if p.b != nil && p.b.Public.Equal(pub) {
		p.b = nil
		return true
	}
	return false
}

// snapshot returns both slots without clearing them, so a third
// register attempt still sees the pair as full until clear() runs and
// the existing pair stays unaffected by a rejected third client.
func (p *clientPair) snapshot() (a, b *OriginDescriptor) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.a, p.b
}

// clear empties both slots, run after both control sockets have been
// introduced/relayed and ended.
func (p *clientPair) clear() {
	p.mu.Lock()
	p.a, p.b = nil, nil
	p.mu.Unlock()
}

// Server is the rendezvous pairing server: a TCP listener that accepts
// client registrations in pairs, introduces them to each other for
// hole punching, or bridges their control sockets when relay mode is
// requested.
type Server struct {
	listener net.Listener
	logger   logging.Logger
	pair     clientPair
	recorder PairingRecorder
}

// New builds a Server around an already-listening net.Listener.
func New(listener net.Listener, logger logging.Logger, recorder PairingRecorder) *Server {
	return &Server{
		listener: listener,
		logger:   logger.With(logging.Fields{"component": "rendezvous_server"}),
		recorder: recorder,
	}
}

// Serve accepts connections until the listener is closed. A listener
// error is fatal to the process.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(conn)
	}
}

// handleConn reads register messages from one control socket until it
// disconnects, dispatching each to the pairing algorithm.
func (s *Server) handleConn(conn net.Conn) {
	dec := json.NewDecoder(conn)

	for {
		msg, err := readRegister(dec)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.handleDisconnect(conn)
				return
			}
			if errors.Is(err, errMalformedControlMessage) {
				// The decoder cannot resync past garbage, so stop
				// dispatching but leave the connection open until the
				// client goes away.
				s.logger.Warn("unparseable control message, ignoring rest of stream", logging.Fields{
					"remote": conn.RemoteAddr().String(),
				})
				_, _ = io.Copy(io.Discard, conn)
				s.handleDisconnect(conn)
				return
			}
			s.logger.Error("control socket read failed", logging.Fields{"error": err.Error()})
			s.handleDisconnect(conn)
			_ = conn.Close()
			return
		}

		if msg.Command != CommandRegister {
			// Unknown/empty command: ignored.
			continue
		}

		if s.handleRegister(conn, msg) {
			// The control socket was consumed by pairing (ended for a
			// direct introduction, or handed off to the relay bridge);
			// stop reading from it in this goroutine.
			return
		}
	}
}

// handleRegister runs the pairing algorithm for one register message.
// It returns true if the control socket has been consumed (closed or
// handed to the relay bridge) and handleConn's read loop must stop.
func (s *Server) handleRegister(conn net.Conn, msg registerMessage) bool {
	public, err := endpoint.FromAddr(conn.RemoteAddr())
	if err != nil {
		s.logger.Error("malformed register: could not derive public endpoint", logging.Fields{"error": err.Error()})
		_ = conn.Close()
		return true
	}

	desc := &OriginDescriptor{
		Conn:    conn,
		Public:  public,
		Private: endpoint.New(msg.LocalAddress, msg.LocalPort),
		Relay:   msg.Relay,
	}

	if !desc.valid() {
		s.logger.Error("malformed register: empty address/port field", logging.Fields{
			"public":  desc.Public,
			"private": desc.Private,
		})
		_ = conn.Close()
		return true
	}

	if slot, existing := s.existingSlotFor(public); existing != nil {
		s.logger.Info("idempotent duplicate register, ignoring", logging.Fields{
			"slot":   slot,
			"public": public,
		})
		return false
	}

	slot, justCompleted, err := s.pair.add(desc)
	if err != nil {
		s.logger.Warn("rejecting third client, pair already has two slots filled", logging.Fields{
			"public": public,
		})
		_ = conn.Close()
		return true
	}

	s.logger.Info("client registered", logging.Fields{
		"slot":    slot,
		"public":  desc.Public,
		"private": desc.Private,
		"relay":   desc.Relay,
	})

	if !justCompleted {
		return false
	}

	if desc.Relay {
		s.startRelay()
	} else {
		s.introduce()
	}
	return true
}

// existingSlotFor reports the slot/descriptor already holding this
// public endpoint, if any; duplicate registration is idempotent.
func (s *Server) existingSlotFor(public endpoint.Endpoint) (string, *OriginDescriptor) {
	s.pair.mu.Lock()
	defer s.pair.mu.Unlock()
	return s.pair.findByPublic(public)
}

// introduce sends tryConnectToPeer to both sockets, then ends both from
// the server side: half-close then full close, which is mandatory on
// some kernels before the same local port can be reused for the
// outbound peer dial.
func (s *Server) introduce() {
	a, b := s.pair.snapshot()
	if a == nil || b == nil {
		return
	}

	if err := writeTryConnectToPeer(a.Conn, "A", "B", b.Public, b.Private); err != nil {
		s.logger.Error("failed to send tryConnectToPeer to A", logging.Fields{"error": err.Error()})
	}
	if err := writeTryConnectToPeer(b.Conn, "B", "A", a.Public, a.Private); err != nil {
		s.logger.Error("failed to send tryConnectToPeer to B", logging.Fields{"error": err.Error()})
	}

	endControlSocket(a.Conn, s.logger)
	endControlSocket(b.Conn, s.logger)
	s.pair.clear()

	observability.PairsCompletedTotal.WithLabelValues("direct").Inc()
	if s.recorder != nil {
		s.recorder.RecordPairing(a.Public, a.Private, b.Public, b.Private, false)
	}

	s.logger.Info("introduced pair for direct hole punch", logging.Fields{
		"a": a.Public, "b": b.Public,
	})
}

// startRelay sends initiateRelayedCommunication to both sockets, then
// bridges them with a raw bidirectional byte pipe.
func (s *Server) startRelay() {
	a, b := s.pair.snapshot()
	if a == nil || b == nil {
		return
	}

	if err := writeInitiateRelay(a.Conn, "A", "B"); err != nil {
		s.logger.Error("failed to send initiateRelayedCommunication to A", logging.Fields{"error": err.Error()})
	}
	if err := writeInitiateRelay(b.Conn, "B", "A"); err != nil {
		s.logger.Error("failed to send initiateRelayedCommunication to B", logging.Fields{"error": err.Error()})
	}
	s.pair.clear()

	observability.PairsCompletedTotal.WithLabelValues("relay").Inc()
	if s.recorder != nil {
		s.recorder.RecordPairing(a.Public, a.Private, b.Public, b.Private, true)
	}

	s.logger.Info("bridging relayed pair", logging.Fields{"a": a.Public, "b": b.Public})

	go bridge(a.Conn, b.Conn, s.logger)
}

// handleDisconnect removes the slot whose public endpoint matches the
// disconnecting socket.
func (s *Server) handleDisconnect(conn net.Conn) {
	public, err := endpoint.FromAddr(conn.RemoteAddr())
	if err != nil {
		s.logger.Warn("disconnect: could not derive public endpoint", logging.Fields{"error": err.Error()})
		return
	}
	if s.pair.removeByPublic(public) {
		s.logger.Info("client disconnected, slot cleared", logging.Fields{"public": public})
	} else {
		s.logger.Info("client disconnected, no matching slot found", logging.Fields{"public": public})
	}
}

// endControlSocket performs the server-initiated half-close then full
// close: some kernels refuse a client's outbound connection from the
// same local port unless the server closed first.
func endControlSocket(conn net.Conn, logger logging.Logger) {
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := tcpConn.CloseWrite(); err != nil {
			logger.Warn("half-close of control socket failed", logging.Fields{"error": err.Error()})
		}
		// Drain until the peer also closes, so the socket fully enters
		// TIME_WAIT/CLOSED on our side before we Close() it. The drain
		// is bounded: a peer that never closes must not hold up the
		// pairing slots, which stay filled until this returns.
		_ = conn.SetReadDeadline(time.Now().Add(endDrainTimeout))
		_, _ = io.Copy(io.Discard, conn)
	}
	_ = conn.Close()
}

// bridge pipes raw bytes bidirectionally between two relayed control
// sockets. As soon as either direction ends, both sockets are closed so
// the other direction's blocked Read unwinds too.
func bridge(a, b net.Conn, logger logging.Logger) {
	done := make(chan struct{}, 2)

	copyAndCount := func(dst, src net.Conn) {
		n, err := io.Copy(dst, src)
		observability.BytesRelayedTotal.Add(float64(n))
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Warn("relay pipe ended with error", logging.Fields{"error": err.Error()})
		}
		done <- struct{}{}
	}

	go copyAndCount(a, b)
	go copyAndCount(b, a)

	<-done
	_ = a.Close()
	_ = b.Close()
	<-done
}
