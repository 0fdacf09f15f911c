package multiplex

import (
	"io"
	"sync"

	"github.com/dalbodeule/hopgate/internal/logging"
)

// outboxCapacity bounds how many encoded frames may be queued for a
// peer socket before Write blocks. It exists only to give backpressure
// a bound; under normal operation TCP write backlog is the limiter.
const outboxCapacity = 256

// Multiplexer serializes many (channelID, payload) frames onto one
// peer socket and decodes the same framing back out of it. Exactly one
// frame is ever in flight on the wire at a time: Write hands frames to
// a single writer goroutine over a buffered channel. A channel send
// blocks only once outboxCapacity frames are waiting, and channel
// order is FIFO by construction.
type Multiplexer struct {
	conn    io.ReadWriteCloser
	logger  logging.Logger
	onFrame func(channelID string, data []byte)

	outbox chan []byte
	done   chan struct{}

	closeOnce sync.Once
	errMu     sync.Mutex
	err       error
}

// New builds a Multiplexer over conn. onFrame is invoked from the
// receive loop for every well-formed frame decoded off the wire; it
// must return quickly since it runs inline with decoding.
func New(conn io.ReadWriteCloser, logger logging.Logger, onFrame func(channelID string, data []byte)) *Multiplexer {
	return &Multiplexer{
		conn:    conn,
		logger:  logger,
		onFrame: onFrame,
		outbox:  make(chan []byte, outboxCapacity),
		done:    make(chan struct{}),
	}
}

// Start launches the receive and send loops. It returns immediately;
// callers should select on Done to learn when the peer socket has
// died.
func (m *Multiplexer) Start() {
	go m.sendLoop()
	go m.receiveLoop()
}

// Write encodes (channelID, data) and enqueues it for transmission. It
// blocks if outboxCapacity frames are already queued.
func (m *Multiplexer) Write(channelID string, data []byte) error {
	frame, err := EncodeFrame(channelID, data)
	if err != nil {
		return err
	}

	select {
	case m.outbox <- frame:
		return nil
	case <-m.done:
		return io.ErrClosedPipe
	}
}

// Flush drops any frames still queued for transmission. It is used on
// the relay handoff path, where a half-sent queue for a direct
// connection that never completed must not bleed into the relayed
// session.
func (m *Multiplexer) Flush() {
	for {
		select {
		case <-m.outbox:
		default:
			return
		}
	}
}

// Done is closed once the receive loop exits, which happens exactly
// once the peer socket is no longer usable.
func (m *Multiplexer) Done() <-chan struct{} {
	return m.done
}

// Err returns the error that ended the receive loop, if any. It is
// only meaningful after Done is closed.
func (m *Multiplexer) Err() error {
	m.errMu.Lock()
	defer m.errMu.Unlock()
	return m.err
}

// Close tears down the underlying socket and stops both loops.
func (m *Multiplexer) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	return m.conn.Close()
}

func (m *Multiplexer) sendLoop() {
	for {
		select {
		case frame := <-m.outbox:
			if _, err := m.conn.Write(frame); err != nil {
				m.fail(err)
				return
			}
		case <-m.done:
			return
		}
	}
}

func (m *Multiplexer) receiveLoop() {
	var p parser
	buf := make([]byte, 32*1024)

	for {
		n, err := m.conn.Read(buf)
		if n > 0 {
			p.feed(buf[:n])
			if stopped := m.drainFrames(&p); stopped {
				return
			}
		}
		if err != nil {
			m.fail(err)
			return
		}
	}
}

// drainFrames pulls every complete frame currently buffered and
// dispatches it, logging and skipping frames whose payload is too
// short to carry a channel id. It
// returns true if a malformed length header forced the receive loop
// to stop.
func (m *Multiplexer) drainFrames(p *parser) bool {
	for {
		frame, ok, err := p.next()
		if err == ErrMalformedLength {
			m.logger.Error("malformed frame length header, stopping receive loop", logging.Fields{})
			m.fail(err)
			return true
		}
		if !ok {
			return false
		}
		if err == errShortPayload {
			m.logger.Warn("dropping frame with payload shorter than a channel id", logging.Fields{})
			continue
		}
		m.onFrame(frame.ChannelID, frame.Data)
	}
}

func (m *Multiplexer) fail(err error) {
	m.errMu.Lock()
	if m.err == nil {
		m.err = err
	}
	m.errMu.Unlock()
	m.closeOnce.Do(func() { close(m.done) })
}
