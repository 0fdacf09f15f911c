package forwarder

import (
	"context"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/dalbodeule/hopgate/internal/logging"
)

// fakePeer records every frame written to it, standing in for a real
// *multiplex.Multiplexer in these tests.
type fakePeer struct {
	mu     sync.Mutex
	frames []frameRecord
}

type frameRecord struct {
	channelID string
	data      []byte
}

func (p *fakePeer) Write(channelID string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames = append(p.frames, frameRecord{channelID, append([]byte(nil), data...)})
	return nil
}

func (p *fakePeer) last() (frameRecord, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.frames) == 0 {
		return frameRecord{}, false
	}
	return p.frames[len(p.frames)-1], true
}

func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("freePort: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestOutboundAcceptRelaysToPeer(t *testing.T) {
	port := freePort(t)
	peer := &fakePeer{}
	fwd := New(logging.NewStdJSONLogger("test"), port, peer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := fwd.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	time.Sleep(50 * time.Millisecond) // let the listener bind

	conn, err := net.Dial("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		t.Fatalf("dial forward port: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if rec, ok := peer.last(); ok {
			if string(rec.data) != "hello" {
				t.Fatalf("relayed data = %q, want %q", rec.data, "hello")
			}
			if len(rec.channelID) != 36 {
				t.Fatalf("channel id length = %d, want 36", len(rec.channelID))
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for relayed frame")
}

func TestInboundFrameQueuesUntilReady(t *testing.T) {
	port := freePort(t)

	// A local "service" to dial into.
	service, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		t.Fatalf("listen service: %v", err)
	}
	defer service.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := service.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	peer := &fakePeer{}
	fwd := New(logging.NewStdJSONLogger("test"), port, peer)

	const channelID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	fwd.HandleFrame(channelID, []byte("first"))
	fwd.HandleFrame(channelID, []byte("second"))

	var serviceConn net.Conn
	select {
	case serviceConn = <-accepted:
	case <-time.After(2 * time.Second):
		t.Fatal("forwarder never dialed the local service")
	}
	defer serviceConn.Close()

	buf := make([]byte, len("firstsecond"))
	if err := readFull(serviceConn, buf); err != nil {
		t.Fatalf("read from service: %v", err)
	}
	if string(buf) != "firstsecond" {
		t.Fatalf("service received %q, want %q (FIFO order)", buf, "firstsecond")
	}
}

func readFull(conn net.Conn, buf []byte) error {
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	read := 0
	for read < len(buf) {
		n, err := conn.Read(buf[read:])
		read += n
		if err != nil {
			return err
		}
	}
	return nil
}
