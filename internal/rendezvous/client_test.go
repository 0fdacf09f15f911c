package rendezvous

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/dalbodeule/hopgate/internal/endpoint"
	"github.com/dalbodeule/hopgate/internal/logging"
)

// closedEndpoint returns a loopback endpoint nothing is listening on,
// so dials against it fail immediately with a connection refused.
func closedEndpoint(t *testing.T) endpoint.Endpoint {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	_ = l.Close()
	return endpoint.New("127.0.0.1", port)
}

func TestRaceDialPublicWins(t *testing.T) {
	peerListener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer peerListener.Close()
	go func() {
		for {
			conn, err := peerListener.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
		}
	}()

	public, err := endpoint.FromAddr(peerListener.Addr())
	if err != nil {
		t.Fatalf("FromAddr: %v", err)
	}
	private := closedEndpoint(t)

	c := &Client{Timeout: 5 * time.Second, Logger: logging.NewStdJSONLogger("test")}
	conn, err := c.raceDial(context.Background(), public, private, 0)
	if err != nil {
		t.Fatalf("raceDial: %v", err)
	}
	defer conn.Close()

	if got := conn.RemoteAddr().String(); got != public.String() {
		t.Errorf("winner's remote = %q, want the public endpoint %q", got, public)
	}
}

func TestRaceDialBothExhaustedReturnsErrExhausted(t *testing.T) {
	public := closedEndpoint(t)
	private := closedEndpoint(t)

	c := &Client{Timeout: 1 * time.Second, Logger: logging.NewStdJSONLogger("test")}
	if _, err := c.raceDial(context.Background(), public, private, 0); err != ErrExhausted {
		t.Fatalf("raceDial err = %v, want ErrExhausted", err)
	}
}

func TestDialWithRetryAbortsOnCancel(t *testing.T) {
	c := &Client{Timeout: 60 * time.Second, Logger: logging.NewStdJSONLogger("test")}

	cancel := make(chan struct{})
	close(cancel)

	start := time.Now()
	_, err := c.dialWithRetry(context.Background(), "private", closedEndpoint(t).String(), 0, cancel)
	if err == nil {
		t.Fatal("expected the cancelled attempt to fail")
	}
	if elapsed := time.Since(start); elapsed > retryInterval {
		t.Errorf("cancelled attempt took %v, want well under one retry tick", elapsed)
	}
}

// TestPromoteReplaysDecoderBufferedBytes covers the relay handoff edge
// where peer bytes arrive in the same read as the handoff message: the
// promoted socket must replay what the JSON decoder over-buffered.
func TestPromoteReplaysDecoderBufferedBytes(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	handoff, err := json.Marshal(introductionMessage{
		Command:  CommandInitiateRelayedCommunication,
		Name:     "A",
		PeerName: "B",
	})
	if err != nil {
		t.Fatalf("marshal handoff: %v", err)
	}

	go func() {
		// One write carrying the handoff plus trailing peer bytes forces
		// the decoder to buffer past the message boundary.
		_, _ = serverConn.Write(append(handoff, []byte("TRAILING")...))
	}()

	dec := json.NewDecoder(clientConn)
	msg, err := readIntroduction(dec)
	if err != nil {
		t.Fatalf("readIntroduction: %v", err)
	}
	if msg.Command != CommandInitiateRelayedCommunication {
		t.Fatalf("command = %q, want initiateRelayedCommunication", msg.Command)
	}

	promoted := promote(clientConn, dec)
	buf := make([]byte, len("TRAILING"))
	if _, err := io.ReadFull(promoted, buf); err != nil {
		t.Fatalf("read promoted conn: %v", err)
	}
	if string(buf) != "TRAILING" {
		t.Errorf("promoted read = %q, want %q", buf, "TRAILING")
	}
}

func freeLoopbackPort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("freeLoopbackPort: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

// TestTunnelEndToEnd runs the whole system on loopback: a rendezvous
// server, two clients, and a receiving service behind B's forward
// port. On loopback the race dials usually fail (nobody is listening
// on the peer's ephemeral port), so the pair falls back to relay; when
// the simultaneous dials happen to cross and complete, the tunnel is
// direct. Either way, bytes written into A's forward port must come
// out at B's service verbatim.
func TestTunnelEndToEnd(t *testing.T) {
	serverAddr, stopServer := startTestServer(t)
	defer stopServer()

	forwardPortA := freeLoopbackPort(t)
	forwardPortB := freeLoopbackPort(t)

	service, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(forwardPortB)))
	if err != nil {
		t.Fatalf("listen service: %v", err)
	}
	defer service.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := service.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, len("hello-through-the-tunnel"))
		if _, err := io.ReadFull(conn, buf); err == nil {
			received <- buf
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, fp := range []int{forwardPortA, forwardPortB} {
		client := &Client{
			ServerAddr:  serverAddr,
			ForwardPort: fp,
			Timeout:     1 * time.Second,
			Logger:      logging.NewStdJSONLogger("test"),
		}
		go func() { _ = client.Run(ctx) }()
	}

	// A's forwarder needs a moment to bind its local listener; the
	// clients themselves may spend a couple of seconds exhausting the
	// doomed race dials before the relay comes up.
	var local net.Conn
	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		local, err = net.Dial("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(forwardPortA)))
		if err == nil {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if local == nil {
		t.Fatalf("could not reach A's forward port: %v", err)
	}
	defer local.Close()

	if _, err := local.Write([]byte("hello-through-the-tunnel")); err != nil {
		t.Fatalf("write into tunnel: %v", err)
	}

	select {
	case got := <-received:
		if string(got) != "hello-through-the-tunnel" {
			t.Errorf("service received %q, want %q", got, "hello-through-the-tunnel")
		}
	case <-time.After(15 * time.Second):
		t.Fatal("timed out waiting for bytes to traverse the tunnel")
	}
}
