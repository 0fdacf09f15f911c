package rendezvous

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/dalbodeule/hopgate/internal/endpoint"
	"github.com/dalbodeule/hopgate/internal/logging"
)

func startTestServer(t *testing.T) (addr string, stop func()) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := New(listener, logging.NewStdJSONLogger("test"), nil)
	go func() { _ = srv.Serve() }()
	return listener.Addr().String(), func() { _ = listener.Close() }
}

func dialAndRegister(t *testing.T, addr, localAddress string, localPort int, relay bool) net.Conn {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial server: %v", err)
	}
	if err := writeRegister(conn, localAddress, localPort, relay); err != nil {
		t.Fatalf("writeRegister: %v", err)
	}
	return conn
}

func TestServerIntroducesCompletePair(t *testing.T) {
	addr, stop := startTestServer(t)
	defer stop()

	connA := dialAndRegister(t, addr, "10.0.0.1", 9001, false)
	defer connA.Close()
	// Slots are filled in the order the server's per-connection handlers
	// process registrations; give A's handler time to take slot A first.
	time.Sleep(100 * time.Millisecond)
	connB := dialAndRegister(t, addr, "10.0.0.2", 9002, false)
	defer connB.Close()

	decA := json.NewDecoder(connA)
	decB := json.NewDecoder(connB)

	var introA, introB introductionMessage
	if err := decA.Decode(&introA); err != nil {
		t.Fatalf("decode A introduction: %v", err)
	}
	if err := decB.Decode(&introB); err != nil {
		t.Fatalf("decode B introduction: %v", err)
	}

	if introA.Command != CommandTryConnectToPeer || introB.Command != CommandTryConnectToPeer {
		t.Fatalf("commands = %q, %q, want tryConnectToPeer both", introA.Command, introB.Command)
	}
	if introA.Name != "A" || introA.PeerName != "B" {
		t.Errorf("A's name/peerName = %q/%q, want A/B", introA.Name, introA.PeerName)
	}
	if introB.Name != "B" || introB.PeerName != "A" {
		t.Errorf("B's name/peerName = %q/%q, want B/A", introB.Name, introB.PeerName)
	}
	if introA.Private.Host != "10.0.0.2" || introA.Private.Port != 9002 {
		t.Errorf("A's view of B's private endpoint = %+v, want 10.0.0.2:9002", introA.Private)
	}

	// The server must end both control sockets after introducing them.
	buf := make([]byte, 1)
	_ = connA.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, err := connA.Read(buf); err != io.EOF {
		t.Errorf("expected EOF after introduction on A, got %v", err)
	}
}

// TestClientPairRejectsThirdSlot exercises the capacity limit
// directly: with both slots filled, a third add() must fail without
// disturbing the existing pair. Driving this through a live third TCP
// client would race against the server's own introduce()/clear()
// sequencing, so the pairing primitive is tested at this level
// instead.
func TestClientPairRejectsThirdSlot(t *testing.T) {
	var pair clientPair

	a := &OriginDescriptor{Public: endpoint.New("203.0.113.1", 9001), Private: endpoint.New("10.0.0.1", 9001)}
	b := &OriginDescriptor{Public: endpoint.New("203.0.113.2", 9002), Private: endpoint.New("10.0.0.2", 9002)}
	c := &OriginDescriptor{Public: endpoint.New("203.0.113.3", 9003), Private: endpoint.New("10.0.0.3", 9003)}

	if _, justCompleted, err := pair.add(a); err != nil || justCompleted {
		t.Fatalf("add A: justCompleted=%v err=%v, want false/nil", justCompleted, err)
	}
	if _, justCompleted, err := pair.add(b); err != nil || !justCompleted {
		t.Fatalf("add B: justCompleted=%v err=%v, want true/nil", justCompleted, err)
	}
	if _, _, err := pair.add(c); !errors.Is(err, ErrCapacity) {
		t.Fatalf("add C: err = %v, want ErrCapacity", err)
	}

	gotA, gotB := pair.snapshot()
	if gotA != a || gotB != b {
		t.Fatalf("existing pair was disturbed by the rejected third add")
	}
}

func TestServerDuplicateRegisterIsIdempotent(t *testing.T) {
	addr, stop := startTestServer(t)
	defer stop()

	connA := dialAndRegister(t, addr, "10.0.0.1", 9001, false)
	defer connA.Close()

	// Same public endpoint (same socket) registering again must not
	// fill a second slot.
	if err := writeRegister(connA, "10.0.0.1", 9001, false); err != nil {
		t.Fatalf("second register: %v", err)
	}

	connB := dialAndRegister(t, addr, "10.0.0.2", 9002, false)
	defer connB.Close()

	decA := json.NewDecoder(connA)
	var introA introductionMessage
	_ = connA.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := decA.Decode(&introA); err != nil {
		t.Fatalf("decode A introduction: %v", err)
	}
	if introA.Command != CommandTryConnectToPeer {
		t.Fatalf("expected pairing to still complete with B despite duplicate register from A")
	}
}

func TestServerRelayBridgesControlSockets(t *testing.T) {
	addr, stop := startTestServer(t)
	defer stop()

	connA := dialAndRegister(t, addr, "10.0.0.1", 9001, true)
	defer connA.Close()
	connB := dialAndRegister(t, addr, "10.0.0.2", 9002, true)
	defer connB.Close()

	decA := json.NewDecoder(connA)
	decB := json.NewDecoder(connB)

	var introA, introB introductionMessage
	if err := decA.Decode(&introA); err != nil {
		t.Fatalf("decode A handoff: %v", err)
	}
	if err := decB.Decode(&introB); err != nil {
		t.Fatalf("decode B handoff: %v", err)
	}
	if introA.Command != CommandInitiateRelayedCommunication {
		t.Fatalf("A's command = %q, want initiateRelayedCommunication", introA.Command)
	}

	// From here on the sockets are raw-byte bridged; whatever A writes
	// must arrive verbatim on B.
	if _, err := connA.Write([]byte("ping-through-relay")); err != nil {
		t.Fatalf("write on A: %v", err)
	}

	buf := make([]byte, len("ping-through-relay"))
	_ = connB.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, err := io.ReadFull(connB, buf); err != nil {
		t.Fatalf("read on B: %v", err)
	}
	if string(buf) != "ping-through-relay" {
		t.Errorf("B received %q, want %q", buf, "ping-through-relay")
	}
}
