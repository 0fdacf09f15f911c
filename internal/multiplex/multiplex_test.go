package multiplex

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dalbodeule/hopgate/internal/logging"
)

func TestMultiplexerRoundTrip(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	var mu sync.Mutex
	var received []Frame
	got := make(chan struct{}, 1)

	server := New(serverConn, logging.NewStdJSONLogger("test"), func(channelID string, data []byte) {
		mu.Lock()
		received = append(received, Frame{ChannelID: channelID, Data: append([]byte{}, data...)})
		mu.Unlock()
		got <- struct{}{}
	})
	server.Start()
	defer server.Close()

	client := New(clientConn, logging.NewStdJSONLogger("test"), func(string, []byte) {})
	client.Start()
	defer client.Close()

	if err := client.Write(testChannelID, []byte("ping")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame to arrive")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 1 {
		t.Fatalf("received %d frames, want 1", len(received))
	}
	if received[0].ChannelID != testChannelID || string(received[0].Data) != "ping" {
		t.Errorf("received %+v", received[0])
	}
}

func TestMultiplexerOrderingPreserved(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	const n = 50
	order := make(chan string, n)

	server := New(serverConn, logging.NewStdJSONLogger("test"), func(_ string, data []byte) {
		order <- string(data)
	})
	server.Start()
	defer server.Close()

	client := New(clientConn, logging.NewStdJSONLogger("test"), func(string, []byte) {})
	client.Start()
	defer client.Close()

	go func() {
		for i := 0; i < n; i++ {
			_ = client.Write(testChannelID, []byte{byte(i)})
		}
	}()

	for i := 0; i < n; i++ {
		select {
		case got := <-order:
			if len(got) != 1 || got[0] != byte(i) {
				t.Fatalf("frame %d out of order: got %v", i, []byte(got))
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for frame %d", i)
		}
	}
}

func TestMultiplexerDoneOnPeerClose(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	server := New(serverConn, logging.NewStdJSONLogger("test"), func(string, []byte) {})
	server.Start()

	clientConn.Close()

	select {
	case <-server.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Done() never closed after peer socket closed")
	}
	if server.Err() == nil {
		t.Error("expected a non-nil Err() after peer close")
	}
}
