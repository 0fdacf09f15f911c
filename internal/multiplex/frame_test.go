package multiplex

import (
	"bytes"
	"testing"
)

const testChannelID = "11111111-2222-3333-4444-555555555555"

func TestEncodeFrameRoundTrip(t *testing.T) {
	frame, err := EncodeFrame(testChannelID, []byte("hello"))
	if err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}

	var p parser
	p.feed(frame)

	got, ok, err := p.next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if !ok {
		t.Fatalf("next: expected a complete frame")
	}
	if got.ChannelID != testChannelID {
		t.Errorf("ChannelID = %q, want %q", got.ChannelID, testChannelID)
	}
	if !bytes.Equal(got.Data, []byte("hello")) {
		t.Errorf("Data = %q, want %q", got.Data, "hello")
	}
}

func TestEncodeFrameRejectsShortChannelID(t *testing.T) {
	if _, err := EncodeFrame("too-short", []byte("x")); err == nil {
		t.Fatalf("expected an error for a non-36-byte channel id")
	}
}

func TestParserSplitAcrossReads(t *testing.T) {
	frame, err := EncodeFrame(testChannelID, []byte("split-me"))
	if err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}

	chunks := splitEvery(frame, 3)

	var p parser
	for _, chunk := range chunks[:len(chunks)-1] {
		p.feed(chunk)
		if _, ok, err := p.next(); ok || err != nil {
			t.Fatalf("next returned early: ok=%v err=%v", ok, err)
		}
	}

	// Feeding the final chunk should make exactly one frame available.
	p.feed(chunks[len(chunks)-1])
	got, ok, err := p.next()
	if err != nil || !ok {
		t.Fatalf("next after full feed: ok=%v err=%v", ok, err)
	}
	if string(got.Data) != "split-me" {
		t.Errorf("Data = %q, want %q", got.Data, "split-me")
	}
}

func TestParserMultipleFramesInOneRead(t *testing.T) {
	f1, _ := EncodeFrame(testChannelID, []byte("one"))
	f2, _ := EncodeFrame(testChannelID, []byte("two"))

	var p parser
	p.feed(append(append([]byte{}, f1...), f2...))

	first, ok, err := p.next()
	if err != nil || !ok {
		t.Fatalf("first frame: ok=%v err=%v", ok, err)
	}
	if string(first.Data) != "one" {
		t.Errorf("first.Data = %q, want %q", first.Data, "one")
	}

	second, ok, err := p.next()
	if err != nil || !ok {
		t.Fatalf("second frame: ok=%v err=%v", ok, err)
	}
	if string(second.Data) != "two" {
		t.Errorf("second.Data = %q, want %q", second.Data, "two")
	}
}

func TestParserMalformedLength(t *testing.T) {
	var p parser
	p.feed([]byte("not-a-number--"))
	if _, _, err := p.next(); err != ErrMalformedLength {
		t.Fatalf("next() err = %v, want ErrMalformedLength", err)
	}
}

func TestParserShortPayloadSkipped(t *testing.T) {
	// A frame whose payload is shorter than a channel id: still
	// well-formed on the wire (a valid length header), just too short
	// to carry a channel id.
	short := append(encodeLength(5), []byte("abcde")...)

	var p parser
	p.feed(short)

	_, ok, err := p.next()
	if err != errShortPayload {
		t.Fatalf("next() err = %v, want errShortPayload", err)
	}
	if !ok {
		t.Fatalf("expected the short frame to be consumed")
	}

	// The buffer must have been drained so parsing can continue.
	if p.buf.Len() != 0 {
		t.Errorf("parser buffer not drained after skipping short frame: %d bytes left", p.buf.Len())
	}
}

func splitEvery(b []byte, n int) [][]byte {
	var out [][]byte
	for len(b) > 0 {
		if n > len(b) {
			n = len(b)
		}
		out = append(out, b[:n])
		b = b[n:]
	}
	return out
}
