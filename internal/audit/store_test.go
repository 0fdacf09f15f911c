package audit

import (
	"testing"

	"github.com/dalbodeule/hopgate/internal/endpoint"
)

func TestParseUUIDRejectsMalformed(t *testing.T) {
	if _, err := parseUUID("not-a-uuid"); err == nil {
		t.Fatal("expected an error for a malformed id")
	}
}

func TestNoopStoreRecordPairingDoesNotPanic(t *testing.T) {
	var s noopStore
	s.RecordPairing(
		endpoint.New("1.2.3.4", 1),
		endpoint.New("10.0.0.1", 2),
		endpoint.New("5.6.7.8", 3),
		endpoint.New("10.0.0.2", 4),
		true,
	)
}
