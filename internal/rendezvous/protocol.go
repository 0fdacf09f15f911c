// Package rendezvous implements the control-plane protocol and the two
// endpoints that speak it: the client driver that registers and races
// peer dials, and the pairing server that introduces two clients to
// each other or relays between them. Messages are bare JSON objects
// written directly to the control socket, one json.Decoder per
// connection.
package rendezvous

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/dalbodeule/hopgate/internal/endpoint"
)

// Command identifies which of the three control-plane messages a JSON
// object carries.
type Command string

const (
	CommandRegister                     Command = "register"
	CommandTryConnectToPeer             Command = "tryConnectToPeer"
	CommandInitiateRelayedCommunication Command = "initiateRelayedCommunication"
)

// ErrCapacity reports that a third client tried to register against a
// pair that already has two slots filled.
var ErrCapacity = errors.New("rendezvous: pair already has two registered clients")

// ErrExhausted reports that both the public and private dial attempts
// exhausted their retry budget.
var ErrExhausted = errors.New("rendezvous: dial retry budget exhausted on both public and private endpoints")

// errMalformedControlMessage marks a control socket whose byte stream
// stopped being parseable JSON. A json.Decoder cannot resync past
// garbage, so the caller must stop dispatching from this socket; the
// connection itself stays open, since a protocol error alone must not
// kill it.
var errMalformedControlMessage = errors.New("rendezvous: malformed control message")

// registerMessage is the only client-to-server message.
type registerMessage struct {
	Command      Command `json:"command"`
	LocalPort    int     `json:"localPort"`
	LocalAddress string  `json:"localAddress"`
	Relay        bool    `json:"relay"`
}

// introductionMessage covers both server-to-client shapes
// (tryConnectToPeer and initiateRelayedCommunication); a client decodes
// into this single struct and dispatches on Command. Fields the
// incoming message doesn't carry simply decode to their zero value,
// which is harmless since only the matching Command's handler reads
// them.
type introductionMessage struct {
	Command  Command           `json:"command"`
	Name     string            `json:"name"`
	PeerName string            `json:"peerName"`
	Public   endpoint.Endpoint `json:"public"`
	Private  endpoint.Endpoint `json:"private"`
}

// writeRegister sends a register message. relay requests server-relay
// fallback instead of a direct hole-punch introduction.
func writeRegister(w io.Writer, localAddress string, localPort int, relay bool) error {
	return json.NewEncoder(w).Encode(registerMessage{
		Command:      CommandRegister,
		LocalPort:    localPort,
		LocalAddress: localAddress,
		Relay:        relay,
	})
}

// writeTryConnectToPeer sends the peer-introduction message (server ->
// client).
func writeTryConnectToPeer(w io.Writer, name, peerName string, public, private endpoint.Endpoint) error {
	return json.NewEncoder(w).Encode(introductionMessage{
		Command:  CommandTryConnectToPeer,
		Name:     name,
		PeerName: peerName,
		Public:   public,
		Private:  private,
	})
}

// writeInitiateRelay sends the relay-handoff message (server ->
// client).
func writeInitiateRelay(w io.Writer, name, peerName string) error {
	return json.NewEncoder(w).Encode(introductionMessage{
		Command:  CommandInitiateRelayedCommunication,
		Name:     name,
		PeerName: peerName,
	})
}

// readRegister decodes one register message. A JSON syntax error is
// reported as errMalformedControlMessage: decoding cannot resume past
// it, so dispatch for this message is a no-op and the caller stops
// parsing the stream. io.EOF and transport errors are returned as-is
// so callers can tell "peer disconnected" apart from "sent us garbage".
func readRegister(dec *json.Decoder) (registerMessage, error) {
	var msg registerMessage
	if err := dec.Decode(&msg); err != nil {
		if isProtocolGarbage(err) {
			return registerMessage{}, errMalformedControlMessage
		}
		return registerMessage{}, err
	}
	return msg, nil
}

// isProtocolGarbage reports whether a decode error means the stream
// carried unparseable bytes, as opposed to a read error on the socket.
func isProtocolGarbage(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

// readIntroduction decodes one server-to-client message on the client
// side, with the same garbage-vs-transport error split as readRegister.
func readIntroduction(dec *json.Decoder) (introductionMessage, error) {
	var msg introductionMessage
	if err := dec.Decode(&msg); err != nil {
		if isProtocolGarbage(err) {
			return introductionMessage{}, errMalformedControlMessage
		}
		return introductionMessage{}, err
	}
	return msg, nil
}
