// Package remote bridges touch input from a phone or browser into a running
// game over WebSocket. Clients send swipe deltas, direction button taps and
// start/restart requests; the bridge decodes them into events and hands them
// to a sink, usually tea.Program.Send.
package remote

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Protocol uses single-character keys, one message per frame. Text frames
// carry JSON, binary frames carry the same map encoded as MessagePack.
//
//	Client -> Server:
//	  "s" = swipe   {"t":"s","x":-40,"y":3}   (x,y = gesture delta)
//	  "b" = button  {"t":"b","d":"up"}        (d = up/down/left/right)
//	  "k" = key     {"t":"k","k":"confirm"}   (start or restart)
//	Server -> Client:
//	  "w" = welcome {"t":"w","i":"uuid"}
//	  "e" = error   {"t":"e","m":"message"}
const (
	MsgSwipe   = "s"
	MsgButton  = "b"
	MsgKey     = "k"
	MsgWelcome = "w"
	MsgError   = "e"
)

// KeyConfirm is the only key the bridge forwards.
const KeyConfirm = "confirm"

// ErrBadMessage wraps every decoding failure.
var ErrBadMessage = errors.New("remote: bad message")

// ClientMessage is an incoming message from the remote controller.
type ClientMessage struct {
	Type      string `json:"t" msgpack:"t"`
	DX        int    `json:"x,omitempty" msgpack:"x,omitempty"`
	DY        int    `json:"y,omitempty" msgpack:"y,omitempty"`
	Direction string `json:"d,omitempty" msgpack:"d,omitempty"`
	Key       string `json:"k,omitempty" msgpack:"k,omitempty"`
}

// WelcomeMsg is sent as soon as a connection is accepted.
type WelcomeMsg struct {
	Type string `json:"t"`
	ID   string `json:"i"`
}

// ErrorMsg is sent before the server drops a connection.
type ErrorMsg struct {
	Type    string `json:"t"`
	Message string `json:"m"`
}

// SwipeEvent is a completed gesture with its delta in the client's units.
type SwipeEvent struct {
	ConnID string
	DX, DY int
}

// ButtonEvent is a tap on one of the four direction buttons.
type ButtonEvent struct {
	ConnID    string
	Direction snake.Direction
}

// ConfirmEvent is a tap on the start/restart control.
type ConfirmEvent struct {
	ConnID string
}

// Decode parses one JSON frame into a SwipeEvent, ButtonEvent or ConfirmEvent.
func Decode(connID string, raw []byte) (any, error) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMessage, err)
	}
	return msg.event(connID)
}

// DecodeBinary parses one MessagePack frame like Decode.
func DecodeBinary(connID string, raw []byte) (any, error) {
	var msg ClientMessage
	if err := msgpack.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMessage, err)
	}
	return msg.event(connID)
}

func (msg ClientMessage) event(connID string) (any, error) {
	switch msg.Type {
	case MsgSwipe:
		return SwipeEvent{ConnID: connID, DX: msg.DX, DY: msg.DY}, nil
	case MsgButton:
		d, err := snake.ParseDirection(msg.Direction)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadMessage, err)
		}
		return ButtonEvent{ConnID: connID, Direction: d}, nil
	case MsgKey:
		if msg.Key != KeyConfirm {
			return nil, fmt.Errorf("%w: unknown key %q", ErrBadMessage, msg.Key)
		}
		return ConfirmEvent{ConnID: connID}, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrBadMessage, msg.Type)
	}
}
