package ws

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Outbound message types.
const (
	MsgBoard = "board"
	MsgState = "state"
	MsgError = "error"
)

// Inbound message types.
const (
	MsgSpawnBall = "spawn_ball"
	MsgReset     = "reset"
)

// Format selects the wire encoding of a subscriber.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

func parseFormat(s string) (Format, error) {
	switch s {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMsgpack):
		return FormatMsgpack, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Envelope wraps every message on the socket.
type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// WSMessage is an inbound client message; commands carry no payload today.
// Text frames are JSON and binary frames are msgpack, whatever format the
// client subscribed with.
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data" msgpack:"-"`
}

// Decode parses an inbound frame by its websocket message kind.
func Decode(kind int, data []byte) (WSMessage, error) {
	var msg WSMessage
	if kind == websocket.BinaryMessage {
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		if err := dec.Decode(&msg); err != nil {
			return WSMessage{}, fmt.Errorf("msgpack decode: %w", err)
		}
		return msg, nil
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return WSMessage{}, fmt.Errorf("json decode: %w", err)
	}
	return msg, nil
}

// frame is one encoded message ready for a connection.
type frame struct {
	kind int
	data []byte
}

// Encode renders an envelope in the given format. msgpack frames use the
// JSON field names so both clients read the same keys.
func Encode(f Format, msgType string, payload any) (frame, error) {
	env := Envelope{Type: msgType, Data: payload}
	switch f {
	case FormatMsgpack:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		enc.UseCompactInts(true)
		if err := enc.Encode(env); err != nil {
			return frame{}, fmt.Errorf("msgpack encode %s: %w", msgType, err)
		}
		return frame{kind: websocket.BinaryMessage, data: buf.Bytes()}, nil
	case FormatJSON:
		data, err := json.Marshal(env)
		if err != nil {
			return frame{}, fmt.Errorf("json encode %s: %w", msgType, err)
		}
		return frame{kind: websocket.TextMessage, data: data}, nil
	}
	return frame{}, fmt.Errorf("encode %s: unsupported format %q", msgType, f)
}

// encodings lazily encodes one message once per format.
type encodings struct {
	msgType string
	payload any
	frames  map[Format]frame
}

func newEncodings(msgType string, payload any) *encodings {
	return &encodings{msgType: msgType, payload: payload, frames: make(map[Format]frame, 2)}
}

func (e *encodings) get(f Format) (frame, error) {
	if fr, ok := e.frames[f]; ok {
		return fr, nil
	}
	fr, err := Encode(f, e.msgType, e.payload)
	if err != nil {
		return frame{}, err
	}
	e.frames[f] = fr
	return fr, nil
}
