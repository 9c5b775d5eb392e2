// Package event defines the wire contract for file lifecycle events
// exchanged over the broker, and the emitter that announces project-side
// changes on the same exchange.
package event

import (
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Kind identifies what happened to the file.
type Kind string

const (
	// KindCreated announces that a file came into existence.
	KindCreated Kind = "created"

	// KindDeleted announces that a file was removed.
	KindDeleted Kind = "deleted"
)

// Payload is the binary event body. FileReference is optional and omitted
// from the encoding when empty; every other field is always present.
type Payload struct {
	UserID        string `cbor:"user_id"`
	AppID         string `cbor:"app_id"`
	FileName      string `cbor:"file_name"`
	FileID        string `cbor:"file_id"`
	FileReference string `cbor:"file_reference,omitempty"`
	EventIssuer   string `cbor:"event_issuer"`
	EventKind     Kind   `cbor:"event_kind"`
}

// Validate reports whether the payload carries the mandatory fields.
func (p Payload) Validate() error {
	switch {
	case strings.TrimSpace(p.UserID) == "":
		return fmt.Errorf("user_id is required")
	case strings.TrimSpace(p.FileName) == "":
		return fmt.Errorf("file_name is required")
	case strings.TrimSpace(p.EventIssuer) == "":
		return fmt.Errorf("event_issuer is required")
	case strings.TrimSpace(string(p.EventKind)) == "":
		return fmt.Errorf("event_kind is required")
	}
	return nil
}

// Encode serializes the payload to its compact binary form.
func Encode(payload Payload) ([]byte, error) {
	body, err := cbor.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode event payload: %w", err)
	}
	return body, nil
}

// Decode deserializes a binary event body. Unknown fields are ignored so
// producers can grow the payload without breaking older consumers.
func Decode(body []byte) (Payload, error) {
	var payload Payload
	if err := cbor.Unmarshal(body, &payload); err != nil {
		return Payload{}, fmt.Errorf("decode event payload: %w", err)
	}
	return payload, nil
}
