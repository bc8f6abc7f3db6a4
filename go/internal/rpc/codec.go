// Package rpc hosts the Connect plumbing shared by the league services:
// a JSON codec for plain Go messages, unary handler registration and error
// code mapping.
package rpc

import (
	"encoding/json"
	"fmt"
)

// Codec marshals plain Go structs as JSON under the "json" codec name,
// replacing Connect's protobuf-only JSON codec.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
