package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/notepad/pkg/core"
)

// Codec converts the whole note collection to and from bytes.
type Codec interface {
	Decode(data []byte) (core.Notes, error)
	Encode(notes core.Notes) ([]byte, error)
}

// JSONCodec reads and writes the notes document as a JSON object keyed by
// note ID.
type JSONCodec struct {
	// Indent is used for pretty printing. Empty writes compact JSON.
	Indent string
}

// NewJSONCodec returns the default codec, indented with two spaces.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "  "}
}

// Decode parses data into a fresh collection. Anything other than a single
// JSON object is rejected.
func (c *JSONCodec) Decode(data []byte) (core.Notes, error) {
	var notes core.Notes
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&notes); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid json: trailing data after document")
	}
	if notes == nil {
		return nil, errors.New("invalid json: expected an object of notes")
	}
	return notes, nil
}

// Encode serializes notes. A nil collection is written as an empty object.
func (c *JSONCodec) Encode(notes core.Notes) ([]byte, error) {
	if notes == nil {
		notes = core.Notes{}
	}
	if c.Indent == "" {
		return json.Marshal(notes)
	}
	return json.MarshalIndent(notes, "", c.Indent)
}
