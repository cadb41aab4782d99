package node

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ParseHeight parses the complete output of the height command. The output
// must be exactly one JSON integer, optionally surrounded by whitespace.
func ParseHeight(out []byte) (int64, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return 0, fmt.Errorf("%w: empty output", ErrMalformedOutput)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return 0, fmt.Errorf("%w: %w: %s", ErrMalformedOutput, ErrSerialization, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: trailing data after %q", ErrMalformedOutput, trimmed)
	}

	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: expected an integer, got %q", ErrMalformedOutput, trimmed)
	}
	height, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a 64-bit integer", ErrMalformedOutput, n)
	}
	return height, nil
}
