package design

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DecodeError is returned when serialized design text cannot be turned
// back into a Config.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode design: %s: %v", e.Reason, e.Err)
	}
	return "decode design: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsDecodeError reports whether err is, or wraps, a *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// Marshal serializes c as opaque JSON text.
func Marshal(c Config) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode design: %w", err)
	}
	return string(b), nil
}

// Unmarshal parses text produced by Marshal. Input that is not a JSON
// object, or that carries no layers, is rejected with a *DecodeError.
func Unmarshal(text string) (Config, error) {
	return UnmarshalOnto(Config{}, text)
}

// UnmarshalOnto decodes text over a copy of base. Keys absent from text
// keep their base values. Each decoded layer starts from the base layer at
// the same index, or the last base layer when text has more layers.
func UnmarshalOnto(base Config, text string) (Config, error) {
	var doc struct {
		Layers []json.RawMessage `json:"layers"`
	}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return Config{}, &DecodeError{Reason: "malformed json", Err: err}
	}
	if len(doc.Layers) == 0 {
		return Config{}, &DecodeError{Reason: "design has no layers"}
	}

	c := base.Clone()
	c.Layers = nil
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		return Config{}, &DecodeError{Reason: "malformed json", Err: err}
	}

	c.Layers = make([]Layer, len(doc.Layers))
	for i, raw := range doc.Layers {
		var l Layer
		if n := len(base.Layers); n > 0 {
			l = base.Layers[min(i, n-1)]
		}
		if err := json.Unmarshal(raw, &l); err != nil {
			return Config{}, &DecodeError{Reason: fmt.Sprintf("layer %d", i), Err: err}
		}
		c.Layers[i] = l
	}
	return c, nil
}
