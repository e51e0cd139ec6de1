package inject

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Lifetime specifies how a Registry caches the instances it builds for a token.
type Lifetime int

const (
	// Shared specifies that a single instance is created lazily on first resolution
	// and reused by every later resolution until Replace or Reset intervenes.
	Shared Lifetime = iota

	// Fresh specifies that a new instance is created on every resolution.
	// Fresh instances are never cached.
	Fresh
)

// String returns the string representation of the Lifetime.
func (l Lifetime) String() string {
	switch l {
	case Shared:
		return "Shared"
	case Fresh:
		return "Fresh"
	default:
		return fmt.Sprintf("Unknown(%d)", int(l))
	}
}

// IsValid checks if the lifetime is valid.
func (l Lifetime) IsValid() bool {
	return l >= Shared && l <= Fresh
}

// MarshalText implements encoding.TextMarshaler.
func (l Lifetime) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, LifetimeError{Value: int(l)}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Lifetime) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "shared":
		*l = Shared
	case "fresh":
		*l = Fresh
	default:
		return LifetimeError{Value: string(text)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l Lifetime) MarshalJSON() ([]byte, error) {
	text, err := l.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Lifetime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	return l.UnmarshalText([]byte(s))
}
