package agentkit

import (
	"encoding/json"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
)

// KeyInput is a tool parameter that accepts either a public key string or a
// boolean. The string form names the key directly; `true` asks for the
// connected account's key; `false` or omission leaves the key unset.
type KeyInput struct {
	present    bool
	useDefault bool
	explicit   string
}

// ExplicitKey builds a KeyInput holding the given key string.
func ExplicitKey(key string) KeyInput {
	return KeyInput{present: true, explicit: key}
}

// DefaultKey builds a KeyInput that resolves to the connected account's key.
func DefaultKey() KeyInput {
	return KeyInput{present: true, useDefault: true}
}

// UnmarshalJSON accepts a string, a boolean, or null.
func (k *KeyInput) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*k = KeyInput{}
		return nil
	}

	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*k = KeyInput{present: true, useDefault: flag}
		return nil
	}

	var key string
	if err := json.Unmarshal(data, &key); err == nil {
		*k = KeyInput{present: true, explicit: key}
		return nil
	}

	return fmt.Errorf("key must be a public key string or a boolean, got %s", string(data))
}

// IsSet reports whether the parameter was provided at all.
func (k KeyInput) IsSet() bool {
	return k.present
}

// Resolve turns the input into a public key, or nil when the key should stay
// unset. The defaultKey callback is only invoked for the `true` form.
func (k KeyInput) Resolve(defaultKey func() (hedera.PublicKey, error)) (*hedera.PublicKey, error) {
	if !k.present {
		return nil, nil
	}

	if k.explicit != "" {
		parsed, err := shared.ParsePublicKey(k.explicit)
		if err != nil {
			return nil, err
		}
		return &parsed, nil
	}

	if !k.useDefault {
		return nil, nil
	}

	if defaultKey == nil {
		return nil, fmt.Errorf("no default key available")
	}
	resolved, err := defaultKey()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default key: %w", err)
	}
	return &resolved, nil
}
