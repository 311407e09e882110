package agentkit

import (
	"encoding/json"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func testKeyPair(t *testing.T) (hedera.PrivateKey, hedera.PublicKey) {
	t.Helper()
	private, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return private, private.PublicKey()
}

func TestKeyInputUnmarshalString(t *testing.T) {
	_, public := testKeyPair(t)

	var key KeyInput
	if err := json.Unmarshal([]byte(`"`+public.String()+`"`), &key); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !key.IsSet() {
		t.Fatal("expected key to be set")
	}

	resolved, err := key.Resolve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved == nil || resolved.String() != public.String() {
		t.Fatalf("expected %s, got %v", public.String(), resolved)
	}
}

func TestKeyInputUnmarshalTrue(t *testing.T) {
	_, public := testKeyPair(t)

	var key KeyInput
	if err := json.Unmarshal([]byte(`true`), &key); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resolved, err := key.Resolve(func() (hedera.PublicKey, error) {
		return public, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved == nil || resolved.String() != public.String() {
		t.Fatalf("expected default key, got %v", resolved)
	}
}

func TestKeyInputUnmarshalFalse(t *testing.T) {
	var key KeyInput
	if err := json.Unmarshal([]byte(`false`), &key); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resolved, err := key.Resolve(func() (hedera.PublicKey, error) {
		t.Fatal("default key callback must not run for false")
		return hedera.PublicKey{}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved != nil {
		t.Fatalf("expected nil key for false, got %v", resolved)
	}
}

func TestKeyInputUnmarshalNull(t *testing.T) {
	var key KeyInput
	if err := json.Unmarshal([]byte(`null`), &key); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.IsSet() {
		t.Fatal("expected key to stay unset for null")
	}

	resolved, err := key.Resolve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved != nil {
		t.Fatalf("expected nil key, got %v", resolved)
	}
}

func TestKeyInputUnmarshalInvalid(t *testing.T) {
	var key KeyInput
	if err := json.Unmarshal([]byte(`12345`), &key); err == nil {
		t.Fatal("expected error for numeric key input")
	}
}

func TestKeyInputResolveInvalidString(t *testing.T) {
	key := ExplicitKey("not-a-key")
	if _, err := key.Resolve(nil); err == nil {
		t.Fatal("expected error for invalid key string")
	}
}

func TestKeyInputResolveNoDefaultAvailable(t *testing.T) {
	key := DefaultKey()
	if _, err := key.Resolve(nil); err == nil {
		t.Fatal("expected error when no default key callback is available")
	}
}
