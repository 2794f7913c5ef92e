package auth

import (
	"testing"

	"github.com/tutaexport/tuta-export/internal/wire"
)

func TestAuthVerifierBcrypt(t *testing.T) {
	key, err := DerivePassphraseKey(wire.KdfBcrypt, "password", []byte("saltsaltsaltsalt"))
	if err != nil {
		t.Fatalf("DerivePassphraseKey: %v", err)
	}
	got := AuthVerifierString(key)
	want := "r3YdONamUCQ7yFZwPFX8KLWZ4kKnAZLyt7rwi1DCE1I"
	if got != want {
		t.Fatalf("auth verifier = %q, want %q", got, want)
	}
}

func TestDeriveArgon2idProducesAes256Key(t *testing.T) {
	key, err := DerivePassphraseKey(wire.KdfArgon2id, "password", []byte("saltsaltsaltsalt"))
	if err != nil {
		t.Fatalf("DerivePassphraseKey: %v", err)
	}
	if len(key.Bytes()) != 32 {
		t.Fatalf("key length = %d, want 32", len(key.Bytes()))
	}
}

func TestDerivePassphraseKeyUnsupportedVersion(t *testing.T) {
	_, err := DerivePassphraseKey(wire.KdfVersion(99), "password", []byte("saltsaltsaltsalt"))
	if err == nil {
		t.Fatal("expected an error for an unsupported kdf version")
	}
}
