package encryption

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"fastwise/internal/config"
)

func newTestAgeEncryptor(t *testing.T) *AgeEncryptor {
	t.Helper()
	dir := t.TempDir()
	return NewAgeEncryptor(config.EncryptionConfig{
		PublicKeyPath:  filepath.Join(dir, "fastwise.pub"),
		PrivateKeyPath: filepath.Join(dir, "fastwise.key"),
	})
}

func TestAgeEncryptorRoundTrip(t *testing.T) {
	enc := newTestAgeEncryptor(t)

	if enc.IsConfigured() {
		t.Fatal("encryptor reports configured before setup")
	}
	if err := enc.Setup("correct horse"); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !enc.IsConfigured() {
		t.Fatal("encryptor not configured after setup")
	}

	plaintext := []byte(`{"version":1,"history":[]}`)
	var ciphertext bytes.Buffer
	if err := enc.Encrypt(bytes.NewReader(plaintext), &ciphertext); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Contains(ciphertext.Bytes(), plaintext) {
		t.Error("ciphertext contains the plaintext")
	}

	dec, err := enc.Unlock("correct horse")
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}

	var decrypted bytes.Buffer
	if err := dec.Decrypt(bytes.NewReader(ciphertext.Bytes()), &decrypted); err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(decrypted.Bytes(), plaintext) {
		t.Errorf("decrypted %q, want %q", decrypted.Bytes(), plaintext)
	}
}

func TestAgeEncryptorWrongPassphrase(t *testing.T) {
	enc := newTestAgeEncryptor(t)
	if err := enc.Setup("right"); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if _, err := enc.Unlock("wrong"); err == nil {
		t.Error("expected unlock to fail with the wrong passphrase")
	}
}

func TestTestEncryptorRoundTrip(t *testing.T) {
	enc := NewTestEncryptor()

	var out bytes.Buffer
	if err := enc.Encrypt(strings.NewReader("payload"), &out); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), testHeader) {
		t.Error("missing test header")
	}

	dec, err := enc.Unlock("")
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	var plain bytes.Buffer
	if err := dec.Decrypt(bytes.NewReader(out.Bytes()), &plain); err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if plain.String() != "payload" {
		t.Errorf("decrypted %q, want payload", plain.String())
	}
}

func TestTestEncryptorRejectsBadHeader(t *testing.T) {
	dec, err := NewTestEncryptor().Unlock("")
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	var out bytes.Buffer
	if err := dec.Decrypt(strings.NewReader("not encrypted data"), &out); err == nil {
		t.Error("expected a header error")
	}
}

func TestNewEncryptorFromConfig(t *testing.T) {
	t.Run("defaults to age", func(t *testing.T) {
		enc, err := NewEncryptorFromConfig(config.EncryptionConfig{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := enc.(*AgeEncryptor); !ok {
			t.Errorf("got %T, want *AgeEncryptor", enc)
		}
	})

	t.Run("test type", func(t *testing.T) {
		enc, err := NewEncryptorFromConfig(config.EncryptionConfig{Type: "test"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := enc.(*TestEncryptor); !ok {
			t.Errorf("got %T, want *TestEncryptor", enc)
		}
	})

	t.Run("unknown type errors", func(t *testing.T) {
		if _, err := NewEncryptorFromConfig(config.EncryptionConfig{Type: "rot13"}); err == nil {
			t.Error("expected an error for an unknown type")
		}
	})
}
