package service

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("Str0ng!pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Str0ng!pass" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !h.Verify("Str0ng!pass", hash) {
		t.Fatalf("correct password rejected")
	}
	if h.Verify("wrong", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewBcryptHasher()

	a, err := h.Hash("Str0ng!pass")
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	b, err := h.Hash("Str0ng!pass")
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct salted hashes")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher()

	// A malformed hash reads as a wrong password, never an error.
	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash accepted")
	}
}
