package service

import (
	"strings"
	"testing"
)

func TestHashPassword_LongPasswords(t *testing.T) {
	long := strings.Repeat("p", 256)

	hash, err := hashPassword(long)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !checkPassword(hash, long) {
		t.Fatalf("expected long password to verify")
	}
	// Differs only after byte 72, where plain bcrypt would stop reading.
	if checkPassword(hash, strings.Repeat("p", 255)+"q") {
		t.Fatalf("expected password differing in its tail to be rejected")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := hashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if checkPassword(hash, "S3cret") {
		t.Fatalf("expected mismatch")
	}
	if checkPassword("not-a-bcrypt-hash", "s3cret") {
		t.Fatalf("expected malformed hash to be rejected")
	}
}
