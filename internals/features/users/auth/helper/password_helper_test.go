package helper

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "rahasia123" {
		t.Fatal("hash must not equal plaintext")
	}

	if err := CheckPasswordHash(hash, "rahasia123"); err != nil {
		t.Errorf("CheckPasswordHash valid: %v", err)
	}
	if err := CheckPasswordHash(hash, "salah"); err == nil {
		t.Error("expected error for wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password should differ")
	}
}
