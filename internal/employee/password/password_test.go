package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPlaintext(t *testing.T) {
	var p Plaintext

	stored, err := p.Hash("p")
	if err != nil || stored != "p" {
		t.Fatalf("expected plaintext to be stored as is, got %q, %v", stored, err)
	}
	if !p.Compare(stored, "p") {
		t.Error("expected exact match to pass")
	}
	if p.Compare(stored, "P") || p.Compare(stored, "p ") {
		t.Error("expected inexact match to fail")
	}
}

func TestBcrypt(t *testing.T) {
	b := Bcrypt{Cost: bcrypt.MinCost}

	stored, err := b.Hash("secret")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if stored == "secret" {
		t.Fatal("expected a hash, got the password")
	}
	if !b.Compare(stored, "secret") {
		t.Error("expected correct password to match")
	}
	if b.Compare(stored, "wrong") {
		t.Error("expected wrong password to fail")
	}
	if b.Compare("not-a-hash", "secret") {
		t.Error("expected malformed hash to fail")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		want    interface{}
		wantErr bool
	}{
		{"plaintext", Plaintext{}, false},
		{"", Plaintext{}, false},
		{"bcrypt", Bcrypt{}, false},
		{"md5", nil, true},
	}

	for _, tt := range tests {
		got, err := New(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("New(%q) = %T, want %T", tt.name, got, tt.want)
		}
	}
}
