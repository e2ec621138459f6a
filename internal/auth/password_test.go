package auth

import (
	"errors"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-pass1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "secret-pass1" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if err := CheckPassword(hash, "secret-pass1"); err != nil {
		t.Errorf("CheckPassword() with correct password error = %v", err)
	}
	if err := CheckPassword(hash, "wrong-pass1"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("CheckPassword() with wrong password error = %v, want ErrWrongPassword", err)
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "valid password",
			password: "abcdef12",
			wantErr:  false,
		},
		{
			name:     "too short",
			password: "ab1",
			wantErr:  true,
		},
		{
			name:     "no digit",
			password: "abcdefgh",
			wantErr:  true,
		},
		{
			name:     "no letter",
			password: "12345678",
			wantErr:  true,
		},
		{
			name:     "long with both",
			password: "correct horse battery 9",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePasswordStrength(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "valid email",
			email:   "siti@example.com",
			wantErr: false,
		},
		{
			name:    "missing domain",
			email:   "siti@",
			wantErr: true,
		},
		{
			name:    "missing at sign",
			email:   "siti.example.com",
			wantErr: true,
		},
		{
			name:    "display name form rejected",
			email:   "Siti <siti@example.com>",
			wantErr: true,
		},
		{
			name:    "empty",
			email:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}
