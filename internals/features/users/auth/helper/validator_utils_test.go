package helper

import "testing"

func TestValidateRegisterInput(t *testing.T) {
	cases := []struct {
		name     string
		username string
		fullName string
		password string
		wantErr  bool
	}{
		{"valid", "siswa@example.com", "Siswa Uji", "rahasia123", false},
		{"empty username", "  ", "Siswa Uji", "rahasia123", true},
		{"empty full name", "siswa@example.com", "", "rahasia123", true},
		{"empty password", "siswa@example.com", "Siswa Uji", "", true},
		{"short password", "siswa@example.com", "Siswa Uji", "12345", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegisterInput(tc.username, tc.fullName, tc.password)
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
