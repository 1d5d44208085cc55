package utils

import "testing"

func TestMaskClientID(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
		want     string
	}{
		{
			name:     "typical client id keeps first 8 and last 4",
			clientID: "abcdefgh1234WXYZ",
			want:     "abcdefgh...WXYZ",
		},
		{
			name:     "empty client id masks to empty",
			clientID: "",
			want:     "",
		},
		{
			name:     "short client id clamps both slices",
			clientID: "abc",
			want:     "abc...abc",
		},
		{
			name:     "exactly eight characters",
			clientID: "abcdefgh",
			want:     "abcdefgh...efgh",
		},
		{
			name:     "long client id hides the middle",
			clientID: "Iv1.8a61f9b3a7aba766",
			want:     "Iv1.8a61...a766",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskClientID(tt.clientID); got != tt.want {
				t.Errorf("MaskClientID(%q) = %q, want %q", tt.clientID, got, tt.want)
			}
		})
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"typical email", "user@example.com", "u***@example.com"},
		{"single char local part", "u@example.com", "u***@example.com"},
		{"not an email", "nonsense", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskEmail(tt.email); got != tt.want {
				t.Errorf("MaskEmail(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}
