package app

import "testing"

func TestListenAddr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		expect  string
		wantErr bool
	}{
		{in: "8080", expect: ":8080"},
		{in: " :9000 ", expect: ":9000"},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ListenAddr(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected err: %v", tt.in, err)
		}
		if got != tt.expect {
			t.Fatalf("%q: expected %q, got %q", tt.in, tt.expect, got)
		}
	}
}
