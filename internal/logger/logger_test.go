package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	l, err := New(true, true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level enabled")
	}

	l, err = New(false, false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level disabled")
	}
}

func TestTerms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		terms  []string
		limit  int
		expect int
	}{
		{name: "under limit", terms: []string{"a", "b"}, limit: 5, expect: 2},
		{name: "over limit adds marker", terms: []string{"a", "b", "c"}, limit: 2, expect: 3},
		{name: "no limit", terms: []string{"a", "b", "c"}, limit: 0, expect: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := Terms("skills", tt.terms, tt.limit)
			arr, ok := f.Interface.(zapcore.ArrayMarshaler)
			if !ok {
				t.Fatalf("expected array field")
			}
			enc := zapcore.NewMapObjectEncoder()
			if err := enc.AddArray("v", arr); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			got, _ := enc.Fields["v"].([]interface{})
			if len(got) != tt.expect {
				t.Fatalf("expected %d items, got %d", tt.expect, len(got))
			}
		})
	}
}
