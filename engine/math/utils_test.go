package math

import (
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		in, low, high time.Duration
		want          time.Duration
	}{
		{"below", -time.Millisecond, 0, 100 * time.Millisecond, 0},
		{"inside", 20 * time.Millisecond, 0, 100 * time.Millisecond, 20 * time.Millisecond},
		{"at high", 100 * time.Millisecond, 0, 100 * time.Millisecond, 100 * time.Millisecond},
		{"above", 250 * time.Millisecond, 0, 100 * time.Millisecond, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in, tt.low, tt.high); got != tt.want {
				t.Fatalf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundDiv(t *testing.T) {
	if got := RoundDiv(1e9, 120.0); got != 8333333 {
		t.Fatalf("RoundDiv(1e9, 120) = %v, want 8333333", got)
	}
	if got := RoundDiv(1e9, 60.0); got != 16666667 {
		t.Fatalf("RoundDiv(1e9, 60) = %v, want 16666667", got)
	}
}
