// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package arith

import "testing"

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"dependency_check_first", 2, 3, 5},
		{"dependency_check_second", 4, 5, 9},
		{"zero", 0, 0, 0},
		{"negative", -7, 3, -4},
		{"argc_one", 1, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Add(tt.a, tt.b); got != tt.want {
				t.Errorf("Add(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAsmAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"argc_one", 1, 1, 2},
		{"zero", 0, 0, 0},
		{"negative", -2, -3, -5},
		{"mixed_sign", -10, 4, -6},
		{"large", 1 << 30, 1 << 30, 1 << 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AsmAdd(tt.a, tt.b); got != tt.want {
				t.Errorf("AsmAdd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestAsmAddMatchesAdd cross-checks the assembly implementation
// against the compiled one over a spread of values.
func TestAsmAddMatchesAdd(t *testing.T) {
	values := []int{-1000003, -64, -1, 0, 1, 2, 3, 4, 5, 63, 255, 4096, 99991}
	for _, a := range values {
		for _, b := range values {
			if got, want := AsmAdd(a, b), Add(a, b); got != want {
				t.Fatalf("AsmAdd(%d, %d) = %d, Add = %d", a, b, got, want)
			}
		}
	}
}
