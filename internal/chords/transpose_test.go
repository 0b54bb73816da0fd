package chords

import (
	"fmt"
	"testing"
)

func TestTranspose(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		steps    int
		expected string
	}{
		{
			name:     "single major chord up",
			line:     "C",
			steps:    2,
			expected: "D",
		},
		{
			name:     "single major chord down",
			line:     "D",
			steps:    -2,
			expected: "C",
		},
		{
			name:     "wraps past the top of the scale",
			line:     "H",
			steps:    1,
			expected: "C",
		},
		{
			name:     "wraps below the bottom of the scale",
			line:     "C",
			steps:    -1,
			expected: "H",
		},
		{
			name:     "three letter root before single letter",
			line:     "Cis",
			steps:    1,
			expected: "D",
		},
		{
			name:     "minor chords use the lowercase scale",
			line:     "a d e",
			steps:    3,
			expected: "c f g",
		},
		{
			name:     "suffix preserved verbatim",
			line:     "C7 + Dis-",
			steps:    1,
			expected: "Cis7 + E-",
		},
		{
			name:     "chord line with label text",
			line:     "Ref: C  G  Am  F",
			steps:    2,
			expected: "Ref: D  A  Hm  G",
		},
		{
			name:     "german B is b-flat",
			line:     "B",
			steps:    1,
			expected: "H",
		},
		{
			name:     "mixed major and minor with extensions",
			line:     "fis-7 G+ cis7",
			steps:    2,
			expected: "gis-7 A+ dis7",
		},
		{
			name:     "non chord words pass through",
			line:     "Refren: x2",
			steps:    5,
			expected: "Refren: x2",
		},
		{
			name:     "empty line",
			line:     "",
			steps:    4,
			expected: "",
		},
		{
			name:     "whitespace only",
			line:     "   ",
			steps:    4,
			expected: "   ",
		},
		{
			name:     "zero steps is identity",
			line:     "C e G7",
			steps:    0,
			expected: "C e G7",
		},
		{
			name:     "steps beyond the clamp range degrade gracefully",
			line:     "C",
			steps:    14,
			expected: "D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transpose(tt.line, tt.steps)
			if got != tt.expected {
				t.Errorf("Transpose(%q, %d) = %q, want %q", tt.line, tt.steps, got, tt.expected)
			}
		})
	}
}

func TestTransposeFullOctaveIsIdentity(t *testing.T) {
	lines := []string{
		"C Cis D Dis E F Fis G Gis A B H",
		"c cis d dis e f fis g gis a b h",
		"Ref: C7  fis-  G+",
	}

	for _, line := range lines {
		for _, steps := range []int{12, 24, -12, 0} {
			if got := Transpose(line, steps); got != line {
				t.Errorf("Transpose(%q, %d) = %q, want unchanged", line, steps, got)
			}
		}
	}
}

func TestTransposeComposes(t *testing.T) {
	// Transposing by a then b must equal transposing by a+b.
	lines := []string{
		"C G a F",
		"Cis7 dis- H",
		"Zwrotka: E  A  fis  H7",
	}

	for _, line := range lines {
		for a := -11; a <= 11; a += 3 {
			for b := -11; b <= 11; b += 4 {
				t.Run(fmt.Sprintf("%s_%d_%d", line, a, b), func(t *testing.T) {
					composed := Transpose(Transpose(line, a), b)
					direct := Transpose(line, a+b)
					if composed != direct {
						t.Errorf("Transpose(Transpose(line, %d), %d) = %q, Transpose(line, %d) = %q",
							a, b, composed, a+b, direct)
					}
				})
			}
		}
	}
}
