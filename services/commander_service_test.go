package services

import "testing"

func TestDedupeNames(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "trims and drops blanks",
			input: []string{"  Krenko, Mob Boss ", "", "   "},
			want:  []string{"Krenko, Mob Boss"},
		},
		{
			name:  "drops duplicates keeping first order",
			input: []string{"Atraxa", "Krenko", "Atraxa", " Krenko "},
			want:  []string{"Atraxa", "Krenko"},
		},
		{
			name:  "empty input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupeNames(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("dedupeNames() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("dedupeNames()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeColors(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "uppercases and keeps order",
			input: []string{"w", "u", "B"},
			want:  []string{"W", "U", "B"},
		},
		{
			name:  "drops unknown codes and duplicates",
			input: []string{"R", "C", "R", "G", "X"},
			want:  []string{"R", "G"},
		},
		{
			name:  "colorless identity",
			input: []string{},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeColors(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("normalizeColors() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("normalizeColors()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
