package bot

import (
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Hello World", want: "hello world"},
		{name: "strips diacritics", input: "Café résumé", want: "cafe resume"},
		{name: "strips punctuation", input: "what's the price?!", want: "what s the price"},
		{name: "collapses whitespace", input: "  too   many\tspaces ", want: "too many spaces"},
		{name: "keeps digits", input: "iPhone 15 Pro", want: "iphone 15 pro"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.want {
				t.Fatalf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchesAny(t *testing.T) {
	keywords := []string{"price", "how much", "cost"}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "direct hit", text: "what is the price", want: true},
		{name: "case insensitive", text: "PRICE CHECK", want: true},
		{name: "substring inside word", text: "pricing details", want: false},
		{name: "phrase keyword", text: "how much does it cost", want: true},
		{name: "no hit", text: "do you repair watches", want: false},
		{name: "empty text", text: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesAny(tt.text, keywords); got != tt.want {
				t.Fatalf("MatchesAny(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchesAnyEmptyKeywords(t *testing.T) {
	if MatchesAny("anything", nil) {
		t.Fatal("expected no match against empty keyword list")
	}
}
