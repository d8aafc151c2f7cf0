package normalize

import (
	"testing"
)

// Test table covers each stage and combined pipelines.
func TestNormalize_Table(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "identity ascii",
			in:   "hello world",
			out:  "hello world",
		},
		{
			name: "trim edges",
			in:   "  bonjour tout le monde  ",
			out:  "bonjour tout le monde",
		},
		{
			name: "collapse internal whitespace",
			in:   "a\n\n b",
			out:  "a b",
		},
		{
			name: "tabs and newlines",
			in:   "a\t\tb\nc   d",
			out:  "a b c d",
		},
		{
			name: "utf8 repair drops invalid bytes",
			in:   string([]byte{0xff, 'f', 'o', 'o', 0x80, ' ', 'b', 'a', 'r'}),
			out:  "foo bar",
		},
		{
			name: "unicode whitespace",
			in:   "a  b",
			out:  "a b",
		},
		{
			name: "whitespace only",
			in:   " \t\n ",
			out:  "",
		},
		{
			name: "empty",
			in:   "",
			out:  "",
		},
		{
			name: "idempotent",
			in:   n.Normalize("  ceci \n\t est   un test  "),
			out:  "ceci est un test",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.in); got != tc.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestNormalize_Idempotence(t *testing.T) {
	n := New()
	inputs := []string{
		"Bonjour tout le monde, comment allez-vous aujourd'hui?",
		" spaced \t out \n text ",
		"",
		"one",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		twice := n.Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
