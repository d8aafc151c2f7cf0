package strings

import (
	std "strings"
	"testing"
)

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3}
	def := []int{9}
	got := IfEmpty(in, def)
	if len(got) != 3 || got[0] != 1 {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}

	var empty []string
	def2 := []string{"x"}
	got2 := IfEmpty(empty, def2)
	if len(got2) != 1 || got2[0] != "x" {
		t.Fatalf("IfEmpty did not return default: %#v", got2)
	}
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"detect", "/detect"},
		{"/history", "/history"},
		{" /stats/ ", "/stats"},
	}
	for _, c := range cases {
		if got := MustPrefix(c.in); got != c.want {
			t.Errorf("MustPrefix(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustPrefix of empty input should panic")
		}
	}()
	MustPrefix("  ")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 100, "short"},                     // under the limit, untouched
		{"exactly-five!", 13, "exactly-five!"},      // at the limit, untouched
		{std.Repeat("a", 120), 100, std.Repeat("a", 100) + "..."},
		{"héllö wörld", 5, "héllö..."},              // runes not bytes
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.n); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}
