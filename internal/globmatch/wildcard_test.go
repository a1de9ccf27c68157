package globmatch

import "testing"

func TestMatch(t *testing.T) {
	cases := []struct {
		pattern, input string
		want           bool
	}{
		{"*", "anything", true},
		{"*", "", true},
		{"*.go", "main.go", true},
		{"*.go", "main.txt", false},
		{"*.go", "main.go.bak", false},
		{"test?.go", "test1.go", true},
		{"test?.go", "test10.go", false},
		{"foo*bar", "foobar", true},
		{"foo*bar", "fooXXXbar", true},
		{"foo*bar", "foobarX", false},
		{"*.*", "a.b.c", true},
		{"*.*", "noext", false},
		{"MAIN.GO", "main.go", true}, // case-insensitive
		{"a?c", "ac", false},
		{"", "", true},
		{"", "x", false},
	}
	for _, c := range cases {
		if got := Match(c.pattern, c.input); got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.pattern, c.input, got, c.want)
		}
	}
}
