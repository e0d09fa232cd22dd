package repository

import (
	"regexp"
	"testing"
)

func TestSubstringPatternMatchesLiterally(t *testing.T) {
	cases := []struct {
		name    string
		term    string
		text    string
		matches bool
	}{
		{"plain term", "tech", "Tech News", true},
		{"metacharacters match literally", "c++", "modern C++ tips", true},
		{"dot does not wildcard", "a.b", "axb", false},
		{"dot matches itself", "a.b", "A.B testing", true},
		{"substring anywhere", "heal", "mental health", true},
		{"no match", "sports", "education", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// case-insensitive, like the $options: "i" the queries use
			re, err := regexp.Compile("(?i)" + substringPattern(tc.term))
			if err != nil {
				t.Fatalf("pattern for %q does not compile: %v", tc.term, err)
			}
			if got := re.MatchString(tc.text); got != tc.matches {
				t.Fatalf("match(%q, %q) = %v, want %v", tc.term, tc.text, got, tc.matches)
			}
		})
	}
}

func TestSubstringPatternAlwaysCompiles(t *testing.T) {
	for _, term := range []string{"(", "[a-z", "c++", "**", `\`, "a|b"} {
		if _, err := regexp.Compile(substringPattern(term)); err != nil {
			t.Fatalf("pattern for %q does not compile: %v", term, err)
		}
	}
}
