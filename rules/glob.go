package rules

import (
	"regexp"
	"strings"

	"github.com/teranos/headsmith/errors"
)

// Glob is a compiled shell-style pattern with fnmatch semantics:
// '*' matches any run of characters, '?' one character, "[seq]" and "[!seq]"
// character sets. There is no escape character and matching is case-sensitive.
type Glob struct {
	pattern string
	re      *regexp.Regexp
}

// CompileGlob compiles pattern into a Glob
func CompileGlob(pattern string) (Glob, error) {
	if pattern == "" {
		return Glob{}, errors.New("empty glob pattern")
	}
	re, err := regexp.Compile(translateGlob(pattern))
	if err != nil {
		return Glob{}, errors.Wrapf(err, "invalid glob pattern %q", pattern)
	}
	return Glob{pattern: pattern, re: re}, nil
}

// Match reports whether s matches the whole pattern
func (g Glob) Match(s string) bool {
	return g.re != nil && g.re.MatchString(s)
}

// String returns the source pattern
func (g Glob) String() string {
	return g.pattern
}

// translateGlob rewrites a glob into an anchored regular expression.
// An unterminated '[' is a literal bracket.
func translateGlob(pat string) string {
	var b strings.Builder
	b.WriteString(`^(?s:`)

	runes := []rune(pat)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch c {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			j := i + 1
			if j < len(runes) && runes[j] == '!' {
				j++
			}
			if j < len(runes) && runes[j] == ']' {
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(translateClass(runes[i+1 : j]))
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString(`)$`)
	return b.String()
}

func translateClass(body []rune) string {
	var b strings.Builder
	b.WriteByte('[')
	for k, r := range body {
		switch {
		case k == 0 && r == '!':
			b.WriteByte('^')
		case k == 0 && r == '^':
			b.WriteString(`\^`)
		case r == '\\' || r == '[' || r == ']':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(']')
	return b.String()
}
