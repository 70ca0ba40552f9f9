package contextengine

import (
	"fmt"
	"regexp"
	"strings"
)

// Selection policy defaults surfaced to callers.
const (
	DefaultMaxFiles = 10
	DefaultMaxDepth = 3
)

// regexMarker prefixes a pattern string that should be compiled as a
// regular expression instead of matched as a literal substring.
const regexMarker = "re:"

// PatternKind distinguishes the two selector variants.
type PatternKind int

const (
	PatternSubstring PatternKind = iota
	PatternRegex
)

// Pattern matches a file's relative path either by literal substring or by
// compiled regular expression. The two kinds are explicit; no type sniffing.
type Pattern struct {
	Kind  PatternKind
	Value string
	re    *regexp.Regexp
}

// NewSubstringPattern returns a literal substring pattern.
func NewSubstringPattern(value string) Pattern {
	return Pattern{Kind: PatternSubstring, Value: value}
}

// NewRegexPattern compiles value as a regular expression pattern.
func NewRegexPattern(value string) (Pattern, error) {
	re, err := regexp.Compile(value)
	if err != nil {
		return Pattern{}, fmt.Errorf("invalid pattern %q: %w", value, err)
	}
	return Pattern{Kind: PatternRegex, Value: value, re: re}, nil
}

// ParsePattern builds a Pattern from its wire form: a "re:" prefix selects
// the regular-expression kind, anything else is a literal substring.
func ParsePattern(raw string) (Pattern, error) {
	if expr, ok := strings.CutPrefix(raw, regexMarker); ok {
		return NewRegexPattern(expr)
	}
	return NewSubstringPattern(raw), nil
}

// ParsePatterns builds patterns from a list of wire-form strings.
func ParsePatterns(raw []string) ([]Pattern, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	patterns := make([]Pattern, 0, len(raw))
	for _, r := range raw {
		p, err := ParsePattern(r)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// Matches reports whether the pattern matches the given relative path.
func (p Pattern) Matches(relPath string) bool {
	switch p.Kind {
	case PatternRegex:
		return p.re.MatchString(relPath)
	default:
		return strings.Contains(relPath, p.Value)
	}
}

// SelectionPolicy bounds which file leaves an Assemble call selects.
// Immutable; re-supplied per call. An empty Include set matches everything
// before exclusion. Exclude is checked after Include and always wins.
type SelectionPolicy struct {
	MaxFiles int
	MaxDepth int
	Include  []Pattern
	Exclude  []Pattern
}

// DefaultPolicy returns the policy applied when a caller omits every field.
func DefaultPolicy() SelectionPolicy {
	return SelectionPolicy{
		MaxFiles: DefaultMaxFiles,
		MaxDepth: DefaultMaxDepth,
	}
}

// admits reports whether a relative path passes the include/exclude tests.
func (p SelectionPolicy) admits(relPath string) bool {
	if len(p.Include) > 0 {
		matched := false
		for _, pat := range p.Include {
			if pat.Matches(relPath) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, pat := range p.Exclude {
		if pat.Matches(relPath) {
			return false
		}
	}
	return true
}
