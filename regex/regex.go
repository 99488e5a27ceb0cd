package regex

// missing on purpose, and staying that way:
// groups, alternation, bracket expressions, anchors, {m,n}, backtracking
// potentially: unicode aware \w, \d and \s

import (
	"fmt"
	"slices"
)

// Regex is a compiled pattern. It is immutable and safe for concurrent use.
type Regex struct {
	nodes []Node
	str   string
}

// Compile parses re into a Regex.
func Compile(re string) (Regex, error) {
	nodes, err := Parse(re)
	if err != nil {
		return Regex{}, fmt.Errorf("failed to construct regex from %q: %w", re, err)
	}
	return Regex{
		nodes: nodes,
		str:   re,
	}, nil
}

// MustCompile is like Compile but panics if re can't be parsed.
func MustCompile(re string) Regex {
	r, err := Compile(re)
	if err != nil {
		panic(err)
	}
	return r
}

// FindAll finds up to maxCount matches of the pattern in the given string
// To return all matches pass a negative maxCount, e.g. -1
func (re Regex) FindAll(s string, maxCount int) ([]Span, error) {
	spans, err := FindAll(re.nodes, s)
	if err != nil {
		return nil, err
	}
	if maxCount >= 0 && len(spans) > maxCount {
		spans = spans[:maxCount]
	}
	return spans, nil
}

// FindAllString is like FindAll but returns the matched text instead of the
// spans. It returns nil if there is no match.
func (re Regex) FindAllString(s string, maxCount int) []string {
	spans, err := re.FindAll(s, maxCount)
	if err != nil {
		return nil
	}

	in := []rune(s)
	out := make([]string, len(spans))
	for i, sp := range spans {
		out[i] = string(in[sp.Start:sp.End])
	}
	return out
}

// Match reports whether the pattern matches anywhere in s.
func (re Regex) Match(s string) bool {
	_, err := FindAll(re.nodes, s)
	return err == nil
}

// Nodes returns a copy of the compiled pattern.
func (re Regex) Nodes() []Node {
	return slices.Clone(re.nodes)
}

// String returns the source text used to compile the regular expression.
func (re Regex) String() string {
	return re.str
}
