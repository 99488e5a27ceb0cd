package regex

import (
	"cmp"
	"slices"
)

// Span is a half-open range [Start, End) of character (not byte) offsets.
type Span struct {
	Start int
	End   int
}

// Len is the number of characters in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) contains(o Span) bool {
	return o.Start >= s.Start && o.End <= s.End
}

// FindAll matches pattern at every position of text, including the position
// right after the last character, and returns the spans that are not nested
// inside another one, ordered by start.
// Repetition is greedy and never gives characters back, so a+a can't match
// "aaa".
// If nothing matches anywhere, the error is ErrNoMatch.
func FindAll(pattern []Node, text string) ([]Span, error) {
	in := []rune(text)

	var spans []Span
	for i := 0; i <= len(in); i++ {
		end, ok := matchSequence(pattern, in, i)
		if ok {
			spans = append(spans, Span{Start: i, End: end})
		}
	}

	spans = removeSubsumed(spans)
	if len(spans) == 0 {
		return nil, ErrNoMatch
	}
	return spans, nil
}

// matchSequence matches nodes anchored at i and returns the end of the match
func matchSequence(nodes []Node, in []rune, i int) (int, bool) {
	for _, n := range nodes {
		j, ok := matchNode(n, in, i)
		if !ok {
			return i, false
		}
		i = j
	}
	return i, true
}

func matchNode(n Node, in []rune, i int) (int, bool) {
	switch n := n.(type) {
	case Zero:
		return i, true
	case ZeroOrMany:
		return repeat(n.Inner, in, i), true
	case OneOrMany:
		// at least one repetition
		j, ok := matchNode(n.Inner, in, i)
		if !ok {
			return i, false
		}
		if j == i {
			return j, true
		}
		return repeat(n.Inner, in, j), true
	}

	if i >= len(in) {
		return i, false
	}
	if matchChar(n, in[i]) {
		return i + 1, true
	}
	return i, false
}

// repeat consumes inner as often as it matches (greedy) and returns the end.
// An iteration that consumes nothing ends the loop.
func repeat(inner Node, in []rune, i int) int {
	for {
		j, ok := matchNode(inner, in, i)
		if !ok || j == i {
			return i
		}
		i = j
	}
}

func matchChar(n Node, c rune) bool {
	switch n := n.(type) {
	case CharLiteral:
		return c == n.Char
	case NumLiteral:
		return n.Digit <= 9 && c == '0'+rune(n.Digit)
	case Any:
		return true
	case WhiteSpace:
		return isSpace(c)
	case AnyDigit:
		return isDigit(c)
	case AnyWord:
		return isWord(c)
	default:
		panic("unexpected `Node` type")
	}
}

// removeSubsumed sorts spans and drops every span that lies within the span
// kept before it. Spans that overlap without nesting are all kept.
func removeSubsumed(spans []Span) []Span {
	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b Span) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})

	var kept []Span
	for _, s := range sorted {
		if len(kept) > 0 && kept[len(kept)-1].contains(s) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}
