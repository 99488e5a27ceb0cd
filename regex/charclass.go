package regex

import "sync"

type charRange struct {
	from rune
	to   rune
}

func (r charRange) inRange(c rune) bool {
	return c >= r.from && c <= r.to
}

// ASCII letters only, \w deliberately excludes digits and '_'
var wordRanges = []charRange{
	{from: 'A', to: 'Z'},
	{from: 'a', to: 'z'},
}

// built on first use, read-only afterwards
var wordChars = sync.OnceValue(func() map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range wordRanges {
		for c := r.from; c <= r.to; c++ {
			set[c] = struct{}{}
		}
	}
	return set
})

func isWord(c rune) bool {
	_, ok := wordChars()[c]
	return ok
}

func isDigit(c rune) bool {
	return charRange{from: '0', to: '9'}.inRange(c)
}

func isSpace(c rune) bool {
	return c == ' '
}
