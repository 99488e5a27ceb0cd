package regex

import (
	"errors"
	"fmt"
)

var (
	ErrDanglingQuantifier = errors.New("quantifier without preceding element")
	ErrNoMatch            = errors.New("no match found")
)

// ParseError reports a '*' or '+' that has nothing to repeat.
type ParseError struct {
	Operator rune
	// Position is the index of Operator in the pattern, counted in characters.
	Position int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser error at %d: '%c' found without preceding element", e.Position, e.Operator)
}

func (e *ParseError) Unwrap() error {
	return ErrDanglingQuantifier
}
