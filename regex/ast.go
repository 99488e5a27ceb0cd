package regex

import "strconv"

// Node is one element of a compiled pattern. The set of node types is closed.
type Node interface {
	String() string
	node()
}

// CharLiteral matches exactly Char.
type CharLiteral struct {
	Char rune
}

// NumLiteral matches the digit character with value Digit.
// The parser never produces it, digits in a pattern compile to CharLiteral.
type NumLiteral struct {
	Digit uint8
}

// Any matches any single character.
type Any struct{}

// WhiteSpace matches a single ' ', nothing else.
type WhiteSpace struct{}

// AnyDigit matches a single ASCII digit.
type AnyDigit struct{}

// AnyWord matches a single ASCII letter.
type AnyWord struct{}

// Zero matches without consuming anything.
type Zero struct{}

// ZeroOrMany greedily matches Inner as often as possible, possibly never.
type ZeroOrMany struct {
	Inner Node
}

// OneOrMany greedily matches Inner as often as possible, at least once.
type OneOrMany struct {
	Inner Node
}

func (CharLiteral) node() {}
func (NumLiteral) node()  {}
func (Any) node()         {}
func (WhiteSpace) node()  {}
func (AnyDigit) node()    {}
func (AnyWord) node()     {}
func (Zero) node()        {}
func (ZeroOrMany) node()  {}
func (OneOrMany) node()   {}

func (n CharLiteral) String() string {
	switch n.Char {
	case '\\', '.', '*', '+':
		return `\` + string(n.Char)
	}
	return string(n.Char)
}

func (n NumLiteral) String() string {
	return strconv.Itoa(int(n.Digit))
}

func (Any) String() string        { return "." }
func (WhiteSpace) String() string { return `\s` }
func (AnyDigit) String() string   { return `\d` }
func (AnyWord) String() string    { return `\w` }
func (Zero) String() string       { return "" }

func (n ZeroOrMany) String() string {
	return n.Inner.String() + "*"
}

func (n OneOrMany) String() string {
	return n.Inner.String() + "+"
}

func isQuantifier(n Node) bool {
	switch n.(type) {
	case ZeroOrMany, OneOrMany:
		return true
	}
	return false
}
