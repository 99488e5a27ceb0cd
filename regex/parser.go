package regex

// Parse compiles pattern into a sequence of nodes.
//
// Supported syntax: literal characters, '.', the escapes \w \s \d, any other
// escaped character as a literal, and the postfix quantifiers '*' and '+'
// applying to the single element before them.
func Parse(pattern string) ([]Node, error) {
	re := []rune(pattern)

	var nodes []Node
	for i := 0; i < len(re); i++ {
		switch re[i] {
		case '\\':
			// a lone '\' at the end stands for itself
			if i+1 >= len(re) {
				nodes = append(nodes, CharLiteral{Char: '\\'})
				continue
			}
			i++
			nodes = append(nodes, parseEscape(re[i]))
		case '.':
			nodes = append(nodes, Any{})
		case '*', '+':
			q, err := parseQuantifier(nodes, re[i], i)
			if err != nil {
				return nil, err
			}
			nodes[len(nodes)-1] = q
		default:
			nodes = append(nodes, CharLiteral{Char: re[i]})
		}
	}
	return nodes, nil
}

// \w, \s and \d are character classes, everything else is taken literally
func parseEscape(c rune) Node {
	switch c {
	case 'w':
		return AnyWord{}
	case 's':
		return WhiteSpace{}
	case 'd':
		return AnyDigit{}
	}
	return CharLiteral{Char: c}
}

// wraps the last parsed node, the caller replaces it with the result
func parseQuantifier(nodes []Node, op rune, i int) (Node, error) {
	if len(nodes) == 0 || isQuantifier(nodes[len(nodes)-1]) {
		return nil, &ParseError{Operator: op, Position: i}
	}

	prev := nodes[len(nodes)-1]
	if op == '*' {
		return ZeroOrMany{Inner: prev}, nil
	}
	return OneOrMany{Inner: prev}, nil
}
