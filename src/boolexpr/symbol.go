package boolexpr

var operators = map[rune]Operator{
	'!': NOT,
	'&': AND,
	'|': OR,
	'>': IMPLIES,
	'=': EQUIVALENT,
	'^': XOR,
}

// Classify maps a single input character to its symbol.
func Classify(c rune) (Symbol, error) {
	switch {
	case c == '1':
		return Symbol{Operator: LITERAL, Value: true}, nil
	case c == '0':
		return Symbol{Operator: LITERAL, Value: false}, nil
	case isVariable(c):
		return Symbol{Operator: VARIABLE, Name: c}, nil
	}

	if operator, ok := operators[c]; ok {
		return Symbol{Operator: operator}, nil
	}
	return Symbol{}, NewInvalidSymbolError(c, -1)
}

// Tokenize classifies every character of the formula, in order.
func Tokenize(formula string) ([]Symbol, error) {
	symbols := make([]Symbol, 0, len(formula))
	for pos, c := range formula {
		symbol, err := Classify(c)
		if err != nil {
			return nil, NewInvalidSymbolError(c, pos)
		}
		symbols = append(symbols, symbol)
	}
	return symbols, nil
}

func isVariable(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

// String returns the character the symbol was classified from.
func (s Symbol) String() string {
	switch s.Operator {
	case LITERAL:
		if s.Value {
			return "1"
		}
		return "0"
	case VARIABLE:
		return string(s.Name)
	}

	for c, operator := range operators {
		if operator == s.Operator {
			return string(c)
		}
	}
	return "?"
}
