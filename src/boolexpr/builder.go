package boolexpr

// Build turns a postfix sequence of symbols into an expression tree.
//
// Leaves are pushed on a stack, operators pop their operands and push the
// resulting node. Binary operators pop the right operand first since it was
// pushed last. Once every symbol is consumed exactly one tree must be left.
func Build(symbols []Symbol) (*Node, error) {
	var stack []*Node

	for pos, symbol := range symbols {
		arity := symbol.Operator.Arity()
		if len(stack) < arity {
			return nil, NewMalformedExpressionError(symbol.Operator, pos, arity, len(stack))
		}

		switch arity {
		case 0:
			stack = append(stack, leaf(symbol))
		case 1:
			operand := stack[len(stack)-1]
			stack[len(stack)-1] = &Node{Symbol: symbol, Left: operand}
		case 2:
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = &Node{Symbol: symbol, Left: left, Right: right}
		}
	}

	if len(stack) != 1 {
		return nil, NewTrailingOperandsError(len(stack))
	}
	return stack[0], nil
}
