package boolexpr

import (
	"fmt"
)

const DefaultMaxDepth = 10000

// MaxDepth bounds the recursion of Solve and NNF. Set it before evaluating
// anything; it is not synchronised.
var MaxDepth = DefaultMaxDepth

// Eval evaluates a tree whose leaves are all constants.
func (n *Node) Eval() (bool, error) {
	return n.Solve(nil)
}

// Solve evaluates the tree, looking up variables in context.
func (n *Node) Solve(context map[rune]bool) (bool, error) {
	result, err := n.solve(context, 1)
	if err != nil {
		return false, fmt.Errorf("failed solving '%s': %w", truncate(n, 64), err)
	}
	return result, nil
}

// truncate returns the postfix form of n cut off after maxLength bytes. Only
// the part that is kept gets rendered.
func truncate(n *Node, maxLength int) string {
	s := n.postfix(maxLength + 1)
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + "..."
}

func (n *Node) solve(context map[rune]bool, depth int) (bool, error) {
	if depth > MaxDepth {
		return false, NewRecursionLimitError(MaxDepth)
	}

	switch n.Operator {
	case LITERAL:
		return n.Value, nil

	case VARIABLE:
		v, ok := context[n.Name]
		if !ok {
			return false, NewUnboundVariableError(n.Name)
		}
		return v, nil

	case NOT:
		result, err := n.Left.solve(context, depth+1)
		if err != nil {
			return false, err
		}
		return !result, nil
	}

	// sub-expression errors are not wrapped per level, the chain would grow
	// with the depth of the tree
	leftResult, err := n.Left.solve(context, depth+1)
	if err != nil {
		return false, err
	}
	rightResult, err := n.Right.solve(context, depth+1)
	if err != nil {
		return false, err
	}

	switch n.Operator {
	case AND:
		return leftResult && rightResult, nil
	case OR:
		return leftResult || rightResult, nil
	case IMPLIES:
		return !leftResult || rightResult, nil
	case EQUIVALENT:
		return leftResult == rightResult, nil
	case XOR:
		return leftResult != rightResult, nil
	}

	return false, fmt.Errorf("unknown operator: %v", n.Operator)
}
