package boolexpr

import (
	"fmt"
)

// NNF returns a new tree, equivalent to n, in negation normal form: it only
// holds AND, OR, leaves and NOT applied directly to a leaf. n is not modified
// and the result shares no nodes with it.
func (n *Node) NNF() (*Node, error) {
	return n.nnf(false, 1)
}

// NegationNormalForm takes a postfix formula and returns its negation normal
// form, also in postfix.
func NegationNormalForm(formula string) (string, error) {
	tree, err := New(formula)
	if err != nil {
		return "", err
	}

	nnf, err := tree.NNF()
	if err != nil {
		return "", fmt.Errorf("failed to convert '%s' to negation normal form: %w", formula, err)
	}
	return nnf.String(), nil
}

// IsNNF reports whether the tree only holds AND, OR, leaves and negated
// leaves.
func IsNNF(n *Node) bool {
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch node.Operator {
		case LITERAL, VARIABLE:
		case NOT:
			if op := node.Left.Operator; op != LITERAL && op != VARIABLE {
				return false
			}
		case AND, OR:
			stack = append(stack, node.Left, node.Right)
		default:
			return false
		}
	}
	return true
}

// nnf rewrites n, or NOT n when negated is set, pushing the negation down to
// the leaves on the way.
func (n *Node) nnf(negated bool, depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, NewRecursionLimitError(MaxDepth)
	}

	switch n.Operator {
	case LITERAL, VARIABLE:
		if negated {
			return not(leaf(n.Symbol)), nil
		}
		return leaf(n.Symbol), nil

	case NOT:
		return n.Left.nnf(!negated, depth+1)

	case AND, OR:
		operator := n.Operator
		if negated {
			// De Morgan
			operator = dual(operator)
		}
		return n.rewrite(depth, operator, operand{n.Left, negated}, operand{n.Right, negated})

	case IMPLIES:
		if negated {
			// !(A > B) == A & !B
			return n.rewrite(depth, AND, operand{n.Left, false}, operand{n.Right, true})
		}
		// A > B == !A | B
		return n.rewrite(depth, OR, operand{n.Left, true}, operand{n.Right, false})

	case EQUIVALENT:
		if negated {
			// !((A & B) | (!A & !B)) == (!A | !B) & (A | B)
			return n.expand(depth, AND, OR, [2]bool{true, true}, [2]bool{false, false})
		}
		// (A & B) | (!A & !B)
		return n.expand(depth, OR, AND, [2]bool{false, false}, [2]bool{true, true})

	case XOR:
		if negated {
			// !((A & !B) | (!A & B)) == (!A | B) & (A | !B)
			return n.expand(depth, AND, OR, [2]bool{true, false}, [2]bool{false, true})
		}
		// (A & !B) | (!A & B)
		return n.expand(depth, OR, AND, [2]bool{false, true}, [2]bool{true, false})
	}

	return nil, fmt.Errorf("unknown operator: %v", n.Operator)
}

type operand struct {
	node    *Node
	negated bool
}

// rewrite builds operator(left, right) from the normal forms of both
// operands.
func (n *Node) rewrite(depth int, operator Operator, left, right operand) (*Node, error) {
	l, err := left.node.nnf(left.negated, depth+1)
	if err != nil {
		return nil, err
	}
	r, err := right.node.nnf(right.negated, depth+1)
	if err != nil {
		return nil, err
	}
	return binary(operator, l, r), nil
}

// expand builds outer(inner(A', B'), inner(A'', B'')) where the polarity of
// each copy of the operands is given by first and second. A and B are
// normalised once per copy so the two halves never share nodes.
func (n *Node) expand(depth int, outer, inner Operator, first, second [2]bool) (*Node, error) {
	l, err := n.rewrite(depth, inner, operand{n.Left, first[0]}, operand{n.Right, first[1]})
	if err != nil {
		return nil, err
	}
	r, err := n.rewrite(depth, inner, operand{n.Left, second[0]}, operand{n.Right, second[1]})
	if err != nil {
		return nil, err
	}
	return binary(outer, l, r), nil
}

func dual(operator Operator) Operator {
	if operator == AND {
		return OR
	}
	return AND
}
