package boolexpr

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

type Operator int

const (
	LITERAL Operator = iota
	VARIABLE
	NOT
	AND
	OR
	IMPLIES
	EQUIVALENT
	XOR
)

func (o Operator) String() string {
	switch o {
	case LITERAL:
		return "LITERAL"
	case VARIABLE:
		return "VARIABLE"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case IMPLIES:
		return "IMPLIES"
	case EQUIVALENT:
		return "EQUIVALENT"
	case XOR:
		return "XOR"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Arity returns how many operands the operator consumes from the stack.
func (o Operator) Arity() int {
	switch o {
	case NOT:
		return 1
	case AND, OR, IMPLIES, EQUIVALENT, XOR:
		return 2
	}
	return 0
}

// Symbol is a classified input character.
type Symbol struct {
	Operator Operator

	// Value is only meaningful for LITERAL symbols
	Value bool
	// Name is only meaningful for VARIABLE symbols
	Name rune
}

type Node struct {
	Symbol
	Left  *Node
	Right *Node
}

// New creates a new solvable boolean expression from a formula written in
// reverse polish notation.
// Example usage:
//
//	tree, err := boolexpr.New("10|1&")
//	if err != nil {
//		log.Fatalf("failed to create expression tree: %v", err)
//	}
//	fmt.Println(tree.Eval()) // Output: true <nil>
func New(formula string) (*Node, error) {
	symbols, err := Tokenize(formula)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize formula '%s': %w", formula, err)
	}

	root, err := Build(symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to build expression tree for formula '%s': %w", formula, err)
	}
	return root, nil
}

// String renders the tree back into postfix notation. For any formula f that
// New accepts, New(f).String() == f.
func (n *Node) String() string {
	return n.postfix(-1)
}

// postfix writes the tree in postfix notation, stopping once limit bytes are
// written. A negative limit writes everything. The walk keeps its own stack
// so trees of any depth can be printed.
func (n *Node) postfix(limit int) string {
	type frame struct {
		node *Node
		// children already pushed, write the node itself
		done bool
	}

	var sb strings.Builder
	stack := []frame{{node: n}}
	for len(stack) > 0 && (limit < 0 || sb.Len() < limit) {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == nil {
			continue
		}

		if f.done {
			sb.WriteString(f.node.Symbol.String())
			continue
		}
		stack = append(stack, frame{node: f.node, done: true}, frame{node: f.node.Right}, frame{node: f.node.Left})
	}
	return sb.String()
}

// Equal reports whether both trees have the same shape and symbols.
func (n *Node) Equal(other *Node) bool {
	type pair struct {
		a, b *Node
	}

	stack := []pair{{n, other}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == nil || p.b == nil {
			if p.a != p.b {
				return false
			}
			continue
		}
		if p.a.Symbol != p.b.Symbol {
			return false
		}
		stack = append(stack, pair{p.a.Left, p.b.Left}, pair{p.a.Right, p.b.Right})
	}
	return true
}

// Depth returns the nesting depth of the tree, a lone leaf being 1. It walks
// the tree iteratively so it is safe to call on trees that are too deep to
// evaluate.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}

	type frame struct {
		node  *Node
		depth int
	}
	deepest := 0
	stack := []frame{{n, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		deepest = max(deepest, f.depth)
		if f.node.Left != nil {
			stack = append(stack, frame{f.node.Left, f.depth + 1})
		}
		if f.node.Right != nil {
			stack = append(stack, frame{f.node.Right, f.depth + 1})
		}
	}
	return deepest
}

// Variables returns the distinct variables of the tree in ascending order.
func (n *Node) Variables() []rune {
	var names []rune
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		if node.Operator == VARIABLE {
			names = append(names, node.Name)
		}
		stack = append(stack, node.Left, node.Right)
	}
	return sortedUnique(names)
}

// Variables returns the distinct variables used in a raw formula string, in
// ascending order. The formula is not validated.
func Variables(formula string) []rune {
	return sortedUnique(lo.Filter([]rune(formula), func(r rune, _ int) bool {
		return isVariable(r)
	}))
}

func sortedUnique(names []rune) []rune {
	unique := lo.Uniq(names)
	slices.Sort(unique)
	return unique
}

func leaf(symbol Symbol) *Node {
	return &Node{Symbol: symbol}
}

func not(operand *Node) *Node {
	return &Node{Symbol: Symbol{Operator: NOT}, Left: operand}
}

func binary(operator Operator, left, right *Node) *Node {
	return &Node{Symbol: Symbol{Operator: operator}, Left: left, Right: right}
}
