package boolexpr

import (
	"strings"

	"github.com/samber/lo"
)

// Tree renders the expression as an indented tree, one node per line.
//
//	OR
//	├── A
//	└── NOT
//	    └── B
func (n *Node) Tree() string {
	type frame struct {
		node                *Node
		prefix, childPrefix string
	}

	var sb strings.Builder
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		sb.WriteString(f.prefix)
		sb.WriteString(f.node.label())
		sb.WriteByte('\n')

		// pushed last child first so the first child is written next
		children := lo.Compact([]*Node{f.node.Left, f.node.Right})
		for i := len(children) - 1; i >= 0; i-- {
			if i == len(children)-1 {
				stack = append(stack, frame{children[i], f.childPrefix + "└── ", f.childPrefix + "    "})
			} else {
				stack = append(stack, frame{children[i], f.childPrefix + "├── ", f.childPrefix + "│   "})
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (n *Node) label() string {
	switch n.Operator {
	case LITERAL, VARIABLE:
		return n.Symbol.String()
	}
	return n.Operator.String()
}
