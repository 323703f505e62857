package truthtable

import (
	"fmt"
	"iter"
	"strings"
)

// MaxVariables is the number of distinct variables a formula can have, one
// per uppercase letter.
const MaxVariables = 26

// Assignment gives every variable of a formula a value. Variables are in
// ascending order and Values[i] belongs to Variables[i].
type Assignment struct {
	Variables []rune
	Values    []bool
}

// Value returns the value assigned to name, and whether name is assigned at
// all.
func (a Assignment) Value(name rune) (bool, bool) {
	for i, v := range a.Variables {
		if v == name {
			return a.Values[i], true
		}
	}
	return false, false
}

func (a Assignment) Map() map[rune]bool {
	m := make(map[rune]bool, len(a.Variables))
	for i, v := range a.Variables {
		m[v] = a.Values[i]
	}
	return m
}

// Substitute replaces every assigned variable in the formula with 1 or 0.
// Every other character is kept as is.
func (a Assignment) Substitute(formula string) string {
	return strings.Map(func(r rune) rune {
		value, ok := a.Value(r)
		if !ok {
			return r
		}
		if value {
			return '1'
		}
		return '0'
	}, formula)
}

func (a Assignment) String() string {
	parts := make([]string, len(a.Variables))
	for i, v := range a.Variables {
		parts[i] = fmt.Sprintf("%c=%d", v, bit(a.Values[i]))
	}
	return strings.Join(parts, " ")
}

// Count returns the number of assignments of the given variables.
func Count(variables []rune) (int, error) {
	if len(variables) > MaxVariables {
		return 0, fmt.Errorf("too many variables: %d, at most %d are supported", len(variables), MaxVariables)
	}
	return 1 << len(variables), nil
}

// AssignmentAt returns the i:th assignment. The first variable takes the most
// significant bit of i, so it changes slowest from one row to the next.
func AssignmentAt(variables []rune, i int) Assignment {
	n := len(variables)
	values := make([]bool, n)
	for k := range variables {
		values[k] = i&(1<<(n-1-k)) != 0
	}
	return Assignment{Variables: variables, Values: values}
}

// Assignments lazily yields every assignment of the variables, keyed by its
// row counter. Each range over it starts again from row 0. No variables
// yields the single empty assignment.
func Assignments(variables []rune) iter.Seq2[int, Assignment] {
	return func(yield func(int, Assignment) bool) {
		count, err := Count(variables)
		if err != nil {
			return
		}

		for i := 0; i < count; i++ {
			if !yield(i, AssignmentAt(variables, i)) {
				return
			}
		}
	}
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
