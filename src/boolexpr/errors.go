package boolexpr

import (
	"fmt"
)

// InvalidSymbolError is returned when a character is not part of the formula
// alphabet.
type InvalidSymbolError struct {
	Char rune
	// Position is the byte offset of Char in the formula, or -1 when the
	// character was classified on its own.
	Position int
}

func NewInvalidSymbolError(char rune, position int) error {
	return &InvalidSymbolError{Char: char, Position: position}
}

func (e InvalidSymbolError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid symbol %q", e.Char)
	}
	return fmt.Sprintf("invalid symbol %q at position %d", e.Char, e.Position)
}

// MalformedExpressionError is returned when an operator is reached while the
// stack holds fewer operands than it needs.
type MalformedExpressionError struct {
	Operator  Operator
	Position  int
	Needed    int
	Available int
}

func NewMalformedExpressionError(operator Operator, position, needed, available int) error {
	return &MalformedExpressionError{
		Operator:  operator,
		Position:  position,
		Needed:    needed,
		Available: available,
	}
}

func (e MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed expression: %s at position %d needs %d operand(s), found %d",
		e.Operator, e.Position, e.Needed, e.Available)
}

// TrailingOperandsError is returned when the whole formula was consumed but
// the stack does not hold exactly one tree.
type TrailingOperandsError struct {
	Remaining int
}

func NewTrailingOperandsError(remaining int) error {
	return &TrailingOperandsError{Remaining: remaining}
}

func (e TrailingOperandsError) Error() string {
	if e.Remaining == 0 {
		return "empty expression"
	}
	return fmt.Sprintf("expected a single expression, %d remain", e.Remaining)
}

// UnboundVariableError is returned when a variable without a value is
// evaluated.
type UnboundVariableError struct {
	Name rune
}

func NewUnboundVariableError(name rune) error {
	return &UnboundVariableError{Name: name}
}

func (e UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %c", e.Name)
}

// RecursionLimitError is returned when a tree is nested deeper than MaxDepth.
type RecursionLimitError struct {
	Limit int
}

func NewRecursionLimitError(limit int) error {
	return &RecursionLimitError{Limit: limit}
}

func (e RecursionLimitError) Error() string {
	return fmt.Sprintf("expression is nested deeper than %d levels", e.Limit)
}
