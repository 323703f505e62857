package truthtable

import "fmt"

// TooManyVariablesError is returned by Generate when a formula has more
// variables than the generator accepts. The table would hold 2^Variables rows.
type TooManyVariablesError struct {
	Variables int
	Limit     int
}

func NewTooManyVariablesError(variables, limit int) error {
	return &TooManyVariablesError{Variables: variables, Limit: limit}
}

func (e TooManyVariablesError) Error() string {
	return fmt.Sprintf("formula has %d variables, at most %d are allowed (%d rows)", e.Variables, e.Limit, 1<<e.Variables)
}
