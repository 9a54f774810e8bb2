package fuzzy

import (
	"errors"
	"fmt"
)

// ErrNoTerms is returned when a variable is declared without terms.
var ErrNoTerms = errors.New("fuzzy: variable has no terms")

// ErrNilVariable is returned when an engine is configured without one of
// its three variables.
var ErrNilVariable = errors.New("fuzzy: nil variable")

// ErrUnknownTerm indicates a term name outside a variable's vocabulary.
type ErrUnknownTerm struct {
	Variable string
	Term     string
}

func (e *ErrUnknownTerm) Error() string {
	return fmt.Sprintf("fuzzy: variable %q has no term %q", e.Variable, e.Term)
}

// ErrDuplicateTerm indicates a term name declared twice on one variable.
type ErrDuplicateTerm struct {
	Variable string
	Term     string
}

func (e *ErrDuplicateTerm) Error() string {
	return fmt.Sprintf("fuzzy: variable %q declares term %q more than once", e.Variable, e.Term)
}

// ErrInvalidMembership indicates membership parameters that do not
// describe a well-formed shape.
type ErrInvalidMembership struct {
	Term       string
	Membership Membership
	Reason     string
}

func (e *ErrInvalidMembership) Error() string {
	if e.Term != "" {
		return fmt.Sprintf("fuzzy: term %q: invalid membership %s: %s", e.Term, e.Membership, e.Reason)
	}
	return fmt.Sprintf("fuzzy: invalid membership %s: %s", e.Membership, e.Reason)
}

// ErrRule wraps a rule that failed validation against the engine's
// vocabularies.
type ErrRule struct {
	Index int
	Rule  Rule
	Err   error
}

func (e *ErrRule) Error() string {
	return fmt.Sprintf("fuzzy: rule %d (%s): %v", e.Index, e.Rule, e.Err)
}

func (e *ErrRule) Unwrap() error { return e.Err }
