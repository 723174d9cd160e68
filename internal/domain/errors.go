package domain

import "errors"

var (
	// ErrInvalidInput reports letters outside a-z where a word or scramble was expected.
	ErrInvalidInput = errors.New("invalid input: only letters a-z are allowed")
	// ErrInsufficientLetters reports a multiset subtraction whose subtrahend is not contained.
	ErrInsufficientLetters = errors.New("insufficient letters")
	// ErrGenerationExhausted marks a puzzle that could not be built within its attempt budget.
	// The task generator skips such puzzles instead of returning this error.
	ErrGenerationExhausted = errors.New("generation attempts exhausted")
	// ErrDictionaryTooLarge is returned when a dictionary exceeds the decomposition bound.
	ErrDictionaryTooLarge = errors.New("dictionary too large for decomposition")
	// ErrNotConfigured is returned by the service when a dependency is missing.
	ErrNotConfigured = errors.New("usecase dependency not configured")
)
