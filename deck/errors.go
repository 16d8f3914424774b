package deck

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSuit   = errors.New("invalid suit")
	ErrInvalidRank   = errors.New("invalid rank")
	ErrUnknownColor  = errors.New("unknown color")
	ErrDeckUnderflow = errors.New("not enough cards in deck")
	ErrCardNotFound  = errors.New("card not found in deck")
	ErrInvalidCount  = errors.New("card count must not be negative")
	ErrInvalidCard   = errors.New("invalid card")
)

// InvalidSuitError reports a suit ordinal outside [0,3]
type InvalidSuitError struct {
	Value int
}

func (e *InvalidSuitError) Error() string {
	return fmt.Sprintf("invalid suit %d: must be between 0 and 3", e.Value)
}

func (e *InvalidSuitError) Is(target error) bool {
	return target == ErrInvalidSuit
}

// InvalidRankError reports a rank outside the standard range [1,13]
type InvalidRankError struct {
	Value int
}

func (e *InvalidRankError) Error() string {
	return fmt.Sprintf("invalid rank %d: must be between 1 and 13", e.Value)
}

func (e *InvalidRankError) Is(target error) bool {
	return target == ErrInvalidRank
}

// UnderflowError reports a pop of more cards than the deck holds
type UnderflowError struct {
	Requested int
	Available int
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("cannot pop %d cards, deck has %d", e.Requested, e.Available)
}

func (e *UnderflowError) Is(target error) bool {
	return target == ErrDeckUnderflow
}

// CardNotFoundError reports an identity pop of a card the deck doesn't hold
type CardNotFoundError struct {
	Card Card
}

func (e *CardNotFoundError) Error() string {
	return fmt.Sprintf("%s not found in deck", e.Card)
}

func (e *CardNotFoundError) Is(target error) bool {
	return target == ErrCardNotFound
}
