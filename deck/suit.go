package deck

// Suit represents a suit in a deck of cards.
// Only the two low bits are meaningful; use NewSuit to build one from an int.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NewSuit constructs a suit from its ordinal
func NewSuit(ordinal int) (Suit, error) {
	if ordinal < int(Clubs) || ordinal > int(Spades) {
		return 0, &InvalidSuitError{Value: ordinal}
	}
	return Suit(ordinal), nil
}

// Suits returns the four suits in ordinal order
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Ordinal returns the suit's underlying 0-3 value
func (s Suit) Ordinal() int {
	return int(s)
}

func (s Suit) valid() bool {
	return s <= Spades
}

// Color represents the colour of a suit
type Color uint8

const (
	Black Color = iota
	Red
)

// Color returns the suit's colour.
// A suit converted directly from an out-of-range integer has no colour.
func (s Suit) Color() (Color, error) {
	switch s {
	case Clubs, Spades:
		return Black, nil
	case Diamonds, Hearts:
		return Red, nil
	}
	return 0, ErrUnknownColor
}
