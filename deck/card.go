package deck

// Rank represents a rank in a deck of cards.
// The full domain is 0-15 but standard cards only use Ace to King.
type Rank int

const (
	LowJoker Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	HighAce
	HighJoker
)

// Ranks returns the thirteen standard ranks, Ace to King
func Ranks() []Rank {
	ranks := make([]Rank, 0, King)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

const (
	rankBits = 4
	rankMask = 1<<rankBits - 1
	suitMask = 0x3
)

// Card is a playing card packed into a single byte:
// bits 4-5 hold the suit and bits 0-3 the rank.
//
// Card deliberately has no ordering. Ace plays low or high depending on the game,
// so callers compare LowValue or HighValue themselves.
type Card struct {
	v uint8
}

// NewCard constructs a standard card
func NewCard(rank Rank, suit Suit) (Card, error) {
	if rank < Ace || rank > King {
		return Card{}, &InvalidRankError{Value: int(rank)}
	}
	if !suit.valid() {
		return Card{}, &InvalidSuitError{Value: int(suit)}
	}
	return Card{v: uint8(suit)<<rankBits | uint8(rank)}, nil
}

// MustCard is like NewCard but panics if the rank or suit is out of range
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the stored rank
func (c Card) Rank() Rank {
	return Rank(c.v & rankMask)
}

// Suit returns the card's suit
func (c Card) Suit() Suit {
	return Suit(c.v >> rankBits & suitMask)
}

// LowValue is the card's value with ace low (1)
func (c Card) LowValue() int {
	return int(c.Rank())
}

// HighValue is the card's value with ace high (14)
func (c Card) HighValue() int {
	if c.Rank() == Ace {
		return int(HighAce)
	}
	return int(c.Rank())
}

// Color returns the colour of the card's suit
func (c Card) Color() Color {
	// the packed suit is two bits wide, so it always has a colour
	color, _ := c.Suit().Color()
	return color
}

// Packed returns the 6-bit encoded value
func (c Card) Packed() uint8 {
	return c.v
}
