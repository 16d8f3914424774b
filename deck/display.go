package deck

import (
	"fmt"
	"strings"
)

var rankNames = []string{
	"Low Joker", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King", "High Ace", "High Joker",
}

// short codes, indexed by rank. Jokers have none.
var rankCodes = []string{"?", "A", "2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A", "?"}

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

var suitCodes = []string{"C", "D", "H", "S"}

var suitSymbols = []string{"♣", "♦", "♥", "♠"}

func (r Rank) String() string {
	if r < LowJoker || r > HighJoker {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

func (s Suit) String() string {
	if !s.valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Symbol returns the suit's glyph
func (s Suit) Symbol() string {
	if !s.valid() {
		return "?"
	}
	return suitSymbols[s]
}

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank(), c.Suit())
}

// Short returns the two-character form of the card, e.g. "QH" or "TS"
func (c Card) Short() string {
	return rankCodes[c.Rank()] + suitCodes[c.Suit()]
}

func (d Deck) String() string {
	codes := make([]string, 0, len(d))
	for _, card := range d {
		codes = append(codes, card.Short())
	}
	return strings.Join(codes, " ")
}
