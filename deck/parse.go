package deck

import (
	"fmt"
	"strings"
)

// ParseCard parses the short form of a card, such as "AS", "10h" or "td"
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w %q", ErrInvalidCard, s)
	}

	rankCode, suitCode := s[:len(s)-1], s[len(s)-1:]

	var rank Rank
	switch rankCode {
	case "A":
		rank = Ace
	case "T", "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		if len(rankCode) != 1 || rankCode[0] < '2' || rankCode[0] > '9' {
			return Card{}, fmt.Errorf("%w %q: unknown rank %q", ErrInvalidCard, s, rankCode)
		}
		rank = Rank(rankCode[0] - '0')
	}

	ordinal := strings.Index("CDHS", suitCode)
	if ordinal < 0 {
		return Card{}, fmt.Errorf("%w %q: unknown suit %q", ErrInvalidCard, s, suitCode)
	}

	return NewCard(rank, Suit(ordinal))
}

// ParseCards parses a comma-separated list of short forms, ignoring empty entries
func ParseCards(list string) ([]Card, error) {
	cards := []Card{}
	for _, field := range strings.Split(list, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		c, err := ParseCard(field)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
