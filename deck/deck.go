package deck

import (
	"math/rand"
	"sync"
	"time"
)

const fullDeckSize = 52

// Deck represents a deck of cards.
// The top of the deck is the end of the slice.
//
// A Deck is not safe for concurrent use. Ranging over it directly sees the
// cards as they were when the loop started; use Cards for an explicit snapshot.
type Deck []Card

// FullDeck returns all 52 standard cards,
// suit by suit (clubs, diamonds, hearts, spades) and Ace to King within each suit
func FullDeck() []Card {
	cards := make([]Card, 0, fullDeckSize)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, MustCard(rank, suit))
		}
	}
	return cards
}

// Ordered creates an unshuffled deck in FullDeck order
func Ordered() Deck {
	return Deck(FullDeck())
}

// Len returns the number of cards left in the deck
func (d Deck) Len() int {
	return len(d)
}

// Cards returns a copy of the deck's cards in their current order
func (d Deck) Cards() []Card {
	cards := make([]Card, len(d))
	copy(cards, d)
	return cards
}

// Contains reports whether the deck holds the card
func (d Deck) Contains(c Card) bool {
	return d.index(c) >= 0
}

func (d Deck) index(c Card) int {
	for i, card := range d {
		if card == c {
			return i
		}
	}
	return -1
}

// Source supplies the randomness for Shuffle. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic Source for the given seed
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// lockedSource guards the fallback generator, which is shared by every deck
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

var defaultSource = &lockedSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}

// Shuffle shuffles the deck in place.
// If src is nil, a process-wide clock-seeded source is used.
func (d Deck) Shuffle(src Source) {
	if src == nil {
		src = defaultSource
	}
	for i := len(d) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Pop removes n cards from the top of the deck and returns them in deck order
func (d *Deck) Pop(n int) ([]Card, error) {
	numCardsInDeck := len(*d)
	if n < 0 {
		return nil, ErrInvalidCount
	}
	if n > numCardsInDeck {
		return nil, &UnderflowError{Requested: n, Available: numCardsInDeck}
	}

	startingIndex := numCardsInDeck - n
	popped := make([]Card, n)
	copy(popped, (*d)[startingIndex:])
	*d = (*d)[:startingIndex]
	return popped, nil
}

// PopCard removes one card equal to c from the deck and returns it.
// If the deck holds duplicates, the one nearest the bottom is removed.
func (d *Deck) PopCard(c Card) (Card, error) {
	i := d.index(c)
	if i < 0 {
		return Card{}, &CardNotFoundError{Card: c}
	}
	*d = append((*d)[:i], (*d)[i+1:]...)
	return c, nil
}
