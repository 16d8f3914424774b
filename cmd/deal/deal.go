package main

import (
	"fmt"
	"io"

	"github.com/minaorangina/cards/deck"
)

// Deal is the outcome of one run: what was removed, the hands, and what's left
type Deal struct {
	ID      string
	Removed []deck.Card
	Hands   [][]deck.Card
	Rest    deck.Deck
}

func deal(id string, cfg Config, src deck.Source) (Deal, error) {
	toRemove, err := deck.ParseCards(cfg.Remove)
	if err != nil {
		return Deal{}, err
	}

	d := deck.Ordered()
	removed := []deck.Card{}
	for _, c := range toRemove {
		card, err := d.PopCard(c)
		if err != nil {
			return Deal{}, err
		}
		removed = append(removed, card)
	}

	d.Shuffle(src)

	hands := make([][]deck.Card, 0, cfg.Hands)
	for i := 0; i < cfg.Hands; i++ {
		hand, err := d.Pop(cfg.HandSize)
		if err != nil {
			return Deal{}, fmt.Errorf("dealing hand %d: %w", i+1, err)
		}
		hands = append(hands, hand)
	}

	return Deal{ID: id, Removed: removed, Hands: hands, Rest: d}, nil
}

func (d Deal) render(w io.Writer) {
	fmt.Fprintf(w, "Deal %s\n", d.ID)
	if len(d.Removed) > 0 {
		fmt.Fprintf(w, "Removed: %s\n", deck.Deck(d.Removed))
	}
	for i, hand := range d.Hands {
		fmt.Fprintf(w, "Hand %d: %s\n", i+1, deck.Deck(hand))
	}
	fmt.Fprintf(w, "%d cards left\n", d.Rest.Len())
}
