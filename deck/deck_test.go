package deck

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullDeckCount = 52

func TestFullDeck(t *testing.T) {
	cards := FullDeck()
	require.Len(t, cards, fullDeckCount)

	t.Run("every rank and suit appears exactly once", func(t *testing.T) {
		seen := map[Card]int{}
		for _, card := range cards {
			seen[card]++
		}
		assert.Len(t, seen, fullDeckCount)

		for _, suit := range Suits() {
			for _, rank := range Ranks() {
				assert.Equal(t, 1, seen[MustCard(rank, suit)], "%s", MustCard(rank, suit))
			}
		}
	})

	t.Run("ordered suit by suit, ace to king", func(t *testing.T) {
		assert.Equal(t, MustCard(Ace, Clubs), cards[0])
		assert.Equal(t, MustCard(King, Clubs), cards[12])
		assert.Equal(t, MustCard(Ace, Diamonds), cards[13])
		assert.Equal(t, MustCard(King, Spades), cards[51])
	})
}

func TestOrdered(t *testing.T) {
	d := Ordered()
	assert.Equal(t, fullDeckCount, d.Len())
	assert.Equal(t, FullDeck(), d.Cards())

	t.Run("Cards is a snapshot", func(t *testing.T) {
		snapshot := d.Cards()
		_, err := d.Pop(1)
		require.NoError(t, err)
		assert.Len(t, snapshot, fullDeckCount)
		assert.Equal(t, fullDeckCount-1, d.Len())
	})
}

func TestShuffle(t *testing.T) {
	t.Run("keeps the same cards", func(t *testing.T) {
		d := Ordered()
		d.Shuffle(NewSource(42))

		assert.Equal(t, fullDeckCount, d.Len())
		assert.ElementsMatch(t, FullDeck(), d.Cards())
	})

	t.Run("same seed gives the same order", func(t *testing.T) {
		d1, d2 := Ordered(), Ordered()
		d1.Shuffle(NewSource(7))
		d2.Shuffle(NewSource(7))
		assert.Equal(t, d1, d2)
	})

	t.Run("nil source uses the default", func(t *testing.T) {
		d := Ordered()
		d.Shuffle(nil)
		assert.ElementsMatch(t, FullDeck(), d.Cards())
	})

	t.Run("empty and single card decks are left alone", func(t *testing.T) {
		empty := Deck{}
		empty.Shuffle(NewSource(1))
		assert.Equal(t, 0, empty.Len())

		one := Deck{MustCard(Ace, Hearts)}
		one.Shuffle(NewSource(1))
		assert.Equal(t, Deck{MustCard(Ace, Hearts)}, one)
	})

	t.Run("reaches every permutation of a small deck", func(t *testing.T) {
		four := []Card{
			MustCard(Ace, Spades),
			MustCard(Two, Spades),
			MustCard(Three, Spades),
			MustCard(Four, Spades),
		}
		src := rand.New(rand.NewSource(2024))
		seen := map[string]int{}

		for i := 0; i < 10000; i++ {
			d := Deck(append([]Card{}, four...))
			d.Shuffle(src)
			require.ElementsMatch(t, four, d.Cards())
			seen[d.String()]++
		}

		assert.Len(t, seen, 24)
	})
}

func TestPop(t *testing.T) {
	t.Run("pops from the top", func(t *testing.T) {
		d := Ordered()
		popped, err := d.Pop(5)
		require.NoError(t, err)

		assert.Len(t, popped, 5)
		assert.Equal(t, 47, d.Len())
		assert.Equal(t, FullDeck()[47:], popped)
		for _, card := range d {
			assert.NotContains(t, popped, card)
		}
	})

	t.Run("popped cards do not alias the deck", func(t *testing.T) {
		d := Ordered()
		popped, err := d.Pop(2)
		require.NoError(t, err)

		d = append(d, MustCard(Ace, Clubs), MustCard(Ace, Clubs))
		assert.Equal(t, FullDeck()[50:], popped)
	})

	t.Run("popping zero is a no-op", func(t *testing.T) {
		d := Ordered()
		popped, err := d.Pop(0)
		require.NoError(t, err)
		assert.Empty(t, popped)
		assert.Equal(t, fullDeckCount, d.Len())
	})

	t.Run("popping everything empties the deck", func(t *testing.T) {
		d := Ordered()
		_, err := d.Pop(fullDeckCount)
		require.NoError(t, err)
		assert.Equal(t, 0, d.Len())
	})

	t.Run("popping more than the deck holds fails", func(t *testing.T) {
		d := Ordered()
		_, err := d.Pop(53)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDeckUnderflow))

		var underflow *UnderflowError
		require.True(t, errors.As(err, &underflow))
		assert.Equal(t, 53, underflow.Requested)
		assert.Equal(t, 52, underflow.Available)

		assert.Equal(t, FullDeck(), d.Cards())
	})

	t.Run("negative counts fail", func(t *testing.T) {
		d := Ordered()
		_, err := d.Pop(-1)
		assert.Equal(t, ErrInvalidCount, err)
		assert.Equal(t, fullDeckCount, d.Len())
	})
}

func TestPopCard(t *testing.T) {
	aceOfSpades := MustCard(Ace, Spades)

	t.Run("removes the card once", func(t *testing.T) {
		d := Ordered()
		card, err := d.PopCard(aceOfSpades)
		require.NoError(t, err)
		assert.Equal(t, aceOfSpades, card)
		assert.Equal(t, 51, d.Len())
		assert.False(t, d.Contains(aceOfSpades))

		_, err = d.PopCard(aceOfSpades)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCardNotFound))

		var notFound *CardNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, aceOfSpades, notFound.Card)
		assert.Equal(t, 51, d.Len())
	})

	t.Run("keeps the order of the other cards", func(t *testing.T) {
		d := Ordered()
		_, err := d.PopCard(MustCard(Two, Clubs))
		require.NoError(t, err)

		want := append(FullDeck()[:1], FullDeck()[2:]...)
		assert.Equal(t, want, d.Cards())
	})

	t.Run("removes the bottom-most duplicate", func(t *testing.T) {
		nine := MustCard(Nine, Hearts)
		d := Deck{nine, MustCard(Two, Clubs), nine}
		_, err := d.PopCard(nine)
		require.NoError(t, err)
		assert.Equal(t, Deck{MustCard(Two, Clubs), nine}, d)
	})

	t.Run("empty deck", func(t *testing.T) {
		d := Deck{}
		_, err := d.PopCard(aceOfSpades)
		assert.True(t, errors.Is(err, ErrCardNotFound))
	})
}
