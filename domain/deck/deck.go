package deck

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/flop-analyzer/domain/poker"
)

// FullDeckSize is the number of cards in a standard deck.
const FullDeckSize = 52

// ErrCardNotInDeck is returned when removing a card the deck does not hold.
var ErrCardNotInDeck = errors.New("card not in deck")

// Deck is an ordered set of unique cards. A Deck is never mutated in place:
// Remove returns a new Deck.
type Deck struct {
	cards []poker.Card
}

// NewFullDeck returns the 52 canonical cards, ordered by suit (clubs,
// diamonds, hearts, spades) and then by rank from Two to Ace.
func NewFullDeck() Deck {
	cards := make([]poker.Card, 0, FullDeckSize)
	for _, s := range poker.Suits {
		for _, r := range poker.Ranks {
			cards = append(cards, poker.MustCard(r, s))
		}
	}
	return Deck{cards: cards}
}

// Len returns the number of cards in the deck.
func (d Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the cards in deck order.
func (d Deck) Cards() []poker.Card {
	return append([]poker.Card(nil), d.cards...)
}

// Contains reports whether c is in the deck.
func (d Deck) Contains(c poker.Card) bool {
	for _, dc := range d.cards {
		if dc == c {
			return true
		}
	}
	return false
}

// Remove returns a new deck without the given cards. It fails with
// ErrCardNotInDeck if any card is missing, which includes a card listed twice.
func (d Deck) Remove(cards ...poker.Card) (Deck, error) {
	removed := make(map[poker.Card]bool, len(cards))
	for _, c := range cards {
		if removed[c] || !d.Contains(c) {
			return Deck{}, fmt.Errorf("%w: %s", ErrCardNotInDeck, c.Code())
		}
		removed[c] = true
	}

	rest := make([]poker.Card, 0, len(d.cards)-len(cards))
	for _, c := range d.cards {
		if !removed[c] {
			rest = append(rest, c)
		}
	}
	return Deck{cards: rest}, nil
}

// FlopCount returns the number of distinct 3-card flops the deck can deal,
// C(n, 3).
func (d Deck) FlopCount() int {
	n := len(d.cards)
	if n < poker.FlopSize {
		return 0
	}
	return n * (n - 1) * (n - 2) / 6
}

// ForEachFlop calls fn for every 3-card combination of the deck in
// lexicographic index order. ordinal counts the combinations from zero.
// Iteration stops at the first error returned by fn.
func (d Deck) ForEachFlop(fn func(ordinal int, flop poker.Flop) error) error {
	ordinal := 0
	for first := 0; first < len(d.cards); first++ {
		next, err := d.forEachFlopFrom(first, ordinal, fn)
		if err != nil {
			return err
		}
		ordinal = next
	}
	return nil
}

// ForEachFlopFrom visits only the flops whose lowest card index is first, in
// the same order and with the same ordinals as ForEachFlop. Splitting the work
// by first index lets callers enumerate in parallel.
func (d Deck) ForEachFlopFrom(first int, fn func(ordinal int, flop poker.Flop) error) error {
	if first < 0 || first >= len(d.cards) {
		return nil
	}
	_, err := d.forEachFlopFrom(first, d.ordinalOf(first), fn)
	return err
}

func (d Deck) forEachFlopFrom(first, ordinal int, fn func(int, poker.Flop) error) (int, error) {
	n := len(d.cards)
	for j := first + 1; j < n; j++ {
		for k := j + 1; k < n; k++ {
			flop, err := poker.NewFlop(d.cards[first], d.cards[j], d.cards[k])
			if err != nil {
				return ordinal, err
			}
			if err := fn(ordinal, flop); err != nil {
				return ordinal, err
			}
			ordinal++
		}
	}
	return ordinal, nil
}

// ordinalOf returns how many flops precede those starting at index first.
func (d Deck) ordinalOf(first int) int {
	n := len(d.cards)
	ordinal := 0
	for i := 0; i < first; i++ {
		rest := n - i - 1
		ordinal += rest * (rest - 1) / 2
	}
	return ordinal
}
