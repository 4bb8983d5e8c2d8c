package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGroupSize is returned when a card group is built with the wrong
// number of cards.
var ErrInvalidGroupSize = errors.New("invalid card group size")

// Required sizes of the two groupings used by the analyzer.
const (
	StartingHandSize = 2
	FlopSize         = 3
)

// CardGroup is an immutable group holding exactly the number of cards it was
// built for. The order of the input cards is preserved.
type CardGroup struct {
	cards []Card
}

// NewCardGroup validates that exactly size cards were given.
func NewCardGroup(size int, cards ...Card) (CardGroup, error) {
	if len(cards) != size {
		return CardGroup{}, fmt.Errorf("%w: expected %d cards, got %d", ErrInvalidGroupSize, size, len(cards))
	}
	return CardGroup{cards: append([]Card(nil), cards...)}, nil
}

// Len returns the number of cards in the group.
func (g CardGroup) Len() int {
	return len(g.cards)
}

// Cards returns a copy of the cards in input order.
func (g CardGroup) Cards() []Card {
	return append([]Card(nil), g.cards...)
}

// Ranks returns the ranks of the cards in input order.
func (g CardGroup) Ranks() []Rank {
	ranks := make([]Rank, len(g.cards))
	for i, c := range g.cards {
		ranks[i] = c.rank
	}
	return ranks
}

// Suits returns the suits of the cards in input order.
func (g CardGroup) Suits() []Suit {
	suits := make([]Suit, len(g.cards))
	for i, c := range g.cards {
		suits[i] = c.suit
	}
	return suits
}

func (g CardGroup) String() string {
	parts := make([]string, len(g.cards))
	for i, c := range g.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Code returns the plain notation of the group, e.g. "As 7h".
func (g CardGroup) Code() string {
	parts := make([]string, len(g.cards))
	for i, c := range g.cards {
		parts[i] = c.Code()
	}
	return strings.Join(parts, " ")
}

// StartingHand is the two cards privately held by the hero.
type StartingHand struct {
	CardGroup
}

// NewStartingHand builds a starting hand, failing with ErrInvalidGroupSize
// unless exactly two cards are given.
func NewStartingHand(cards ...Card) (StartingHand, error) {
	g, err := NewCardGroup(StartingHandSize, cards...)
	if err != nil {
		return StartingHand{}, fmt.Errorf("starting hand: %w", err)
	}
	return StartingHand{CardGroup: g}, nil
}

// ParseStartingHand parses two card strings into a StartingHand.
func ParseStartingHand(ss ...string) (StartingHand, error) {
	cards, err := ParseCards(ss...)
	if err != nil {
		return StartingHand{}, err
	}
	return NewStartingHand(cards...)
}

// IsPocketPair reports whether both cards share the same rank.
func (h StartingHand) IsPocketPair() bool {
	return len(h.cards) == StartingHandSize && h.cards[0].rank == h.cards[1].rank
}

// Flop is the first three community cards.
type Flop struct {
	CardGroup
}

// NewFlop builds a flop, failing with ErrInvalidGroupSize unless exactly
// three cards are given.
func NewFlop(cards ...Card) (Flop, error) {
	g, err := NewCardGroup(FlopSize, cards...)
	if err != nil {
		return Flop{}, fmt.Errorf("flop: %w", err)
	}
	return Flop{CardGroup: g}, nil
}

// ParseFlop parses three card strings into a Flop.
func ParseFlop(ss ...string) (Flop, error) {
	cards, err := ParseCards(ss...)
	if err != nil {
		return Flop{}, err
	}
	return NewFlop(cards...)
}
