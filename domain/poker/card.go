package poker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// ErrInvalidCard is returned when a rank, suit or card string is out of range.
var ErrInvalidCard = errors.New("invalid card")

// Suit of a card. Suits carry no ordering beyond equality.
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Suits lists the four suits in canonical order.
var Suits = [4]Suit{Club, Diamond, Heart, Spade}

// Rank is the face value of a card. The numeric value is used for
// arithmetic comparisons: Two is 2 and Ace is 14.
type Rank int

// Card rank constants
const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Ranks lists the thirteen ranks from Two to Ace.
var Ranks = [13]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

const rankChars = "23456789TJQKA"

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the single character abbreviation of the rank (2-9, T, J, Q, K, A).
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spade
}

// String returns the suit symbol (♣, ♦, ♥, ♠).
func (s Suit) String() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// Card represents a playing card with rank and suit. Cards are comparable
// values: two cards are equal iff rank and suit are equal.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: 2-14 (Two through Ace)
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//
// Returns the Card or an error if rank or suit is invalid.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is like NewCard but panics on invalid input. Meant for literals.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCard parses a card written as rank followed by suit, e.g. "As", "Td",
// "10h" or "7♣". Case is ignored.
func ParseCard(s string) (Card, error) {
	in := strings.ToUpper(strings.TrimSpace(s))
	if strings.HasPrefix(in, "10") {
		in = "T" + in[2:]
	}
	runes := []rune(in)
	if len(runes) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	idx := strings.IndexRune(rankChars, runes[0])
	if idx < 0 {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}

	var suit Suit
	switch runes[1] {
	case 'C', '♣':
		suit = Club
	case 'D', '♦':
		suit = Diamond
	case 'H', '♥':
		suit = Heart
	case 'S', '♠':
		suit = Spade
	default:
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}
	return NewCard(Two+Rank(idx), suit)
}

// ParseCards parses every string with ParseCard.
func ParseCards(ss ...string) ([]Card, error) {
	cards := make([]Card, len(ss))
	for i, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		cards[i] = c
	}
	return cards, nil
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Code returns the plain two character notation of the card ("As", "Td").
func (c Card) Code() string {
	return c.rank.String() + string("cdhs"[c.suit%4])
}

// String returns a human-readable representation of the Card using suit symbols,
// red suits coloured for terminals.
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Diamond, Heart:
		suit = pterm.LightRed(c.suit.String())
	default:
		suit = c.suit.String()
	}
	return c.rank.String() + suit
}
