package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/flop-analyzer/domain/deck"
	"github.com/luca-patrignani/flop-analyzer/domain/poker"
)

// pickStartingHand asks for two cards with interactive selects. The second
// select only offers cards still in the deck.
func pickStartingHand() (poker.StartingHand, error) {
	d := deck.NewFullDeck()
	cards := make([]poker.Card, 0, poker.StartingHandSize)
	for i := range poker.StartingHandSize {
		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions(cardOptions(d)).
			WithDefaultText(fmt.Sprintf("Pick card %d of your starting hand", i+1)).
			Show()
		if err != nil {
			return poker.StartingHand{}, err
		}
		c, err := poker.ParseCard(choice)
		if err != nil {
			return poker.StartingHand{}, err
		}
		if d, err = d.Remove(c); err != nil {
			return poker.StartingHand{}, err
		}
		cards = append(cards, c)
	}
	// Print a blank line for better readability
	pterm.Println()
	return poker.NewStartingHand(cards...)
}

// cardOptions lists the cards of d in plain notation, aces first so the
// strongest cards are at the top of the select.
func cardOptions(d deck.Deck) []string {
	cards := d.Cards()
	opts := make([]string, 0, len(cards))
	for i := len(poker.Ranks) - 1; i >= 0; i-- {
		for _, c := range cards {
			if c.Rank() == poker.Ranks[i] {
				opts = append(opts, c.Code())
			}
		}
	}
	return opts
}
