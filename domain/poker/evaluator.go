package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Describe returns a textual description of the best 5-card hand made by the
// starting hand and the flop, e.g. "pair of aces". It is meant for display
// only; flop outcomes are decided by the outcome classifier.
func Describe(hand StartingHand, flop Flop) (string, error) {
	c, err := makeFinalHand(hand, flop)
	if err != nil {
		return "", err
	}
	return poker.Describe(c[:])
}

func makeFinalHand(hand StartingHand, flop Flop) ([5]poker.Card, error) {
	var finalHand [5]poker.Card
	if hand.Len() != StartingHandSize || flop.Len() != FlopSize {
		return finalHand, fmt.Errorf("%w: need %d hand and %d flop cards", ErrInvalidGroupSize, StartingHandSize, FlopSize)
	}
	for i, c := range append(hand.Cards(), flop.Cards()...) {
		card, err := toEvalCard(c)
		if err != nil {
			return [5]poker.Card{}, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		finalHand[i] = card
	}
	return finalHand, nil
}

// toEvalCard converts a Card to the evaluator's representation, where ranks
// run from 1 (ace) to 13 (king) and suits share our 0-3 ordering.
func toEvalCard(c Card) (poker.Card, error) {
	rank := int(c.rank)
	if c.rank == Ace {
		rank = 1
	}
	return poker.MakeCard(poker.Suit(c.suit), poker.Rank(rank))
}
