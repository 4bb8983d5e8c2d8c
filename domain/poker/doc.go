// Package poker implements the card model used by the flop analyzer:
// ranks, suits, cards and the fixed-size card groups built from them.
//
// # Core Types
//
// Card: An immutable (rank, suit) value. Cards compare structurally and can
// be used as map keys.
//
// CardGroup: A validated group holding exactly the number of cards it was
// built for. Construction with any other count fails with ErrInvalidGroupSize.
//
// StartingHand: The two cards held by the hero (size 2).
//
// Flop: The first three community cards (size 3).
//
// # Notation
//
// Cards are parsed from rank + suit strings such as "As", "Td" or "10h".
// Ranks run 2..9, T, J, Q, K, A and suits are c, d, h, s.
//
// # Hand Description
//
// Describe renders the made 5-card hand for display, using a 5-card hand
// evaluator. It never takes part in outcome classification.
package poker
