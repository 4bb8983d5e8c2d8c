// Package outcome classifies a starting hand and a flop into one of fourteen
// mutually exclusive categories, seen from the starting hand's perspective.
//
// Classification never ranks hands against each other. It only answers what
// the hero flopped: a made hand (straight flush, full house or quads, flush,
// straight, trips, two pair), where a paired hole card sits on the board
// (top, middle or bottom pair), how an unimproved pocket pair compares with
// the board (overpair down to underpair), or nothing at all (missed).
package outcome
