package outcome

import (
	"fmt"
	"slices"

	"github.com/luca-patrignani/flop-analyzer/domain/poker"
)

// Classify returns the category of the five cards made by hand and flop.
//
// The number of distinct ranks among the five cards decides which structure
// is possible: five means no pair (flush or straight only), four means exactly
// one pair, three means trips or two pair and two means a full house or quads.
// Hand and flop are kept apart because pair placement depends on which cards
// came from the board.
func Classify(hand poker.StartingHand, flop poker.Flop) Category {
	handRanks := hand.Ranks()
	flopRanks := flop.Ranks()
	ranks := append(slices.Clone(flopRanks), handRanks...)

	switch n := distinctRanks(ranks); n {
	case 5:
		suits := append(flop.Suits(), hand.Suits()...)
		return noPair(ranks, suits)
	case 4:
		if hand.IsPocketPair() {
			return unimprovedPocketPair(handRanks[0], flopRanks)
		}
		return onePair(handRanks, flopRanks)
	case 3:
		return tripsOrTwoPair(ranks)
	case 2:
		return FullHouseOrQuads
	default:
		panic(fmt.Sprintf("outcome: %d distinct ranks in %s %s", n, hand.Code(), flop.Code()))
	}
}

// IsStraight reports whether ranks are five distinct consecutive values,
// counting the ace low only in the wheel A-2-3-4-5.
func IsStraight(ranks []poker.Rank) bool {
	if len(ranks) != 5 || distinctRanks(ranks) != 5 {
		return false
	}
	sorted := slices.Clone(ranks)
	slices.Sort(sorted)
	if sorted[4] == sorted[0]+4 {
		return true
	}
	return slices.Equal(sorted, []poker.Rank{poker.Two, poker.Three, poker.Four, poker.Five, poker.Ace})
}

// IsFlush reports whether every suit is the same.
func IsFlush(suits []poker.Suit) bool {
	if len(suits) == 0 {
		return false
	}
	for _, s := range suits[1:] {
		if s != suits[0] {
			return false
		}
	}
	return true
}

func noPair(ranks []poker.Rank, suits []poker.Suit) Category {
	flush, straight := IsFlush(suits), IsStraight(ranks)
	switch {
	case flush && straight:
		return StraightFlush
	case flush:
		return Flush
	case straight:
		return Straight
	default:
		return Missed
	}
}

// onePair places the single pair made by two distinct hole cards. A pair
// entirely on the board leaves the hand with nothing.
func onePair(handRanks, flopRanks []poker.Rank) Category {
	low, mid, high := sortedFlop(flopRanks)
	switch {
	case slices.Contains(handRanks, high):
		return TopPair
	case slices.Contains(handRanks, mid):
		return MiddlePair
	case slices.Contains(handRanks, low):
		return BottomPair
	default:
		return Missed
	}
}

// unimprovedPocketPair counts the flop cards above the pocket pair. The board
// cannot share the pair's rank here, so strict comparison is enough.
func unimprovedPocketPair(pair poker.Rank, flopRanks []poker.Rank) Category {
	low, mid, high := sortedFlop(flopRanks)
	switch {
	case pair > high:
		return Overpair
	case pair > mid:
		return PairWithOneOvercard
	case pair > low:
		return PairWithTwoOvercards
	default:
		return Underpair
	}
}

func tripsOrTwoPair(ranks []poker.Rank) Category {
	counts := make(map[poker.Rank]int, len(ranks))
	for _, r := range ranks {
		counts[r]++
	}
	for _, n := range counts {
		if n == 3 {
			return Trips
		}
	}
	return TwoPair
}

func sortedFlop(flopRanks []poker.Rank) (low, mid, high poker.Rank) {
	sorted := slices.Clone(flopRanks)
	slices.Sort(sorted)
	return sorted[0], sorted[1], sorted[2]
}

func distinctRanks(ranks []poker.Rank) int {
	seen := make(map[poker.Rank]struct{}, len(ranks))
	for _, r := range ranks {
		seen[r] = struct{}{}
	}
	return len(seen)
}
