package outcome

import (
	"testing"

	"github.com/luca-patrignani/flop-analyzer/domain/poker"
)

func classify(t *testing.T, hand [2]string, flop [3]string) Category {
	t.Helper()
	h, err := poker.ParseStartingHand(hand[:]...)
	if err != nil {
		t.Fatal(err)
	}
	f, err := poker.ParseFlop(flop[:]...)
	if err != nil {
		t.Fatal(err)
	}
	return Classify(h, f)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		hand [2]string
		flop [3]string
		want Category
	}{
		// five distinct ranks
		{"royal flush", [2]string{"As", "Ks"}, [3]string{"Qs", "Js", "Ts"}, StraightFlush},
		{"steel wheel", [2]string{"Ah", "2h"}, [3]string{"3h", "4h", "5h"}, StraightFlush},
		{"flush", [2]string{"As", "7s"}, [3]string{"2s", "9s", "Ks"}, Flush},
		{"broadway", [2]string{"As", "Kd"}, [3]string{"Qc", "Jh", "Ts"}, Straight},
		{"wheel", [2]string{"Ad", "2c"}, [3]string{"3h", "4s", "5d"}, Straight},
		{"no wraparound", [2]string{"Qd", "Kc"}, [3]string{"Ah", "2s", "3d"}, Missed},
		{"ace high nothing", [2]string{"As", "7h"}, [3]string{"2c", "9d", "Ks"}, Missed},
		{"four to a flush", [2]string{"As", "7s"}, [3]string{"2s", "9s", "Kh"}, Missed},

		// one pair, two distinct hole cards
		{"top pair", [2]string{"As", "7h"}, [3]string{"Ac", "9d", "2s"}, TopPair},
		{"middle pair", [2]string{"As", "9h"}, [3]string{"Kc", "9d", "2s"}, MiddlePair},
		{"bottom pair", [2]string{"As", "7h"}, [3]string{"Kc", "9d", "7s"}, BottomPair},
		{"paired board", [2]string{"As", "7h"}, [3]string{"Kc", "Kd", "2s"}, Missed},
		{"paired board low", [2]string{"Ks", "Qh"}, [3]string{"2c", "2d", "9s"}, Missed},

		// one pair, pocket pair
		{"overpair", [2]string{"Kd", "Kc"}, [3]string{"Qs", "9h", "2c"}, Overpair},
		{"one overcard", [2]string{"7d", "7c"}, [3]string{"Ks", "5h", "2c"}, PairWithOneOvercard},
		{"two overcards", [2]string{"7d", "7c"}, [3]string{"Ks", "Qh", "2c"}, PairWithTwoOvercards},
		{"underpair", [2]string{"2d", "2c"}, [3]string{"Ks", "Qh", "3c"}, Underpair},

		// three distinct ranks
		{"two pair", [2]string{"As", "Ks"}, [3]string{"Ad", "Kc", "Qh"}, TwoPair},
		{"set", [2]string{"7d", "7c"}, [3]string{"7s", "Kh", "2c"}, Trips},
		{"trips with hole card", [2]string{"As", "7h"}, [3]string{"7c", "7d", "2s"}, Trips},
		{"pocket pair and paired board", [2]string{"7d", "7c"}, [3]string{"Ks", "Kh", "2c"}, TwoPair},
		{"board trips", [2]string{"As", "Kh"}, [3]string{"2c", "2d", "2s"}, Trips},
		{"one pair each", [2]string{"As", "7h"}, [3]string{"Ac", "Kd", "Ks"}, TwoPair},

		// two distinct ranks
		{"full house", [2]string{"As", "Ah"}, [3]string{"Ac", "Kd", "Ks"}, FullHouseOrQuads},
		{"quads", [2]string{"7d", "7c"}, [3]string{"7s", "7h", "2c"}, FullHouseOrQuads},
		{"board full house", [2]string{"As", "Kh"}, [3]string{"Ac", "Ad", "Ks"}, FullHouseOrQuads},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(t, tt.hand, tt.flop)
			if got != tt.want {
				t.Fatalf("Classify(%v, %v) = %q, want %q", tt.hand, tt.flop, got, tt.want)
			}
		})
	}
}

func TestClassifyIgnoresCardOrder(t *testing.T) {
	a := classify(t, [2]string{"7h", "As"}, [3]string{"Ks", "7c", "9d"})
	b := classify(t, [2]string{"As", "7h"}, [3]string{"9d", "Ks", "7c"})
	if a != b || a != BottomPair {
		t.Fatalf("expected bottom pair for both orders, got %q and %q", a, b)
	}
}

func TestIsStraight(t *testing.T) {
	tests := []struct {
		ranks []poker.Rank
		want  bool
	}{
		{[]poker.Rank{poker.Ten, poker.Jack, poker.Queen, poker.King, poker.Ace}, true},
		{[]poker.Rank{poker.Two, poker.Three, poker.Four, poker.Five, poker.Ace}, true},
		{[]poker.Rank{poker.Ace, poker.Five, poker.Three, poker.Two, poker.Four}, true},
		{[]poker.Rank{poker.Six, poker.Four, poker.Five, poker.Eight, poker.Seven}, true},
		{[]poker.Rank{poker.Two, poker.Three, poker.Four, poker.Five, poker.Seven}, false},
		{[]poker.Rank{poker.Jack, poker.Queen, poker.King, poker.Ace, poker.Two}, false},
		{[]poker.Rank{poker.Two, poker.Two, poker.Three, poker.Four, poker.Five}, false},
		{[]poker.Rank{poker.Two, poker.Three, poker.Four, poker.Five}, false},
	}
	for _, tt := range tests {
		if got := IsStraight(tt.ranks); got != tt.want {
			t.Fatalf("IsStraight(%v) = %v, want %v", tt.ranks, got, tt.want)
		}
	}
}

func TestIsFlush(t *testing.T) {
	same := []poker.Suit{poker.Heart, poker.Heart, poker.Heart, poker.Heart, poker.Heart}
	if !IsFlush(same) {
		t.Fatal("expected five hearts to be a flush")
	}
	for i := range same {
		mixed := append([]poker.Suit(nil), same...)
		mixed[i] = poker.Club
		if IsFlush(mixed) {
			t.Fatalf("expected %v not to be a flush", mixed)
		}
	}
}

func TestCategories(t *testing.T) {
	if Count != 14 {
		t.Fatalf("expected 14 categories, got %d", Count)
	}
	seen := make(map[Category]bool)
	for i, c := range Categories {
		if seen[c] {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = true
		if c.Index() != i {
			t.Fatalf("expected index %d for %q, got %d", i, c, c.Index())
		}
	}
	if Category("royal flush").Valid() {
		t.Fatal("unknown label should not be valid")
	}
}
