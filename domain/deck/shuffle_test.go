package deck

import (
	"testing"

	"github.com/luca-patrignani/flop-analyzer/domain/poker"
)

func TestDraw(t *testing.T) {
	d := NewFullDeck()
	cards, err := d.Draw(3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	seen := make(map[poker.Card]bool)
	for _, c := range cards {
		if !d.Contains(c) {
			t.Fatalf("drawn card %s not in deck", c.Code())
		}
		if seen[c] {
			t.Fatalf("card %s drawn twice", c.Code())
		}
		seen[c] = true
	}
	if d.Len() != FullDeckSize {
		t.Fatal("Draw mutated the deck")
	}
}

func TestDrawSeededIsReproducible(t *testing.T) {
	d := NewFullDeck()
	a, err := d.Draw(5, SeededStream([]byte("flop")))
	if err != nil {
		t.Fatal(err)
	}
	b, err := d.Draw(5, SeededStream([]byte("flop")))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected same draw, got %s vs %s", a[i].Code(), b[i].Code())
		}
	}
}

func TestDrawTooMany(t *testing.T) {
	if _, err := NewFullDeck().Draw(53, nil); err == nil {
		t.Fatal("expected error drawing more cards than the deck holds")
	}
}

func TestRandomIndexInRange(t *testing.T) {
	stream := SeededStream([]byte("index"))
	for bound := 1; bound < 60; bound++ {
		for range 20 {
			if v := randomIndex(stream, bound); v < 0 || v >= bound {
				t.Fatalf("index %d out of range [0,%d)", v, bound)
			}
		}
	}
}
