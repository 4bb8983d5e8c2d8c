package outcome

// Category is the outcome of a flop from the starting hand's perspective.
// Exactly one Category applies to any starting hand and flop.
type Category string

const (
	StraightFlush        Category = "straight flush"
	FullHouseOrQuads     Category = "full house or quads"
	Flush                Category = "flush"
	Straight             Category = "straight"
	Trips                Category = "trips"
	TwoPair              Category = "two pair"
	TopPair              Category = "top pair"
	MiddlePair           Category = "middle pair"
	BottomPair           Category = "bottom pair"
	Overpair             Category = "overpair"
	PairWithOneOvercard  Category = "pair with one overcard"
	PairWithTwoOvercards Category = "pair with two overcards"
	Underpair            Category = "underpair"
	Missed               Category = "missed"
)

// Categories lists every category in canonical order, strongest structure first.
var Categories = [...]Category{
	StraightFlush,
	FullHouseOrQuads,
	Flush,
	Straight,
	Trips,
	TwoPair,
	TopPair,
	MiddlePair,
	BottomPair,
	Overpair,
	PairWithOneOvercard,
	PairWithTwoOvercards,
	Underpair,
	Missed,
}

// Count is the number of categories.
const Count = len(Categories)

// Index returns the position of c in Categories, or -1 if c is unknown.
func (c Category) Index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

func (c Category) String() string {
	return string(c)
}
