package analysis

import (
	"time"

	"github.com/luca-patrignani/flop-analyzer/domain/outcome"
	"github.com/luca-patrignani/flop-analyzer/domain/poker"
)

// Result is the outcome distribution of one starting hand.
type Result struct {
	Hand  poker.StartingHand
	Tally Tally
	// Total is the number of flops classified: C(50,3) for an exhaustive
	// analysis, the sample size for an estimate.
	Total    int
	Sampled  bool
	Duration time.Duration

	examples [outcome.Count]example
}

// Entry is one reached category of a Result.
type Entry struct {
	Category outcome.Category
	Count    int
	Percent  float64
	Example  poker.Flop
}

type example struct {
	ordinal int
	flop    poker.Flop
	ok      bool
}

// offer keeps the flop with the lowest ordinal seen for its category.
func (e *example) offer(ordinal int, flop poker.Flop) {
	if !e.ok || ordinal < e.ordinal {
		*e = example{ordinal: ordinal, flop: flop, ok: true}
	}
}

// Percentages returns the percentage of flops per category. Categories no
// flop reached are omitted; the values sum to 100.
func (r *Result) Percentages() map[outcome.Category]float64 {
	return r.Tally.Percentages(r.Total)
}

// Percent returns the percentage of flops that fell into c.
func (r *Result) Percent(c outcome.Category) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Tally.Count(c)) * 100.0 / float64(r.Total)
}

// Example returns the first flop, in enumeration order, classified as c.
func (r *Result) Example(c outcome.Category) (poker.Flop, bool) {
	i := c.Index()
	if i < 0 || !r.examples[i].ok {
		return poker.Flop{}, false
	}
	return r.examples[i].flop, true
}

// Entries lists the reached categories in canonical order.
func (r *Result) Entries() []Entry {
	var entries []Entry
	for i, c := range outcome.Categories {
		n := r.Tally[i]
		if n == 0 {
			continue
		}
		entries = append(entries, Entry{
			Category: c,
			Count:    n,
			Percent:  float64(n) * 100.0 / float64(r.Total),
			Example:  r.examples[i].flop,
		})
	}
	return entries
}
