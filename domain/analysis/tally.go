package analysis

import "github.com/luca-patrignani/flop-analyzer/domain/outcome"

// Tally counts flops per category. Every category is present, possibly zero.
type Tally [outcome.Count]int

// Add records one flop of category c.
func (t *Tally) Add(c outcome.Category) {
	t[c.Index()]++
}

// Merge adds the counts of other into t.
func (t *Tally) Merge(other Tally) {
	for i, n := range other {
		t[i] += n
	}
}

// Count returns the number of flops recorded for c.
func (t Tally) Count(c outcome.Category) int {
	i := c.Index()
	if i < 0 {
		return 0
	}
	return t[i]
}

// Total returns the number of flops recorded over all categories.
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Percentages converts the counts into percentages of total. Categories with
// no flops are omitted.
func (t Tally) Percentages(total int) map[outcome.Category]float64 {
	p := make(map[outcome.Category]float64)
	if total <= 0 {
		return p
	}
	for i, n := range t {
		if n > 0 {
			p[outcome.Categories[i]] = float64(n) * 100.0 / float64(total)
		}
	}
	return p
}
