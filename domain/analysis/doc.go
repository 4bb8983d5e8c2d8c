// Package analysis computes the flop outcome distribution of a starting hand.
//
// # Enumeration
//
// Analyzer.Analyze removes the starting hand from the deck and classifies
// every 3-card flop of the remaining 50 cards, C(50,3) = 19600 flops. Work can
// be split across goroutines with WithWorkers; each worker owns its own Tally
// and the partial tallies are merged, so the result is the same for any
// worker count.
//
// # Aggregation
//
// A Result holds one count per category. Percentages reports
// count * 100 / 19600 for every reached category and omits the rest.
//
// # Estimation
//
// Analyzer.Estimate classifies a fixed number of random flops instead of all
// of them. Draws come from a cipher.Stream so that seeded runs reproduce.
package analysis
