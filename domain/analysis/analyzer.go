package analysis

import (
	"context"
	"crypto/cipher"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/luca-patrignani/flop-analyzer/domain/deck"
	"github.com/luca-patrignani/flop-analyzer/domain/outcome"
	"github.com/luca-patrignani/flop-analyzer/domain/poker"
)

// Analyzer enumerates flops for a starting hand and aggregates their outcomes.
type Analyzer struct {
	workers int
	logger  *slog.Logger
}

// Option is a functional option for configuring the Analyzer
type Option func(*Analyzer)

// WithWorkers sets the number of goroutines classifying flops. Values below
// one are treated as one.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n < 1 {
			n = 1
		}
		a.workers = n
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnalyzer creates a new analyzer with the given options. By default it
// runs on a single goroutine and logs nothing.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		workers: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze is a convenience that classifies every flop dealt from a full deck
// and returns the percentage of flops per reached category.
func Analyze(hand poker.StartingHand) (map[outcome.Category]float64, error) {
	r, err := NewAnalyzer().Analyze(context.Background(), deck.NewFullDeck(), hand)
	if err != nil {
		return nil, err
	}
	return r.Percentages(), nil
}

// partial is the state owned by one worker.
type partial struct {
	tally    Tally
	examples [outcome.Count]example
}

func (p *partial) record(ordinal int, c outcome.Category, flop poker.Flop) {
	i := c.Index()
	p.tally[i]++
	p.examples[i].offer(ordinal, flop)
}

// Analyze removes the starting hand from d and classifies every 3-card flop
// of the remaining cards. The result does not depend on the worker count.
func (a *Analyzer) Analyze(ctx context.Context, d deck.Deck, hand poker.StartingHand) (*Result, error) {
	if hand.Len() != poker.StartingHandSize {
		return nil, fmt.Errorf("starting hand: %w", poker.ErrInvalidGroupSize)
	}
	rest, err := d.Remove(hand.Cards()...)
	if err != nil {
		return nil, fmt.Errorf("remove starting hand %s: %w", hand.Code(), err)
	}

	start := time.Now()
	a.logger.Debug("analysis started", "hand", hand.Code(), "cards", rest.Len(), "workers", a.workers)

	parts := make([]partial, a.workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range a.workers {
		p := &parts[w]
		g.Go(func() error {
			for first := w; first < rest.Len(); first += a.workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				err := rest.ForEachFlopFrom(first, func(ordinal int, flop poker.Flop) error {
					p.record(ordinal, outcome.Classify(hand, flop), flop)
					return nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Result{Hand: hand, Total: rest.FlopCount()}
	for _, p := range parts {
		r.Tally.Merge(p.tally)
		for i, e := range p.examples {
			if e.ok {
				r.examples[i].offer(e.ordinal, e.flop)
			}
		}
	}
	if got := r.Tally.Total(); got != r.Total {
		return nil, fmt.Errorf("enumerated %d flops, expected %d", got, r.Total)
	}
	r.Duration = time.Since(start)

	a.logger.Debug("analysis finished", "hand", hand.Code(), "flops", r.Total, "duration", r.Duration)
	return r, nil
}

// Estimate classifies samples random flops dealt from d without the starting
// hand, instead of every flop. Percentages are relative to samples. A nil
// stream draws from a fresh cryptographic random stream.
func (a *Analyzer) Estimate(ctx context.Context, d deck.Deck, hand poker.StartingHand, samples int, stream cipher.Stream) (*Result, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("samples must be positive, got %d", samples)
	}
	if hand.Len() != poker.StartingHandSize {
		return nil, fmt.Errorf("starting hand: %w", poker.ErrInvalidGroupSize)
	}
	rest, err := d.Remove(hand.Cards()...)
	if err != nil {
		return nil, fmt.Errorf("remove starting hand %s: %w", hand.Code(), err)
	}
	if stream == nil {
		stream = deck.RandomStream()
	}

	start := time.Now()
	a.logger.Debug("estimate started", "hand", hand.Code(), "samples", samples)

	var p partial
	for i := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cards, err := rest.Draw(poker.FlopSize, stream)
		if err != nil {
			return nil, err
		}
		flop, err := poker.NewFlop(cards...)
		if err != nil {
			return nil, err
		}
		p.record(i, outcome.Classify(hand, flop), flop)
	}

	r := &Result{
		Hand:     hand,
		Tally:    p.tally,
		Total:    samples,
		Sampled:  true,
		Duration: time.Since(start),
		examples: p.examples,
	}
	a.logger.Debug("estimate finished", "hand", hand.Code(), "samples", samples, "duration", r.Duration)
	return r, nil
}
