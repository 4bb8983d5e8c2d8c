package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/flop-analyzer/appconfig"
	"github.com/luca-patrignani/flop-analyzer/domain/analysis"
	"github.com/luca-patrignani/flop-analyzer/domain/deck"
	"github.com/luca-patrignani/flop-analyzer/domain/poker"
)

type options struct {
	workers  int
	samples  int
	examples bool
	logLevel string
	seed     string
}

func main() {
	cfg, err := appconfig.LoadAppConfig()
	if err != nil {
		pterm.Error.Printfln("invalid configuration: %v", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *appconfig.AppConfig) *cobra.Command {
	opts := options{
		workers:  cfg.Workers,
		samples:  cfg.Samples,
		logLevel: cfg.LogLevel,
	}
	cmd := &cobra.Command{
		Use:   "flop-analyzer [card card]",
		Short: "Show how often a starting hand flops each outcome",
		Long: "Classifies every possible flop for a starting hand and prints the percentage " +
			"of flops per outcome. Cards are written as rank + suit, e.g. As 7h. " +
			"Without arguments the cards are picked interactively.\n\n" + appconfig.Usage(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != poker.StartingHandSize {
				return fmt.Errorf("expected %d cards, got %d", poker.StartingHandSize, len(args))
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
	}
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", opts.workers, "goroutines classifying flops")
	cmd.Flags().IntVarP(&opts.samples, "samples", "s", opts.samples, "sample this many random flops instead of all of them")
	cmd.Flags().BoolVarP(&opts.examples, "examples", "e", false, "show an example flop per outcome")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "debug, info, warn or error")
	cmd.Flags().StringVar(&opts.seed, "seed", "", "seed for reproducible sampling")
	return cmd
}

func newLogger(level string) (*slog.Logger, error) {
	cfg := appconfig.AppConfig{LogLevel: level}
	lvl, err := cfg.PtermLogLevel()
	if err != nil {
		return nil, err
	}
	// Create a new slog handler with the PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(lvl))
	return slog.New(handler), nil
}

func run(ctx context.Context, opts options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, err := newLogger(opts.logLevel)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}

	var hand poker.StartingHand
	if len(args) == 0 {
		printBanner()
		hand, err = pickStartingHand()
	} else {
		hand, err = poker.ParseStartingHand(args...)
	}
	if err != nil {
		logger.Error("invalid starting hand", "error", err)
		return err
	}

	analyzer := analysis.NewAnalyzer(
		analysis.WithWorkers(opts.workers),
		analysis.WithLogger(logger),
	)

	spinner, _ := pterm.DefaultSpinner.Start("Dealing every flop for " + hand.String() + " ...")
	var result *analysis.Result
	if opts.samples > 0 {
		stream := deck.RandomStream()
		if opts.seed != "" {
			stream = deck.SeededStream([]byte(opts.seed))
		}
		result, err = analyzer.Estimate(ctx, deck.NewFullDeck(), hand, opts.samples, stream)
	} else {
		result, err = analyzer.Analyze(ctx, deck.NewFullDeck(), hand)
	}
	if err != nil {
		spinner.Fail()
		logger.Error("analysis failed", "hand", hand.Code(), "error", err)
		return err
	}
	spinner.Success()

	if err := printResult(result, opts.examples); err != nil {
		logger.Error("could not render result", "error", err)
		return err
	}
	return nil
}

func printBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("F", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("lop ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("A", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("nalyzer", pterm.FgDarkGray.ToStyle()),
	).Render()
}
