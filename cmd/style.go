package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/flop-analyzer/domain/analysis"
	"github.com/luca-patrignani/flop-analyzer/domain/poker"
)

func printResult(r *analysis.Result, examples bool) error {
	title := fmt.Sprintf("Flops for %s", r.Hand.String())
	if r.Sampled {
		title += fmt.Sprintf(" (%s sampled)", humanize.Comma(int64(r.Total)))
	}
	pterm.DefaultSection.Println(title)

	data, err := resultTable(r, examples)
	if err != nil {
		return err
	}
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		return err
	}

	if err := pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(resultBars(r)).Render(); err != nil {
		return err
	}

	pterm.Info.Printfln("%s flops classified in %s", humanize.Comma(int64(r.Total)), r.Duration.Round(time.Microsecond))
	return nil
}

// resultTable lays out one row per reached outcome in canonical order.
func resultTable(r *analysis.Result, examples bool) (pterm.TableData, error) {
	header := []string{"Outcome", "Flops", "Percent"}
	if examples {
		header = append(header, "Example", "Made hand")
	}
	data := pterm.TableData{header}
	for _, e := range r.Entries() {
		row := []string{
			string(e.Category),
			humanize.Comma(int64(e.Count)),
			fmt.Sprintf("%.2f%%", e.Percent),
		}
		if examples {
			desc, err := poker.Describe(r.Hand, e.Example)
			if err != nil {
				return nil, fmt.Errorf("describe %s: %w", e.Example.Code(), err)
			}
			row = append(row, e.Example.String(), desc)
		}
		data = append(data, row)
	}
	return data, nil
}

// resultBars charts the flop counts per reached outcome.
func resultBars(r *analysis.Result) pterm.Bars {
	var bars pterm.Bars
	for _, e := range r.Entries() {
		bars = append(bars, pterm.Bar{
			Label: string(e.Category),
			Value: e.Count,
		})
	}
	return bars
}
