package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/padchain/complexity"
	"github.com/katalvlaran/padchain/history"
)

func (a *app) solveCmd() *cobra.Command {
	var (
		depth   int
		workers int
		record  bool
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Sum code complexities; reads codes from file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("depth") {
				a.cfg.Depth = depth
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Workers = workers
			}
			if cmd.Flags().Changed("record") {
				a.cfg.History.Record = record
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runSolve(cmd, args, explain)
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "n", complexity.ShortChain, "Directional controllers above the door keypad")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "Goroutines pricing codes")
	cmd.Flags().BoolVar(&record, "record", false, "Record the run in the history database")
	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Print presses and complexity per code")
	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string, explain bool) error {
	in := cmd.InOrStdin()
	src := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in, src = f, args[0]
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	codes, err := complexity.ParseList(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	agg, err := complexity.New()
	if err != nil {
		return err
	}
	depth := a.cfg.Depth
	a.logger.Debug("Solving", zap.String("input", src), zap.Int("codes", len(codes)),
		zap.Int("depth", depth), zap.Int("workers", a.cfg.Workers))

	start := time.Now()
	var total int
	out := cmd.OutOrStdout()
	switch {
	case explain:
		for _, b := range agg.Explain(codes, depth) {
			fmt.Fprintf(out, "%s\t%d\t%d\t%d\n", b.Code, b.Presses, b.Numeric, b.Complexity)
			total += b.Complexity
		}
	case a.cfg.Workers > 1:
		total, err = agg.TotalParallel(cmd.Context(), codes, depth, a.cfg.Workers)
		if err != nil {
			return err
		}
	default:
		total = agg.Total(codes, depth)
	}
	stats := agg.Evaluator().Stats()
	a.logger.Info("Solved",
		zap.Int("codes", len(codes)),
		zap.Int("depth", depth),
		zap.Int("total", total),
		zap.Int("memo_entries", stats.Entries),
		zap.Uint64("memo_hits", stats.Hits),
		zap.Duration("elapsed", time.Since(start)))
	fmt.Fprintln(out, total)

	if !a.cfg.History.Record {
		return nil
	}
	return a.record(cmd, depth, codes, total)
}

func (a *app) record(cmd *cobra.Command, depth int, codes []complexity.Code, total int) error {
	s, err := a.openHistory()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer s.Close()

	run := &history.Run{Depth: depth, Total: total, Codes: make([]string, len(codes))}
	for i, c := range codes {
		run.Codes[i] = c.String()
	}
	if err := s.Record(cmd.Context(), run); err != nil {
		return err
	}
	a.logger.Debug("Recorded run", zap.String("id", run.ID))
	return nil
}
