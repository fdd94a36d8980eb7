package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/internal/logger"
	"github.com/katalvlaran/pipeloop/internal/store"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/puzzle"
	"github.com/katalvlaran/pipeloop/render"
)

func newStepsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "Print the steps from the start to the farthest loop tile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParts(cmd, opts, puzzle.PartOne)
		},
	}
}

func newEnclosedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "enclosed",
		Short: "Print the number of tiles enclosed by the loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParts(cmd, opts, puzzle.PartTwo)
		},
	}
}

func newSolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Print both answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParts(cmd, opts, puzzle.PartOne, puzzle.PartTwo)
		},
	}
}

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Draw the loop with enclosed (I) and outside (O) tiles marked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := opts.readInput(cmd)
			if err != nil {
				return err
			}
			g, err := pipegrid.Parse(text)
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), g)
		},
	}
}

func runParts(cmd *cobra.Command, opts *options, parts ...puzzle.Part) error {
	text, err := opts.readInput(cmd)
	if err != nil {
		return err
	}
	ans, err := answer(cmd.Context(), opts, text)
	if err != nil {
		return err
	}
	for _, p := range parts {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", p.Label(), ans.Value(p))
	}
	return nil
}

// answer solves text, going through the solution store when it is enabled.
func answer(ctx context.Context, opts *options, text string) (puzzle.Answer, error) {
	if !opts.cfg.Store.Enabled {
		return puzzle.Solve(text)
	}

	s, err := store.Open(ctx, opts.cfg.DatabaseConfig())
	if err != nil {
		return puzzle.Answer{}, err
	}
	defer s.Close()

	digest := store.Digest(text)
	rec, err := s.Lookup(ctx, digest)
	switch {
	case err == nil:
		logger.Info("answer found in store", "digest", digest, "solved_at", rec.SolvedAt)
		return puzzle.Answer{Rows: rec.Rows, Columns: rec.Columns, Steps: rec.Steps, Enclosed: rec.Enclosed}, nil
	case !errors.Is(err, store.ErrNotFound):
		return puzzle.Answer{}, err
	}

	ans, err := puzzle.Solve(text)
	if err != nil {
		return ans, err
	}
	err = s.Save(ctx, store.Record{
		Digest:   digest,
		Rows:     ans.Rows,
		Columns:  ans.Columns,
		Steps:    ans.Steps,
		Enclosed: ans.Enclosed,
	})
	if err != nil {
		// the answer is still good; only the cache write failed
		logger.Warning("saving answer failed", "digest", digest, "error", err)
	}
	logger.Info("answer solved", "digest", digest, "rows", ans.Rows, "columns", ans.Columns)
	return ans, nil
}
