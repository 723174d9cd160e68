package main

import (
	"time"

	"github.com/spf13/cobra"

	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/infrastructure/storage"
	"svw.info/anagram/internal/ports"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		level       int
		count       int
		seed        int64
		maxAttempts int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate puzzles and write them as task records (JSONL) to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.service()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			if maxAttempts <= 0 {
				maxAttempts = a.cfg.MaxAttempts
			}
			ps, st, err := uc.Generate(cmd.Context(), seed, ports.GenerateRequest{
				Level: level, Count: count, MaxAttempts: maxAttempts,
			})
			if err != nil {
				return err
			}
			recs := make([]domain.TaskRecord, len(ps))
			for i, p := range ps {
				recs[i] = p.Record()
			}
			a.logger.Info("generated",
				"level", level,
				"requested", count,
				"written", len(ps),
				"skipped", st.Skipped,
				"seed", seed,
				"dur", st.Duration.Round(time.Millisecond),
			)
			return storage.WriteRecords(cmd.Context(), cmd.OutOrStdout(), recs)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&level, "level", "l", 1, "difficulty level 1-10")
	f.IntVarP(&count, "count", "n", 1, "number of puzzles")
	f.Int64Var(&seed, "seed", 0, "random seed (0 uses the config seed, then the clock)")
	f.IntVar(&maxAttempts, "max-attempts", 0, "attempts per puzzle (0 uses the config)")
	return cmd
}
