package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"svw.info/anagram/internal/dictionary"
	"svw.info/anagram/internal/usecase"
)

func newDatasetCmd(a *app) *cobra.Command {
	var opts usecase.DatasetOptions
	var out string
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Build the shuffled training set and one test set per level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if out != "" {
				a.cfg.OutputDir = out
			}
			if !f.Changed("seed") {
				opts.Seed = a.cfg.Seed
			}
			if !f.Changed("test-seed") {
				opts.TestSeed = a.cfg.TestSeed
			}
			if !f.Changed("train") {
				opts.TrainPerLevel = a.cfg.TrainPerLevel
			}
			if !f.Changed("test") {
				opts.TestPerLevel = a.cfg.TestPerLevel
			}
			opts.MaxAttempts = a.cfg.MaxAttempts

			if err := ensureDictionary(a); err != nil {
				return err
			}
			if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
				return err
			}
			uc, err := a.service()
			if err != nil {
				return err
			}
			reports, err := uc.BuildDatasets(cmd.Context(), opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, r := range reports {
				fmt.Fprintf(w, "%-20s %5d/%d\n", r.Name, r.Written, r.Requested)
				if r.Written < r.Requested {
					a.logger.Warn("dataset short", "name", r.Name, "requested", r.Requested, "written", r.Written)
				}
			}
			a.logger.Info("datasets written", "dir", a.cfg.OutputDir, "count", len(reports))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "output directory (overrides config)")
	f.Int64Var(&opts.Seed, "seed", 0, "training seed")
	f.Int64Var(&opts.TestSeed, "test-seed", 0, "test seed")
	f.IntVar(&opts.TrainPerLevel, "train", 0, "training puzzles per level")
	f.IntVar(&opts.TestPerLevel, "test", 0, "test puzzles per level")
	return cmd
}

// ensureDictionary writes the sample English word list when the configured
// dictionary file does not exist yet.
func ensureDictionary(a *app) error {
	path := a.cfg.DictionaryPath
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dictionary.Write(f, dictionary.English()); err != nil {
		f.Close()
		return fmt.Errorf("write dictionary: %w", err)
	}
	a.logger.Info("dictionary created", "path", path)
	return f.Close()
}
