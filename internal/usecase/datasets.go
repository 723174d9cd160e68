package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/ports"
)

// DatasetOptions controls BuildDatasets. Levels defaults to 1..10.
type DatasetOptions struct {
	Seed          int64
	TestSeed      int64
	TrainPerLevel int
	TestPerLevel  int
	MaxAttempts   int
	Levels        []int
}

// DatasetReport summarises one written dataset. Written may be below Requested when
// the generator skipped puzzles.
type DatasetReport struct {
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Written   int    `json:"written"`
}

// TestDatasetName names the per-level evaluation stream.
func TestDatasetName(level int) string { return fmt.Sprintf("test_difficulty_%d", level) }

// TrainDatasetName names the mixed-level training stream.
const TrainDatasetName = "train"

// BuildDatasets generates a shuffled training stream over all levels and one test
// stream per level, then saves them. Levels are generated concurrently; each level
// uses its own source derived from the seeds, so output is reproducible.
func (u *Service) BuildDatasets(ctx context.Context, opts DatasetOptions) ([]DatasetReport, error) {
	if u.Generator == nil || u.Storage == nil {
		return nil, domain.ErrNotConfigured
	}
	levels := opts.Levels
	if len(levels) == 0 {
		for l := domain.MinLevel; l <= domain.MaxLevel; l++ {
			levels = append(levels, l)
		}
	}

	train := make([][]*domain.Puzzle, len(levels))
	test := make([][]*domain.Puzzle, len(levels))
	g, gctx := errgroup.WithContext(ctx)
	for i, level := range levels {
		i, level := i, level
		g.Go(func() error {
			ps, _, err := u.Generate(gctx, opts.Seed+int64(level), ports.GenerateRequest{
				Level: level, Count: opts.TrainPerLevel, MaxAttempts: opts.MaxAttempts,
			})
			if err != nil {
				return fmt.Errorf("train level %d: %w", level, err)
			}
			train[i] = ps
			ps, _, err = u.Generate(gctx, opts.TestSeed+int64(level), ports.GenerateRequest{
				Level: level, Count: opts.TestPerLevel, MaxAttempts: opts.MaxAttempts,
			})
			if err != nil {
				return fmt.Errorf("test level %d: %w", level, err)
			}
			test[i] = ps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*domain.Puzzle
	for _, ps := range train {
		all = append(all, ps...)
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	reports := make([]DatasetReport, 0, len(levels)+1)
	if err := u.Save(ctx, TrainDatasetName, all); err != nil {
		return nil, fmt.Errorf("save %s: %w", TrainDatasetName, err)
	}
	reports = append(reports, DatasetReport{Name: TrainDatasetName, Requested: opts.TrainPerLevel * len(levels), Written: len(all)})
	for i, level := range levels {
		name := TestDatasetName(level)
		if err := u.Save(ctx, name, test[i]); err != nil {
			return nil, fmt.Errorf("save %s: %w", name, err)
		}
		reports = append(reports, DatasetReport{Name: name, Requested: opts.TestPerLevel, Written: len(test[i])})
	}
	return reports, nil
}
