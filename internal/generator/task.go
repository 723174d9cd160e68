package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/anagram/internal/difficulty"
	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/metrics"
	"svw.info/anagram/internal/ports"
)

var errTooFewWords = errors.New("not enough candidate words")

// Generate builds up to req.Count puzzles at req.Level. Each puzzle gets
// req.MaxAttempts tries; a puzzle that never succeeds is skipped and counted in
// Stats.Skipped. The only error returned is a context error, alongside the puzzles
// built so far.
func (g *TaskGenerator) Generate(ctx context.Context, rng *rand.Rand, req ports.GenerateRequest) ([]*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	level := difficulty.Clamp(req.Level)
	cfg := difficulty.For(level)

	var st ports.Stats
	out := make([]*domain.Puzzle, 0, max(req.Count, 0))
	for i := 0; i < req.Count; i++ {
		if err := ctx.Err(); err != nil {
			st.Duration = time.Since(start)
			return out, st, err
		}
		var lastErr error
		built := false
		for attempt := 0; attempt < req.MaxAttempts; attempt++ {
			st.Nodes++
			p, err := g.attempt(rng, cfg, level)
			if err != nil {
				lastErr = err
				continue
			}
			out = append(out, p)
			metrics.PuzzleGenerated(level)
			built = true
			break
		}
		if !built {
			st.Skipped++
			metrics.PuzzleSkipped(level)
			g.Logger.Debug("puzzle skipped",
				"level", level,
				"attempts", req.MaxAttempts,
				"err", fmt.Errorf("%w: %v", domain.ErrGenerationExhausted, lastErr),
			)
		}
	}
	st.Duration = time.Since(start)
	return out, st, nil
}

func (g *TaskGenerator) attempt(rng *rand.Rand, cfg domain.DifficultyConfig, level int) (*domain.Puzzle, error) {
	candidates := g.Dict.InLengthRange(cfg.MinLength, cfg.MaxLength)
	if len(candidates) < cfg.WordCount {
		return nil, fmt.Errorf("%w: %d of length %d-%d, need %d",
			errTooFewWords, len(candidates), cfg.MinLength, cfg.MaxLength, cfg.WordCount)
	}
	words := sample(rng, candidates, cfg.WordCount)
	scrambles := make([]string, len(words))
	for i, w := range words {
		scrambles[i] = Scramble(rng, w, cfg.FalseLetterCount)
	}
	hints := g.Hinter.Hints(words, cfg.HintStyle)
	return &domain.Puzzle{
		ID:         uuid.NewString(),
		Difficulty: level,
		Prompt:     RenderPrompt(scrambles, hints),
		Scrambles:  scrambles,
		Targets:    words,
		Hints:      hints,
		CreatedAt:  time.Now().UnixNano(),
	}, nil
}

// sample draws k distinct entries of pool without replacement (partial Fisher-Yates
// on a copy).
func sample(rng *rand.Rand, pool []string, k int) []string {
	cp := make([]string, len(pool))
	copy(cp, pool)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(cp)-i)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[:k]
}
