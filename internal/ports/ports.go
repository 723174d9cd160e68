package ports

import (
	"context"
	"math/rand"
	"time"

	"svw.info/anagram/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int // attempts for generation, candidate checks for decomposition
	Skipped  int
	Duration time.Duration
}

// Lexicon is the read-only word set providers share.
type Lexicon interface {
	Contains(word string) bool
	Len() int
	Words() []string
	InLengthRange(min, max int) []string
}

// GenerateRequest asks for Count puzzles at Level, trying each up to MaxAttempts times.
type GenerateRequest struct {
	Level       int
	Count       int
	MaxAttempts int
}

// Generator builds puzzles. Puzzles that exhaust their attempts are omitted, so the
// result may be shorter than requested.
type Generator interface {
	Generate(ctx context.Context, rng *rand.Rand, req GenerateRequest) ([]*domain.Puzzle, Stats, error)
}

// Verifier checks submissions against a puzzle. It never fails; malformed input
// yields a negative verdict.
type Verifier interface {
	Check(p *domain.Puzzle, answer string) domain.Verdict
	Verify(p *domain.Puzzle, answer string) bool
	Extract(text string) string
}

// Hinter builds per-scramble hints.
type Hinter interface {
	Hints(words []string, style domain.HintStyle) map[string]string
}

// Decomposer splits a letter string into one or two dictionary words.
type Decomposer interface {
	Decompose(ctx context.Context, letters string) ([]domain.Decomposition, Stats, error)
}

// Storage persists task records as line-delimited streams.
type Storage interface {
	Save(ctx context.Context, name string, recs []domain.TaskRecord) error
	Load(ctx context.Context, name string) ([]domain.TaskRecord, error)
	List(ctx context.Context) ([]domain.DatasetMeta, error)
}
