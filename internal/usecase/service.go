package usecase

import (
	"context"
	"math/rand"

	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/ports"
)

type Service struct {
	Generator  ports.Generator
	Verifier   ports.Verifier
	Decomposer ports.Decomposer
	Storage    ports.Storage
}

func NewService(g ports.Generator, v ports.Verifier, d ports.Decomposer, st ports.Storage) *Service {
	return &Service{Generator: g, Verifier: v, Decomposer: d, Storage: st}
}

// Generate builds puzzles from a source seeded with seed.
func (u *Service) Generate(ctx context.Context, seed int64, req ports.GenerateRequest) ([]*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, domain.ErrNotConfigured
	}
	return u.Generator.Generate(ctx, rand.New(rand.NewSource(seed)), req)
}

// Verify extracts the answer from free text and checks it against p.
func (u *Service) Verify(ctx context.Context, p *domain.Puzzle, response string) (domain.Verdict, error) {
	if u.Verifier == nil {
		return domain.Verdict{}, domain.ErrNotConfigured
	}
	return u.Verifier.Check(p, u.Verifier.Extract(response)), nil
}

func (u *Service) Extract(ctx context.Context, text string) (string, error) {
	if u.Verifier == nil {
		return "", domain.ErrNotConfigured
	}
	return u.Verifier.Extract(text), nil
}

func (u *Service) Decompose(ctx context.Context, letters string) ([]domain.Decomposition, ports.Stats, error) {
	if u.Decomposer == nil {
		return nil, ports.Stats{}, domain.ErrNotConfigured
	}
	return u.Decomposer.Decompose(ctx, letters)
}

// Persistence
func (u *Service) Save(ctx context.Context, name string, ps []*domain.Puzzle) error {
	if u.Storage == nil {
		return domain.ErrNotConfigured
	}
	recs := make([]domain.TaskRecord, len(ps))
	for i, p := range ps {
		recs[i] = p.Record()
	}
	return u.Storage.Save(ctx, name, recs)
}
func (u *Service) Load(ctx context.Context, name string) ([]domain.TaskRecord, error) {
	if u.Storage == nil {
		return nil, domain.ErrNotConfigured
	}
	return u.Storage.Load(ctx, name)
}
func (u *Service) List(ctx context.Context) ([]domain.DatasetMeta, error) {
	if u.Storage == nil {
		return nil, domain.ErrNotConfigured
	}
	return u.Storage.List(ctx)
}
