package solver

import (
	"context"
	"time"

	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/letters"
	"svw.info/anagram/internal/ports"
)

// ScanDecomposer checks every ordered word pair. It is quadratic in the dictionary
// size and serves as a reference for IndexedDecomposer.
type ScanDecomposer struct {
	words []string
	sets  []letters.Multiset
}

// NewScanDecomposer precomputes word multisets. maxWords <= 0 uses DefaultMaxWords.
func NewScanDecomposer(dict ports.Lexicon, maxWords int) (*ScanDecomposer, error) {
	if err := checkSize(dict, maxWords); err != nil {
		return nil, err
	}
	s := &ScanDecomposer{}
	for _, w := range dict.Words() {
		m, err := letters.FromString(w)
		if err != nil {
			continue
		}
		s.words = append(s.words, w)
		s.sets = append(s.sets, m)
	}
	return s, nil
}

func (s *ScanDecomposer) Decompose(ctx context.Context, input string) ([]domain.Decomposition, ports.Stats, error) {
	start := time.Now()
	var st ports.Stats
	full, n, err := normalize(input)
	if err != nil {
		return nil, st, err
	}
	if n == 0 {
		return nil, st, nil
	}

	var found []domain.Decomposition
	for i, w := range s.words {
		if len(w) == n && letters.IsSubset(s.sets[i], full) {
			found = append(found, domain.Decomposition{Words: []string{w}})
		}
	}
	for i, w1 := range s.words {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		if len(w1) >= n || !letters.IsSubset(s.sets[i], full) {
			continue
		}
		rest, err := letters.Subtract(full, s.sets[i])
		if err != nil {
			continue
		}
		for j, w2 := range s.words {
			st.Nodes++
			if len(w1)+len(w2) == n && letters.IsSubset(s.sets[j], rest) {
				found = append(found, pair(w1, w2))
			}
		}
	}
	return finalize(found, &st, start), st, nil
}
