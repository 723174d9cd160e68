package solver

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/letters"
	"svw.info/anagram/internal/metrics"
	"svw.info/anagram/internal/ports"
)

// DefaultMaxWords bounds the dictionary size a decomposer accepts.
const DefaultMaxWords = 500_000

// normalize lowercases input and drops whitespace, returning its multiset and length.
func normalize(input string) (letters.Multiset, int, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(input))
	m, err := letters.FromString(clean)
	if err != nil {
		return letters.Multiset{}, 0, err
	}
	return m, len(clean), nil
}

func checkSize(dict ports.Lexicon, maxWords int) error {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	if dict.Len() > maxWords {
		return fmt.Errorf("%w: %d words, limit %d", domain.ErrDictionaryTooLarge, dict.Len(), maxWords)
	}
	return nil
}

func pair(w1, w2 string) domain.Decomposition {
	if w2 < w1 {
		w1, w2 = w2, w1
	}
	return domain.Decomposition{Words: []string{w1, w2}}
}

// finalize dedupes by word set and orders by word count, then alphabetically.
func finalize(found []domain.Decomposition, st *ports.Stats, start time.Time) []domain.Decomposition {
	seen := make(map[string]struct{}, len(found))
	out := make([]domain.Decomposition, 0, len(found))
	for _, d := range found {
		sort.Strings(d.Words)
		k := d.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Words) != len(out[j].Words) {
			return len(out[i].Words) < len(out[j].Words)
		}
		return out[i].Key() < out[j].Key()
	})
	st.Duration = time.Since(start)
	metrics.DecomposeObserved(st.Duration.Seconds())
	return out
}
