package solver

import (
	"context"
	"sort"
	"time"

	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/letters"
	"svw.info/anagram/internal/ports"
)

// IndexedDecomposer groups dictionary words by letter multiset. A one-word result is
// a word whose multiset equals the input; a two-word result pairs a signature s
// contained in the input with the signature of the remaining letters. Only distinct
// signatures shorter than the input are scanned, and the partner is a map lookup.
type IndexedDecomposer struct {
	index map[letters.Multiset][]string
	sigs  []signature // ascending by length
}

type signature struct {
	set letters.Multiset
	n   int
}

// NewIndexedDecomposer indexes dict. maxWords <= 0 uses DefaultMaxWords.
func NewIndexedDecomposer(dict ports.Lexicon, maxWords int) (*IndexedDecomposer, error) {
	if err := checkSize(dict, maxWords); err != nil {
		return nil, err
	}
	d := &IndexedDecomposer{index: make(map[letters.Multiset][]string)}
	for _, w := range dict.Words() {
		m, err := letters.FromString(w)
		if err != nil {
			continue
		}
		if _, ok := d.index[m]; !ok {
			d.sigs = append(d.sigs, signature{set: m, n: len(w)})
		}
		d.index[m] = append(d.index[m], w)
	}
	sort.SliceStable(d.sigs, func(i, j int) bool { return d.sigs[i].n < d.sigs[j].n })
	return d, nil
}

// Decompose returns every one- or two-word combination whose letters exactly match
// input (whitespace ignored). Invalid characters yield domain.ErrInvalidInput.
func (d *IndexedDecomposer) Decompose(ctx context.Context, input string) ([]domain.Decomposition, ports.Stats, error) {
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
	for _, w := range d.index[full] {
		found = append(found, domain.Decomposition{Words: []string{w}})
	}
	for i, s := range d.sigs {
		if s.n >= n {
			break
		}
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, st, err
			}
		}
		st.Nodes++
		if !letters.IsSubset(s.set, full) {
			continue
		}
		rest, err := letters.Subtract(full, s.set)
		if err != nil {
			continue
		}
		partners := d.index[rest]
		for _, w1 := range d.index[s.set] {
			for _, w2 := range partners {
				found = append(found, pair(w1, w2))
			}
		}
	}
	return finalize(found, &st, start), st, nil
}
