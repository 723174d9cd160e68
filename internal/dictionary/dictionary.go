// Package dictionary loads and holds the immutable word set shared by puzzle
// generation, verification and decomposition.
package dictionary

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"
)

//go:embed default_words.txt
var defaultWordsData string

//go:embed english_words.txt
var englishWordsData string

// Dictionary is a deduplicated set of lowercase a-z words. It is safe for
// concurrent reads and is never mutated after construction.
type Dictionary struct {
	words []string
	set   map[string]struct{}
	byLen map[int][]string
}

// New builds a dictionary from raw words. Entries are lowercased and trimmed;
// blanks and entries with characters outside a-z are dropped.
func New(words []string) *Dictionary {
	d := &Dictionary{
		set:   make(map[string]struct{}, len(words)),
		byLen: make(map[int][]string),
	}
	for _, w := range words {
		w = normalize(w)
		if !valid(w) {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
	}
	sort.Strings(d.words)
	for _, w := range d.words {
		d.byLen[len(w)] = append(d.byLen[len(w)], w)
	}
	return d
}

// Default returns the small built-in word set used when no dictionary file exists.
func Default() *Dictionary { return New(parseLines(defaultWordsData)) }

// English returns the sample English word list written by `anagram dataset` when
// no dictionary file is configured.
func English() *Dictionary { return New(parseLines(englishWordsData)) }

// Contains reports membership after lowercasing and trimming w.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[normalize(w)]
	return ok
}

// Len is the number of distinct words.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns all words in sorted order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// InLengthRange returns words whose length lies in [min, max], sorted by length
// then alphabetically.
func (d *Dictionary) InLengthRange(min, max int) []string {
	var out []string
	for n := min; n <= max; n++ {
		out = append(out, d.byLen[n]...)
	}
	return out
}

// Load reads a line-delimited dictionary file. A missing file falls back to
// Default; other read errors are returned.
func Load(path string, logger *slog.Logger) (*Dictionary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("dictionary file missing, using built-in words", "path", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	logger.Debug("dictionary loaded", "path", path, "words", d.Len())
	return d, nil
}

// Read parses one word per line. Lines starting with '#' are comments.
func Read(r io.Reader) (*Dictionary, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(words), nil
}

// Write emits the dictionary in the line format Read accepts.
func Write(w io.Writer, d *Dictionary) error {
	bw := bufio.NewWriter(w)
	for _, word := range d.words {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func parseLines(data string) []string {
	var out []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			out = append(out, line)
		}
	}
	return out
}

func normalize(w string) string { return strings.ToLower(strings.TrimSpace(w)) }

func valid(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
