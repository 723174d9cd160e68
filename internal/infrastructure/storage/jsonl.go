package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"svw.info/anagram/internal/domain"
)

const ext = ".jsonl"

// maxLine bounds a single record; prompts are a few hundred bytes.
const maxLine = 1 << 20

// JSONL stores each dataset as <dir>/<name>.jsonl, one task record per line.
type JSONL struct{ dir string }

func NewJSONL(dir string) *JSONL { return &JSONL{dir: dir} }

func (s *JSONL) pathFor(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid dataset name %q", name)
	}
	return filepath.Join(s.dir, strings.TrimSuffix(name, ext)+ext), nil
}

// Save writes recs to the named dataset, replacing any previous content.
func (s *JSONL) Save(ctx context.Context, name string, recs []domain.TaskRecord) error {
	target, err := s.pathFor(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := WriteRecords(ctx, f, recs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads every record of the named dataset.
func (s *JSONL) Load(ctx context.Context, name string) ([]domain.TaskRecord, error) {
	target, err := s.pathFor(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(target)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRecords(ctx, f)
}

// List reports the datasets in the directory with their record counts.
func (s *JSONL) List(ctx context.Context) ([]domain.DatasetMeta, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.DatasetMeta
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		n, err := countLines(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, domain.DatasetMeta{Name: strings.TrimSuffix(e.Name(), ext), Records: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// WriteRecords encodes recs one JSON object per line.
func WriteRecords(ctx context.Context, w io.Writer, recs []domain.TaskRecord) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, r := range recs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadRecords decodes a line-delimited record stream. Blank lines are skipped.
func ReadRecords(ctx context.Context, r io.Reader) ([]domain.TaskRecord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var out []domain.TaskRecord
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b := sc.Bytes()
		if len(strings.TrimSpace(string(b))) == 0 {
			continue
		}
		var rec domain.TaskRecord
		if err := json.Unmarshal(b, &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		if len(strings.TrimSpace(sc.Text())) > 0 {
			n++
		}
	}
	return n, sc.Err()
}
