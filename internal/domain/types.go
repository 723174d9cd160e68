package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DifficultyConfig parameterises puzzle generation for one difficulty level.
type DifficultyConfig struct {
	WordCount        int       `json:"wordCount"`
	MinLength        int       `json:"minLength"`
	MaxLength        int       `json:"maxLength"`
	FalseLetterCount int       `json:"falseLetters"`
	HintStyle        HintStyle `json:"hintStyle"`
}

// Answer is the canonical answer and expected submission shape.
type Answer struct {
	Solutions []string `json:"solutions"`
}

// Puzzle is one generated anagram task. Scrambles and Targets are paired by position.
// A Puzzle is never mutated after generation.
type Puzzle struct {
	ID         string            `json:"id,omitempty"`
	Difficulty int               `json:"difficulty"`
	Prompt     string            `json:"prompt"`
	Scrambles  []string          `json:"anagrams"`
	Targets    []string          `json:"target_words"`
	Hints      map[string]string `json:"hints,omitempty"`
	CreatedAt  int64             `json:"createdAt,omitempty"`
}

// Answer renders the canonical answer JSON for the puzzle.
func (p *Puzzle) Answer() string {
	b, _ := json.Marshal(Answer{Solutions: p.Targets})
	return string(b)
}

// Record converts the puzzle to its persisted task record.
func (p *Puzzle) Record() TaskRecord {
	return TaskRecord{
		Question:   p.Prompt,
		Answer:     p.Answer(),
		Difficulty: p.Difficulty,
		Metadata: TaskMetadata{
			ID:          p.ID,
			Anagrams:    p.Scrambles,
			TargetWords: p.Targets,
			Hints:       p.Hints,
		},
	}
}

// HintKey is the hints map key for the 1-indexed scramble position.
func HintKey(pos int) string { return fmt.Sprintf("word_%d", pos) }

// TaskRecord is one line of a dataset stream.
type TaskRecord struct {
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	Difficulty int          `json:"difficulty"`
	Metadata   TaskMetadata `json:"metadata"`
}

// TaskMetadata carries what verification needs besides the answer.
type TaskMetadata struct {
	ID          string            `json:"id,omitempty"`
	Anagrams    []string          `json:"anagrams"`
	TargetWords []string          `json:"target_words"`
	Hints       map[string]string `json:"hints,omitempty"`
}

// PuzzleFromRecord rebuilds a puzzle from a task record. The answer JSON is the
// source of truth for the targets.
func PuzzleFromRecord(rec TaskRecord) (*Puzzle, error) {
	var ans Answer
	if err := json.Unmarshal([]byte(rec.Answer), &ans); err != nil {
		return nil, fmt.Errorf("decode answer: %w", err)
	}
	if len(ans.Solutions) != len(rec.Metadata.Anagrams) {
		return nil, fmt.Errorf("record has %d anagrams but %d solutions", len(rec.Metadata.Anagrams), len(ans.Solutions))
	}
	return &Puzzle{
		ID:         rec.Metadata.ID,
		Difficulty: rec.Difficulty,
		Prompt:     rec.Question,
		Scrambles:  rec.Metadata.Anagrams,
		Targets:    ans.Solutions,
		Hints:      rec.Metadata.Hints,
	}, nil
}

// Decomposition is a set of one or two words whose letters exactly match an input.
// Words are kept sorted.
type Decomposition struct {
	Words []string `json:"words"`
}

// Key identifies the decomposition independent of word order.
func (d Decomposition) Key() string { return strings.Join(d.Words, " ") }

// Verdict explains a verification outcome. Position is 1-indexed and zero when the
// failure is not tied to a scramble.
type Verdict struct {
	OK       bool   `json:"ok"`
	Position int    `json:"position,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Verdict reasons.
const (
	ReasonParse      = "parse"
	ReasonCount      = "count"
	ReasonDictionary = "dictionary"
	ReasonLetters    = "letters"
	ReasonTarget     = "target"
)

// DatasetMeta is a lightweight listing entry for a stored dataset stream.
type DatasetMeta struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
}
