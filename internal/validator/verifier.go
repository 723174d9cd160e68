package validator

import (
	"bytes"
	"encoding/json"
	"strings"

	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/letters"
	"svw.info/anagram/internal/metrics"
	"svw.info/anagram/internal/ports"
)

// Verifier checks submitted solutions against a puzzle's scrambles and targets.
type Verifier struct {
	Dict ports.Lexicon
}

func New(dict ports.Lexicon) *Verifier { return &Verifier{Dict: dict} }

// Verify reports whether answer solves p.
func (v *Verifier) Verify(p *domain.Puzzle, answer string) bool {
	return v.Check(p, answer).OK
}

// Check verifies answer, a JSON object with a "solutions" array of strings, against
// p. Each solution must be a dictionary word, use only letters of its scramble and
// equal the target. The first failure decides the verdict.
func (v *Verifier) Check(p *domain.Puzzle, answer string) domain.Verdict {
	verdict := v.check(p, answer)
	metrics.Verified(verdict.Reason)
	return verdict
}

func (v *Verifier) check(p *domain.Puzzle, answer string) domain.Verdict {
	if p == nil {
		return domain.Verdict{Reason: domain.ReasonParse}
	}
	solutions, ok := parseSolutions(answer)
	if !ok {
		return domain.Verdict{Reason: domain.ReasonParse}
	}
	if len(solutions) != len(p.Targets) || len(p.Scrambles) != len(p.Targets) {
		return domain.Verdict{Reason: domain.ReasonCount}
	}
	for i, sol := range solutions {
		pos := i + 1
		cand := strings.ToLower(strings.TrimSpace(sol))
		target := strings.ToLower(strings.TrimSpace(p.Targets[i]))
		if v.Dict == nil || !v.Dict.Contains(cand) {
			return domain.Verdict{Position: pos, Reason: domain.ReasonDictionary}
		}
		if !fitsScramble(cand, p.Scrambles[i]) {
			return domain.Verdict{Position: pos, Reason: domain.ReasonLetters}
		}
		if cand != target {
			return domain.Verdict{Position: pos, Reason: domain.ReasonTarget}
		}
	}
	return domain.Verdict{OK: true}
}

func fitsScramble(cand, scramble string) bool {
	cm, err := letters.FromString(cand)
	if err != nil {
		return false
	}
	sm, err := letters.FromString(strings.TrimSpace(scramble))
	if err != nil {
		return false
	}
	return letters.IsSubset(cm, sm)
}

// parseSolutions decodes {"solutions": [...]} requiring the exact key and an array
// of strings.
func parseSolutions(answer string) ([]string, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(answer), &obj); err != nil || obj == nil {
		return nil, false
	}
	raw, ok := obj["solutions"]
	if !ok {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, false
	}
	out := make([]string, len(items))
	for i, it := range items {
		it = bytes.TrimSpace(it)
		if len(it) == 0 || it[0] != '"' {
			return nil, false
		}
		if err := json.Unmarshal(it, &out[i]); err != nil {
			return nil, false
		}
	}
	return out, true
}
