package validator

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/anagram/internal/dictionary"
	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/generator"
	"svw.info/anagram/internal/ports"
)

func catPuzzle() *domain.Puzzle {
	return &domain.Puzzle{Difficulty: 1, Scrambles: []string{"tca"}, Targets: []string{"cat"}}
}

func TestVerifyCanonicalAnswer(t *testing.T) {
	v := New(dictionary.New([]string{"cat", "act"}))
	p := catPuzzle()
	assert.True(t, v.Verify(p, `{"solutions": ["cat"]}`))
	assert.True(t, v.Verify(p, p.Answer()))
}

func TestVerifyRoundTripGeneratedPuzzles(t *testing.T) {
	dict := dictionary.English()
	g := generator.NewTaskGenerator(dict, nil, nil)
	v := New(dict)
	for level := 1; level <= 10; level++ {
		ps, _, err := g.Generate(context.Background(), rand.New(rand.NewSource(int64(100+level))), ports.GenerateRequest{Level: level, Count: 3, MaxAttempts: 5})
		require.NoError(t, err)
		for _, p := range ps {
			assert.True(t, v.Verify(p, p.Answer()), "level %d targets %v scrambles %v", level, p.Targets, p.Scrambles)
		}
	}
}

func TestCheckReasons(t *testing.T) {
	v := New(dictionary.New([]string{"cat", "act", "cats", "dog"}))
	cases := []struct {
		name   string
		answer string
		want   domain.Verdict
	}{
		{"other word same letters", `{"solutions": ["act"]}`, domain.Verdict{Position: 1, Reason: domain.ReasonTarget}},
		{"extra letter", `{"solutions": ["cats"]}`, domain.Verdict{Position: 1, Reason: domain.ReasonLetters}},
		{"not a word", `{"solutions": ["tac"]}`, domain.Verdict{Position: 1, Reason: domain.ReasonDictionary}},
		{"too many", `{"solutions": ["cat", "dog"]}`, domain.Verdict{Reason: domain.ReasonCount}},
		{"empty list", `{"solutions": []}`, domain.Verdict{Reason: domain.ReasonCount}},
		{"not json", `cat`, domain.Verdict{Reason: domain.ReasonParse}},
		{"missing key", `{"answers": ["cat"]}`, domain.Verdict{Reason: domain.ReasonParse}},
		{"key case differs", `{"Solutions": ["cat"]}`, domain.Verdict{Reason: domain.ReasonParse}},
		{"not a list", `{"solutions": "cat"}`, domain.Verdict{Reason: domain.ReasonParse}},
		{"null list", `{"solutions": null}`, domain.Verdict{Reason: domain.ReasonParse}},
		{"non-string item", `{"solutions": [7]}`, domain.Verdict{Reason: domain.ReasonParse}},
		{"top-level array", `["cat"]`, domain.Verdict{Reason: domain.ReasonParse}},
		{"empty", ``, domain.Verdict{Reason: domain.ReasonParse}},
		{"case and spaces", `{"solutions": ["  CaT "]}`, domain.Verdict{OK: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.Check(catPuzzle(), tc.answer))
		})
	}
}

func TestVerifyInsufficientLetters(t *testing.T) {
	v := New(dictionary.New([]string{"cat", "cats"}))
	p := &domain.Puzzle{Scrambles: []string{"act"}, Targets: []string{"cat"}}
	assert.False(t, v.Verify(p, `{"solutions": ["cats"]}`))
}

func TestVerifyShortCircuitsOnFirstFailure(t *testing.T) {
	v := New(dictionary.Default())
	p := &domain.Puzzle{Scrambles: []string{"godx", "tca"}, Targets: []string{"dog", "cat"}}
	assert.True(t, v.Verify(p, `{"solutions": ["dog", "cat"]}`))
	assert.Equal(t, domain.Verdict{Position: 2, Reason: domain.ReasonLetters}, v.Check(p, `{"solutions": ["dog", "car"]}`))
	assert.False(t, v.Verify(p, `{"solutions": ["cat", "dog"]}`))
}

func TestVerifyNeverPanics(t *testing.T) {
	v := New(nil)
	assert.False(t, v.Verify(nil, `{"solutions": []}`))
	assert.False(t, v.Verify(catPuzzle(), `{"solutions": ["cat"]}`))
	mismatched := &domain.Puzzle{Scrambles: []string{"tca"}, Targets: []string{"cat", "dog"}}
	assert.False(t, New(dictionary.Default()).Verify(mismatched, `{"solutions": ["cat", "dog"]}`))
}

func TestReward(t *testing.T) {
	v := New(dictionary.Default())
	p := catPuzzle()
	assert.Equal(t, 1.0, v.Reward(p, "Let me think... tca is cat.\n{\"solutions\": [\"cat\"]}"))
	assert.Equal(t, 0.0, v.Reward(p, `The answer is cat`))
	assert.Equal(t, 0.0, v.Reward(p, `{"solutions": ["dog"]}`))
}
