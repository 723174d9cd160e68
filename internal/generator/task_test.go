package generator

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/anagram/internal/difficulty"
	"svw.info/anagram/internal/dictionary"
	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/letters"
	"svw.info/anagram/internal/ports"
)

func TestScrambleKeepsWordLetters(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, word := range []string{"cat", "window", "a", "bookkeeper"} {
		for k := 0; k <= 3; k++ {
			s := Scramble(rng, word, k)
			require.Len(t, s, len(word)+k)
			ws := letters.MustFromString(word)
			ss, err := letters.FromString(s)
			require.NoError(t, err)
			assert.True(t, letters.IsSubset(ws, ss), "scramble %q lost letters of %q", s, word)
			extra, err := letters.Subtract(ss, ws)
			require.NoError(t, err)
			assert.Equal(t, k, extra.Len())
		}
	}
}

func TestScrambleIsReproducible(t *testing.T) {
	a := Scramble(rand.New(rand.NewSource(99)), "keyboard", 2)
	b := Scramble(rand.New(rand.NewSource(99)), "keyboard", 2)
	assert.Equal(t, a, b)
}

func TestGenerateAllLevels(t *testing.T) {
	dict := dictionary.English()
	g := NewTaskGenerator(dict, nil, nil)

	for level := 1; level <= 10; level++ {
		rng := rand.New(rand.NewSource(int64(level)))
		ps, st, err := g.Generate(context.Background(), rng, ports.GenerateRequest{Level: level, Count: 5, MaxAttempts: 10})
		require.NoError(t, err)
		require.Len(t, ps, 5, "level %d", level)
		assert.Zero(t, st.Skipped)

		cfg := difficulty.For(level)
		for _, p := range ps {
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, level, p.Difficulty)
			require.Len(t, p.Targets, cfg.WordCount)
			require.Len(t, p.Scrambles, cfg.WordCount)

			seen := map[string]bool{}
			for i, w := range p.Targets {
				assert.False(t, seen[w], "duplicate target %q", w)
				seen[w] = true
				assert.True(t, dict.Contains(w))
				assert.GreaterOrEqual(t, len(w), cfg.MinLength)
				assert.LessOrEqual(t, len(w), cfg.MaxLength)

				s := p.Scrambles[i]
				assert.Len(t, s, len(w)+cfg.FalseLetterCount)
				assert.True(t, letters.IsSubset(letters.MustFromString(w), letters.MustFromString(s)))
				assert.Contains(t, p.Prompt, s)
			}

			if cfg.HintStyle == domain.HintNone {
				assert.Nil(t, p.Hints)
				assert.NotContains(t, p.Prompt, "HINTS:")
			} else {
				assert.Len(t, p.Hints, cfg.WordCount)
				assert.Contains(t, p.Prompt, "HINTS:")
			}
		}
	}
}

func TestGenerateIsReproducibleForSeed(t *testing.T) {
	g := NewTaskGenerator(dictionary.English(), nil, nil)
	req := ports.GenerateRequest{Level: 6, Count: 4, MaxAttempts: 5}

	a, _, err := g.Generate(context.Background(), rand.New(rand.NewSource(42)), req)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), rand.New(rand.NewSource(42)), req)
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Targets, b[i].Targets)
		assert.Equal(t, a[i].Scrambles, b[i].Scrambles)
		assert.Equal(t, a[i].Prompt, b[i].Prompt)
	}
}

func TestGenerateSkipsExhaustedPuzzles(t *testing.T) {
	// level 10 needs three words of 5-8 letters; only two exist
	dict := dictionary.New([]string{"house", "water", "cat"})
	g := NewTaskGenerator(dict, nil, nil)

	ps, st, err := g.Generate(context.Background(), rand.New(rand.NewSource(1)), ports.GenerateRequest{Level: 10, Count: 3, MaxAttempts: 4})
	require.NoError(t, err)
	assert.Empty(t, ps)
	assert.Equal(t, 3, st.Skipped)
	assert.Equal(t, 12, st.Nodes)
}

func TestGenerateClampsLevel(t *testing.T) {
	g := NewTaskGenerator(dictionary.Default(), nil, nil)
	ps, _, err := g.Generate(context.Background(), rand.New(rand.NewSource(3)), ports.GenerateRequest{Level: 0, Count: 1, MaxAttempts: 1})
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, 1, ps[0].Difficulty)
	assert.Contains(t, ps[0].Hints["word_1"], "category: ")
}

func TestGenerateStopsOnCanceledContext(t *testing.T) {
	g := NewTaskGenerator(dictionary.Default(), nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ps, _, err := g.Generate(ctx, rand.New(rand.NewSource(3)), ports.GenerateRequest{Level: 1, Count: 3, MaxAttempts: 1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ps)
}

func TestRenderPrompt(t *testing.T) {
	p := RenderPrompt([]string{"tac", "godo"}, map[string]string{
		"word_2": "length: 4 letters",
		"word_1": "length: 3 letters",
	})
	assert.True(t, strings.HasPrefix(p, "ANAGRAM SOLVING TASK\n"))
	assert.Contains(t, p, "ANAGRAMS:\n1. tac\n2. godo\n")
	assert.Contains(t, p, "\nHINTS:\n- word_1: length: 3 letters\n- word_2: length: 4 letters\n")
	assert.Contains(t, p, `{"solutions": ["word1", "word2", "word3", ...]}`)
	assert.True(t, strings.HasSuffix(p, "Your answer:"))

	assert.NotContains(t, RenderPrompt([]string{"tac"}, nil), "HINTS:")
}
