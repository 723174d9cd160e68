package generator

import (
	"fmt"
	"strings"

	"svw.info/anagram/internal/domain"
)

const promptRules = `ANAGRAM SOLVING TASK

RULES:
1. You are given scrambled letters (anagrams) that form valid English words
2. Each anagram corresponds to exactly one word
3. Use only the letters provided in each anagram
4. Each letter must be used exactly once
5. The solution must be a valid English word

TASK:
Solve the following anagrams by rearranging the letters to form valid English words.

ANAGRAMS:
`

const promptOutput = `
OUTPUT FORMAT:
Provide your answer as a JSON object:
{"solutions": ["word1", "word2", "word3", ...]}

Your answer:`

// RenderPrompt builds the task text: rules, 1-indexed scrambles, optional hints in
// scramble order, and the answer format.
func RenderPrompt(scrambles []string, hints map[string]string) string {
	var b strings.Builder
	b.WriteString(promptRules)
	for i, s := range scrambles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	if len(hints) > 0 {
		b.WriteString("\nHINTS:\n")
		for i := range scrambles {
			key := domain.HintKey(i + 1)
			if h, ok := hints[key]; ok {
				fmt.Fprintf(&b, "- %s: %s\n", key, h)
			}
		}
	}
	b.WriteString(promptOutput)
	return b.String()
}
