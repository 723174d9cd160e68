package generator

import (
	"math/rand"

	"svw.info/anagram/internal/letters"
)

// Scramble returns the letters of word plus falseLetters random letters, in random
// order. False letters are drawn independently and may repeat letters of word.
func Scramble(rng *rand.Rand, word string, falseLetters int) string {
	if falseLetters < 0 {
		falseLetters = 0
	}
	buf := make([]byte, 0, len(word)+falseLetters)
	buf = append(buf, word...)
	for i := 0; i < falseLetters; i++ {
		buf = append(buf, letters.Alphabet[rng.Intn(len(letters.Alphabet))])
	}
	rng.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })
	return string(buf)
}
