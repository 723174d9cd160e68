// Package difficulty maps a difficulty level to its generation parameters.
package difficulty

import "svw.info/anagram/internal/domain"

// For returns the generation config for level. Levels are clamped to 1..10.
func For(level int) domain.DifficultyConfig {
	switch {
	case level <= 3:
		return domain.DifficultyConfig{WordCount: 1, MinLength: 3, MaxLength: 4, FalseLetterCount: 0, HintStyle: domain.HintCategory}
	case level <= 5:
		return domain.DifficultyConfig{WordCount: 2, MinLength: 3, MaxLength: 5, FalseLetterCount: 0, HintStyle: domain.HintLength}
	case level <= 7:
		return domain.DifficultyConfig{WordCount: 2, MinLength: 4, MaxLength: 6, FalseLetterCount: 1, HintStyle: domain.HintLength}
	case level <= 9:
		return domain.DifficultyConfig{WordCount: 3, MinLength: 4, MaxLength: 7, FalseLetterCount: 1, HintStyle: domain.HintNone}
	default:
		return domain.DifficultyConfig{WordCount: 3, MinLength: 5, MaxLength: 8, FalseLetterCount: 2, HintStyle: domain.HintNone}
	}
}

// Clamp bounds level to the supported range.
func Clamp(level int) int {
	if level < domain.MinLevel {
		return domain.MinLevel
	}
	if level > domain.MaxLevel {
		return domain.MaxLevel
	}
	return level
}
