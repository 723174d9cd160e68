package validator

import "svw.info/anagram/internal/domain"

// Reward scores a free-text model response: 1 when the extracted answer verifies
// against p, 0 otherwise.
func (v *Verifier) Reward(p *domain.Puzzle, response string) float64 {
	if v.Verify(p, Extract(response)) {
		return 1
	}
	return 0
}
