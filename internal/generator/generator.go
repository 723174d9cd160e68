package generator

import (
	"log/slog"

	"svw.info/anagram/internal/hint"
	"svw.info/anagram/internal/ports"
)

// TaskGenerator creates anagram puzzles from a dictionary.
type TaskGenerator struct {
	Dict   ports.Lexicon
	Hinter ports.Hinter
	Logger *slog.Logger
}

// NewTaskGenerator wires a generator over dict. A nil hinter uses the default
// category table.
func NewTaskGenerator(dict ports.Lexicon, h ports.Hinter, logger *slog.Logger) *TaskGenerator {
	if h == nil {
		h = hint.NewBuilder(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskGenerator{Dict: dict, Hinter: h, Logger: logger}
}

// Note: Generate is implemented in task.go.
