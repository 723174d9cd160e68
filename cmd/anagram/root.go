package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/anagram/internal/config"
	"svw.info/anagram/internal/dictionary"
	"svw.info/anagram/internal/generator"
	"svw.info/anagram/internal/hint"
	"svw.info/anagram/internal/infrastructure/storage"
	"svw.info/anagram/internal/ports"
	"svw.info/anagram/internal/solver"
	"svw.info/anagram/internal/usecase"
	"svw.info/anagram/internal/validator"
)

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	dictPath   string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "anagram",
		Short:        "Generate, verify and solve anagram puzzles",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.dictPath, "dictionary", "", "word list, one word per line (overrides config)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")

	root.AddCommand(
		newGenerateCmd(a),
		newDatasetCmd(a),
		newVerifyCmd(a),
		newSolveCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dictPath != "" {
		cfg.DictionaryPath = a.dictPath
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func (a *app) dictionary() (*dictionary.Dictionary, error) {
	return dictionary.Load(a.cfg.DictionaryPath, a.logger)
}

func (a *app) decomposer(dict ports.Lexicon) (ports.Decomposer, error) {
	switch strings.ToLower(strings.TrimSpace(a.cfg.Solver)) {
	case "scan":
		return solver.NewScanDecomposer(dict, a.cfg.MaxDictWords)
	case "indexed", "":
		return solver.NewIndexedDecomposer(dict, a.cfg.MaxDictWords)
	default:
		return nil, fmt.Errorf("unknown solver %q", a.cfg.Solver)
	}
}

// service wires providers -> use cases for the loaded dictionary.
func (a *app) service() (*usecase.Service, error) {
	dict, err := a.dictionary()
	if err != nil {
		return nil, err
	}
	d, err := a.decomposer(dict)
	if err != nil {
		return nil, err
	}
	return usecase.NewService(
		generator.NewTaskGenerator(dict, hint.NewBuilder(nil), a.logger),
		validator.New(dict),
		d,
		storage.NewJSONL(a.cfg.OutputDir),
	), nil
}
