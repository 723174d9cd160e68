package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/usecase"
)

// shown caps the decompositions listed per input.
const shown = 10

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [letters...]",
		Short: "Find one- and two-word decompositions of a letter set",
		Long: `Arguments are joined into one letter set. Without arguments, letter sets are
read from stdin one per line until EOF or quit/exit/q.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.service()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(args) > 0 {
				return solveOne(cmd.Context(), uc, w, strings.Join(args, " "))
			}
			return solveLoop(cmd.Context(), uc, cmd.InOrStdin(), w, cmd.ErrOrStderr())
		},
	}
}

func solveLoop(ctx context.Context, uc *usecase.Service, in io.Reader, out, prompt io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(prompt, "letters> ")
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit", "q":
			return nil
		}
		err := solveOne(ctx, uc, out, line)
		if errors.Is(err, domain.ErrInvalidInput) {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if err != nil {
			return err
		}
	}
}

func solveOne(ctx context.Context, uc *usecase.Service, w io.Writer, input string) error {
	res, _, err := uc.Decompose(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s:\n", input)
	if len(res) == 0 {
		fmt.Fprintln(w, "no solutions found")
		return nil
	}
	for i, d := range res {
		if i == shown {
			fmt.Fprintf(w, "... and %d more\n", len(res)-shown)
			break
		}
		fmt.Fprintf(w, "%2d. %s\n", i+1, d.Key())
	}
	b, err := json.Marshal(domain.Answer{Solutions: res[0].Words})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "best: %s\n", b)
	return nil
}
