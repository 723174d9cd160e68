package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/infrastructure/storage"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <records.jsonl> [index [response]]",
		Short: "Verify a response against one task record, or self-check a whole file",
		Long: `With only a file, every record is checked against its own answer.
With an index, the response (argument or stdin) is verified against that record.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.service()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			recs, err := storage.ReadRecords(cmd.Context(), f)
			f.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			w := cmd.OutOrStdout()

			if len(args) == 1 {
				failed := 0
				for i, rec := range recs {
					p, err := domain.PuzzleFromRecord(rec)
					if err != nil {
						return fmt.Errorf("record %d: %w", i, err)
					}
					v, err := uc.Verify(cmd.Context(), p, rec.Answer)
					if err != nil {
						return err
					}
					if !v.OK {
						failed++
						a.logger.Warn("record failed", "index", i, "position", v.Position, "reason", v.Reason)
					}
				}
				fmt.Fprintf(w, "%d/%d records verified\n", len(recs)-failed, len(recs))
				if failed > 0 {
					return fmt.Errorf("%d records failed verification", failed)
				}
				return nil
			}

			idx, err := strconv.Atoi(args[1])
			if err != nil || idx < 0 || idx >= len(recs) {
				return fmt.Errorf("index %q out of range [0,%d)", args[1], len(recs))
			}
			p, err := domain.PuzzleFromRecord(recs[idx])
			if err != nil {
				return err
			}
			response := ""
			if len(args) == 3 {
				response = args[2]
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				response = string(b)
			}
			v, err := uc.Verify(cmd.Context(), p, response)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(w)
			return enc.Encode(v)
		},
	}
}
