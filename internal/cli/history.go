package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/unvalley/rt/internal/history"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded executions, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := history.ReadMerged()
			if err != nil {
				return err
			}
			if limit > 0 && len(records) > limit {
				records = records[len(records)-limit:]
			}
			printHistory(os.Stdout, records)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show only the most recent N records")

	return cmd
}

func printHistory(w io.Writer, records []history.Record) {
	for _, rec := range records {
		ts := rec.Timestamp
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			ts = t.Format("2006-01-02 15:04:05")
		}

		status := "ok"
		if rec.ExitCode != 0 {
			status = fmt.Sprintf("exit %d", rec.ExitCode)
		}

		line := fmt.Sprintf("%s  %-7s  %s %s", ts, status, rec.Program, strings.Join(rec.Args, " "))
		if rec.WorkingDirectory != "" {
			line += fmt.Sprintf("  (%s)", rec.WorkingDirectory)
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
