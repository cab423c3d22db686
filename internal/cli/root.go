package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version and Commit are set via LDFLAGS at build time.
var (
	Version = "dev"
	Commit  = "none"
)

var (
	verbose    bool
	configFile string
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rt [task] [args...]",
		Short: "Frontend for just, task, mise, mask, cargo-make and make",
		Long: "rt detects which task runner governs the current directory, lists its " +
			"tasks, prompts for required arguments, runs the chosen task, and keeps " +
			"an execution history.",
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			task, passthrough := splitTaskArgs(args)
			return runTask(task, passthrough)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configFile, "config", ".rt.yml", "path to config file")

	root.AddCommand(newListCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// splitTaskArgs separates the task name from passthrough arguments.
// A leading `--` in the remainder is dropped so `rt build -- --flag`
// forwards `--flag` untouched.
func splitTaskArgs(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	task := args[0]
	rest := args[1:]
	if len(rest) > 0 && rest[0] == "--" {
		rest = rest[1:]
	}
	return task, rest
}
