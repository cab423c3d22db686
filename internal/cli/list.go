package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unvalley/rt/internal/config"
	"github.com/unvalley/rt/internal/detect"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the task catalog for the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(configFile)
			if err != nil {
				return err
			}
			det, err := resolveDetection(settings)
			if err != nil {
				return err
			}

			catalog, err := loadCatalog(det)
			if err != nil {
				return err
			}
			if len(catalog) == 0 {
				return &NoTasksError{Tool: detect.Command(det.Runner)}
			}

			fmt.Fprintf(os.Stderr, "%s (%s)\n", det.Runner, det.RunnerFile)
			printCatalog(os.Stdout, catalog)
			return nil
		},
	}
}
