package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/taskgate/internal/config"
	"github.com/alexisbeaulieu97/taskgate/internal/engine"
	"github.com/alexisbeaulieu97/taskgate/internal/logger"
	"github.com/alexisbeaulieu97/taskgate/internal/model"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run <config>",
		Short: "Execute a pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseConfig(args[0])
			if err != nil {
				return err
			}

			level := "info"
			if flags.verbose || cfg.Settings.Verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{Level: level, Pretty: true})
			if err != nil {
				return err
			}

			summary, err := engine.NewRunner(log).Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			printSummary(summary)

			if summary.Failures() > 0 && !cfg.Settings.ContinueOnError {
				return fmt.Errorf("%d of %d tasks did not succeed", summary.Failures(), len(summary.Results))
			}
			return nil
		},
	}
}

func printSummary(summary *model.RunSummary) {
	out := os.Stdout
	for _, result := range summary.Results {
		fmt.Fprintf(out, "%-10s %-20s %s\n", result.Status, result.TaskID, result.Message)
	}
	fmt.Fprintf(out, "\n%d succeeded, %d failed, %d rejected, %d cancelled in %s\n",
		summary.Succeeded, summary.Failed, summary.Rejected, summary.Cancelled,
		summary.Duration.Round(time.Millisecond))
}
