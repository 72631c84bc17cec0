package commands

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"lunaphase/internal/domain"
)

func phaseCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "phase [YYYY-MM-DD]",
		Short: "Show the moon's phase for a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateArg(args)
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd)
			defer cancel()

			var report domain.Report
			if at != "" {
				tod, perr := civil.ParseTime(at)
				if perr != nil {
					return fmt.Errorf("--time must be HH:MM:SS, got %q", at)
				}
				report, err = source.Phase(ctx, date, tod)
			} else {
				report, err = source.PhaseAt(ctx, date)
			}
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "time", "", "observation time HH:MM:SS (default from config, 22:00:00)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON instead of a table")
	return cmd
}
