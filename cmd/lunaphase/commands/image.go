package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lunaphase/internal/render"
)

func imageCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "image [YYYY-MM-DD]",
		Short: "Select or render the moon image for a date",
		Long: "Without --out, prints the static image for the date's phase, rendering\n" +
			"and storing a new one when the static file is missing. With --out,\n" +
			"renders the exact illumination for the date to that path.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateArg(args)
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd)
			defer cancel()

			report, err := source.PhaseAt(ctx, date)
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), report.Image)
				return nil
			}

			snap := report.Snapshot
			img := render.Moon(cfg.ImageSize, snap.IlluminationPercent(), snap.PhaseAngle())
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := render.EncodePNG(f, img); err != nil {
				_ = f.Close()
				return fmt.Errorf("write %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", out, snap.Phase(), date)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write a freshly rendered PNG to this path")
	return cmd
}
