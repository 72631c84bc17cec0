package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var mapOut string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Render the eight static phase images into the image directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLocal("seed"); err != nil {
				return err
			}

			paths, err := wire.Visual.Seed()
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}

			if mapOut != "" {
				if err := wire.Images.Table().Save(mapOut); err != nil {
					return fmt.Errorf("write phase map: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), mapOut)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mapOut, "write-map", "", "also write the phase -> filename table as YAML to this path")
	return cmd
}
