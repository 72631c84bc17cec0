package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"lunaphase/internal/domain"
	"lunaphase/internal/services/calendar"
)

func calendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Show every day of a month (default this month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, days, err := monthArg(args)
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd)
			defer cancel()

			snaps, err := source.Calendar(ctx, first, days)
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snaps)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMonth(first, snaps))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON instead of a table")
	return cmd
}

// monthArg parses an optional YYYY-MM argument into the first of that
// month and its length in days.
func monthArg(args []string) (civil.Date, int, error) {
	first := today()
	if len(args) > 0 {
		d, err := civil.ParseDate(args[0] + "-01")
		if err != nil {
			return civil.Date{}, 0, fmt.Errorf("month must be YYYY-MM, got %q", args[0])
		}
		first = d
	}
	return calendar.MonthSpan(first.Year, first.Month)
}

// renderMonth prints one line per day; cardinal phases are highlighted.
func renderMonth(first civil.Date, snaps []domain.Snapshot) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s %d", first.Month, first.Year)),
		lipgloss.JoinHorizontal(lipgloss.Top,
			headStyle.Render("Day"), headStyle.Render(""), headStyle.Width(18).Align(lipgloss.Left).Render(" Phase"), headStyle.Render("Lit")),
	}
	for _, s := range snaps {
		name := s.Phase().String()
		style := valueStyle
		switch {
		case s.IsFullMoon():
			style = fullStyle
		case s.IsNewMoon():
			style = newStyle
		}
		day := fmt.Sprintf("%s %s", s.Date().In(time.UTC).Weekday().String()[:3], humanize.Ordinal(s.Date().Day))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			cellStyle.Width(10).Render(day),
			cellStyle.Width(4).Render(symbol(s.Phase())),
			style.Width(18).Render(" "+name),
			cellStyle.Render(humanize.FtoaWithDigits(s.IlluminationPercent(), 0)+"%"),
		))
	}
	return strings.Join(lines, "\n")
}

// withTimeout bounds a command's calls when talking to a remote server.
func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), requestTimeout)
}
