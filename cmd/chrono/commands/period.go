package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"chrono/internal/period"
)

func periodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Parse and normalize ISO-8601 periods",
	}
	cmd.AddCommand(periodParseCmd(), periodNormalizeCmd())
	return cmd
}

func periodParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse a period and print its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := period.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Canonical: %s\n", p)
			fmt.Printf("Years: %d  Months: %d  Days: %d\n", p.Years(), p.Months(), p.Days())
			fmt.Printf("Hours: %d  Minutes: %d  Seconds: %d  Nanos: %d\n", p.Hours(), p.Minutes(), p.Seconds(), p.Nanos())
			return nil
		},
	}
}

func periodNormalizeCmd() *cobra.Command {
	var days bool
	cmd := &cobra.Command{
		Use:   "normalize <text>",
		Short: "Normalize a period, carrying units upward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := period.Parse(args[0])
			if err != nil {
				return err
			}
			normalize := p.Normalized
			if days {
				normalize = p.NormalizedWith24HourDays
			}
			normalized, err := normalize()
			if err != nil {
				return err
			}
			fmt.Println(normalized)
			return nil
		},
	}
	cmd.Flags().BoolVar(&days, "days", false, "treat every day as exactly 24 hours")
	return cmd
}
