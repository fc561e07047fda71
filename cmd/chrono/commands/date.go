package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"chrono/internal/civil"
)

var weekdayNames = [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date <yyyy-MM-dd>",
		Short: "Inspect a calendar date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := civil.ParseDate(args[0])
			if err != nil {
				return err
			}
			weekYear, week := d.ISOWeek()
			fmt.Printf("Date:      %s\n", d)
			fmt.Printf("Epoch day: %d\n", d.EpochDay())
			fmt.Printf("Weekday:   %s\n", weekdayNames[d.Weekday()])
			fmt.Printf("ISO week:  %d-W%02d\n", weekYear, week)
			return nil
		},
	}
}
