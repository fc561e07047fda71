package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"chrono/internal/civil"
	"chrono/internal/zone"
)

func zoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Resolve offsets against zone rules",
	}
	cmd.AddCommand(zoneOffsetCmd())
	return cmd
}

func zoneOffsetCmd() *cobra.Command {
	var (
		instant int64
		local   string
		resolve string
	)
	cmd := &cobra.Command{
		Use:   "offset <zone-id>",
		Short: "Look up the offset for an instant or a local date-time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := appWire.Registry.Lookup(args[0])
			if err != nil {
				return err
			}

			switch {
			case cmd.Flags().Changed("instant"):
				offset, err := rules.OffsetAt(instant)
				if err != nil {
					return err
				}
				fmt.Printf("Offset: %s\n", offset)
				return nil

			case local != "":
				dt, err := civil.ParseDateTime(local)
				if err != nil {
					return err
				}
				policy, err := zone.ParsePolicy(resolve)
				if err != nil {
					return err
				}
				offsets, err := rules.ValidOffsets(dt)
				if err != nil {
					return err
				}
				switch len(offsets) {
				case 0:
					fmt.Println("Local time falls in a gap.")
				case 2:
					fmt.Printf("Local time is ambiguous: %s or %s\n", offsets[0], offsets[1])
				}
				resolved, err := rules.Resolve(dt, policy)
				if err != nil {
					return err
				}
				fmt.Printf("Resolved:     %s\n", resolved)
				fmt.Printf("Epoch second: %d\n", resolved.EpochSecond())
				return nil

			default:
				return fmt.Errorf("one of --instant or --local is required")
			}
		},
	}
	cmd.Flags().Int64Var(&instant, "instant", 0, "epoch second to look up")
	cmd.Flags().StringVar(&local, "local", "", "local date-time to resolve (yyyy-MM-ddTHH:mm[:ss])")
	cmd.Flags().StringVar(&resolve, "resolve", "earlier", "gap/overlap policy: earlier, later, or strict")
	return cmd
}
