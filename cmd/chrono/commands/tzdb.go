package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"chrono/internal/app"
	"chrono/internal/store"
	"chrono/internal/tzcompile"
	"chrono/internal/tzdata"
)

func tzdbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tzdb",
		Short: "Compile and inspect zone data",
	}
	cmd.AddCommand(tzdbCompileCmd(), tzdbInspectCmd())
	return cmd
}

func tzdbCompileCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "compile <zones.yaml>",
		Short: "Compile YAML zone definitions into an archive or sqlite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			compiled, err := tzcompile.Compile(f)
			if err != nil {
				return err
			}

			if strings.HasSuffix(out, ".db") || strings.HasSuffix(out, ".sqlite") {
				if err := store.WriteSQLite(out, compiled.Version, compiled.Zones); err != nil {
					return err
				}
			} else {
				dst, err := os.Create(out)
				if err != nil {
					return err
				}
				if err := tzdata.WriteArchive(dst, compiled.Version, compiled.Zones); err != nil {
					dst.Close()
					return err
				}
				if err := dst.Close(); err != nil {
					return err
				}
			}
			fmt.Printf("Compiled %d zones (data version %s) to %s\n", len(compiled.Zones), compiled.Version, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output path; a .db or .sqlite suffix writes a database")
	cmd.MarkFlagRequired("out")
	return cmd
}

func tzdbInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>",
		Short: "Summarize a compiled zone data set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wire, err := app.NewWire(app.Config{Home: home, TZDB: args[0]})
			if err != nil {
				return err
			}
			defer wire.Close()

			version, err := wire.Source.DataVersion()
			if err != nil {
				return err
			}
			ids, err := wire.Source.ZoneIDs()
			if err != nil {
				return err
			}
			fmt.Printf("Data version: %s\n", version)
			fmt.Printf("Zones:        %d\n", len(ids))
			for _, id := range ids {
				rules, err := wire.Source.Load(id)
				if err != nil {
					return err
				}
				fmt.Printf("  %-32s %3d transitions, %d rules\n", id, len(rules.Transitions()), len(rules.ProjectionRules()))
			}
			return nil
		},
	}
}
