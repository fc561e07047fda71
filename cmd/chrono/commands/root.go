package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"chrono/internal/app"
)

var (
	home     string
	tzdbPath string
	appWire  *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "chrono",
		Short: "Civil calendar and time-zone toolkit",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".chrono")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			wire, err := app.NewWire(app.Config{Home: home, TZDB: tzdbPath})
			if err != nil {
				return err
			}
			appWire = wire
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.chrono)")
	root.PersistentFlags().StringVar(&tzdbPath, "tzdb", "", "zone data, a compiled archive or sqlite database (default <home>/zones.tzdb)")

	root.AddCommand(dateCmd(), periodCmd(), zoneCmd(), tzdbCmd())
	return root.Execute()
}
