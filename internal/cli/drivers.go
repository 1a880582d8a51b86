package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/app"
)

var (
	driversYear    int
	driversMeeting string
	driversSession string
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List the drivers of a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if driversMeeting == "" {
			return fmt.Errorf("--meeting must be provided")
		}

		opts := app.DriversOptions{
			Year:    driversYear,
			Meeting: driversMeeting,
			Session: driversSession,
		}

		return getApp().Drivers(cmd.Context(), opts)
	},
}

func init() {
	driversCmd.Flags().IntVar(&driversYear, "year", time.Now().Year(), "Season year")
	driversCmd.Flags().StringVar(&driversMeeting, "meeting", "", "Meeting by location, country, or circuit")
	driversCmd.Flags().StringVar(&driversSession, "session", "Qualifying", "Session name")
}
