package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/app"
)

var (
	compareYear    int
	compareMeeting string
	compareSession string
	compareDriverA string
	compareDriverB string
	comparePNGPath string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two drivers' style fingerprints in one session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if compareMeeting == "" {
			return fmt.Errorf("--meeting must be provided")
		}
		if compareDriverA == "" || compareDriverB == "" {
			return fmt.Errorf("both --driver-a and --driver-b must be provided")
		}

		opts := app.CompareOptions{
			Year:    compareYear,
			Meeting: compareMeeting,
			Session: compareSession,
			DriverA: compareDriverA,
			DriverB: compareDriverB,
			PNGPath: comparePNGPath,
		}

		return getApp().Compare(cmd.Context(), opts)
	},
}

func init() {
	compareCmd.Flags().IntVar(&compareYear, "year", time.Now().Year(), "Season year")
	compareCmd.Flags().StringVar(&compareMeeting, "meeting", "", "Meeting by location, country, or circuit (e.g. monza)")
	compareCmd.Flags().StringVar(&compareSession, "session", "Qualifying", "Session name (e.g. Qualifying, Race, Practice 2)")
	compareCmd.Flags().StringVar(&compareDriverA, "driver-a", "", "First driver, by acronym or car number")
	compareCmd.Flags().StringVar(&compareDriverB, "driver-b", "", "Second driver, by acronym or car number")
	compareCmd.Flags().StringVar(&comparePNGPath, "png", "", "Path to write comparison chart PNG")
}
