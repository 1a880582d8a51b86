package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/app"
)

var scheduleYear int

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "List the sessions of a season",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Schedule(cmd.Context(), app.ScheduleOptions{Year: scheduleYear})
	},
}

func init() {
	scheduleCmd.Flags().IntVar(&scheduleYear, "year", time.Now().Year(), "Season year")
}
