package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"
)

// Schedule prints the timed sessions of a season.
func (a *App) Schedule(ctx context.Context, opts ScheduleOptions) error {
	provider, closeProvider := a.newProvider(ctx)
	defer closeProvider()

	sessions, err := provider.Sessions(ctx, opts.Year)
	if err != nil {
		return fmt.Errorf("fetch %d schedule: %w", opts.Year, err)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stdout, "no sessions found")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Starts (UTC)\tCountry\tCircuit\tSession")
	for _, s := range sessions {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			s.Starts.UTC().Format(time.RFC3339),
			s.CountryName,
			s.CircuitName,
			s.Name,
		)
	}
	return writer.Flush()
}
