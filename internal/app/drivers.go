package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// Drivers prints the participants of a session.
func (a *App) Drivers(ctx context.Context, opts DriversOptions) error {
	provider, closeProvider := a.newProvider(ctx)
	defer closeProvider()

	session, err := resolveSession(ctx, provider, opts.Year, opts.Meeting, opts.Session)
	if err != nil {
		return err
	}

	drivers, err := provider.Drivers(ctx, session.Key)
	if err != nil {
		return fmt.Errorf("fetch drivers: %w", err)
	}
	if len(drivers) == 0 {
		fmt.Fprintln(os.Stdout, "no drivers found")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%s — %s %d, %s\n\n", session.CircuitName, session.CountryName, session.Year, session.Name)

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "No.\tCode\tName\tTeam")
	for _, d := range drivers {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", d.Number, d.Acronym, d.FullName, d.TeamName)
	}
	return writer.Flush()
}
