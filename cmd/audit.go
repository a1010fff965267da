package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/audit"
)

func auditCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Read the trail of changes made from this console",
	}

	var limit int
	recent := &cobra.Command{
		Use:   "recent",
		Short: "Show the latest audit events from the Postgres audit table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Audit.DatabaseURL == "" {
				return fmt.Errorf("audit.database_url is not set")
			}
			ctx := cmd.Context()
			sink, err := audit.NewPostgresSink(ctx, a.cfg.Audit)
			if err != nil {
				return err
			}
			defer sink.Close()

			events, err := sink.Recent(ctx, limit)
			if err != nil {
				return err
			}
			if a.output == "json" {
				return writeJSON(a.out, events)
			}
			if len(events) == 0 {
				fmt.Fprintln(a.out, "No audit events recorded")
				return nil
			}
			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tACTOR\tACTION\tENTITY\tTARGET\tOUTCOME\tMESSAGE")
			for _, e := range events {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.Time.Local().Format("2006-01-02 15:04:05"), e.Actor, e.Action, e.Entity, e.TargetID, e.Outcome, e.Message)
			}
			return tw.Flush()
		},
	}
	recent.Flags().IntVarP(&limit, "limit", "n", 20, "number of events to show")

	cmd.AddCommand(recent)
	return cmd
}
