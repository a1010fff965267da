package cmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/mutation"
	"github.com/chrisdamba/foodadmin/internal/screens"
)

func paymentsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "Inspect payments and issue refunds",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		Args:  cobra.NoArgs,
	}
	lf := bindListFlags(list, screens.Payments)
	list.RunE = func(cmd *cobra.Command, args []string) error {
		return showList(cmd.Context(), a, screens.NewPayments(a.client), lf)
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show revenue and transaction counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.client.PaymentStats(cmd.Context())
			if err != nil {
				if errors.Is(err, api.ErrNoSession) {
					return err
				}
				a.log.Error("payment stats fetch failed", "error", err)
				s = models.PaymentStats{}
			}
			if a.output == "json" {
				return writeJSON(a.out, s)
			}
			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Total revenue\t%s\n", models.FormatCurrency(s.TotalRevenue))
			fmt.Fprintf(tw, "Pending amount\t%s\n", models.FormatCurrency(s.PendingAmount))
			fmt.Fprintf(tw, "Completed today\t%d\n", s.CompletedToday)
			fmt.Fprintf(tw, "Failed transactions\t%d\n", s.FailedTransactions)
			return tw.Flush()
		},
	}

	refund := &cobra.Command{
		Use:   "refund PAYMENT_ID",
		Short: "Refund a completed payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			screen := screens.NewPayments(a.client)
			defer screen.Close()
			err := a.mutate(cmd.Context(), mutation.Mutation{
				Action:   "refund",
				Entity:   "payment",
				TargetID: id,
				Confirm:  "Are you sure you want to process this refund?",
				Success:  "Refund processed successfully!",
				Failure:  "Failed to process refund. Please try again.",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.RefundPayment(ctx, id)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}

	cmd.AddCommand(list, stats, refund)
	return cmd
}
