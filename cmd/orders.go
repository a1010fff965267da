package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/listing"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/mutation"
	"github.com/chrisdamba/foodadmin/internal/relation"
	"github.com/chrisdamba/foodadmin/internal/screens"
)

func ordersCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "List orders and move them through their statuses",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Args:  cobra.NoArgs,
	}
	lf := bindListFlags(list, screens.Orders)
	list.RunE = func(cmd *cobra.Command, args []string) error {
		return showList(cmd.Context(), a, screens.NewOrders(a.client), lf)
	}

	show := &cobra.Command{
		Use:   "show ORDER_ID",
		Short: "Show an order with its items and totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := find(cmd.Context(), screens.NewOrders(a.client), args[0])
			if err != nil {
				return err
			}
			if a.output == "json" {
				return writeJSON(a.out, o)
			}
			return writeOrder(a, o)
		},
	}

	setStatus := &cobra.Command{
		Use:   "set-status ORDER_ID STATUS",
		Short: "Change the status of an order",
		Long:  "Change the status of an order. STATUS is one of " + strings.Join(models.OrderStatuses, ", ") + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, status := args[0], args[1]
			if !slices.Contains(models.OrderStatuses, status) {
				return fmt.Errorf("unknown order status %q (want one of %s)", status, strings.Join(models.OrderStatuses, ", "))
			}
			screen := screens.NewOrders(a.client)
			defer screen.Close()
			err := a.mutate(cmd.Context(), mutation.Mutation{
				Action:   "set-status",
				Entity:   "order",
				TargetID: id,
				Success:  "Order status updated successfully!",
				Failure:  "Error updating order status",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.UpdateOrderStatus(ctx, id, status)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}

	cmd.AddCommand(list, show, setStatus)
	return cmd
}

func writeOrder(a *App, o models.Order) error {
	buyer := relation.Normalize(relation.User, o.Buyer())
	driver := relation.Normalize(relation.AssignedDriver, o.Driver)

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Order\t%s\n", o.OrderNumber)
	fmt.Fprintf(tw, "Status\t%s\n", listing.Title(o.DisplayStatus()))
	fmt.Fprintf(tw, "Placed\t%s\n", models.FormatDate(o.CreatedAt))
	fmt.Fprintf(tw, "Customer\t%s\n", withContact(buyer))
	fmt.Fprintf(tw, "Restaurant\t%s\n", relation.Name(relation.Restaurant, o.Restaurant))
	fmt.Fprintf(tw, "Driver\t%s\n", withContact(driver))
	fmt.Fprintf(tw, "Deliver to\t%s\n", models.FormatAddress(o.DeliveryAddress))
	if o.PaymentMethod != "" {
		fmt.Fprintf(tw, "Payment\t%s\n", listing.Title(o.PaymentMethod))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	tw = tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ITEM\tQTY\tPRICE\t")
	for _, item := range o.Items {
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", item.Name, item.Quantity, models.FormatCurrency(item.Price*float64(item.Quantity)))
	}
	t := o.Totals()
	fmt.Fprintf(tw, "Subtotal\t\t%s\t\n", models.FormatCurrency(t.Subtotal))
	fmt.Fprintf(tw, "Delivery fee\t\t%s\t\n", models.FormatCurrency(t.DeliveryFee))
	fmt.Fprintf(tw, "Tax\t\t%s\t\n", models.FormatCurrency(t.Tax))
	fmt.Fprintf(tw, "Total\t\t%s\t\n", models.FormatCurrency(t.Total))
	return tw.Flush()
}

func withContact(d relation.Display) string {
	if d.ContactLine == "" {
		return d.DisplayName
	}
	return d.DisplayName + " (" + d.ContactLine + ")"
}
