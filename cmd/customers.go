package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/export"
	"github.com/chrisdamba/foodadmin/internal/listing"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/mutation"
	"github.com/chrisdamba/foodadmin/internal/screens"
)

func customersCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customer accounts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Args:  cobra.NoArgs,
	}
	lf := bindListFlags(list, screens.Customers)
	list.RunE = func(cmd *cobra.Command, args []string) error {
		return showList(cmd.Context(), a, screens.NewCustomers(a.client), lf)
	}

	show := &cobra.Command{
		Use:   "show CUSTOMER_ID",
		Short: "Show a customer with their recent orders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client.GetCustomer(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, api.ErrNoSession) {
					return err
				}
				return errors.New(api.Message(err, "Error fetching customer details"))
			}
			if a.output == "json" {
				return writeJSON(a.out, c)
			}
			return writeCustomer(a, *c)
		},
	}

	setStatus := &cobra.Command{
		Use:   "set-status CUSTOMER_ID STATUS",
		Short: "Activate or deactivate a customer",
		Long:  "Activate or deactivate a customer. STATUS is one of " + strings.Join(models.CustomerStatuses, ", ") + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, status := args[0], args[1]
			if !slices.Contains(models.CustomerStatuses, status) {
				return fmt.Errorf("unknown customer status %q (want one of %s)", status, strings.Join(models.CustomerStatuses, ", "))
			}
			screen := screens.NewCustomers(a.client)
			defer screen.Close()
			err := a.mutate(cmd.Context(), mutation.Mutation{
				Action:   "set-status",
				Entity:   "customer",
				TargetID: id,
				Success:  "Customer status updated successfully!",
				Failure:  "Error updating customer status",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.UpdateCustomerStatus(ctx, id, status)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}

	del := &cobra.Command{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			screen := screens.NewCustomers(a.client)
			defer screen.Close()
			c, err := find(ctx, screen, args[0])
			if err != nil {
				return err
			}
			err = a.mutate(ctx, mutation.Mutation{
				Action:   "delete",
				Entity:   "customer",
				TargetID: c.ID,
				Confirm:  fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", c.Name),
				Success:  "Customer deleted successfully!",
				Failure:  "Error deleting customer",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.DeleteCustomer(ctx, c.ID)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}

	cmd.AddCommand(list, show, setStatus, del)
	return cmd
}

func writeCustomer(a *App, c models.Customer) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\t%s\n", c.Name)
	fmt.Fprintf(tw, "Email\t%s\n", c.Email)
	fmt.Fprintf(tw, "Phone\t%s\n", c.Phone)
	fmt.Fprintf(tw, "Status\t%s\n", listing.Title(c.Status))
	fmt.Fprintf(tw, "Address\t%s\n", models.FormatAddress(c.Location))
	fmt.Fprintf(tw, "Orders\t%d\n", c.TotalOrders)
	fmt.Fprintf(tw, "Spent\t%s\n", models.FormatCurrency(c.TotalSpent))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Recent orders")
	if len(c.RecentOrders) == 0 {
		fmt.Fprintln(a.out, "No orders yet")
		return nil
	}
	return writeTable(a.out, export.Tabulate(screens.Orders, c.RecentOrders))
}
