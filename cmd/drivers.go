package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/listing"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/mutation"
	"github.com/chrisdamba/foodadmin/internal/screens"
	"github.com/chrisdamba/foodadmin/internal/validate"
)

func driversCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "drivers",
		Aliases: []string{"driver"},
		Short:   "Manage delivery drivers",
	}
	cmd.AddCommand(
		driversListCmd(a),
		driversAddCmd(a),
		driversUpdateCmd(a),
		driversSetStatusCmd(a),
		driversPasswordCmd(a),
		driversDeleteCmd(a),
		driversBulkDeleteCmd(a),
	)
	return cmd
}

func driversListCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List drivers",
		Args:  cobra.NoArgs,
	}
	lf := bindListFlags(cmd, screens.Drivers)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return showList(cmd.Context(), a, screens.NewDrivers(a.client), lf)
	}
	return cmd
}

func driversAddCmd(a *App) *cobra.Command {
	var nd models.NewDriver
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ask(&nd.Password, "Password:"); err != nil {
				return err
			}
			if err := a.ask(&nd.ConfirmPassword, "Confirm password:"); err != nil {
				return err
			}
			if err := validate.Struct(&nd); err != nil {
				return err
			}
			screen := screens.NewDrivers(a.client)
			defer screen.Close()
			err := a.mutate(cmd.Context(), mutation.Mutation{
				Action:  "create",
				Entity:  "driver",
				Success: "Driver registered successfully!",
				Failure: "Error registering driver",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.CreateDriver(ctx, nd)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&nd.Name, "name", "", "full name")
	flags.StringVar(&nd.Email, "email", "", "email address")
	flags.StringVar(&nd.Phone, "phone", "", "phone number, at least 10 characters")
	flags.StringVar(&nd.Password, "password", "", "login password (asked for when omitted)")
	flags.StringVar(&nd.ConfirmPassword, "confirm-password", "", "the password again")
	flags.StringVar(&nd.VehicleType, "vehicle-type", "", "vehicle type, e.g. motorcycle")
	flags.StringVar(&nd.VehicleNumber, "vehicle-number", "", "vehicle registration number")
	flags.StringVar(&nd.LicenseNumber, "license-number", "", "driver's license number")
	flags.StringVar(&nd.Country, "country", "", "country")
	flags.StringVar(&nd.City, "city", "", "city")
	flags.StringVar(&nd.Region, "region", "", "region")
	return cmd
}

func driversUpdateCmd(a *App) *cobra.Command {
	var u models.DriverUpdate
	cmd := &cobra.Command{
		Use:   "update DRIVER_ID",
		Short: "Change a driver's details; only the given flags are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if u == (models.DriverUpdate{}) {
				return fmt.Errorf("nothing to update")
			}
			return updateDriver(cmd.Context(), a, args[0], u, "Driver updated successfully!", "Error updating driver")
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&u.Name, "name", "", "full name")
	flags.StringVar(&u.Email, "email", "", "email address")
	flags.StringVar(&u.Phone, "phone", "", "phone number")
	flags.StringVar(&u.VehicleType, "vehicle-type", "", "vehicle type")
	flags.StringVar(&u.VehicleNumber, "vehicle-number", "", "vehicle registration number")
	flags.StringVar(&u.LicenseNumber, "license-number", "", "driver's license number")
	flags.StringVar(&u.Status, "status", "", "status: "+strings.Join(models.DriverStatuses, ", "))
	return cmd
}

func driversSetStatusCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status DRIVER_ID STATUS",
		Short: "Change a driver's status",
		Long:  "Change a driver's status. STATUS is one of " + strings.Join(models.DriverStatuses, ", ") + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(models.DriverStatuses, args[1]) {
				return fmt.Errorf("unknown driver status %q (want one of %s)", args[1], strings.Join(models.DriverStatuses, ", "))
			}
			u := models.DriverUpdate{Status: args[1]}
			return updateDriver(cmd.Context(), a, args[0], u, "Driver status updated successfully!", "Error updating driver status")
		},
	}
}

func updateDriver(ctx context.Context, a *App, id string, u models.DriverUpdate, success, failure string) error {
	if err := validate.Struct(&u); err != nil {
		return err
	}
	screen := screens.NewDrivers(a.client)
	defer screen.Close()
	err := a.mutate(ctx, mutation.Mutation{
		Action:   "update",
		Entity:   "driver",
		TargetID: id,
		Success:  success,
		Failure:  failure,
		Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
			return a.client.UpdateDriver(ctx, id, u)
		},
	}, screen)
	if err == nil {
		showCounts(a, screen)
	}
	return err
}

func driversPasswordCmd(a *App) *cobra.Command {
	var p models.PasswordChange
	cmd := &cobra.Command{
		Use:   "password DRIVER_ID",
		Short: "Set a new login password for a driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ask(&p.NewPassword, "New password:"); err != nil {
				return err
			}
			if err := a.ask(&p.ConfirmPassword, "Confirm new password:"); err != nil {
				return err
			}
			if err := validate.Struct(&p); err != nil {
				return err
			}
			id := args[0]
			return a.mutate(cmd.Context(), mutation.Mutation{
				Action:   "change-password",
				Entity:   "driver",
				TargetID: id,
				Success:  "Password updated successfully!",
				Failure:  "Error updating password",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.ChangeDriverPassword(ctx, id, p)
				},
			}, nil)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&p.CurrentPassword, "current", "", "the driver's current password, when known")
	flags.StringVar(&p.NewPassword, "new", "", "new password, at least 6 characters (asked for when omitted)")
	flags.StringVar(&p.ConfirmPassword, "confirm", "", "the new password again")
	return cmd
}

func driversDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete DRIVER_ID",
		Short: "Delete a driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			screen := screens.NewDrivers(a.client)
			defer screen.Close()
			d, err := find(ctx, screen, args[0])
			if err != nil {
				return err
			}
			err = a.mutate(ctx, mutation.Mutation{
				Action:   "delete",
				Entity:   "driver",
				TargetID: d.ID,
				Confirm:  fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", d.Name),
				Success:  "Driver deleted successfully!",
				Failure:  "Error deleting driver",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.DeleteDriver(ctx, d.ID)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}
}

func driversBulkDeleteCmd(a *App) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "bulk-delete",
		Short: "Delete every inactive driver, optionally only those matching --search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			screen := screens.NewDrivers(a.client)
			defer screen.Close()
			screen.SetQuery(listing.Query{Search: search})
			if err := fetch(ctx, screen); err != nil {
				return err
			}
			d, err := a.dispatcher(ctx)
			if err != nil {
				return err
			}
			res, err := mutation.BulkDelete(ctx, d, screen, models.DriverStatusInactive,
				func(dr models.Driver) bool { return dr.Status == models.DriverStatusInactive },
				a.client.DeleteDriver)
			if err := a.settle(err); err != nil {
				return err
			}
			showCounts(a, screen)
			if len(res.Failed) > 0 {
				fmt.Fprintf(a.errOut, "Could not delete: %s\n", strings.Join(res.Failed, ", "))
				return &reportedError{fmt.Errorf("%d of %d deletions failed", len(res.Failed), res.Attempted)}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "limit the deletion to drivers matching this text")
	return cmd
}
