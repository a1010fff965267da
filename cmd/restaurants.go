package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/listing"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/mutation"
	"github.com/chrisdamba/foodadmin/internal/screens"
	"github.com/chrisdamba/foodadmin/internal/validate"
)

func restaurantsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "restaurants",
		Aliases: []string{"restaurant"},
		Short:   "Manage restaurants and their vendor accounts",
	}
	cmd.AddCommand(
		restaurantsListCmd(a),
		restaurantsAddCmd(a),
		restaurantsUpdateCmd(a),
		restaurantsDeleteCmd(a),
		restaurantsToggleCmd(a),
	)
	return cmd
}

func (a *App) restaurants() *listing.Screen[models.Restaurant] {
	return screens.NewRestaurants(a.client, a.cfg.PageSize)
}

func restaurantsListCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List restaurants one page at a time",
		Args:  cobra.NoArgs,
	}
	lf := bindListFlags(cmd, screens.Restaurants)
	cmd.Flags().IntVar(&lf.page, "page", 1, "page to show")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return showList(cmd.Context(), a, a.restaurants(), lf)
	}
	return cmd
}

func restaurantsAddCmd(a *App) *cobra.Command {
	var nr models.NewRestaurant
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a restaurant together with its vendor login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(&nr); err != nil {
				return err
			}
			screen := a.restaurants()
			defer screen.Close()
			err := a.mutate(cmd.Context(), mutation.Mutation{
				Action:  "create",
				Entity:  "restaurant",
				Success: fmt.Sprintf("Restaurant and vendor created successfully!\nVendor login: %s / %s", nr.VendorEmail, nr.VendorPassword),
				Failure: "Error creating restaurant",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.CreateRestaurant(ctx, nr)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&nr.VendorEmail, "vendor-email", "", "vendor login email")
	flags.StringVar(&nr.VendorName, "vendor-name", "", "vendor's name")
	flags.StringVar(&nr.VendorPhone, "vendor-phone", "", "vendor's phone number")
	flags.StringVar(&nr.VendorPassword, "vendor-password", "", "vendor login password (default "+models.DefaultVendorPassword+")")
	flags.StringVar(&nr.Name, "name", "", "restaurant name")
	flags.StringVar(&nr.Description, "description", "", "short description")
	flags.StringVar(&nr.Cuisine, "cuisine", "", "cuisine")
	flags.Float64Var(&nr.DeliveryFee, "delivery-fee", 0, "delivery fee")
	flags.Float64Var(&nr.MinimumOrder, "minimum-order", 0, "minimum order value")
	flags.StringVar(&nr.ContactPhone, "contact-phone", "", "restaurant phone number")
	flags.StringVar(&nr.ContactEmail, "contact-email", "", "restaurant email")
	flags.StringVar(&nr.Street, "street", "", "street address")
	flags.StringVar(&nr.City, "city", "", "city")
	flags.StringVar(&nr.State, "state", "", "province or state")
	flags.StringVar(&nr.ZipCode, "zip", "", "postal code")
	flags.Float64Var(&nr.Latitude, "lat", 0, "latitude (defaults to Johannesburg)")
	flags.Float64Var(&nr.Longitude, "lng", 0, "longitude (defaults to Johannesburg)")
	return cmd
}

func restaurantsUpdateCmd(a *App) *cobra.Command {
	var (
		u                         models.RestaurantUpdate
		deliveryFee, minimumOrder float64
	)
	cmd := &cobra.Command{
		Use:   "update RESTAURANT_ID",
		Short: "Change a restaurant's details; only the given flags are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("delivery-fee") {
				u.DeliveryFee = &deliveryFee
			}
			if cmd.Flags().Changed("minimum-order") {
				u.MinimumOrder = &minimumOrder
			}
			if u == (models.RestaurantUpdate{}) {
				return fmt.Errorf("nothing to update")
			}
			if err := validate.Struct(&u); err != nil {
				return err
			}
			id := args[0]
			screen := a.restaurants()
			defer screen.Close()
			err := a.mutate(cmd.Context(), mutation.Mutation{
				Action:   "update",
				Entity:   "restaurant",
				TargetID: id,
				Success:  "Restaurant updated successfully!",
				Failure:  "Error updating restaurant",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.UpdateRestaurant(ctx, id, u)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&u.Name, "name", "", "restaurant name")
	flags.StringVar(&u.Description, "description", "", "short description")
	flags.StringVar(&u.Cuisine, "cuisine", "", "cuisine")
	flags.StringVar(&u.Status, "status", "", "status: open, closed or busy")
	flags.Float64Var(&deliveryFee, "delivery-fee", 0, "delivery fee")
	flags.Float64Var(&minimumOrder, "minimum-order", 0, "minimum order value")
	flags.StringVar(&u.ContactPhone, "contact-phone", "", "restaurant phone number")
	flags.StringVar(&u.ContactEmail, "contact-email", "", "restaurant email")
	return cmd
}

func restaurantsDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete RESTAURANT_ID",
		Short: "Delete a restaurant and its menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			screen := a.restaurants()
			defer screen.Close()
			err := a.mutate(cmd.Context(), mutation.Mutation{
				Action:   "delete",
				Entity:   "restaurant",
				TargetID: id,
				Confirm:  "Are you sure you want to delete this restaurant? This action cannot be undone.",
				Success:  "Restaurant deleted successfully",
				Failure:  "Error deleting restaurant",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.DeleteRestaurant(ctx, id)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}
}

func restaurantsToggleCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-status RESTAURANT_ID",
		Short: "Activate or deactivate a restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			screen := a.restaurants()
			defer screen.Close()
			err := a.mutate(cmd.Context(), mutation.Mutation{
				Action:   "toggle-status",
				Entity:   "restaurant",
				TargetID: id,
				Failure:  "Failed to toggle restaurant status",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.ToggleRestaurantStatus(ctx, id)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}
}
