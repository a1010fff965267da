package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/mutation"
	"github.com/chrisdamba/foodadmin/internal/screens"
	"github.com/chrisdamba/foodadmin/internal/validate"
)

func menuCmd(a *App) *cobra.Command {
	var restaurantID string
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage the menu of a restaurant",
	}
	cmd.PersistentFlags().StringVarP(&restaurantID, "restaurant", "r", "", "restaurant whose menu to work on")
	cmd.MarkPersistentFlagRequired("restaurant")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the restaurant's menu items",
		Args:  cobra.NoArgs,
	}
	lf := bindListFlags(list, screens.Menu)
	list.RunE = func(cmd *cobra.Command, args []string) error {
		return showList(cmd.Context(), a, screens.NewMenu(a.client, restaurantID), lf)
	}

	var form models.MenuItemForm
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a menu item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form.RestaurantID = restaurantID
			return saveMenuItem(cmd.Context(), a, "", form)
		},
	}
	bindMenuItemFlags(add, &form)

	var changes models.MenuItemForm
	update := &cobra.Command{
		Use:   "update ITEM_ID",
		Short: "Change a menu item; flags left out keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			item, err := find(ctx, screens.NewMenu(a.client, restaurantID), args[0])
			if err != nil {
				return err
			}
			f := formFrom(item, restaurantID)
			mergeMenuItem(cmd, &f, changes)
			return saveMenuItem(ctx, a, item.ID, f)
		},
	}
	bindMenuItemFlags(update, &changes)

	del := &cobra.Command{
		Use:   "delete ITEM_ID",
		Short: "Delete a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			screen := screens.NewMenu(a.client, restaurantID)
			defer screen.Close()
			err := a.mutate(cmd.Context(), mutation.Mutation{
				Action:   "delete",
				Entity:   "menu item",
				TargetID: id,
				Confirm:  "Are you sure you want to delete this menu item? This action cannot be undone.",
				Success:  "Menu item deleted successfully",
				Failure:  "Error deleting menu item",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.DeleteMenuItem(ctx, id)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle-availability ITEM_ID",
		Short: "Mark a menu item available or unavailable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			screen := screens.NewMenu(a.client, restaurantID)
			defer screen.Close()
			err := a.mutate(cmd.Context(), mutation.Mutation{
				Action:   "toggle-availability",
				Entity:   "menu item",
				TargetID: id,
				Failure:  "Failed to toggle availability",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.ToggleMenuItemAvailability(ctx, id)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}

	cmd.AddCommand(list, add, update, del, toggle)
	return cmd
}

func bindMenuItemFlags(cmd *cobra.Command, f *models.MenuItemForm) {
	flags := cmd.Flags()
	flags.StringVar(&f.Name, "name", "", "item name")
	flags.StringVar(&f.Description, "description", "", "item description")
	flags.StringVar(&f.Category, "category", "", "category: "+strings.Join(models.MenuCategories, ", "))
	flags.Float64Var(&f.Price, "price", 0, "price")
	flags.IntVar(&f.PreparationTime, "prep-time", 15, "preparation time in minutes")
	flags.IntVar(&f.Calories, "calories", 0, "calories")
	flags.BoolVar(&f.IsVegetarian, "vegetarian", false, "vegetarian")
	flags.BoolVar(&f.IsVegan, "vegan", false, "vegan")
	flags.BoolVar(&f.IsGlutenFree, "gluten-free", false, "gluten free")
	flags.StringVar(&f.SpiceLevel, "spice", "None", "spice level: "+strings.Join(models.SpiceLevels, ", "))
}

func formFrom(m models.MenuItem, restaurantID string) models.MenuItemForm {
	return models.MenuItemForm{
		RestaurantID:    restaurantID,
		Name:            m.Name,
		Description:     m.Description,
		Category:        m.Category,
		Price:           m.Price,
		PreparationTime: m.PreparationTime,
		Calories:        m.Calories,
		IsVegetarian:    m.IsVegetarian,
		IsVegan:         m.IsVegan,
		IsGlutenFree:    m.IsGlutenFree,
		SpiceLevel:      m.SpiceLevel,
	}
}

// mergeMenuItem copies the flags the user actually gave from changes into f.
func mergeMenuItem(cmd *cobra.Command, f *models.MenuItemForm, changes models.MenuItemForm) {
	set := cmd.Flags().Changed
	if set("name") {
		f.Name = changes.Name
	}
	if set("description") {
		f.Description = changes.Description
	}
	if set("category") {
		f.Category = changes.Category
	}
	if set("price") {
		f.Price = changes.Price
	}
	if set("prep-time") {
		f.PreparationTime = changes.PreparationTime
	}
	if set("calories") {
		f.Calories = changes.Calories
	}
	if set("vegetarian") {
		f.IsVegetarian = changes.IsVegetarian
	}
	if set("vegan") {
		f.IsVegan = changes.IsVegan
	}
	if set("gluten-free") {
		f.IsGlutenFree = changes.IsGlutenFree
	}
	if set("spice") {
		f.SpiceLevel = changes.SpiceLevel
	}
}

// saveMenuItem creates the item when id is empty and updates it otherwise.
func saveMenuItem(ctx context.Context, a *App, id string, f models.MenuItemForm) error {
	if err := validate.Struct(&f); err != nil {
		return err
	}
	m := mutation.Mutation{
		Action:  "create",
		Entity:  "menu item",
		Success: "Menu item created successfully!",
		Failure: "Error saving menu item",
		Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
			return a.client.CreateMenuItem(ctx, f)
		},
	}
	if id != "" {
		m.Action, m.TargetID, m.Success = "update", id, "Menu item updated successfully!"
		m.Send = func(ctx context.Context, _ string) (*api.Envelope, error) {
			return a.client.UpdateMenuItem(ctx, id, f)
		}
	}
	screen := screens.NewMenu(a.client, f.RestaurantID)
	defer screen.Close()
	err := a.mutate(ctx, m, screen)
	if err == nil {
		showCounts(a, screen)
	}
	return err
}
