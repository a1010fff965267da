package screens

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/listing"
	"github.com/chrisdamba/foodadmin/internal/models"
)

// RestaurantPageSize is the default page size of the restaurant list.
const RestaurantPageSize = 10

func NewOrders(c *api.Client) *listing.Screen[models.Order] {
	return listing.NewScreen(Orders, listing.Unpaged(c.ListOrders))
}

func NewDrivers(c *api.Client) *listing.Screen[models.Driver] {
	return listing.NewScreen(Drivers, listing.Unpaged(c.ListDrivers))
}

func NewCustomers(c *api.Client) *listing.Screen[models.Customer] {
	return listing.NewScreen(Customers, listing.Unpaged(c.ListCustomers))
}

func NewDocuments(c *api.Client) *listing.Screen[models.Document] {
	return listing.NewScreen(Documents, listing.Unpaged(c.ListDocuments))
}

func NewPayments(c *api.Client) *listing.Screen[models.Payment] {
	return listing.NewScreen(Payments, listing.Unpaged(c.ListPayments))
}

// NewRestaurants pages through the restaurant list pageSize records at a
// time; a non-positive pageSize uses RestaurantPageSize.
func NewRestaurants(c *api.Client, pageSize int) *listing.Screen[models.Restaurant] {
	if pageSize <= 0 {
		pageSize = RestaurantPageSize
	}
	return listing.NewScreen(Restaurants, func(ctx context.Context, q listing.Query) (listing.Page[models.Restaurant], error) {
		rq := models.RestaurantQuery{Search: q.Search, Page: max(q.Page, 1), Limit: pageSize}
		if s := q.StatusOrAll(); s != listing.All {
			rq.Status = s
		}
		if a := q.Facets["active"]; a != "" && a != listing.All {
			rq.IsActive = a
		}
		items, pages, err := c.ListRestaurants(ctx, rq)
		if err != nil {
			return listing.Page[models.Restaurant]{}, err
		}
		return listing.Page[models.Restaurant]{Items: items, TotalPages: pages}, nil
	})
}

// NewMenu lists the menu of one restaurant.
func NewMenu(c *api.Client, restaurantID string) *listing.Screen[models.MenuItem] {
	return listing.NewScreen(Menu, func(ctx context.Context, q listing.Query) (listing.Page[models.MenuItem], error) {
		var mq models.MenuQuery
		if cat := q.Facets["category"]; cat != "" && cat != listing.All {
			mq.Category = cat
		}
		switch q.StatusOrAll() {
		case "available":
			mq.Available = "true"
		case "unavailable":
			mq.Available = "false"
		}
		items, err := c.ListMenu(ctx, restaurantID, mq)
		if err != nil {
			return listing.Page[models.MenuItem]{}, err
		}
		return listing.Page[models.MenuItem]{Items: items, TotalPages: 1}, nil
	})
}
