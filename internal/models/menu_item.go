package models

import "github.com/chrisdamba/foodadmin/internal/relation"

type MenuItem struct {
	ID              string                           `json:"_id"`
	Restaurant      relation.Relation[RestaurantRef] `json:"restaurant"`
	Name            string                           `json:"name"`
	Description     string                           `json:"description"`
	Category        string                           `json:"category"`
	Price           float64                          `json:"price"`
	PreparationTime int                              `json:"preparationTime,omitempty"`
	Calories        int                              `json:"calories,omitempty"`
	IsAvailable     bool                             `json:"isAvailable"`
	IsVegetarian    bool                             `json:"isVegetarian"`
	IsVegan         bool                             `json:"isVegan"`
	IsGlutenFree    bool                             `json:"isGlutenFree"`
	SpiceLevel      string                           `json:"spiceLevel,omitempty"`
}

// MenuQuery is the server-side filter of a restaurant's menu.
type MenuQuery struct {
	Category  string
	Available string
}

// MenuItemForm is sent on create and update; the restaurant goes by id.
type MenuItemForm struct {
	RestaurantID    string  `json:"restaurantId" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	Category        string  `json:"category" validate:"required"`
	Price           float64 `json:"price" validate:"gt=0"`
	PreparationTime int     `json:"preparationTime" validate:"gte=0"`
	Calories        int     `json:"calories,omitempty" validate:"gte=0"`
	IsVegetarian    bool    `json:"isVegetarian"`
	IsVegan         bool    `json:"isVegan"`
	IsGlutenFree    bool    `json:"isGlutenFree"`
	SpiceLevel      string  `json:"spiceLevel" validate:"omitempty,oneof=None Mild Medium Hot 'Extra Hot'"`
}
