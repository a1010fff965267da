package factories

import (
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/relation"
)

var dishes = map[string][]string{
	"Italian":       {"Margherita Pizza", "Spaghetti Carbonara", "Lasagna", "Tiramisu"},
	"Indian":        {"Chicken Tikka Masala", "Vegetable Curry", "Naan Bread", "Biryani"},
	"American":      {"Cheeseburger", "Hot Dog", "BBQ Ribs", "Apple Pie"},
	"Japanese":      {"Sushi Roll", "Ramen", "Tempura", "Miso Soup"},
	"Mexican":       {"Tacos", "Burrito", "Guacamole", "Quesadilla"},
	"Chinese":       {"Kung Pao Chicken", "Fried Rice", "Dumplings", "Mapo Tofu"},
	"Thai":          {"Pad Thai", "Green Curry", "Tom Yum Soup", "Mango Sticky Rice"},
	"Greek":         {"Gyros", "Greek Salad", "Moussaka", "Baklava"},
	"French":        {"Coq au Vin", "Beef Bourguignon", "Ratatouille", "Creme Brulee"},
	"Mediterranean": {"Falafel", "Hummus", "Tabbouleh", "Grilled Halloumi"},
}

var dishCategory = map[string]string{
	"Tiramisu": "Desserts", "Apple Pie": "Desserts", "Baklava": "Desserts",
	"Mango Sticky Rice": "Desserts", "Creme Brulee": "Desserts",
	"Margherita Pizza": "Pizza", "Cheeseburger": "Burgers",
	"Greek Salad": "Salads", "Tom Yum Soup": "Soups", "Miso Soup": "Soups",
	"Spaghetti Carbonara": "Pasta", "Lasagna": "Pasta", "Sushi Roll": "Seafood",
	"Naan Bread": "Sides", "Fried Rice": "Sides", "Guacamole": "Appetizers",
	"Hummus": "Appetizers", "Dumplings": "Appetizers", "Falafel": "Vegetarian",
}

func (f *Factory) MenuItem(r models.Restaurant) models.MenuItem {
	name := "Special of the Day"
	if names, ok := dishes[r.Cuisine]; ok {
		name = f.pick(names)
	}
	category, ok := dishCategory[name]
	if !ok {
		category = "Main Course"
	}
	vegan := f.chance(0.1)
	return models.MenuItem{
		ID:              f.ID(),
		Restaurant:      relation.Resolve(RestaurantRef(r)),
		Name:            name,
		Description:     f.fake.Lorem().Sentence(10),
		Category:        category,
		Price:           f.fake.Float64(2, 35, 220),
		PreparationTime: f.fake.IntBetween(5, 40),
		Calories:        f.fake.IntBetween(150, 1200),
		IsAvailable:     !f.chance(0.2),
		IsVegetarian:    vegan || f.chance(0.25),
		IsVegan:         vegan,
		IsGlutenFree:    f.chance(0.15),
		SpiceLevel:      f.pick(models.SpiceLevels),
	}
}
