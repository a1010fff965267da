package models

// Person is the embedded shape of a user, customer, driver or vendor when the
// API populates the relation.
type Person struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func (p Person) Identity() string   { return p.ID }
func (p Person) PartyName() string  { return p.Name }
func (p Person) PartyPhone() string { return p.Phone }
func (p Person) PartyEmail() string { return p.Email }

// RestaurantRef is the embedded shape of a restaurant inside orders and menu items.
type RestaurantRef struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Cuisine string `json:"cuisine,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

func (r RestaurantRef) Identity() string   { return r.ID }
func (r RestaurantRef) PartyName() string  { return r.Name }
func (r RestaurantRef) PartyPhone() string { return r.Phone }
func (r RestaurantRef) PartyEmail() string { return r.Email }
